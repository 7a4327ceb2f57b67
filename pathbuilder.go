package curve

import "math"

// builderShapeHint tracks what Builder has accumulated so far, so Snapshot
// can decide whether the result still qualifies as a recognized oval or
// round-rect shape: any edit beyond a single addOval/addRRect call
// downgrades the hint to moreThanMoves.
type builderShapeHint int

const (
	shapeHintJustMoves builderShapeHint = iota
	shapeHintMoreThanMoves
	shapeHintOval
	shapeHintRRect
)

// Builder accumulates path geometry into scratch arrays before producing a
// Path. Each Path method clones the body before editing it when it is
// shared, which a MoveTo/LineTo chain on Path values does on every call.
// Builder edits still pass through the "is this shared" check, but the body
// is cloned only on the first edit after a Snapshot has shared it; the other
// edits mutate the one owned body in place.
type Builder struct {
	body *pathRef
	fill FillRule

	lastMoveToIndex int
	shapeHint       builderShapeHint
	shapeCCW         bool
	shapeStart      int
}

// NewBuilder returns an empty Builder with the winding fill rule.
func NewBuilder() *Builder {
	return &Builder{body: newPathRef(), fill: FillWinding, lastMoveToIndex: noLastMoveTo, shapeHint: shapeHintJustMoves}
}

// NewBuilderWithFillRule returns an empty Builder using the given fill rule.
func NewBuilderWithFillRule(fill FillRule) *Builder {
	b := NewBuilder()
	b.fill = fill
	return b
}

func (b *Builder) editor() *pathEditor {
	return getEditor(&b.body)
}

func (b *Builder) markEdited() {
	if b.shapeHint != shapeHintJustMoves {
		b.shapeHint = shapeHintMoreThanMoves
	}
}

// MoveTo starts a new contour at pt.
func (b *Builder) MoveTo(pt Point) *Builder {
	e := b.editor()
	pts := e.growForVerb(VerbMove)
	pts[0] = pt
	b.lastMoveToIndex = len(e.body.points) - 1
	if !pt.IsFinite() {
		e.setIsFinite(false)
	}
	b.markEdited()
	return b
}

func (b *Builder) injectMoveIfNeeded() {
	if b.lastMoveToIndex >= 0 {
		return
	}
	if b.body.countVerbs() == 0 {
		b.MoveTo(Pt(0, 0))
		return
	}
	startIdx := ^b.lastMoveToIndex
	b.MoveTo(b.body.points[startIdx])
}

// LineTo appends a line to pt.
func (b *Builder) LineTo(pt Point) *Builder {
	b.injectMoveIfNeeded()
	e := b.editor()
	pts := e.growForVerb(VerbLine)
	pts[0] = pt
	if !pt.IsFinite() {
		e.setIsFinite(false)
	}
	b.markEdited()
	return b
}

// QuadTo appends a quadratic Bézier.
func (b *Builder) QuadTo(ctrl, end Point) *Builder {
	b.injectMoveIfNeeded()
	e := b.editor()
	pts := e.growForVerb(VerbQuad)
	pts[0], pts[1] = ctrl, end
	if !ctrl.IsFinite() || !end.IsFinite() {
		e.setIsFinite(false)
	}
	b.markEdited()
	return b
}

// ConicTo appends a conic (rational quadratic Bézier) with weight w.
func (b *Builder) ConicTo(ctrl, end Point, w float64) *Builder {
	if w <= 0 {
		return b.LineTo(end)
	}
	if w == 1 {
		return b.QuadTo(ctrl, end)
	}
	b.injectMoveIfNeeded()
	e := b.editor()
	pts := e.growForVerb(VerbConic, w)
	pts[0], pts[1] = ctrl, end
	if !ctrl.IsFinite() || !end.IsFinite() {
		e.setIsFinite(false)
	}
	b.markEdited()
	return b
}

// CubicTo appends a cubic Bézier.
func (b *Builder) CubicTo(c0, c1, end Point) *Builder {
	b.injectMoveIfNeeded()
	e := b.editor()
	pts := e.growForVerb(VerbCubic)
	pts[0], pts[1], pts[2] = c0, c1, end
	if !c0.IsFinite() || !c1.IsFinite() || !end.IsFinite() {
		e.setIsFinite(false)
	}
	b.markEdited()
	return b
}

// Close closes the current contour.
func (b *Builder) Close() *Builder {
	if b.body.countVerbs() == 0 || b.lastMoveToIndex < 0 {
		return b
	}
	e := b.editor()
	e.body.verbs = append(e.body.verbs, VerbClose)
	b.lastMoveToIndex = ^b.lastMoveToIndex
	b.markEdited()
	return b
}

// AddRect appends rect as a new closed contour, starting at corner
// startCorner (0=UL,1=UR,2=LR,3=LL) and winding in dir. When this is the
// builder's only contour so far, Snapshot will recognize the result as
// IsRect-queryable via the ordinary four-Line recognizer; AddRect doesn't
// itself set an oval/rrect shape hint (only AddOval/AddRRect do).
func (b *Builder) AddRect(rect Rect, dir Direction, startCorner int) *Builder {
	corners := rectCorners(rect)
	startCorner = ((startCorner % 4) + 4) % 4
	order := [4]int{0, 1, 2, 3}
	if dir == DirectionCounterClockwise {
		order = [4]int{0, 3, 2, 1}
	}
	b.MoveTo(corners[(startCorner+order[0])%4])
	for k := 1; k < 4; k++ {
		b.LineTo(corners[(startCorner+order[k])%4])
	}
	b.Close()
	b.markEdited()
	return b
}

func rectCorners(r Rect) [4]Point {
	return [4]Point{
		Pt(r.MinX(), r.MinY()),
		Pt(r.MaxX(), r.MinY()),
		Pt(r.MaxX(), r.MaxY()),
		Pt(r.MinX(), r.MaxY()),
	}
}

// ovalConicWeight is the weight that makes a 90° conic arc trace a circular
// quadrant exactly: cos(45°) = √2/2.
const ovalConicWeight = math.Sqrt2 / 2

// AddOval appends rect's inscribed oval as a new closed contour built from
// four 90° conic arcs, each with the exact quarter-circle weight √2/2 (the
// same four-conic decomposition Skia's SkPath::addOval uses, rather than a
// cubic approximation). (startIndex/2)%4 picks which of the oval's four
// quadrant arcs the contour starts with, the same indexing AddRRect uses;
// the low bit of startIndex is ignored. Tags the result as
// IsOval-recognizable when the builder held no drawing verbs before the call.
func (b *Builder) AddOval(rect Rect, dir Direction, startIndex int) *Builder {
	return b.AddRRect(NewRoundRectOval(rect), dir, startIndex)
}

// AddCircle appends a circle of the given radius centered at center.
func (b *Builder) AddCircle(center Point, radius float64, dir Direction) *Builder {
	if radius <= 0 {
		return b
	}
	rect := NewRectFromPoints(Pt(center.X-radius, center.Y-radius), Pt(center.X+radius, center.Y+radius))
	return b.AddOval(rect, dir, 0)
}

// AddCircleCubic appends a circle of the given radius centered at center,
// approximated entirely by cubic Béziers to within tolerance rather than
// AddCircle's exact conic-arc decomposition. For consumers whose rasterizer
// or exporter cannot rasterize conics at all, this trades the conic form's
// exactness for a representation every cubic-capable consumer can render,
// using as many cubic arms as the requested tolerance demands. Grounded on
// the package's own Circle.PathElements, left otherwise unwired once this
// package's own Path/Builder types superseded it as the path-construction
// surface.
func (b *Builder) AddCircleCubic(center Point, radius, tolerance float64) *Builder {
	if radius <= 0 {
		return b
	}
	first := true
	for el := range (Circle{Center: center, Radius: radius}).PathElements(tolerance) {
		switch el.Kind {
		case MoveToKind:
			if first {
				b.MoveTo(el.P0)
				first = false
			}
		case CubicToKind:
			b.CubicTo(el.P0, el.P1, el.P2)
		}
	}
	return b.Close()
}

// AddRotatedOval appends a possibly-rotated ellipse centered at center with
// the given radii, approximated by cubic arcs to within tolerance. Unlike
// AddOval, which can only place an axis-aligned oval inscribed in a Rect,
// this accepts an arbitrary xRotation, for callers building shapes (a
// rotated badge, a dial gauge) that need an ellipse on an arbitrary axis.
// Grounded on the package's own Ellipse/Arc machinery, which already
// reduces a rotated ellipse to a single full-sweep Arc.
func (b *Builder) AddRotatedOval(center Point, radii Vec2, xRotation, tolerance float64) *Builder {
	if radii.X <= 0 || radii.Y <= 0 {
		return b
	}
	first := true
	for el := range NewEllipse(center, radii, xRotation).PathElements(tolerance) {
		switch el.Kind {
		case MoveToKind:
			if first {
				b.MoveTo(el.P0)
				first = false
			}
		case CubicToKind:
			b.CubicTo(el.P0, el.P1, el.P2)
		}
	}
	return b.Close()
}

// AddRRect appends rr as a new closed contour of four conic arcs (one per
// corner where the radius is nonzero) and four lines (one per straight
// side), winding in dir. The contour starts with the arc of corner
// (startIndex/2)%4 (0=UL, 1=UR, 2=LR, 3=LL). The low bit of startIndex is
// ignored: an odd index starts at the same point as the even index below
// it, and the contour always begins with a corner arc, never with a side.
// Tags the result IsRRect-recognizable (IsOval-recognizable for an oval rr)
// when the builder held no drawing verbs before this call.
func (b *Builder) AddRRect(rr RoundRect, dir Direction, startIndex int) *Builder {
	if rr.IsEmpty() {
		return b
	}
	firstContour := b.shapeHint == shapeHintJustMoves && b.body.segmentMask == 0
	rect := rr.Rect()
	ul, ur, lr, ll := rr.Radii(int(cornerUL)), rr.Radii(int(cornerUR)), rr.Radii(int(cornerLR)), rr.Radii(int(cornerLL))

	type arc struct {
		center     Point
		startAngle float64 // radians, measured from +X axis, clockwise in a y-down plane
	}
	// Corners visited in clockwise order starting upper-left: UL, UR, LR, LL.
	arcs := [4]arc{
		{Pt(rect.MinX()+ul.X, rect.MinY()+ul.Y), math.Pi},
		{Pt(rect.MaxX()-ur.X, rect.MinY()+ur.Y), -math.Pi / 2},
		{Pt(rect.MaxX()-lr.X, rect.MaxY()-lr.Y), 0},
		{Pt(rect.MinX()+ll.X, rect.MaxY()-ll.Y), math.Pi / 2},
	}
	radii := [4]Vec2{ul, ur, lr, ll}

	quarterConic := func(center Point, r Vec2, startAngle float64) (ctrl, end Point) {
		midAngle := startAngle + math.Pi/4
		endAngle := startAngle + math.Pi/2
		ctrl = Pt(center.X+r.X*math.Cos(midAngle)/ovalConicWeight, center.Y+r.Y*math.Sin(midAngle)/ovalConicWeight)
		end = Pt(center.X+r.X*math.Cos(endAngle), center.Y+r.Y*math.Sin(endAngle))
		return
	}

	order := [4]int{0, 1, 2, 3}
	if dir == DirectionCounterClockwise {
		order = [4]int{0, 3, 2, 1}
	}
	idx := (startIndex / 2) % 4

	first := true
	visit := func(k int) {
		corner := (idx + order[k]) % 4
		a := arcs[corner]
		r := radii[corner]
		startPt := Pt(a.center.X+r.X*math.Cos(a.startAngle), a.center.Y+r.Y*math.Sin(a.startAngle))
		ctrl, end := quarterConic(a.center, r, a.startAngle)
		if dir == DirectionCounterClockwise {
			startPt, end = end, startPt
		}
		if first {
			b.MoveTo(startPt)
			first = false
		} else {
			b.LineTo(startPt)
		}
		if r.X > 0 || r.Y > 0 {
			b.ConicTo(ctrl, end, ovalConicWeight)
		}
	}
	for k := 0; k < 4; k++ {
		visit(k)
	}
	b.Close()

	if firstContour {
		kind := shapeHintRRect
		if rr.Type() == RoundRectOvalType {
			kind = shapeHintOval
		}
		b.shapeHint = kind
		b.shapeCCW = dir == DirectionCounterClockwise
		b.shapeStart = startIndex
	} else {
		b.markEdited()
	}
	return b
}

// AddPolygon appends a contour of straight lines through pts, closing it
// when close is true.
func (b *Builder) AddPolygon(pts []Point, close bool) *Builder {
	if len(pts) == 0 {
		return b
	}
	b.MoveTo(pts[0])
	if len(pts) > 1 {
		e := b.editor()
		dst := e.growForRepeatedVerb(VerbLine, len(pts)-1)
		copy(dst, pts[1:])
		for _, pt := range pts[1:] {
			if !pt.IsFinite() {
				e.setIsFinite(false)
				break
			}
		}
	}
	if close {
		b.Close()
	}
	b.markEdited()
	return b
}

// AddPath appends other's entire verb stream as new contour(s), offset by
// delta.
func (b *Builder) AddPath(other Path, delta Vec2) *Builder {
	e := b.editor()
	pts, _ := e.growForVerbsInPath(other.body)
	if delta != (Vec2{}) {
		for i := range pts {
			pts[i] = pts[i].Translate(delta)
		}
	}
	b.lastMoveToIndex = noLastMoveTo
	b.markEdited()
	return b
}

// ReverseAddPath appends other's contours in reverse: each contour's verbs
// and points are walked back to front, and every curve is drawn from its end
// back to its start (a Quad/Conic keeps its control point and weight; a
// Cubic's two control points swap order) so the overall winding direction
// of each appended contour is inverted relative to how other draws it. Used by stroking (C7) to build a matching outer/inner
// wall pair around a single centerline contour.
func (b *Builder) ReverseAddPath(other Path) *Builder {
	contours := splitContours(other.body)
	for i := len(contours) - 1; i >= 0; i-- {
		appendReversedContour(b, contours[i])
	}
	b.markEdited()
	return b
}

// contourSlice is one contour's raw verbs/points/weights, still addressed
// into the owning body's arrays.
type contourSlice struct {
	verbs   []Verb
	points  []Point
	weights []float64
	closed  bool
}

func splitContours(body *pathRef) []contourSlice {
	var out []contourSlice
	verbIdx, pointIdx, weightIdx := 0, 0, 0
	n := len(body.verbs)
	for verbIdx < n {
		vStart, pStart, wStart := verbIdx, pointIdx, weightIdx
		if body.verbs[verbIdx] != VerbMove {
			break
		}
		verbIdx++
		pointIdx++
		closed := false
		for verbIdx < n && body.verbs[verbIdx] != VerbMove {
			switch body.verbs[verbIdx] {
			case VerbLine:
				pointIdx++
			case VerbQuad:
				pointIdx += 2
			case VerbConic:
				pointIdx += 2
				weightIdx++
			case VerbCubic:
				pointIdx += 3
			case VerbClose:
				closed = true
			}
			verbIdx++
		}
		out = append(out, contourSlice{
			verbs:   body.verbs[vStart:verbIdx],
			points:  body.points[pStart:pointIdx],
			weights: body.weights[wStart:weightIdx],
			closed:  closed,
		})
	}
	return out
}

func appendReversedContour(b *Builder, c contourSlice) {
	if len(c.points) == 0 {
		return
	}
	last := c.points[len(c.points)-1]
	b.MoveTo(last)

	pointIdx := len(c.points)
	weightIdx := len(c.weights)
	verbs := c.verbs
	// Walk verbs back to front, skipping the trailing Close (re-closed
	// explicitly at the end if present) and the leading Move (already
	// consumed above).
	for i := len(verbs) - 1; i >= 1; i-- {
		switch verbs[i] {
		case VerbClose:
			continue
		case VerbLine:
			pointIdx--
			prev := priorPoint(c.points, pointIdx)
			b.LineTo(prev)
		case VerbQuad:
			pointIdx -= 2
			ctrl := c.points[pointIdx]
			prev := priorPoint(c.points, pointIdx)
			b.QuadTo(ctrl, prev)
		case VerbConic:
			pointIdx -= 2
			weightIdx--
			ctrl := c.points[pointIdx]
			prev := priorPoint(c.points, pointIdx)
			b.ConicTo(ctrl, prev, c.weights[weightIdx])
		case VerbCubic:
			pointIdx -= 3
			c1, c0 := c.points[pointIdx+1], c.points[pointIdx]
			prev := priorPointAt(c.points, pointIdx)
			b.CubicTo(c1, c0, prev)
		}
	}
	if c.closed {
		b.Close()
	}
}

func priorPoint(pts []Point, idx int) Point {
	if idx == 0 {
		return pts[0]
	}
	return pts[idx-1]
}

func priorPointAt(pts []Point, idx int) Point {
	if idx == 0 {
		return pts[0]
	}
	return pts[idx-1]
}

// Offset translates every point in the builder by delta.
func (b *Builder) Offset(delta Vec2) *Builder {
	e := b.editor()
	for i := range e.body.points {
		e.body.points[i] = e.body.points[i].Translate(delta)
	}
	if !e.body.boundsDirty {
		e.body.bounds = e.body.bounds.Translate(delta)
	}
	b.markEdited()
	return b
}

// FillRule sets the fill rule the eventual Path will use.
func (b *Builder) FillRule(fill FillRule) *Builder {
	b.fill = fill
	return b
}

// Snapshot returns a Path reflecting the builder's current contents without
// consuming it: the builder's body is retained (shared, COW) by the
// returned Path, and the builder remains usable for further edits.
func (b *Builder) Snapshot() Path {
	if b.shapeHint == shapeHintOval || b.shapeHint == shapeHintRRect {
		ge := getEditor(&b.body)
		if b.shapeHint == shapeHintOval {
			ge.setIsOval(true, b.shapeCCW, b.shapeStart)
		} else {
			ge.setIsRRect(true, b.shapeCCW, b.shapeStart)
		}
	}
	return Path{body: b.body.retain(), fill: b.fill, lastMoveToIndex: b.lastMoveToIndex}
}

// Detach is like Snapshot but leaves the builder reset to empty, avoiding a
// COW clone on the builder's next edit the way Skia's SkPathBuilder::detach
// does.
func (b *Builder) Detach() Path {
	p := b.Snapshot()
	b.body = newPathRef()
	b.lastMoveToIndex = noLastMoveTo
	b.shapeHint = shapeHintJustMoves
	return p
}
