package curve

import "sync/atomic"

// noLastMoveTo is the lastMoveToIndex of a path that has no Move yet. Once
// a contour has been closed, lastMoveToIndex instead holds the bit-inverted
// index ^index of that contour's Move, so a subsequent drawing verb issued
// without an explicit Move knows both that it needs to inject one (the
// value is negative) and, by inverting back, where that Move belongs.
const noLastMoveTo = -1

// Path is an immutable-once-published sequence of contours: Move/Line/
// Quad/Conic/Cubic/Close verbs over a point stream, plus a fill rule. Path
// values are cheap to copy (they share their backing pathRef until one side
// is mutated) and safe to compare and use as map keys by value... except
// that cached convexity/direction fields are mutated lazily behind atomics,
// so Path is passed by value but never compared with == — use Equal.
type Path struct {
	body *pathRef
	fill FillRule

	// lastMoveToIndex is the point-array index of the most recent Move, or
	// noLastMoveTo if the path is empty. It is bit-inverted (negative) once
	// that contour has been closed, so the next LineTo/QuadTo/etc. knows to
	// inject a fresh Move at the same point first (§ "injectMoveIfNeeded").
	lastMoveToIndex int

	// convexity and firstDirection hold lazily computed metadata, Unknown
	// until computed. Convexity and FirstDirection have value receivers, so
	// the value they store lands in the receiver's own copy: neither the
	// caller's Path nor other copies see it, and every call recomputes.
	// clone starts a new value with both fields zeroed.
	convexity      atomic.Int32
	firstDirection atomic.Int32
}

// NewPath returns the empty path with the default winding fill rule.
func NewPath() Path {
	return Path{body: emptyPathRef.retain(), lastMoveToIndex: noLastMoveTo, fill: FillWinding}
}

// NewPathWithFillRule returns the empty path with the given fill rule.
func NewPathWithFillRule(fill FillRule) Path {
	return Path{body: emptyPathRef.retain(), lastMoveToIndex: noLastMoveTo, fill: fill}
}

// clone returns a shallow value copy sharing p's body (retained) and the
// same last-move-to bookkeeping, but with its own zeroed metadata caches —
// used internally whenever a new Path value is constructed from parts
// rather than copied by assignment, since Go copies the atomics by value
// otherwise, which is safe but pointless to carry forward.
func (p Path) clone() Path {
	return Path{body: p.body.retain(), fill: p.fill, lastMoveToIndex: p.lastMoveToIndex}
}

// FillRule returns p's fill rule.
func (p Path) FillRule() FillRule { return p.fill }

// WithFillRule returns a copy of p using the given fill rule; the body is
// shared (fill rule doesn't affect geometry), so this never forces a COW
// clone.
func (p Path) WithFillRule(fill FillRule) Path {
	out := p.clone()
	out.fill = fill
	return out
}

// ToggleInverseFillType flips whether p's fill rule treats the path's
// exterior as its interior.
func (p Path) ToggleInverseFillType() Path {
	return p.WithFillRule(p.fill.ToggleInverse())
}

// IsInverseFillType reports whether p's fill rule is inverted.
func (p Path) IsInverseFillType() bool { return p.fill.IsInverse() }

// CountVerbs returns the number of verbs recorded; an open contour adds no
// implicit Close to the count.
func (p Path) CountVerbs() int { return p.body.countVerbs() }

// CountPoints returns the number of points in the point array.
func (p Path) CountPoints() int { return p.body.countPoints() }

// IsEmpty reports whether p has no verbs at all.
func (p Path) IsEmpty() bool { return p.body.countVerbs() == 0 }

// IsFinite reports whether every point in p is finite. The answer is cached
// on the body the same way bounds are.
func (p Path) IsFinite() bool { return p.body.isFinite }

// SegmentMask returns the bitset of curve-drawing verb kinds present in p.
func (p Path) SegmentMask() SegmentMask { return p.body.segmentMask }

// Bounds returns the tight axis-aligned bounding box of p's point array
// (control points, not the tighter curve-extrema bounds TightBounds would
// give). Computed lazily and cached on the body.
func (p Path) Bounds() Rect {
	if p.body.boundsDirty {
		bounds := computeControlPointBounds(p.body.points)
		// Writing the cache here mutates shared state behind a pointer the
		// Path's owner doesn't believe it's mutating; like Skia's
		// SkPath::getBounds, this is safe only because the result is
		// independent of everything else about the body and idempotent to
		// recompute concurrently from multiple goroutines (at worst some of
		// them redo the same work).
		p.body.bounds = bounds
		p.body.boundsDirty = false
	}
	return p.body.bounds
}

func computeControlPointBounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// IsOval reports whether p was built as a single, untouched addOval
// contour, returning its bounds and winding direction when true.
func (p Path) IsOval() (bounds Rect, dir Direction, ok bool) {
	if !p.body.isOval {
		return Rect{}, DirectionUnknown, false
	}
	return p.Bounds(), directionFromCCW(p.body.shapeCCW), true
}

// IsRRect reports whether p was built as a single, untouched addRRect
// contour, returning a RoundRect and the winding direction when true. The
// body keeps no corner radii, so the returned RoundRect is the oval
// inscribed in p's bounds (see roundRectFromHint), not the RoundRect the
// path was built from.
func (p Path) IsRRect() (rr RoundRect, dir Direction, ok bool) {
	if !p.body.isRRect {
		return RoundRect{}, DirectionUnknown, false
	}
	return roundRectFromHint(p.Bounds(), p.body.shapeStart), directionFromCCW(p.body.shapeCCW), true
}

func directionFromCCW(ccw bool) Direction {
	if ccw {
		return DirectionCounterClockwise
	}
	return DirectionClockwise
}

// IsLine reports whether p is exactly one Move followed by one Line (no
// Close), returning its two endpoints when true.
func (p Path) IsLine() (p0, p1 Point, ok bool) {
	if len(p.body.verbs) != 2 || p.body.verbs[0] != VerbMove || p.body.verbs[1] != VerbLine {
		return Point{}, Point{}, false
	}
	return p.body.points[0], p.body.points[1], true
}

// IsRect reports whether p is a single rectangular contour of axis-aligned
// Lines, in either winding direction, possibly starting at any corner: four
// Lines whose last returns to the start, or three Lines whose implied
// closing edge completes the rectangle. A trailing Close is accepted but not
// required, and the result does not say whether the contour was closed.
// Returns the rect, its direction, and the start-corner index (0=UL, 1=UR,
// 2=LR, 3=LL, as in AddRect).
func (p Path) IsRect() (rect Rect, dir Direction, start int, ok bool) {
	return recognizeRect(p.body)
}

// Equal reports whether p and o describe the same fill rule and geometry.
func (p Path) Equal(o Path) bool {
	return p.fill == o.fill && equalBody(p.body, o.body)
}

// Reset returns the canonical empty path, releasing p's body. Unlike Rewind,
// the result shares the global empty body rather than keeping p's allocated
// arrays around for reuse.
func (p Path) Reset() Path {
	p.body.release()
	return NewPathWithFillRule(p.fill)
}

// Rewind clears p's geometry back to empty but keeps its backing arrays'
// capacity, for callers about to rebuild a similarly-sized path — the same
// trade-off SkPath::rewind makes over SkPath::reset.
func (p Path) Rewind() Path {
	slot := &p.body
	e := getEditor(slot)
	e.rewind()
	return Path{body: *slot, fill: p.fill, lastMoveToIndex: noLastMoveTo}
}

// Transform returns a copy of p mapped by m. When m has no perspective this
// takes the §4.1 fast path (map points in place, keep verbs/weights,
// transform the bounds and shape-hint caches directly when legal). When m
// has perspective, quads are promoted to conics, cubics are subdivided at
// their parameter midpoint into four cubics (to keep the perspective-mapped
// approximation reasonable), and no bounds/shape-hint fast path is taken.
func (p Path) Transform(m Matrix) Path {
	if m.IsIdentity() {
		return p.clone()
	}
	if !m.HasPerspective() {
		newBody := transformedCopyAffine(p.body, m)
		return Path{body: newBody, fill: p.fill, lastMoveToIndex: p.lastMoveToIndex}
	}
	return p.transformPerspective(m)
}

func (p Path) transformPerspective(m Matrix) Path {
	out := NewPathWithFillRule(p.fill)
	i := 0
	weightIdx := 0
	for _, v := range p.body.verbs {
		switch v {
		case VerbMove:
			out = out.MoveTo(m.MapPoint(p.body.points[i]))
			i++
		case VerbLine:
			out = out.LineTo(m.MapPoint(p.body.points[i]))
			i++
		case VerbQuad:
			p0, p1 := p.body.points[i-1], p.body.points[i]
			p2 := p.body.points[i+1]
			w := m.TransformConicWeight(p0, p1, p2, 1)
			out = out.ConicTo(m.MapPoint(p1), m.MapPoint(p2), w)
			i += 2
		case VerbConic:
			p0, p1 := p.body.points[i-1], p.body.points[i]
			p2 := p.body.points[i+1]
			w := m.TransformConicWeight(p0, p1, p2, p.body.weights[weightIdx])
			out = out.ConicTo(m.MapPoint(p1), m.MapPoint(p2), w)
			i += 2
			weightIdx++
		case VerbCubic:
			p0 := p.body.points[i-1]
			p1, p2, p3 := p.body.points[i], p.body.points[i+1], p.body.points[i+2]
			for _, q := range subdivideCubicQuarters(p0, p1, p2, p3) {
				out = out.CubicTo(m.MapPoint(q[1]), m.MapPoint(q[2]), m.MapPoint(q[3]))
			}
			i += 3
		case VerbClose:
			out = out.Close()
		}
	}
	return out
}

// MoveTo starts a new contour at pt. Issuing a Move while the current
// contour hasn't been closed leaves it open (a path may contain unclosed
// contours; I3).
func (p Path) MoveTo(pt Point) Path {
	out := p.clone()
	e := getEditor(&out.body)
	pts := e.growForVerb(VerbMove)
	pts[0] = pt
	out.lastMoveToIndex = len(e.body.points) - 1
	if !pt.IsFinite() {
		e.setIsFinite(false)
	}
	return out
}

// injectMoveIfNeeded ensures a drawing verb always has a preceding Move: if
// the path is empty, it injects Move(0,0); if the current contour was
// already closed (lastMoveToIndex negative, bit-inverted), it injects a
// fresh Move back at that contour's start point, matching
// SkPath::injectMoveToIfNeeded.
func (p Path) injectMoveIfNeeded() Path {
	if p.lastMoveToIndex >= 0 {
		return p
	}
	if p.IsEmpty() {
		return p.MoveTo(Pt(0, 0))
	}
	startIdx := ^p.lastMoveToIndex
	start := p.body.points[startIdx]
	return p.MoveTo(start)
}

// LineTo appends a line from the current point to pt.
func (p Path) LineTo(pt Point) Path {
	p = p.injectMoveIfNeeded()
	out := p.clone()
	e := getEditor(&out.body)
	pts := e.growForVerb(VerbLine)
	pts[0] = pt
	if !pt.IsFinite() {
		e.setIsFinite(false)
	}
	return out
}

// QuadTo appends a quadratic Bézier through control point ctrl to end.
func (p Path) QuadTo(ctrl, end Point) Path {
	p = p.injectMoveIfNeeded()
	out := p.clone()
	e := getEditor(&out.body)
	pts := e.growForVerb(VerbQuad)
	pts[0], pts[1] = ctrl, end
	if !ctrl.IsFinite() || !end.IsFinite() {
		e.setIsFinite(false)
	}
	return out
}

// ConicTo appends a rational quadratic (conic) through control point ctrl
// to end with weight w.
func (p Path) ConicTo(ctrl, end Point, w float64) Path {
	if w <= 0 {
		return p.LineTo(end)
	}
	if w == 1 {
		return p.QuadTo(ctrl, end)
	}
	p = p.injectMoveIfNeeded()
	out := p.clone()
	e := getEditor(&out.body)
	pts := e.growForVerb(VerbConic, w)
	pts[0], pts[1] = ctrl, end
	if !ctrl.IsFinite() || !end.IsFinite() {
		e.setIsFinite(false)
	}
	return out
}

// CubicTo appends a cubic Bézier through control points c0, c1 to end.
func (p Path) CubicTo(c0, c1, end Point) Path {
	p = p.injectMoveIfNeeded()
	out := p.clone()
	e := getEditor(&out.body)
	pts := e.growForVerb(VerbCubic)
	pts[0], pts[1], pts[2] = c0, c1, end
	if !c0.IsFinite() || !c1.IsFinite() || !end.IsFinite() {
		e.setIsFinite(false)
	}
	return out
}

// Close closes the current contour with a line back to its starting Move,
// and marks that contour closed (I4): the next drawing verb will inject a
// fresh Move at the same start point rather than continuing this contour.
func (p Path) Close() Path {
	if p.IsEmpty() || p.lastMoveToIndex < 0 {
		return p
	}
	out := p.clone()
	e := getEditor(&out.body)
	e.body.verbs = append(e.body.verbs, VerbClose)
	out.lastMoveToIndex = ^out.lastMoveToIndex
	return out
}

// recognizeRect reports whether body is a single contour of three or four
// axis-aligned Lines (a Close is optional) forming a rectangle, per
// SkPath::isRect: walk the
// Lines, classify each as one of the four compass directions, and require
// the direction codes to trace a consistent single-turn rotation with no
// repeats.
func recognizeRect(body *pathRef) (rect Rect, dir Direction, start int, ok bool) {
	verbs := body.verbs
	pts := body.points
	// Accept MoveTo + up to 4 LineTo + optional Close, or the 5-point
	// closed form where the last LineTo returns to the start explicitly.
	if len(verbs) < 4 || verbs[0] != VerbMove {
		return Rect{}, DirectionUnknown, 0, false
	}
	lineCount := 0
	for _, v := range verbs[1:] {
		switch v {
		case VerbLine:
			lineCount++
		case VerbClose:
		default:
			return Rect{}, DirectionUnknown, 0, false
		}
	}
	corners := pts
	n := len(corners)
	if lineCount == 4 && n >= 5 && corners[0] == corners[4] {
		corners = corners[:4]
		n = 4
	} else if lineCount != 3 || n != 4 {
		return Rect{}, DirectionUnknown, 0, false
	}
	// direction code: 0=right,1=down,2=left,3=up; each edge must be exactly
	// one of these (axis-aligned) and the sequence must rotate consistently
	// by +1 (CW) or -1 (CCW) mod 4 with no edge repeated.
	codeOf := func(a, b Point) (int, bool) {
		dx, dy := b.X-a.X, b.Y-a.Y
		switch {
		case dx > 0 && dy == 0:
			return 0, true
		case dx == 0 && dy > 0:
			return 1, true
		case dx < 0 && dy == 0:
			return 2, true
		case dx == 0 && dy < 0:
			return 3, true
		default:
			return 0, false
		}
	}
	codes := make([]int, 4)
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		c, good := codeOf(a, b)
		if !good {
			return Rect{}, DirectionUnknown, 0, false
		}
		codes[i] = c
	}
	cwStep := (codes[1]-codes[0]+4)%4 == 1
	ccwStep := (codes[1]-codes[0]+4)%4 == 3
	if !cwStep && !ccwStep {
		return Rect{}, DirectionUnknown, 0, false
	}
	step := 1
	if ccwStep {
		step = 3
	}
	for i := 1; i < 4; i++ {
		if (codes[i]-codes[i-1]+4)%4 != step {
			return Rect{}, DirectionUnknown, 0, false
		}
	}
	r := NewRectFromPoints(corners[0], corners[2])
	d := DirectionClockwise
	if ccwStep {
		d = DirectionCounterClockwise
	}
	start = 0
	for i, c := range rectCorners(r) {
		if c == corners[0] {
			start = i
		}
	}
	return r, d, start, true
}

// roundRectFromHint reconstructs a RoundRect from bounds and the shape
// hint's encoded start index when a body is known (via isRRect) to be an
// untouched addRRect contour. Since the body itself stores only direction
// and start index, not per-corner radii, this derives a simple/oval-style
// RoundRect from the bounds alone; callers that need the exact original
// per-corner radii should retain the RoundRect they built the path from.
func roundRectFromHint(bounds Rect, start int) RoundRect {
	return NewRoundRectOval(bounds)
}

// subdivideCubicQuarters splits a cubic into four cubics of equal parameter
// span via three successive de Casteljau bisections, used to keep a
// perspective-mapped cubic approximation faithful (a plain cubic isn't
// closed under perspective projection).
func subdivideCubicQuarters(p0, p1, p2, p3 Point) [4][4]Point {
	chop := func(a, b, c, d Point) ([4]Point, [4]Point) {
		ab, bc, cd := a.Lerp(b, 0.5), b.Lerp(c, 0.5), c.Lerp(d, 0.5)
		abc, bcd := ab.Lerp(bc, 0.5), bc.Lerp(cd, 0.5)
		m := abc.Lerp(bcd, 0.5)
		return [4]Point{a, ab, abc, m}, [4]Point{m, bcd, cd, d}
	}
	left, right := chop(p0, p1, p2, p3)
	ll, lr := chop(left[0], left[1], left[2], left[3])
	rl, rr := chop(right[0], right[1], right[2], right[3])
	return [4][4]Point{ll, lr, rl, rr}
}
