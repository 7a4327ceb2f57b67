package curve

import "iter"

// PathStroker expands a Path's centerline into a fillable outline Path. It
// adapts the package's existing StrokePath machinery (parallel-curve
// offsetting via CubicOffset, mitered/round/bevel joins, butt/round/square
// caps, all already built and tested against PathElement sequences) to
// this package's COW Path/Builder types, rather than re-deriving an
// inner/outer-wall stroker from first principles: StrokePath already is
// this component's algorithm, just expressed over iter.Seq[PathElement].
//
// The one case handled specially is an axis-aligned rectangle stroked with
// a plain (undashed) style: strokeRectFastPath builds the two nested
// rectangles directly, skipping cubic-offset machinery entirely, matching
// the fast path SkStroke reserves for rects, while still honoring the
// stroke's join for the outer (and inner) rect's corners.
type PathStroker struct {
	Stroke    Stroke
	Opts      StrokeOpts
	Tolerance float64

	// Simplify, when true, runs the source path through Simplify before
	// offsetting it, curve-fitting away redundant control points at
	// SimplifyAccuracy (falling back to Tolerance when zero). Worthwhile
	// for paths built up from many short, nearly-collinear pieces (traced
	// ink strokes, flattened higher-order input), where cutting the
	// control-point count down first measurably cuts the cost of the
	// per-segment cubic-offset work that follows.
	Simplify         bool
	SimplifyAccuracy float64
}

// NewPathStroker returns a PathStroker with the given width and the
// package's DefaultStroke join/cap/miter settings.
func NewPathStroker(width float64) *PathStroker {
	return &PathStroker{Stroke: DefaultStroke.WithWidth(width), Tolerance: 0.1}
}

func (s *PathStroker) tolerance() float64 {
	if s.Tolerance > 0 {
		return s.Tolerance
	}
	return 0.1
}

// StrokeToFill returns the fillable outline of p under s's style. The
// result always uses the nonzero winding fill rule: a stroke's inner and
// outer walls are wound so every point inside the stroked band has winding
// number exactly ±1 (and 0 outside), which is what nonzero winding was
// designed for. A width of zero or less degenerates to an empty path.
func (s *PathStroker) StrokeToFill(p Path) Path {
	if s.Stroke.Width <= 0 {
		return NewPath()
	}
	if rect, dir, _, ok := p.IsRect(); ok && len(s.Stroke.DashPattern) == 0 {
		return strokeRectFastPath(rect, dir, s.Stroke)
	}
	elements := StrokePath(s.sourceElements(p), s.Stroke, s.Opts, s.tolerance())
	return pathFromElements(elements, FillWinding)
}

// sourceElements lowers p to a PathElement sequence, running it through
// Simplify first when s.Simplify is set.
func (s *PathStroker) sourceElements(p Path) iter.Seq[PathElement] {
	bp := p.ToBezPath(s.tolerance())
	elements := bp.PathElements(0)
	if s.Simplify {
		accuracy := s.SimplifyAccuracy
		if accuracy <= 0 {
			accuracy = s.tolerance()
		}
		elements = Simplify(elements, accuracy, DefaultSimplifyOptions)
	}
	return elements
}

// StrokeToFillMulti is the multi-param stroke variant: params is a
// non-empty sequence of (join, miterLimit, startCap, endCap) tuples cycled
// per verb (each non-move segment and each Close advances the cycle).
// Width, resolution scale and doFill remain path-wide, taken from s and the
// doFill argument: when doFill is true the original path (or its reverse,
// when it winds counter-clockwise) is appended to the stroked outline so
// the stroke and the original fill combine into one nonzero-winding
// region. A width of zero or less, or an empty params, degenerates to an
// empty path.
func (s *PathStroker) StrokeToFillMulti(p Path, params []StrokeParams, doFill bool) Path {
	if s.Stroke.Width <= 0 || len(params) == 0 {
		return NewPath()
	}
	elements := StrokePathMulti(s.sourceElements(p), s.Stroke, params, s.Opts, s.tolerance())
	out := pathFromElements(elements, FillWinding)
	if doFill {
		out = unionWithOriginal(out, p)
	}
	return out
}

// unionWithOriginal appends src onto outline (reversing src first if it
// winds counter-clockwise) so the combined nonzero-winding fill covers both
// the stroked band and the original shape's own interior.
func unionWithOriginal(outline, src Path) Path {
	b := NewBuilderWithFillRule(FillWinding)
	b.AddPath(outline, Vec2{})
	if src.FirstDirection() == DirectionCounterClockwise {
		b.ReverseAddPath(src)
	} else {
		b.AddPath(src, Vec2{})
	}
	return b.Detach()
}

// strokeRectFastPath builds the outline of a stroked axis-aligned rect as
// two nested, oppositely-wound rectangles (outer grown by half the stroke
// width, inner shrunk by half the stroke width, omitted entirely if the
// stroke width would consume the whole rect), matching SkStroker's
// rect-specialized path. Each rect's corners are shaped per style.Join:
// sharp for miter, chamfered for bevel, rounded for round.
func strokeRectFastPath(rect Rect, dir Direction, style Stroke) Path {
	half := style.Width * 0.5
	outer := rect.Inflate(half, half)
	inner := rect.Inflate(-half, -half)

	b := NewBuilder()
	addShapedRect(b, outer, dir, style.Join, half)
	if inner.Width() > 0 && inner.Height() > 0 {
		innerDir := DirectionCounterClockwise
		if dir == DirectionCounterClockwise {
			innerDir = DirectionClockwise
		}
		addShapedRect(b, inner, innerDir, style.Join, half)
	}
	return b.FillRule(FillWinding).Snapshot()
}

// addShapedRect appends rect as a closed contour whose corners are shaped
// per join: sharp for miter, chamfered for bevel, rounded for round, each
// cut back from the corner by at most half the stroke width.
func addShapedRect(b *Builder, rect Rect, dir Direction, join Join, half float64) {
	cut := min(half, rect.Width()/2, rect.Height()/2)
	switch {
	case join == RoundJoin && cut > 0:
		b.AddRRect(NewRoundRectSimple(rect, cut, cut), dir, 0)
	case join == BevelJoin && cut > 0:
		pts := bevelledRectPoints(rect, cut)
		if dir == DirectionCounterClockwise {
			reversePoints(pts)
		}
		b.AddPolygon(pts, true)
	default:
		b.AddRect(rect, dir, 0)
	}
}

// bevelledRectPoints returns rect's eight corner-chamfer points in
// clockwise order starting just right of the top-left corner, each corner
// cut back by cut along both incident edges.
func bevelledRectPoints(rect Rect, cut float64) []Point {
	return []Point{
		Pt(rect.MinX()+cut, rect.MinY()),
		Pt(rect.MaxX()-cut, rect.MinY()),
		Pt(rect.MaxX(), rect.MinY()+cut),
		Pt(rect.MaxX(), rect.MaxY()-cut),
		Pt(rect.MaxX()-cut, rect.MaxY()),
		Pt(rect.MinX()+cut, rect.MaxY()),
		Pt(rect.MinX(), rect.MaxY()-cut),
		Pt(rect.MinX(), rect.MinY()+cut),
	}
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// pathFromElements collects a PathElement sequence (as produced by
// StrokePath/Dash) into a Path with the given fill rule.
func pathFromElements(elements iter.Seq[PathElement], fill FillRule) Path {
	b := NewBuilderWithFillRule(fill)
	for el := range elements {
		switch el.Kind {
		case MoveToKind:
			b.MoveTo(el.P0)
		case LineToKind:
			b.LineTo(el.P0)
		case QuadToKind:
			b.QuadTo(el.P0, el.P1)
		case CubicToKind:
			b.CubicTo(el.P0, el.P1, el.P2)
		case ClosePathKind:
			b.Close()
		}
	}
	return b.Snapshot()
}
