package curve

import "math"

// Verb tags a slice of the path's point stream.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbConic
	VerbCubic
	VerbClose
)

// PointAdvance returns how many points a verb of this kind consumes from the
// point array, not counting the implicit previous-point back-reference.
func (v Verb) PointAdvance() int {
	switch v {
	case VerbMove:
		return 1
	case VerbLine:
		return 1
	case VerbQuad, VerbConic:
		return 2
	case VerbCubic:
		return 3
	case VerbClose:
		return 0
	default:
		return 0
	}
}

// IsCurve reports whether the verb draws geometry (as opposed to Move/Close).
func (v Verb) IsCurve() bool {
	switch v {
	case VerbLine, VerbQuad, VerbConic, VerbCubic:
		return true
	default:
		return false
	}
}

func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "Move"
	case VerbLine:
		return "Line"
	case VerbQuad:
		return "Quad"
	case VerbConic:
		return "Conic"
	case VerbCubic:
		return "Cubic"
	case VerbClose:
		return "Close"
	default:
		return "InvalidVerb"
	}
}

// SegmentMask is a bitset over the curve-drawing verb kinds present in a
// path body.
type SegmentMask uint8

const (
	SegmentMaskLine SegmentMask = 1 << iota
	SegmentMaskQuad
	SegmentMaskConic
	SegmentMaskCubic
)

func maskForVerb(v Verb) SegmentMask {
	switch v {
	case VerbLine:
		return SegmentMaskLine
	case VerbQuad:
		return SegmentMaskQuad
	case VerbConic:
		return SegmentMaskConic
	case VerbCubic:
		return SegmentMaskCubic
	default:
		return 0
	}
}

// FillRule selects how a path's winding number decides interior from
// exterior. The bit layout matches the {winding=0, even-odd=1,
// inverse-winding=2, inverse-even-odd=3} ordering the inverse-toggle XORs
// against.
type FillRule uint8

const (
	FillWinding FillRule = iota
	FillEvenOdd
	FillInverseWinding
	FillInverseEvenOdd
)

// IsInverse reports whether the rule swaps interior and exterior.
func (f FillRule) IsInverse() bool { return f&2 != 0 }

// ToggleInverse flips the inverse bit of f.
func (f FillRule) ToggleInverse() FillRule { return f ^ 2 }

// IsEvenOdd reports whether f uses parity rather than nonzero winding.
func (f FillRule) IsEvenOdd() bool { return f&1 != 0 }

// Direction is a contour's winding direction.
type Direction int8

const (
	DirectionUnknown Direction = iota
	DirectionClockwise
	DirectionCounterClockwise
)

// Convexity caches whether a path's outline turns in one direction only.
type Convexity int8

const (
	ConvexityUnknown Convexity = iota
	ConvexityConvex
	ConvexityConcave
)

// Conic is a rational quadratic Bézier: three control points plus a weight.
// w=1 is exactly a QuadBez; as w→∞ the conic degenerates to two line
// segments meeting at P1.
type Conic struct {
	P0, P1, P2 Point
	W          float64
}

// Eval evaluates the conic at parameter t using the rational quadratic
// form.
func (c Conic) Eval(t float64) Point {
	u := 1 - t
	num := Vec2(c.P0).Mul(u * u).
		Add(Vec2(c.P1).Mul(2 * c.W * u * t)).
		Add(Vec2(c.P2).Mul(t * t))
	den := u*u + 2*c.W*u*t + t*t
	return Point(num.Mul(1 / den))
}

// Tangents returns the tangent vectors at the start and end of the conic:
// the control arms P1-P0 and P2-P1, not normalized. Like QuadBez/CubicBez,
// falls back to the chord when the corresponding arm is degenerate.
func (c Conic) Tangents() (Vec2, Vec2) {
	start := c.P1.Sub(c.P0)
	if start.Hypot2() == 0 {
		start = c.P2.Sub(c.P0)
	}
	end := c.P2.Sub(c.P1)
	if end.Hypot2() == 0 {
		end = c.P2.Sub(c.P0)
	}
	return start, end
}

// chop splits the conic at t=0.5 into two conics that together trace the
// same curve, each carrying the new weight that exact rational subdivision
// produces. This mirrors the standard rational-Bezier de Casteljau split:
// lerp the homogeneous (point*weight, weight) control polygon at t, then
// project back to Cartesian.
func (c Conic) chop() (Conic, Conic) {
	w := c.W
	scale := 1 / (1 + w)
	// p1 scaled into the (P0, wP1, P2) homogeneous control polygon.
	wp1 := Vec2(c.P1).Mul(w)
	p0 := Vec2(c.P0)
	p2 := Vec2(c.P2)

	p1p1Pt := p0.Add(wp1)
	p1p2Pt := wp1.Add(p2)
	midPt := p1p1Pt.Add(p1p2Pt).Mul(0.25)
	midW := (1 + w) * 0.5 // homogeneous weight of the midpoint before normalizing below

	newW := math.Sqrt(0.5 * (1 + w))

	left := Conic{
		P0: c.P0,
		P1: Point(p1p1Pt.Mul(scale)),
		P2: Point(midPt.Mul(1 / midW)),
		W:  newW,
	}
	right := Conic{
		P0: left.P2,
		P1: Point(p1p2Pt.Mul(scale)),
		P2: c.P2,
		W:  newW,
	}
	return left, right
}

// SplitAt splits the conic at parameter t into two conics that together
// trace the same curve, generalizing chop's fixed t=0.5 weighted
// de Casteljau step to an arbitrary split point.
func (c Conic) SplitAt(t float64) (Conic, Conic) {
	w := c.W
	p0 := Vec2(c.P0)
	wp1 := Vec2(c.P1).Mul(w)
	p2 := Vec2(c.P2)

	tmp0Pos := p0.Lerp(wp1, t)
	tmp0W := 1 + t*(w-1)
	tmp1Pos := wp1.Lerp(p2, t)
	tmp1W := w + t*(1-w)
	tmp2Pos := tmp0Pos.Lerp(tmp1Pos, t)
	tmp2W := tmp0W + t*(tmp1W-tmp0W)

	sq := math.Sqrt(tmp2W)
	left := Conic{
		P0: c.P0,
		P1: Point(tmp0Pos.Mul(1 / tmp0W)),
		P2: Point(tmp2Pos.Mul(1 / tmp2W)),
		W:  tmp0W / sq,
	}
	right := Conic{
		P0: left.P2,
		P1: Point(tmp1Pos.Mul(1 / tmp1W)),
		P2: c.P2,
		W:  tmp1W / sq,
	}
	return left, right
}

// Subsegment returns the portion of the conic between parameters t0 and t1
// as a new conic with its own weight, via two SplitAt calls.
func (c Conic) Subsegment(t0, t1 float64) Conic {
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	t0 = max(0, min(1, t0))
	t1 = max(0, min(1, t1))
	cur := c
	if t0 > 0 {
		_, right := cur.SplitAt(t0)
		if t1 < 1 {
			t1 = (t1 - t0) / (1 - t0)
		}
		cur = right
	}
	if t1 < 1 {
		left, _ := cur.SplitAt(t1)
		cur = left
	}
	return cur
}

// ToQuads approximates the conic by up to 2^pow2 quadratic Béziers, writing
// their control points into a flat [p0,p1,p2, p1,p2, p1,p2, ...] buffer the
// way Skia's SkConic::chopIntoQuadsPOW2 does: recursively halve the conic
// pow2 times, and at the leaves treat the (now very flat) conic's own
// control points as an ordinary quad's, discarding the residual weight. The
// first point of the first quad and the implicit shared points between
// quads are included so the result is exactly 2*(2^pow2)+1 points.
func (c Conic) ToQuads(pow2 int) []Point {
	n := 1 << pow2
	pts := make([]Point, 0, 2*n+1)
	pts = append(pts, c.P0)
	var subdivide func(cc Conic, depth int)
	subdivide = func(cc Conic, depth int) {
		if depth == 0 {
			pts = append(pts, cc.P1, cc.P2)
			return
		}
		left, right := cc.chop()
		subdivide(left, depth-1)
		subdivide(right, depth-1)
	}
	subdivide(c, pow2)
	return pts
}

// ConicToQuads is the §6 collaborator contract this module both defines and
// implements: produce up to 2^pow2 quads spanning a conic, for a renderer
// that only knows how to rasterize quads and cubics. It wraps Conic.ToQuads,
// which the package's own ToBezPath lowering calls directly.
func ConicToQuads(p0, p1, p2 Point, w float64, pow2 int) ([]Point, int) {
	pts := Conic{p0, p1, p2, w}.ToQuads(pow2)
	return pts, 1 << pow2
}

// findConicPow2 picks the subdivision depth needed to approximate the conic
// to within tolerance, the same error-driven sizing Arc.PathElements uses
// for its cubic arm count, generalized to conics: each halving roughly
// quarters the chord error, so we take the base-4 log of the ratio between
// the control-polygon deviation and tolerance.
func findConicPow2(p0, p1, p2 Point, w float64, tolerance float64) int {
	if tolerance <= 0 {
		return 3
	}
	// Distance from the control point to the chord approximates the
	// worst-case deviation of the unconverted conic.
	chord := Line{p0, p2}
	distSq, _ := chord.Nearest(p1, 1e-9)
	dev := math.Sqrt(distSq) * math.Abs(w)
	if dev <= tolerance {
		return 0
	}
	pow2 := 0
	for dev > tolerance && pow2 < 5 {
		dev *= 0.25
		pow2++
	}
	return pow2
}
