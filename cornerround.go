package curve

import "math"

// CornerRoundEffect replaces every interior corner between adjacent curve
// segments of a contour with a tangent-continuous cubic fillet of the given
// radius, shortening the neighboring curves so the fillet meets them
// smoothly. Grounded on the arc-length-measured BuildCornerCurve algorithm:
// each pair of adjacent segments contributes a tangent half-angle, a
// required tangent distance clamped to half the segments' own lengths, and
// a single cubic arc bridging the trimmed endpoints.
type CornerRoundEffect struct {
	Radius float64
}

// NewCornerRoundEffect returns a CornerRoundEffect with the given radius;
// Apply is a no-op for radius <= 0.
func NewCornerRoundEffect(radius float64) CornerRoundEffect {
	return CornerRoundEffect{Radius: radius}
}

// Apply returns p with its interior corners filleted.
func (e CornerRoundEffect) Apply(p Path) Path {
	if e.Radius <= 0 {
		return p
	}
	b := NewBuilderWithFillRule(p.fill)
	for _, c := range splitContours(p.body) {
		applyCornerRoundContour(b, c, e.Radius)
	}
	return b.Detach()
}

// curveMeasureAccuracy governs both the length measurement used to size
// fillets and the arc-length parameter solves used to trim curve ends; it
// only needs to be tight enough to place a tangent point convincingly, not
// to render the curve.
const curveMeasureAccuracy = 1e-4

// degenerateSegmentTolerance is the minimum start-to-end distance a curve
// segment must span to be kept; shorter ones collapse into a neighboring
// corner and are dropped, matching the legacy corner effect's treatment of
// zero-length edges.
const degenerateSegmentTolerance = 1e-4

// curveSeg is one non-Move, non-Close verb of a contour, addressed by its
// own endpoints rather than into the owning body's arrays, so corner
// rounding can trim and requery it freely.
type curveSeg struct {
	verb       Verb
	p0, p1, p2, p3 Point
	w          float64
}

func lineSeg(a, b Point) curveSeg          { return curveSeg{verb: VerbLine, p0: a, p1: b} }
func quadSeg(p0, p1, p2 Point) curveSeg    { return curveSeg{verb: VerbQuad, p0: p0, p1: p1, p2: p2} }
func conicSeg(p0, p1, p2 Point, w float64) curveSeg {
	return curveSeg{verb: VerbConic, p0: p0, p1: p1, p2: p2, w: w}
}
func cubicSeg(p0, p1, p2, p3 Point) curveSeg {
	return curveSeg{verb: VerbCubic, p0: p0, p1: p1, p2: p2, p3: p3}
}

func (c curveSeg) start() Point { return c.p0 }

func (c curveSeg) end() Point {
	switch c.verb {
	case VerbLine:
		return c.p1
	case VerbQuad, VerbConic:
		return c.p2
	case VerbCubic:
		return c.p3
	default:
		return c.p0
	}
}

func (c curveSeg) tangents() (Vec2, Vec2) {
	switch c.verb {
	case VerbLine:
		t := c.p1.Sub(c.p0)
		return t, t
	case VerbQuad:
		return QuadBez{c.p0, c.p1, c.p2}.Tangents()
	case VerbConic:
		return Conic{c.p0, c.p1, c.p2, c.w}.Tangents()
	case VerbCubic:
		return CubicBez{c.p0, c.p1, c.p2, c.p3}.Tangents()
	default:
		return Vec2{}, Vec2{}
	}
}

func (c curveSeg) length(accuracy float64) float64 {
	switch c.verb {
	case VerbLine:
		return Line{c.p0, c.p1}.Arclen(accuracy)
	case VerbQuad:
		return QuadBez{c.p0, c.p1, c.p2}.Arclen(accuracy)
	case VerbConic:
		return conicArclen(Conic{c.p0, c.p1, c.p2, c.w}, accuracy)
	case VerbCubic:
		return CubicBez{c.p0, c.p1, c.p2, c.p3}.Arclen(accuracy)
	default:
		return 0
	}
}

// paramAtLength returns the curve parameter at which arc length dist is
// reached, measured from the curve's start.
func (c curveSeg) paramAtLength(dist, accuracy float64) float64 {
	switch c.verb {
	case VerbLine:
		return Line{c.p0, c.p1}.Seg().SolveForArclen(dist, accuracy)
	case VerbQuad:
		return QuadBez{c.p0, c.p1, c.p2}.Seg().SolveForArclen(dist, accuracy)
	case VerbConic:
		return conicParamAtLength(Conic{c.p0, c.p1, c.p2, c.w}, dist, accuracy)
	case VerbCubic:
		return CubicBez{c.p0, c.p1, c.p2, c.p3}.Seg().SolveForArclen(dist, accuracy)
	default:
		return 0
	}
}

// subsegment returns the portion of c between parameters t0 and t1, keeping
// the original verb: a trimmed line stays a line, a trimmed conic stays a
// conic with a recomputed weight.
func (c curveSeg) subsegment(t0, t1 float64) curveSeg {
	switch c.verb {
	case VerbLine:
		l := Line{c.p0, c.p1}.Seg().Subsegment(t0, t1).Line()
		return lineSeg(l.P0, l.P1)
	case VerbQuad:
		q := QuadBez{c.p0, c.p1, c.p2}.Seg().Subsegment(t0, t1).Quad()
		return quadSeg(q.P0, q.P1, q.P2)
	case VerbConic:
		sub := Conic{c.p0, c.p1, c.p2, c.w}.Subsegment(t0, t1)
		return conicSeg(sub.P0, sub.P1, sub.P2, sub.W)
	case VerbCubic:
		cb := CubicBez{c.p0, c.p1, c.p2, c.p3}.Seg().Subsegment(t0, t1).Cubic()
		return cubicSeg(cb.P0, cb.P1, cb.P2, cb.P3)
	default:
		return c
	}
}

// appendTo draws c onto b, assuming b's pen is already at c.start().
func (c curveSeg) appendTo(b *Builder) {
	switch c.verb {
	case VerbLine:
		b.LineTo(c.p1)
	case VerbQuad:
		b.QuadTo(c.p1, c.p2)
	case VerbConic:
		b.ConicTo(c.p1, c.p2, c.w)
	case VerbCubic:
		b.CubicTo(c.p1, c.p2, c.p3)
	}
}

// conicQuadSpan is one flattened piece of a conic, tagged with the
// parameter range of the original conic it covers.
type conicQuadSpan struct {
	seg    PathSegment
	t0, t1 float64
}

// conicMeasureDepth flattens a conic into 2^conicMeasureDepth quadratic
// pieces for arc-length measurement purposes, comfortably finer than the
// corner-rounding tolerances need; the exact trim itself is always done on
// the original conic via Conic.Subsegment, not on this approximation.
const conicMeasureDepth = 4

// conicQuadSegments mirrors Conic.ToQuads's recursive chop but retains each
// piece's parameter range, so an arc-length walk over the pieces can be
// mapped back to a parameter on the original conic.
func conicQuadSegments(c Conic, depth int) []conicQuadSpan {
	var out []conicQuadSpan
	var subdivide func(cc Conic, t0, t1 float64, d int)
	subdivide = func(cc Conic, t0, t1 float64, d int) {
		if d == 0 {
			out = append(out, conicQuadSpan{seg: QuadBez{cc.P0, cc.P1, cc.P2}.Seg(), t0: t0, t1: t1})
			return
		}
		left, right := cc.chop()
		mid := (t0 + t1) / 2
		subdivide(left, t0, mid, d-1)
		subdivide(right, mid, t1, d-1)
	}
	subdivide(c, 0, 1, depth)
	return out
}

func conicArclen(c Conic, accuracy float64) float64 {
	total := 0.0
	for _, s := range conicQuadSegments(c, conicMeasureDepth) {
		total += s.seg.Arclen(accuracy)
	}
	return total
}

func conicParamAtLength(c Conic, dist, accuracy float64) float64 {
	if dist <= 0 {
		return 0
	}
	segs := conicQuadSegments(c, conicMeasureDepth)
	remaining := dist
	for i, s := range segs {
		l := s.seg.Arclen(accuracy)
		if remaining <= l || i == len(segs)-1 {
			localT := 0.0
			if l > 0 {
				localT = s.seg.SolveForArclen(remaining, accuracy)
			}
			return s.t0 + localT*(s.t1-s.t0)
		}
		remaining -= l
	}
	return 1
}

// cubicArc is the fillet BuildCornerCurve produces: a single cubic bezier
// from p1 to p2.
type cubicArc struct {
	p1, c1, c2, p2 Point
}

// buildCornerCurve is BuildCornerCurve: it joins startCurve's end to
// endCurve's start with a cubic fillet of radius r, trimming each curve
// back by the tangent distance the fillet requires, clamped to
// min(startLimit, endLimit). ok is false when the two curves already meet
// smoothly (antiparallel tangents) and no fillet is needed or possible; the
// caller then draws the curves unchanged.
func buildCornerCurve(startCurve, endCurve curveSeg, startLimit, endLimit, r float64) (trimmedStart, trimmedEnd curveSeg, arc cubicArc, ok bool) {
	startLen := startCurve.length(curveMeasureAccuracy)
	endLen := endCurve.length(curveMeasureAccuracy)

	_, tanStartEnd := startCurve.tangents()
	tanEndStart, _ := endCurve.tangents()
	if tanStartEnd.Hypot2() == 0 || tanEndStart.Hypot2() == 0 {
		return curveSeg{}, curveSeg{}, cubicArc{}, false
	}
	fwdStart := tanStartEnd.Normalize()
	fwdEnd := tanEndStart.Normalize()

	// Unit tangent of start_curve at its end, reversed, and of end_curve at
	// its start.
	t1 := fwdStart.Negate()
	t2 := fwdEnd
	cosTheta := t1.Dot(t2)
	if cosTheta <= -1+1e-4 {
		// Antiparallel: the curves already continue smoothly through the
		// corner, so no fillet is possible or needed.
		return curveSeg{}, curveSeg{}, cubicArc{}, false
	}
	cosTheta = max(-1, min(1, cosTheta))
	theta := math.Acos(cosTheta)
	half := theta / 2
	sinHalf := math.Sin(half)
	tanHalf := math.Tan(half)
	if math.Abs(sinHalf) < 1e-9 {
		sinHalf = 1e-9
	}
	if math.Abs(tanHalf) < 1e-9 {
		tanHalf = 1e-9
	}

	d := r / tanHalf
	if limit := min(startLimit, endLimit); d > limit {
		d = limit
	}
	if d <= 0 {
		return curveSeg{}, curveSeg{}, cubicArc{}, false
	}

	startT := startCurve.paramAtLength(max(0, startLen-d), curveMeasureAccuracy)
	endT := endCurve.paramAtLength(min(endLen, d), curveMeasureAccuracy)

	trimmedStart = startCurve.subsegment(0, startT)
	trimmedEnd = endCurve.subsegment(endT, 1)

	_, endTan := trimmedStart.tangents()
	startTan, _ := trimmedEnd.tangents()
	endTan = endTan.Normalize()
	startTan = startTan.Normalize()

	p1 := trimmedStart.end()
	p2 := trimmedEnd.start()

	// Cubic handle length approximating a circular arc of radius r spanning
	// half-angle half: h = (4(1-cos(half)))/(3 sin(half)) * r.
	h := (4 * (1 - math.Cos(half))) / (3 * sinHalf) * r

	arc = cubicArc{
		p1: p1,
		c1: p1.Translate(endTan.Mul(h)),
		c2: p2.Translate(startTan.Negate().Mul(h)),
		p2: p2,
	}
	return trimmedStart, trimmedEnd, arc, true
}

// extractCurves splits a contour's raw verb stream into curve segments,
// dropping degenerate (near-zero-length) ones and folding an explicit Close
// edge in as a trailing line when the contour doesn't already end where it
// started.
func extractCurves(c contourSlice) []curveSeg {
	if len(c.points) == 0 {
		return nil
	}
	pts := c.points
	weights := c.weights
	pointIdx := 1
	weightIdx := 0
	cur := pts[0]
	start := pts[0]

	var out []curveSeg
	keep := func(cs curveSeg) {
		if cs.start().Distance(cs.end()) > degenerateSegmentTolerance {
			out = append(out, cs)
		}
	}
	for _, v := range c.verbs {
		switch v {
		case VerbMove:
			continue
		case VerbLine:
			p1 := pts[pointIdx]
			pointIdx++
			keep(lineSeg(cur, p1))
			cur = p1
		case VerbQuad:
			p1, p2 := pts[pointIdx], pts[pointIdx+1]
			pointIdx += 2
			keep(quadSeg(cur, p1, p2))
			cur = p2
		case VerbConic:
			p1, p2 := pts[pointIdx], pts[pointIdx+1]
			w := weights[weightIdx]
			pointIdx += 2
			weightIdx++
			keep(conicSeg(cur, p1, p2, w))
			cur = p2
		case VerbCubic:
			p1, p2, p3 := pts[pointIdx], pts[pointIdx+1], pts[pointIdx+2]
			pointIdx += 3
			keep(cubicSeg(cur, p1, p2, p3))
			cur = p3
		case VerbClose:
			keep(lineSeg(cur, start))
			cur = start
		}
	}
	return out
}

func emitMoveAndCurve(b *Builder, cs curveSeg) {
	b.MoveTo(cs.start())
	cs.appendTo(b)
}

// applyCornerRoundContour implements the per-contour corner-rounding
// algorithm: measure every curve's length once, fillet the wraparound
// corner first for a closed contour, then walk the remaining adjacent
// pairs left to right, each time drawing the (possibly already-trimmed)
// left curve followed by its fillet to the right curve, or the curve
// unchanged when no fillet was possible.
func applyCornerRoundContour(b *Builder, c contourSlice, radius float64) {
	curves := extractCurves(c)
	n := len(curves)
	if n == 0 {
		return
	}
	if n == 1 {
		emitMoveAndCurve(b, curves[0])
		if c.closed {
			b.Close()
		}
		return
	}

	lengths := make([]float64, n)
	for i, cs := range curves {
		lengths[i] = cs.length(curveMeasureAccuracy)
	}

	haveWrap := false
	var wrap cubicArc
	if c.closed {
		trimmedLast, trimmedFirst, arc, ok := buildCornerCurve(
			curves[n-1], curves[0], lengths[n-1]/2, lengths[0]/2, radius)
		if ok {
			curves[n-1] = trimmedLast
			curves[0] = trimmedFirst
			wrap = arc
			haveWrap = true
		}
	}

	if haveWrap {
		b.MoveTo(wrap.p1)
		b.CubicTo(wrap.c1, wrap.c2, wrap.p2)
	} else {
		b.MoveTo(curves[0].start())
	}

	for i := 0; i < n-1; i++ {
		startLimit := lengths[i] / 2
		if !c.closed && i == 0 {
			startLimit = lengths[i]
		}
		endLimit := lengths[i+1] / 2
		if !c.closed && i+1 == n-1 {
			endLimit = lengths[i+1]
		}

		trimmedCur, trimmedNext, arc, ok := buildCornerCurve(curves[i], curves[i+1], startLimit, endLimit, radius)
		if ok {
			trimmedCur.appendTo(b)
			b.CubicTo(arc.c1, arc.c2, arc.p2)
			curves[i+1] = trimmedNext
		} else {
			curves[i].appendTo(b)
		}
	}
	curves[n-1].appendTo(b)

	if c.closed {
		b.Close()
	}
}
