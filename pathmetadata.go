package curve

import "math"

// defaultConicTolerance is the chord-deviation tolerance ToBezPath uses when
// it has to approximate a Conic as quads, since the base BezPath
// representation (grounded on the rest of this package) has no Conic verb
// of its own.
const defaultConicTolerance = 0.25

// ToBezPath lowers p into the package's original curve representation
// (BezPath of Line/Quad/Cubic PathElements), approximating every Conic by
// one or more Quads to within tolerance. This is the bridge that lets
// Path reuse BezPath's Winding/Perimeter/Arclen/SignedArea/BoundingBox
// without reimplementing them: stroking and corner-rounding (C7/C8), which
// both need per-segment curve math, also go through this bridge rather than
// duplicating it.
func (p Path) ToBezPath(tolerance float64) BezPath {
	if tolerance <= 0 {
		tolerance = defaultConicTolerance
	}
	var out BezPath
	it := NewRawIter(p)
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		switch item.Verb {
		case VerbMove:
			out.MoveTo(item.P1)
		case VerbLine:
			out.LineTo(item.P1)
		case VerbQuad:
			out.QuadTo(item.P1, item.P2)
		case VerbConic:
			pow2 := findConicPow2(item.P0, item.P1, item.P2, item.W, tolerance)
			quadPts := Conic{item.P0, item.P1, item.P2, item.W}.ToQuads(pow2)
			// quadPts is [p0, c1,e1, c2,e2, ...]; p0 == item.P0 is already
			// the current point, so skip it.
			for i := 1; i+1 < len(quadPts); i += 2 {
				out.QuadTo(quadPts[i], quadPts[i+1])
			}
		case VerbCubic:
			out.CubicTo(item.P1, item.P2, item.P3)
		case VerbClose:
			out.ClosePath()
		}
	}
	return out
}

// Perimeter returns the sum of arc lengths of every contour's boundary,
// delegating to the base package's curve-arclength machinery.
func (p Path) Perimeter(accuracy float64) float64 { return p.ToBezPath(accuracy).Perimeter(accuracy) }

// Arclen is an alias for Perimeter, matching BezPath's naming.
func (p Path) Arclen(accuracy float64) float64 { return p.ToBezPath(accuracy).Arclen(accuracy) }

// SignedArea returns the signed area enclosed by p's contours (positive for
// clockwise in a y-down coordinate system, matching BezPath.SignedArea).
func (p Path) SignedArea() float64 { return p.ToBezPath(defaultConicTolerance).SignedArea() }

// Winding returns the winding number of pt with respect to p's geometry,
// treating every contour as implicitly closed (B3), by delegating to
// BezPath.Winding.
func (p Path) Winding(pt Point) int { return p.ToBezPath(defaultConicTolerance).Winding(pt) }

// Contains reports whether pt is inside p under p's fill rule.
func (p Path) Contains(pt Point) bool {
	w := p.Winding(pt)
	switch p.fill {
	case FillWinding:
		return w != 0
	case FillEvenOdd:
		return w%2 != 0
	case FillInverseWinding:
		return w == 0
	case FillInverseEvenOdd:
		return w%2 == 0
	default:
		return w != 0
	}
}

// Convexity classifies p's outline. The result is recomputed on every call:
// the receiver is a copy, so the value stored in its convexity field is not
// seen by later calls. A path is convex when every point is finite, it has
// at most one contour, and the cross products of consecutive edges of its
// control-point polygon never change sign (zero-length edges and zero cross
// products are skipped). Edge directions are not tracked, so a contour that
// turns one way through more than one full revolution, such as a
// pentagram, is reported convex.
func (p Path) Convexity() Convexity {
	if c := Convexity(p.convexity.Load()); c != ConvexityUnknown {
		return c
	}
	c := computeConvexity(p.body)
	p.convexity.Store(int32(c))
	return c
}

func computeConvexity(body *pathRef) Convexity {
	if !body.isFinite {
		return ConvexityConcave
	}
	contours := splitContours(body)
	if len(contours) == 0 {
		return ConvexityConvex
	}
	if len(contours) > 1 {
		return ConvexityConcave
	}
	if convexicate(contours[0]) {
		return ConvexityConvex
	}
	return ConvexityConcave
}

// convexicate walks one contour's polygonal approximation (curves reduced
// to their control-point chords, which is conservative: a concave control
// polygon can still describe a convex curve set, but Skia's own
// Convexicator makes the identical simplification) and checks that the
// cross product of consecutive edge vectors keeps one sign all the way
// around, wrapping from the last vertex back to the first. Edge directions
// are not tracked, so the number of turns is not counted.
func convexicate(c contourSlice) bool {
	pts := c.points
	n := len(pts)
	if n < 3 {
		return n >= 1
	}
	// Dedup consecutive coincident points (including the closing point if
	// it repeats the start) the way Convexicator ignores zero-length edges.
	uniq := make([]Point, 0, n)
	for _, pt := range pts {
		if len(uniq) == 0 || uniq[len(uniq)-1] != pt {
			uniq = append(uniq, pt)
		}
	}
	if len(uniq) > 1 && uniq[0] == uniq[len(uniq)-1] {
		uniq = uniq[:len(uniq)-1]
	}
	if len(uniq) < 3 {
		return true
	}
	var sign float64
	reversals := 0
	for i := 0; i < len(uniq); i++ {
		a := uniq[i]
		b := uniq[(i+1)%len(uniq)]
		d := uniq[(i+2)%len(uniq)]
		e0 := b.Sub(a)
		e1 := d.Sub(b)
		cross := e0.Cross(e1)
		if cross == 0 {
			continue
		}
		s := 1.0
		if cross < 0 {
			s = -1.0
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			reversals++
			if reversals > 0 {
				return false
			}
			sign = s
		}
	}
	return true
}

// FirstDirection returns the winding direction of whichever contour
// contains p's highest (smallest Y) point, as Skia's
// SkPathPriv::CalcFirstDirection does when several contours are present:
// the sign of the cross product of the two edges meeting at that contour's
// topmost point decides. Contours whose topmost point gives a zero cross
// product are skipped, and among contours whose topmost points tie the
// first one wins. Like Convexity, the result is recomputed on every call.
func (p Path) FirstDirection() Direction {
	if d := Direction(p.firstDirection.Load()); d != DirectionUnknown {
		return d
	}
	d := computeFirstDirection(p.body)
	p.firstDirection.Store(int32(d))
	return d
}

func computeFirstDirection(body *pathRef) Direction {
	contours := splitContours(body)
	if len(contours) == 0 {
		return DirectionUnknown
	}
	bestY := math.Inf(1)
	var bestDir Direction = DirectionUnknown
	for _, c := range contours {
		pts := c.points
		n := len(pts)
		if n < 3 {
			continue
		}
		topIdx := 0
		for i, pt := range pts {
			if pt.Y < pts[topIdx].Y {
				topIdx = i
			}
		}
		if pts[topIdx].Y > bestY {
			continue
		}
		prev := pts[(topIdx-1+n)%n]
		next := pts[(topIdx+1)%n]
		cross := pts[topIdx].Sub(prev).Cross(next.Sub(pts[topIdx]))
		if cross == 0 {
			continue
		}
		dir := DirectionClockwise
		if cross < 0 {
			dir = DirectionCounterClockwise
		}
		if pts[topIdx].Y < bestY {
			bestY = pts[topIdx].Y
			bestDir = dir
		}
	}
	return bestDir
}
