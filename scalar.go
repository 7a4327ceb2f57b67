package curve

import "math"

// Scalar is a 32-bit IEEE-754 float, the argument type of ScalarNearlyEqual
// and ScalarIsFinite below. Path points (Point, Vec2) and all curve math in
// this package are float64; stored points are not narrowed to Scalar.
type Scalar = float32

// defaultNearlyEqual is the default "nearly equal" tolerance for Scalar
// comparisons.
const defaultNearlyEqual = 1.0 / 4096

// ScalarNearlyEqual reports whether a and b are within tol of each other. A
// zero tol selects defaultNearlyEqual.
func ScalarNearlyEqual(a, b Scalar, tol ...Scalar) bool {
	t := Scalar(defaultNearlyEqual)
	if len(tol) > 0 && tol[0] != 0 {
		t = tol[0]
	}
	return math.Abs(float64(a-b)) <= float64(t)
}

// ScalarIsFinite reports whether f is neither NaN nor ±∞.
func ScalarIsFinite(f Scalar) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// PointsAreFinite reports whether every point in pts is finite.
func PointsAreFinite(pts []Point) bool {
	for _, p := range pts {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// IsFinite reports whether both coordinates of pt are finite.
func (pt Point) IsFinite() bool {
	return !pt.IsNaN() && !pt.IsInf()
}

// IsFinite reports whether both components of v are finite.
func (v Vec2) IsFinite() bool {
	return !v.IsNaN() && !v.IsInf()
}
