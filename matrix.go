package curve

import "math"

// Matrix is a 3×3 matrix supporting affine and perspective transforms:
//
//	| a c e |
//	| b d f |
//	| g h i |
//
// The bottom row (g, h, i) is the identity row (0, 0, 1) for a pure affine
// transform. Matrix stores no separate perspective flag: HasPerspective
// inspects the bottom row on every query. Perspective changes which code
// paths (point mapping, rect mapping, conic-weight transform) are valid to
// take.
type Matrix struct {
	A, C, E float64
	B, D, F float64
	G, H, I float64
}

// MatrixIdentity is the identity transform.
var MatrixIdentity = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// MatrixFromAffine promotes an affine transform to a (non-perspective)
// Matrix.
func MatrixFromAffine(aff Affine) Matrix {
	return Matrix{
		A: aff.N0, C: aff.N2, E: aff.N4,
		B: aff.N1, D: aff.N3, F: aff.N5,
		G: 0, H: 0, I: 1,
	}
}

// HasPerspective reports whether the bottom row departs from (0, 0, 1).
func (m Matrix) HasPerspective() bool {
	return m.G != 0 || m.H != 0 || m.I != 1
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == MatrixIdentity
}

// IsScaleTranslate reports whether m is a pure scale+translate: the skew
// terms are zero and there is no perspective.
func (m Matrix) IsScaleTranslate() bool {
	return !m.HasPerspective() && m.B == 0 && m.C == 0
}

// Affine returns the affine (non-perspective) part of m, discarding the
// bottom row. Callers must check HasPerspective first if the distinction
// matters.
func (m Matrix) Affine() Affine {
	return Affine{m.A, m.B, m.C, m.D, m.E, m.F}
}

// DeterminantSign returns the sign of the 2×2 linear part's determinant: 1,
// -1, or 0 for a singular transform.
func (m Matrix) DeterminantSign() int {
	det := m.A*m.D - m.B*m.C
	switch {
	case det > 0:
		return 1
	case det < 0:
		return -1
	default:
		return 0
	}
}

// MapPoint maps pt through m, dividing by the homogeneous w coordinate when
// m has perspective.
func (m Matrix) MapPoint(pt Point) Point {
	x := m.A*pt.X + m.C*pt.Y + m.E
	y := m.B*pt.X + m.D*pt.Y + m.F
	if !m.HasPerspective() {
		return Point{X: x, Y: y}
	}
	w := m.G*pt.X + m.H*pt.Y + m.I
	if w == 0 {
		return Point{X: x, Y: y}
	}
	invW := 1.0 / w
	return Point{X: x * invW, Y: y * invW}
}

// MapVector maps a direction vector through the linear part of m (no
// translation, no perspective divide — appropriate for tangents).
func (m Matrix) MapVector(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// RectStaysRect reports whether m maps every axis-aligned rectangle to
// another axis-aligned rectangle: true for scales, translations, and
// 90°-multiple rotations, false otherwise (including any perspective).
func (m Matrix) RectStaysRect() bool {
	if m.HasPerspective() {
		return false
	}
	return (nonZero(m.A) && nonZero(m.D) && m.B == 0 && m.C == 0) ||
		(nonZero(m.B) && nonZero(m.C) && m.A == 0 && m.D == 0)
}

func nonZero(f float64) bool { return f != 0 }

// MapRect maps rect through m and returns the bounding rect of the four
// mapped corners. The result is tight exactly when RectStaysRect is true.
func (m Matrix) MapRect(r Rect) Rect {
	p0 := m.MapPoint(Pt(r.X0, r.Y0))
	p1 := m.MapPoint(Pt(r.X1, r.Y0))
	p2 := m.MapPoint(Pt(r.X1, r.Y1))
	p3 := m.MapPoint(Pt(r.X0, r.Y1))
	out := NewRectFromPoints(p0, p1)
	out = out.UnionPoint(p2)
	out = out.UnionPoint(p3)
	return out
}

// TransformConicWeight returns the new weight of a conic with control points
// p0, p1, p2 and weight w after it (and its control points) are mapped by a
// perspective matrix. Perspective warps the homogeneous weight nonlinearly,
// since the weight is itself a ratio of homogeneous coordinates; this
// follows the same "project, then renormalize" rule Skia's
// SkConic::TransformW applies: compute the pre-image weight in the source's
// homogeneous space, map the three control points' homogeneous (x, y, w)
// triples, and take the ratio that keeps the middle control point's
// influence consistent pre- and post-transform.
func (m Matrix) TransformConicWeight(p0, p1, p2 Point, w float64) float64 {
	if !m.HasPerspective() {
		return w
	}
	homW := func(pt Point) float64 {
		hw := m.G*pt.X + m.H*pt.Y + m.I
		if hw == 0 {
			return 1
		}
		return hw
	}
	w0 := homW(p0)
	w1 := homW(p1)
	w2 := homW(p2)
	if w0 == 0 || w2 == 0 {
		return w
	}
	return w * w1 / math.Sqrt(w0*w2)
}

// Mul computes the matrix product m * o (apply o first, then m).
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B + m.E*o.G,
		C: m.A*o.C + m.C*o.D + m.E*o.H,
		E: m.A*o.E + m.C*o.F + m.E*o.I,
		B: m.B*o.A + m.D*o.B + m.F*o.G,
		D: m.B*o.C + m.D*o.D + m.F*o.H,
		F: m.B*o.E + m.D*o.F + m.F*o.I,
		G: m.G*o.A + m.H*o.B + m.I*o.G,
		H: m.G*o.C + m.H*o.D + m.I*o.H,
		I: m.G*o.E + m.H*o.F + m.I*o.I,
	}
}
