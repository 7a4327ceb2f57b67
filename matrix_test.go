package curve

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	if !MatrixIdentity.IsIdentity() {
		t.Error("expected MatrixIdentity.IsIdentity() to be true")
	}
	if MatrixIdentity.HasPerspective() {
		t.Error("expected identity matrix not to have perspective")
	}
	pt := Pt(3, 4)
	if got := MatrixIdentity.MapPoint(pt); got != pt {
		t.Errorf("got %v, want %v", got, pt)
	}
}

func TestMatrixFromAffine(t *testing.T) {
	aff := Affine{2, 0, 0, 3, 5, 7}
	m := MatrixFromAffine(aff)
	if m.HasPerspective() {
		t.Error("expected an affine-derived matrix not to have perspective")
	}
	diff(t, aff, m.Affine())

	want := Pt(2*1+5, 3*1+7)
	if got := m.MapPoint(Pt(1, 1)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrixIsScaleTranslate(t *testing.T) {
	m := MatrixFromAffine(Affine{2, 0, 0, 3, 1, 1})
	if !m.IsScaleTranslate() {
		t.Error("expected a scale+translate matrix to report IsScaleTranslate")
	}
	rot := MatrixFromAffine(Affine{0, 1, -1, 0, 0, 0})
	if rot.IsScaleTranslate() {
		t.Error("expected a rotation matrix not to report IsScaleTranslate")
	}
}

func TestMatrixRectStaysRect(t *testing.T) {
	scale := MatrixFromAffine(Affine{2, 0, 0, 3, 0, 0})
	if !scale.RectStaysRect() {
		t.Error("expected a pure scale to keep rects as rects")
	}
	rot90 := MatrixFromAffine(Affine{0, 1, -1, 0, 0, 0})
	if !rot90.RectStaysRect() {
		t.Error("expected a 90-degree rotation to keep rects as rects")
	}
	shear := MatrixFromAffine(Affine{1, 1, 0, 1, 0, 0})
	if shear.RectStaysRect() {
		t.Error("expected a shear not to keep rects as rects")
	}
	persp := Matrix{A: 1, D: 1, I: 1, G: 0.001}
	if persp.RectStaysRect() {
		t.Error("expected a perspective matrix never to keep rects as rects")
	}
}

func TestMatrixMapRect(t *testing.T) {
	m := MatrixFromAffine(Affine{2, 0, 0, 2, 1, 1})
	r := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	want := Rect{X0: 1, Y0: 1, X1: 21, Y1: 21}
	diff(t, want, m.MapRect(r))
}

func TestMatrixDeterminantSign(t *testing.T) {
	if s := MatrixIdentity.DeterminantSign(); s != 1 {
		t.Errorf("got %v, want 1", s)
	}
	flip := MatrixFromAffine(Affine{-1, 0, 0, 1, 0, 0})
	if s := flip.DeterminantSign(); s != -1 {
		t.Errorf("got %v, want -1", s)
	}
	singular := MatrixFromAffine(Affine{0, 0, 0, 0, 0, 0})
	if s := singular.DeterminantSign(); s != 0 {
		t.Errorf("got %v, want 0", s)
	}
}

func TestMatrixMapPointPerspective(t *testing.T) {
	m := Matrix{A: 1, D: 1, I: 1, G: 1}
	// w = g*x + h*y + i = x + 1
	pt := Pt(1, 2)
	got := m.MapPoint(pt)
	want := Pt(1.0/2, 2.0/2)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrixTransformConicWeightNoPerspective(t *testing.T) {
	m := MatrixFromAffine(Affine{2, 0, 0, 2, 0, 0})
	w := m.TransformConicWeight(Pt(0, 0), Pt(1, 0), Pt(2, 0), 0.7)
	if w != 0.7 {
		t.Errorf("got %v, want unchanged weight 0.7 for a non-perspective matrix", w)
	}
}

func TestMatrixMul(t *testing.T) {
	scale := MatrixFromAffine(Affine{2, 0, 0, 2, 0, 0})
	translate := MatrixFromAffine(Affine{1, 0, 0, 1, 3, 4})
	combined := scale.Mul(translate)
	got := combined.MapPoint(Pt(1, 1))
	want := Pt(2*(1+3), 2*(1+4))
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
