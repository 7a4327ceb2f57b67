package curve

import (
	"math"
	"testing"
)

func TestVerbPointAdvance(t *testing.T) {
	cases := []struct {
		v    Verb
		want int
	}{
		{VerbMove, 1},
		{VerbLine, 1},
		{VerbQuad, 2},
		{VerbConic, 2},
		{VerbCubic, 3},
		{VerbClose, 0},
	}
	for _, c := range cases {
		if got := c.v.PointAdvance(); got != c.want {
			t.Errorf("%v.PointAdvance() = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestVerbIsCurve(t *testing.T) {
	curves := []Verb{VerbLine, VerbQuad, VerbConic, VerbCubic}
	for _, v := range curves {
		if !v.IsCurve() {
			t.Errorf("expected %v.IsCurve() to be true", v)
		}
	}
	noncurves := []Verb{VerbMove, VerbClose}
	for _, v := range noncurves {
		if v.IsCurve() {
			t.Errorf("expected %v.IsCurve() to be false", v)
		}
	}
}

func TestFillRuleBits(t *testing.T) {
	if FillWinding.IsInverse() || FillWinding.IsEvenOdd() {
		t.Error("expected FillWinding to be neither inverse nor even-odd")
	}
	if !FillEvenOdd.IsEvenOdd() {
		t.Error("expected FillEvenOdd.IsEvenOdd() to be true")
	}
	if !FillInverseWinding.IsInverse() {
		t.Error("expected FillInverseWinding.IsInverse() to be true")
	}
	if !FillInverseEvenOdd.IsInverse() || !FillInverseEvenOdd.IsEvenOdd() {
		t.Error("expected FillInverseEvenOdd to be both inverse and even-odd")
	}
	if FillWinding.ToggleInverse() != FillInverseWinding {
		t.Errorf("got %v, want FillInverseWinding", FillWinding.ToggleInverse())
	}
	if FillEvenOdd.ToggleInverse().ToggleInverse() != FillEvenOdd {
		t.Error("expected ToggleInverse to be its own inverse")
	}
}

func TestConicEvalEndpoints(t *testing.T) {
	c := Conic{Pt(0, 0), Pt(1, 1), Pt(2, 0), 0.5}
	diff(t, c.P0, c.Eval(0))
	diff(t, c.P2, c.Eval(1))
}

func TestConicEvalWeightOneMatchesQuad(t *testing.T) {
	c := Conic{Pt(0, 0), Pt(1, 2), Pt(2, 0), 1}
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := c.Eval(tt)
		want := q.Eval(tt)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("t=%v: got %v, want %v", tt, got, want)
		}
	}
}

func TestConicTangents(t *testing.T) {
	c := Conic{Pt(0, 0), Pt(1, 0), Pt(1, 1), 0.7}
	start, end := c.Tangents()
	if start.Hypot2() == 0 {
		t.Error("expected a nonzero start tangent")
	}
	if end.Hypot2() == 0 {
		t.Error("expected a nonzero end tangent")
	}
}

func TestConicChopContinuity(t *testing.T) {
	c := Conic{Pt(0, 0), Pt(2, 2), Pt(4, 0), 0.6}
	left, right := c.chop()
	diff(t, c.P0, left.P0)
	diff(t, c.P2, right.P2)
	if left.P2 != right.P0 {
		t.Errorf("chop halves don't meet: left.P2=%v, right.P0=%v", left.P2, right.P0)
	}
	mid := c.Eval(0.5)
	got := left.Eval(1)
	if math.Abs(got.X-mid.X) > 1e-9 || math.Abs(got.Y-mid.Y) > 1e-9 {
		t.Errorf("chop midpoint %v doesn't match original curve's midpoint %v", got, mid)
	}
}

func TestConicToQuadsEndpoints(t *testing.T) {
	c := Conic{Pt(0, 0), Pt(5, 5), Pt(10, 0), 0.8}
	for pow2 := 0; pow2 <= 3; pow2++ {
		pts := c.ToQuads(pow2)
		wantLen := 2*(1<<pow2) + 1
		if len(pts) != wantLen {
			t.Errorf("pow2=%d: got %d points, want %d", pow2, len(pts), wantLen)
		}
		diff(t, c.P0, pts[0])
		diff(t, c.P2, pts[len(pts)-1])
	}
}

func TestFindConicPow2ZeroToleranceIsSafe(t *testing.T) {
	pow2 := findConicPow2(Pt(0, 0), Pt(1, 1), Pt(2, 0), 0.5, 0)
	if pow2 < 0 {
		t.Errorf("got negative pow2 %d for a zero tolerance", pow2)
	}
}

func TestFindConicPow2FlatConicNeedsNoSubdivision(t *testing.T) {
	// A conic whose control point lies on the chord has zero deviation
	// regardless of weight, so it should need no subdivision at all.
	pow2 := findConicPow2(Pt(0, 0), Pt(5, 0), Pt(10, 0), 0.9, 0.01)
	if pow2 != 0 {
		t.Errorf("got pow2 %d for a flat conic, want 0", pow2)
	}
}
