package curve

import "testing"

func TestArcLengthMeasureLengthOfLShape(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(3, 0)).LineTo(Pt(3, 4))
	m := NewArcLengthMeasure(p, 1e-6)
	if got := m.Length(); got < 6.999 || got > 7.001 {
		t.Errorf("got length %v, want approximately 7", got)
	}
}

func TestArcLengthMeasurePosTanAtEndpoints(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	m := NewArcLengthMeasure(p, 1e-6)

	pt, tan := m.PosTan(0)
	diff(t, Pt(0, 0), pt)
	if tan.X <= 0 {
		t.Errorf("got tangent %v at the start, want a positive-X direction", tan)
	}

	pt, _ = m.PosTan(m.Length())
	diff(t, Pt(10, 0), pt)
}

func TestArcLengthMeasurePosTanMidpoint(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	m := NewArcLengthMeasure(p, 1e-6)
	pt, _ := m.PosTan(5)
	diff(t, Pt(5, 0), pt)
}

func TestArcLengthMeasureSegmentExtractsSubpath(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	m := NewArcLengthMeasure(p, 1e-6)
	sub := m.Segment(2, 8, true)
	if sub.IsEmpty() {
		t.Fatal("expected a nonempty sub-path")
	}
	subLen := sub.Arclen(1e-6)
	if subLen < 5.999 || subLen > 6.001 {
		t.Errorf("got sub-path length %v, want approximately 6", subLen)
	}
}

func TestArcLengthMeasureSegmentClampsRange(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	m := NewArcLengthMeasure(p, 1e-6)
	sub := m.Segment(-5, 1000, true)
	got := sub.Arclen(1e-6)
	if got < m.Length()-0.01 || got > m.Length()+0.01 {
		t.Errorf("got length %v, want the full path length %v when the range is out of bounds", got, m.Length())
	}
}
