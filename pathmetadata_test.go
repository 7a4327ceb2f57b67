package curve

import (
	"math"
	"testing"
)

func TestConvexityEmptyPathIsConvex(t *testing.T) {
	if c := NewPath().Convexity(); c != ConvexityConvex {
		t.Errorf("got %v, want ConvexityConvex for an empty path", c)
	}
}

func TestConvexityNonFiniteIsConcave(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(math.Inf(1), 0))
	if c := p.Convexity(); c != ConvexityConcave {
		t.Errorf("got %v, want ConvexityConcave for a path containing an infinite point", c)
	}
}

func TestToBezPathPreservesLines(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1)).Close()
	bp := p.ToBezPath(0.01)
	if len(bp) != 4 {
		t.Fatalf("got %d elements, want 4 (Move, Line, Line, Close)", len(bp))
	}
	if bp[1].Kind != LineToKind || bp[2].Kind != LineToKind {
		t.Errorf("got kinds %v, %v, want LineToKind twice", bp[1].Kind, bp[2].Kind)
	}
}

func TestToBezPathApproximatesConicWithQuads(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).ConicTo(Pt(1, 1), Pt(2, 0), 0.7071)
	bp := p.ToBezPath(0.01)
	if len(bp) < 2 {
		t.Fatalf("got %d elements, want at least Move + 1 Quad", len(bp))
	}
	for _, el := range bp[1:] {
		if el.Kind != QuadToKind {
			t.Errorf("got element kind %v, want QuadToKind for every conic-derived segment", el.Kind)
		}
	}
	// The approximation's endpoint must match the conic's endpoint exactly.
	last := bp[len(bp)-1]
	diff(t, Pt(2, 0), last.P1)
}

func TestArclenMatchesPerimeterViaBridge(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(3, 0)).LineTo(Pt(3, 4)).Close()
	if got, want := p.Arclen(1e-6), p.Perimeter(1e-6); got != want {
		t.Errorf("got Arclen %v, Perimeter %v, want them equal (Arclen is an alias)", got, want)
	}
}

func TestWindingNumberRectangle(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0)).LineTo(Pt(10, 10)).LineTo(Pt(0, 10)).Close()
	if w := p.Winding(Pt(5, 5)); w != 1 {
		t.Errorf("got winding %v, want 1 inside a clockwise rect", w)
	}
	if w := p.Winding(Pt(-5, -5)); w != 0 {
		t.Errorf("got winding %v, want 0 outside the rect", w)
	}
}

func TestEvenOddFillOnOverlappingRects(t *testing.T) {
	b := NewBuilderWithFillRule(FillEvenOdd)
	b.AddRect(Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}, DirectionClockwise, 0)
	b.AddRect(Rect{X0: 5, Y0: 5, X1: 15, Y1: 15}, DirectionClockwise, 0)
	p := b.Snapshot()
	if !p.Contains(Pt(2, 2)) {
		t.Error("expected a point in only the first rect to be contained under even-odd")
	}
	if p.Contains(Pt(7, 7)) {
		t.Error("expected a point in both overlapping rects to be excluded under even-odd (parity cancels)")
	}
}
