package curve

import "testing"

func TestPathStrokerRectFastPath(t *testing.T) {
	rect := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	p := NewBuilder().AddRect(rect, DirectionClockwise, 0).Snapshot()
	s := NewPathStroker(2)
	s.Stroke.Join = MiterJoin
	outline := s.StrokeToFill(p)

	if outline.FillRule() != FillWinding {
		t.Errorf("got fill rule %v, want FillWinding", outline.FillRule())
	}
	want := Rect{X0: -1, Y0: -1, X1: 11, Y1: 11}
	diff(t, want, outline.Bounds())
	// Outer ring (width 12) plus the hole left by the inner ring should
	// still cover the center of the stroke band, but not the rect's own
	// interior.
	if !outline.Contains(Pt(0, 5)) {
		t.Error("expected a point on the stroke centerline to be contained in the outline")
	}
	if outline.Contains(Pt(5, 5)) {
		t.Error("expected the rect's interior (not on the stroked band) not to be contained")
	}
}

func TestPathStrokerRectFastPathDegenerateInner(t *testing.T) {
	// A stroke width that consumes the whole rect must omit the inner ring
	// rather than emit a degenerate/flipped rectangle.
	rect := Rect{X0: 0, Y0: 0, X1: 4, Y1: 4}
	p := NewBuilder().AddRect(rect, DirectionClockwise, 0).Snapshot()
	s := NewPathStroker(10)
	s.Stroke.Join = MiterJoin
	outline := s.StrokeToFill(p)
	if n := outline.CountVerbs(); n != 5 {
		t.Errorf("got %d verbs, want 5 (single outer rect: Move + 3 Line + Close)", n)
	}
}

func TestPathStrokerLineProducesFillablePath(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	s := NewPathStroker(2)
	outline := s.StrokeToFill(p)
	if outline.IsEmpty() {
		t.Fatal("expected stroking a line to produce a nonempty outline")
	}
	if !outline.Contains(Pt(5, 0)) {
		t.Error("expected a point on the stroked line's centerline to be inside the outline")
	}
	if outline.Contains(Pt(5, 5)) {
		t.Error("expected a point far from the stroked line not to be inside the outline")
	}
}

func TestPathStrokerToleranceDefault(t *testing.T) {
	s := &PathStroker{Stroke: DefaultStroke.WithWidth(1)}
	if got := s.tolerance(); got != 0.1 {
		t.Errorf("got default tolerance %v, want 0.1", got)
	}
}

func TestPathStrokerZeroWidthIsEmpty(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	s := NewPathStroker(0)
	if !s.StrokeToFill(p).IsEmpty() {
		t.Error("expected a width-0 stroke to produce an empty path")
	}
	s.Stroke.Width = -1
	if !s.StrokeToFill(p).IsEmpty() {
		t.Error("expected a negative-width stroke to produce an empty path")
	}
}

func TestPathStrokerZeroWidthRectFastPathIsEmpty(t *testing.T) {
	rect := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	p := NewBuilder().AddRect(rect, DirectionClockwise, 0).Snapshot()
	s := NewPathStroker(0)
	if !s.StrokeToFill(p).IsEmpty() {
		t.Error("expected a width-0 rect stroke to produce an empty path, not the unstroked fast path")
	}
}

func TestPathStrokerRectFastPathBevelJoin(t *testing.T) {
	rect := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	p := NewBuilder().AddRect(rect, DirectionClockwise, 0).Snapshot()
	s := NewPathStroker(2)
	s.Stroke.Join = BevelJoin
	outline := s.StrokeToFill(p)
	if outline.IsEmpty() {
		t.Fatal("expected a bevel-joined rect stroke not to be empty")
	}
	// A bevelled corner is cut back from the sharp outer corner.
	if outline.Contains(Pt(-0.99, -0.99)) {
		t.Error("expected the bevelled outer corner to be cut back from the sharp corner point")
	}
	if !outline.Contains(Pt(0, 5)) {
		t.Error("expected the stroked band's centerline to remain contained")
	}
}

func TestPathStrokerRectFastPathRoundJoin(t *testing.T) {
	rect := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	p := NewBuilder().AddRect(rect, DirectionClockwise, 0).Snapshot()
	s := NewPathStroker(2)
	s.Stroke.Join = RoundJoin
	outline := s.StrokeToFill(p)
	if outline.IsEmpty() {
		t.Fatal("expected a round-joined rect stroke not to be empty")
	}
	if outline.Contains(Pt(-0.99, -0.99)) {
		t.Error("expected the rounded outer corner to be cut back from the sharp corner point")
	}
}

func TestPathStrokerStrokeToFillMultiCyclesParams(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0)).LineTo(Pt(10, 10))
	s := NewPathStroker(2)
	params := []StrokeParams{
		{Join: MiterJoin, MiterLimit: 4, StartCap: ButtCap, EndCap: ButtCap},
		{Join: RoundJoin, MiterLimit: 4, StartCap: RoundCap, EndCap: RoundCap},
	}
	outline := s.StrokeToFillMulti(p, params, false)
	if outline.IsEmpty() {
		t.Fatal("expected the multi-param stroke to produce a nonempty outline")
	}
}

func TestPathStrokerStrokeToFillMultiEmptyParamsIsEmpty(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	s := NewPathStroker(2)
	if !s.StrokeToFillMulti(p, nil, false).IsEmpty() {
		t.Error("expected an empty params sequence to produce an empty path")
	}
}

func TestPathStrokerStrokeToFillMultiDoFillUnionsOriginal(t *testing.T) {
	rect := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	p := NewBuilder().AddRect(rect, DirectionClockwise, 0).Snapshot()
	// StrokeToFillMulti always takes the general cubic-offset path, never
	// the rect fast path, since the cycling params have no fast-path
	// equivalent.
	s := NewPathStroker(2)
	params := []StrokeParams{{Join: MiterJoin, MiterLimit: 4, StartCap: ButtCap, EndCap: ButtCap}}
	outline := s.StrokeToFillMulti(p, params, true)
	if outline.IsEmpty() {
		t.Fatal("expected doFill to produce a nonempty outline")
	}
	// With doFill, the rect's own interior (not just the stroked band)
	// must be part of the result.
	if !outline.Contains(Pt(5, 5)) {
		t.Error("expected doFill to union the original fill into the stroked outline")
	}
}
