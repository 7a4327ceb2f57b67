package curve

import "testing"

func TestSplitPathByLengthChunksCoverWholeLength(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	pieces := SplitPathByLength(p, 4, 1e-6)
	if len(pieces) != 3 {
		t.Fatalf("got %d pieces, want 3 for a length-10 line split every 4 units", len(pieces))
	}
	total := 0.0
	for _, piece := range pieces {
		total += piece.Arclen(1e-6)
	}
	if total < 9.999 || total > 10.001 {
		t.Errorf("got total length %v across pieces, want approximately 10", total)
	}
}

func TestSplitPathByLengthNonPositiveIsNoop(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(10, 0))
	pieces := SplitPathByLength(p, 0, 1e-6)
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1 (unsplit) for a non-positive segment length", len(pieces))
	}
	diff(t, p.Bounds(), pieces[0].Bounds())
}

func TestSplitPathIntoNProducesNPieces(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(9, 0))
	pieces := SplitPathIntoN(p, 3, 1e-6)
	if len(pieces) != 3 {
		t.Fatalf("got %d pieces, want 3", len(pieces))
	}
	for i, piece := range pieces {
		if l := piece.Arclen(1e-6); l < 2.9 || l > 3.1 {
			t.Errorf("piece %d: got length %v, want approximately 3", i, l)
		}
	}
}

func TestSplitPathIntoNWithNAtMostOneIsNoop(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(9, 0))
	pieces := SplitPathIntoN(p, 1, 1e-6)
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1 for n<=1", len(pieces))
	}
}
