package curve

// RawIter walks a Path's verb stream directly, one verb at a time,
// back-referencing the previous point as a curve's implicit start (the way
// the point array stores it: a Line/Quad/Conic/Cubic's first control point
// is never duplicated, it's just "the last point already emitted"). Unlike
// ContourIter, it does not force-close or auto-inject closing Lines.
type RawIter struct {
	verbs   []Verb
	points  []Point
	weights []float64

	verbIdx   int
	pointIdx  int
	weightIdx int

	movePt Point
	lastPt Point
}

// NewRawIter returns an iterator over p's raw verb stream.
func NewRawIter(p Path) *RawIter {
	return &RawIter{verbs: p.body.verbs, points: p.body.points, weights: p.body.weights}
}

// RawIterItem is one step of RawIter/ContourIter: a verb and the points it
// touches (P0 is the previous point, present for every curve-drawing verb;
// P1..P3 are however many the verb consumes).
type RawIterItem struct {
	Verb Verb
	P0   Point
	P1   Point
	P2   Point
	P3   Point
	W    float64
}

// Next advances the iterator, returning false once the verb stream is
// exhausted.
func (it *RawIter) Next() (RawIterItem, bool) {
	if it.verbIdx >= len(it.verbs) {
		return RawIterItem{}, false
	}
	v := it.verbs[it.verbIdx]
	it.verbIdx++
	item := RawIterItem{Verb: v, P0: it.lastPt}
	switch v {
	case VerbMove:
		item.P1 = it.points[it.pointIdx]
		it.movePt = item.P1
		it.lastPt = item.P1
		it.pointIdx++
	case VerbLine:
		item.P1 = it.points[it.pointIdx]
		it.lastPt = item.P1
		it.pointIdx++
	case VerbQuad:
		item.P1, item.P2 = it.points[it.pointIdx], it.points[it.pointIdx+1]
		it.lastPt = item.P2
		it.pointIdx += 2
	case VerbConic:
		item.P1, item.P2 = it.points[it.pointIdx], it.points[it.pointIdx+1]
		item.W = it.weights[it.weightIdx]
		it.lastPt = item.P2
		it.pointIdx += 2
		it.weightIdx++
	case VerbCubic:
		item.P1, item.P2, item.P3 = it.points[it.pointIdx], it.points[it.pointIdx+1], it.points[it.pointIdx+2]
		it.lastPt = item.P3
		it.pointIdx += 3
	case VerbClose:
		item.P1 = it.movePt
		it.lastPt = it.movePt
	}
	return item, true
}

// ContourIter wraps RawIter with an auto-close step modelled on Skia's
// SkPath::Iter forceClose mode: when forceClose is set and the path's final
// contour ends away from its start without a Close, Next emits a synthetic
// closing Line (state contourIterEmittedCloseLine) and then a Close. An open
// contour followed by another Move is returned as recorded, and Close verbs
// pass through unchanged; repeated Closes are not merged.
type ContourIter struct {
	raw        RawIter
	forceClose bool

	state contourIterState

	pendingClose bool
	needMove     bool

	contourStart Point
	lastPt       Point
}

type contourIterState int

const (
	contourIterStart contourIterState = iota
	contourIterInContour
	contourIterEmittedCloseLine
	contourIterDone
)

// NewContourIter returns a contour iterator over p. When forceClose is true,
// the path's last contour, if it ends away from its start without a Close,
// gets a synthetic closing Line followed by a Close; earlier open contours
// are not closed (B3).
func NewContourIter(p Path, forceClose bool) *ContourIter {
	return &ContourIter{raw: *NewRawIter(p), forceClose: forceClose, state: contourIterStart, needMove: true}
}

// Next advances the contour iterator.
func (it *ContourIter) Next() (RawIterItem, bool) {
	if it.pendingClose {
		it.pendingClose = false
		it.state = contourIterInContour
		item := RawIterItem{Verb: VerbClose, P0: it.lastPt, P1: it.contourStart}
		it.lastPt = it.contourStart
		return item, true
	}
	item, ok := it.raw.Next()
	if !ok {
		if it.state == contourIterInContour && it.forceClose && it.lastPt != it.contourStart {
			it.state = contourIterEmittedCloseLine
			closing := RawIterItem{Verb: VerbLine, P0: it.lastPt, P1: it.contourStart}
			it.pendingClose = true
			it.lastPt = it.contourStart
			return closing, true
		}
		it.state = contourIterDone
		return RawIterItem{}, false
	}
	switch item.Verb {
	case VerbMove:
		it.contourStart = item.P1
		it.lastPt = item.P1
		it.state = contourIterInContour
	case VerbClose:
		it.contourStart = item.P1
		it.lastPt = item.P1
		it.state = contourIterStart
	default:
		it.lastPt = it.endPointOf(item)
		it.state = contourIterInContour
	}
	return item, true
}

func (it *ContourIter) endPointOf(item RawIterItem) Point {
	switch item.Verb {
	case VerbLine:
		return item.P1
	case VerbQuad, VerbConic:
		return item.P2
	case VerbCubic:
		return item.P3
	default:
		return item.P0
	}
}

// isCloseLine reports whether item is a synthetic closing Line produced by
// forceClose (as opposed to a Line the path itself drew back to its start).
func isCloseLine(it *ContourIter) bool {
	return it.state == contourIterEmittedCloseLine
}
