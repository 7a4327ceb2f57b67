package curve

import "sync/atomic"

// pathRef is the copy-on-write backing store shared by value-copied Path and
// Builder values: the verb stream, the point array (one entry per
// verb-consumed point plus each Move's point; Close consumes none), the
// per-Conic weight array, and metadata cached from a full scan (bounds,
// finiteness, segment mask, oval/round-rect shape hints).
//
// A pathRef is mutated only through a pathEditor, which guarantees unique
// ownership before any in-place write.
type pathRef struct {
	refCount atomic.Int32

	verbs   []Verb
	points  []Point
	weights []float64

	segmentMask SegmentMask

	bounds      Rect
	boundsDirty bool
	isFinite    bool

	genID uint32

	isOval     bool
	isRRect    bool
	shapeCCW    bool
	shapeStart int
}

// emptyPathRef is the process-wide shared empty body used as the default
// and as the backing for Path.Reset. Its reference count is driven
// normally, but because it is always shared (count > 1 in any real
// program), any editor that touches it deep-copies first.
var emptyPathRef = newEmptyPathRef()

func newEmptyPathRef() *pathRef {
	pr := &pathRef{boundsDirty: false, isFinite: true}
	pr.refCount.Store(1)
	return pr
}

func newPathRef() *pathRef {
	pr := &pathRef{boundsDirty: false, isFinite: true}
	pr.refCount.Store(1)
	return pr
}

func (pr *pathRef) retain() *pathRef {
	pr.refCount.Add(1)
	return pr
}

func (pr *pathRef) release() {
	if pr.refCount.Add(-1) == 0 {
		// Nothing to finalize explicitly: the arrays are garbage collected.
		// This branch exists so the lifecycle described in §3 ("when the
		// last owner drops, the body is freed") is visible in the code, not
		// just implied by GC.
	}
}

func (pr *pathRef) clone() *pathRef {
	clone := &pathRef{
		verbs:       append([]Verb(nil), pr.verbs...),
		points:      append([]Point(nil), pr.points...),
		weights:     append([]float64(nil), pr.weights...),
		segmentMask: pr.segmentMask,
		bounds:      pr.bounds,
		boundsDirty: pr.boundsDirty,
		isFinite:    pr.isFinite,
		genID:       pr.genID,
		isOval:      pr.isOval,
		isRRect:     pr.isRRect,
		shapeCCW:     pr.shapeCCW,
		shapeStart:  pr.shapeStart,
	}
	clone.refCount.Store(1)
	return clone
}

// countVerbs/countPoints/countWeights mirror the accessors SkPathRef
// exposes, used by boundary-behavior checks (B1/B2) and I1/I2.
func (pr *pathRef) countVerbs() int   { return len(pr.verbs) }
func (pr *pathRef) countPoints() int  { return len(pr.points) }
func (pr *pathRef) countWeights() int { return len(pr.weights) }

// equalBody reports whether two bodies describe the same verbs, points, and
// weights. A positive, equal generation id short-circuits to true, the same
// optimization SkPathRef::operator== performs.
func equalBody(a, b *pathRef) bool {
	if a == b {
		return true
	}
	if a.genID != 0 && a.genID == b.genID {
		return true
	}
	if a.segmentMask != b.segmentMask {
		return false
	}
	if len(a.verbs) != len(b.verbs) || len(a.points) != len(b.points) || len(a.weights) != len(b.weights) {
		return false
	}
	for i := range a.verbs {
		if a.verbs[i] != b.verbs[i] {
			return false
		}
	}
	for i := range a.points {
		if a.points[i] != b.points[i] {
			return false
		}
	}
	for i := range a.weights {
		if a.weights[i] != b.weights[i] {
			return false
		}
	}
	return true
}

// pathEditor is acquired against an owner slot (a **pathRef). On
// acquisition, if the body isn't uniquely owned it is deep-copied and the
// owner reseated; the editor then marks the body dirty (bounds and shape
// hints are invalidated by any non-append-of-whole-shape edit, per §3) so
// every subsequent read recomputes metadata from scratch.
type pathEditor struct {
	owner **pathRef
	body  *pathRef
}

// getEditor acquires exclusive, mutable access to the body behind slot.
func getEditor(slot **pathRef) *pathEditor {
	body := *slot
	if body.refCount.Load() > 1 {
		clone := body.clone()
		body.release()
		*slot = clone
		body = clone
	}
	body.boundsDirty = true
	body.genID = 0
	return &pathEditor{owner: slot, body: body}
}

// dirtyShapeHints clears the oval/round-rect recognition hints; any edit
// that isn't a pure append of a whole addOval/addRRect/addRect shape must
// call this.
func (e *pathEditor) dirtyShapeHints() {
	e.body.isOval = false
	e.body.isRRect = false
}

// growForVerb appends one verb (and, for Conic, its weight), grows the
// point array by the verb's point advance, and returns the newly appended
// (uninitialized) point slots for the caller to fill in.
func (e *pathEditor) growForVerb(v Verb, weight ...float64) []Point {
	e.body.verbs = append(e.body.verbs, v)
	e.body.segmentMask |= maskForVerb(v)
	n := v.PointAdvance()
	start := len(e.body.points)
	e.body.points = append(e.body.points, make([]Point, n)...)
	if v == VerbConic {
		w := 1.0
		if len(weight) > 0 {
			w = weight[0]
		}
		e.body.weights = append(e.body.weights, w)
	}
	e.dirtyShapeHints()
	return e.body.points[start : start+n]
}

// growForRepeatedVerb appends n consecutive verbs of the same kind (used by
// addPolygon's line run) and returns the combined point slots.
func (e *pathEditor) growForRepeatedVerb(v Verb, n int) []Point {
	adv := v.PointAdvance()
	start := len(e.body.points)
	for range n {
		e.body.verbs = append(e.body.verbs, v)
	}
	e.body.segmentMask |= maskForVerb(v)
	e.body.points = append(e.body.points, make([]Point, n*adv)...)
	e.dirtyShapeHints()
	return e.body.points[start:]
}

// growForVerbsInPath bulk-appends another body's raw verb/point/weight
// streams; the caller (addPath/reverseAddPath) is responsible for any
// needed point transformation and for deciding whether the shape hints
// survive.
func (e *pathEditor) growForVerbsInPath(other *pathRef) ([]Point, []float64) {
	pointStart := len(e.body.points)
	weightStart := len(e.body.weights)
	e.body.verbs = append(e.body.verbs, other.verbs...)
	e.body.points = append(e.body.points, other.points...)
	e.body.weights = append(e.body.weights, other.weights...)
	e.body.segmentMask |= other.segmentMask
	e.dirtyShapeHints()
	return e.body.points[pointStart:], e.body.weights[weightStart:]
}

func (e *pathEditor) setBounds(r Rect) {
	e.body.bounds = r
	e.body.boundsDirty = false
}

func (e *pathEditor) setIsFinite(v bool) { e.body.isFinite = v }

func (e *pathEditor) setIsOval(flag, ccw bool, start int) {
	e.body.isOval = flag
	e.body.isRRect = false
	e.body.shapeCCW = ccw
	e.body.shapeStart = start
}

func (e *pathEditor) setIsRRect(flag, ccw bool, start int) {
	e.body.isRRect = flag
	e.body.isOval = false
	e.body.shapeCCW = ccw
	e.body.shapeStart = start
}

func (e *pathEditor) rewind() {
	e.body.verbs = e.body.verbs[:0]
	e.body.points = e.body.points[:0]
	e.body.weights = e.body.weights[:0]
	e.body.segmentMask = 0
	e.body.bounds = Rect{}
	e.body.boundsDirty = true
	e.body.isFinite = true
	e.dirtyShapeHints()
}

// transformedCopy produces a new body from src under matrix m, following
// §4.1's fast path: when m has no perspective the point array is mapped
// elementwise and the verb/weight streams are copied unchanged; the bounds
// cache is transformed directly (skipping a full recompute) only when src's
// bounds are already clean, m preserves axis-aligned rects, and src has
// more than one point and is finite. When m has perspective the caller must
// re-walk with the contour iterator instead (quads become conics, cubics
// get subdivided) — see Path.Transform.
func transformedCopyAffine(src *pathRef, m Matrix) *pathRef {
	dst := &pathRef{
		verbs:       append([]Verb(nil), src.verbs...),
		weights:     append([]float64(nil), src.weights...),
		points:      make([]Point, len(src.points)),
		segmentMask: src.segmentMask,
		boundsDirty: true,
		isFinite:    src.isFinite,
	}
	dst.refCount.Store(1)
	for i, p := range src.points {
		dst.points[i] = m.MapPoint(p)
	}
	canFastBounds := !src.boundsDirty && m.RectStaysRect() && len(src.points) > 1 && src.isFinite
	if canFastBounds {
		dst.bounds = m.MapRect(src.bounds)
		dst.boundsDirty = false
	}
	if m.RectStaysRect() {
		dst.isOval = src.isOval
		dst.isRRect = src.isRRect
		dst.shapeCCW, dst.shapeStart = transformShapeHint(m, src.shapeCCW, src.shapeStart, src.isRRect)
	}
	return dst
}

// transformShapeHint recomputes an oval/round-rect hint's direction and
// start index after an affine transform, per the §6 orientation table.
func transformShapeHint(m Matrix, ccw bool, start int, isRRect bool) (bool, int) {
	aff := m.Affine()
	antidiag := aff.N0 == 0 && aff.N3 == 0
	var nzTop, nzBottom float64
	if antidiag {
		nzTop, nzBottom = aff.N2, aff.N1
	} else {
		nzTop, nzBottom = aff.N0, aff.N3
	}
	topNeg := nzTop < 0
	sameSign := (nzTop < 0) == (nzBottom < 0)

	inIdx := start
	var newCCW bool
	var ovalStart int
	toInt := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	flag := toInt(topNeg) | toInt(antidiag)
	if sameSign != antidiag {
		// Rotation: direction unchanged.
		newCCW = ccw
		ovalStart = ((inIdx + 4 - flag) % 4 + 4) % 4
	} else {
		// Mirror: direction negated.
		newCCW = !ccw
		ovalStart = ((6 + flag - inIdx) % 4 + 4) % 4
	}
	if !isRRect {
		return newCCW, ovalStart
	}
	var rm int
	if sameSign != antidiag {
		rm = inIdx % 2
	} else {
		rm = 1 - (inIdx % 2)
	}
	return newCCW, 2*ovalStart + rm
}
