package curve

// RoundRectType classifies a RoundRect by how degenerate its corners are.
type RoundRectType int

const (
	RoundRectEmpty RoundRectType = iota
	RoundRectRectType
	RoundRectOvalType
	RoundRectSimpleType
	RoundRectNinePatchType
	RoundRectComplexType
)

// roundRectCorner indexes RoundRect.radii; order matches the winding order
// addOval/addRRect use: upper-left, upper-right, lower-right, lower-left.
type roundRectCorner int

const (
	cornerUL roundRectCorner = iota
	cornerUR
	cornerLR
	cornerLL
)

// RoundRect is an axis-aligned rectangle with four independent (rx, ry)
// corner radii, classified on construction the way SkRRect classifies
// itself in SkRRect::computeType: empty, a plain rect, an oval, a "simple"
// round-rect (all four corners equal), a "nine-patch" round-rect (radii
// differ only between left/right and top/bottom), or "complex" (every
// corner independent).
type RoundRect struct {
	rect  Rect
	radii [4]Vec2
	kind  RoundRectType
}

// NewRoundRectEmpty returns the canonical empty RoundRect.
func NewRoundRectEmpty() RoundRect {
	return RoundRect{kind: RoundRectEmpty}
}

// NewRoundRectFromRect returns a RoundRect with zero corner radii: a plain
// rectangle, unless rect itself is empty.
func NewRoundRectFromRect(rect Rect) RoundRect {
	return newRoundRect(rect, [4]Vec2{})
}

// NewRoundRectOval returns a RoundRect whose four corner radii each equal
// half of rect's width/height, i.e. an inscribed oval.
func NewRoundRectOval(rect Rect) RoundRect {
	rx := rect.Width() * 0.5
	ry := rect.Height() * 0.5
	radii := [4]Vec2{{rx, ry}, {rx, ry}, {rx, ry}, {rx, ry}}
	return newRoundRect(rect, radii)
}

// NewRoundRectSimple returns a RoundRect with all four corners sharing the
// radius (rx, ry).
func NewRoundRectSimple(rect Rect, rx, ry float64) RoundRect {
	radii := [4]Vec2{{rx, ry}, {rx, ry}, {rx, ry}, {rx, ry}}
	return newRoundRect(rect, radii)
}

// NewRoundRectNinePatch returns a RoundRect whose left/right corners use
// (leftRx, *) / (rightRx, *) and whose top/bottom corners use (*, topRy) /
// (*, bottomRy).
func NewRoundRectNinePatch(rect Rect, leftRx, topRy, rightRx, bottomRy float64) RoundRect {
	radii := [4]Vec2{
		cornerUL: {leftRx, topRy},
		cornerUR: {rightRx, topRy},
		cornerLR: {rightRx, bottomRy},
		cornerLL: {leftRx, bottomRy},
	}
	return newRoundRect(rect, radii)
}

// NewRoundRectComplex returns a RoundRect with four independently specified
// corner radii, ordered upper-left, upper-right, lower-right, lower-left.
func NewRoundRectComplex(rect Rect, ul, ur, lr, ll Vec2) RoundRect {
	return newRoundRect(rect, [4]Vec2{ul, ur, lr, ll})
}

func newRoundRect(rect Rect, radii [4]Vec2) RoundRect {
	rect = rect.Abs()
	if !(rect.X0 < rect.X1 && rect.Y0 < rect.Y1) {
		return NewRoundRectEmpty()
	}
	for i := range radii {
		radii[i].X = max(radii[i].X, 0)
		radii[i].Y = max(radii[i].Y, 0)
	}
	scaleRadii(rect, &radii)
	return RoundRect{rect: rect, radii: radii, kind: classifyRoundRect(rect, radii)}
}

// scaleRadii clamps radii so that, on every side, the two corner radii
// touching that side sum to no more than the side's length, scaling all
// four corners down proportionally by the worst-offending side. This is the
// same algorithm as SkRRect::scaleRadii: compute the overflow ratio on each
// of the four sides independently, then apply the smallest (most
// restrictive) scale to every corner so opposite-corner proportions are
// preserved.
func scaleRadii(rect Rect, radii *[4]Vec2) {
	scale := 1.0

	clampSide := func(side, r0, r1 float64) {
		if side <= 0 {
			return
		}
		sum := r0 + r1
		if sum > side {
			scale = min(scale, side/sum)
		}
	}

	clampSide(rect.Width(), radii[cornerUL].X, radii[cornerUR].X)
	clampSide(rect.Width(), radii[cornerLL].X, radii[cornerLR].X)
	clampSide(rect.Height(), radii[cornerUL].Y, radii[cornerLL].Y)
	clampSide(rect.Height(), radii[cornerUR].Y, radii[cornerLR].Y)

	if scale < 1.0 {
		for i := range radii {
			radii[i].X *= scale
			radii[i].Y *= scale
		}
	}
}

func classifyRoundRect(rect Rect, radii [4]Vec2) RoundRectType {
	allZero := true
	allMatchOval := true
	hw, hh := rect.Width()*0.5, rect.Height()*0.5
	for _, r := range radii {
		if r.X != 0 || r.Y != 0 {
			allZero = false
		}
		if !ScalarNearlyEqual(Scalar(r.X), Scalar(hw)) || !ScalarNearlyEqual(Scalar(r.Y), Scalar(hh)) {
			allMatchOval = false
		}
	}
	if allZero {
		return RoundRectRectType
	}
	if allMatchOval {
		return RoundRectOvalType
	}
	if radii[cornerUL] == radii[cornerUR] && radii[cornerUR] == radii[cornerLR] && radii[cornerLR] == radii[cornerLL] {
		return RoundRectSimpleType
	}
	if radii[cornerUL].X == radii[cornerLL].X && radii[cornerUR].X == radii[cornerLR].X &&
		radii[cornerUL].Y == radii[cornerUR].Y && radii[cornerLL].Y == radii[cornerLR].Y {
		return RoundRectNinePatchType
	}
	return RoundRectComplexType
}

// Type returns the RoundRect's classification.
func (rr RoundRect) Type() RoundRectType { return rr.kind }

// IsEmpty reports whether rr is the empty RoundRect.
func (rr RoundRect) IsEmpty() bool { return rr.kind == RoundRectEmpty }

// Rect returns the RoundRect's bounding rectangle.
func (rr RoundRect) Rect() Rect { return rr.rect }

// Radii returns the (rx, ry) radius pair for the given corner, 0=UL, 1=UR,
// 2=LR, 3=LL.
func (rr RoundRect) Radii(corner int) Vec2 { return rr.radii[corner] }

// SimpleRadii returns the common (rx, ry) pair when Type() is
// RoundRectSimpleType or RoundRectOvalType; it returns the upper-left
// corner's radii in all other cases.
func (rr RoundRect) SimpleRadii() Vec2 { return rr.radii[cornerUL] }
