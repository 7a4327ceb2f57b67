package curve

import (
	"math"
	"testing"
)

func TestScalarNearlyEqual(t *testing.T) {
	if !ScalarNearlyEqual(1.0, 1.0) {
		t.Error("expected identical scalars to be nearly equal")
	}
	if !ScalarNearlyEqual(1.0, 1.0+defaultNearlyEqual/2) {
		t.Error("expected scalars within the default tolerance to be nearly equal")
	}
	if ScalarNearlyEqual(1.0, 1.1) {
		t.Error("expected distant scalars not to be nearly equal")
	}
	if !ScalarNearlyEqual(1.0, 1.5, 1.0) {
		t.Error("expected an explicit tolerance to override the default")
	}
}

func TestScalarIsFinite(t *testing.T) {
	if !ScalarIsFinite(1.0) {
		t.Error("expected 1.0 to be finite")
	}
	if ScalarIsFinite(Scalar(math.NaN())) {
		t.Error("expected NaN not to be finite")
	}
	if ScalarIsFinite(Scalar(math.Inf(1))) {
		t.Error("expected +Inf not to be finite")
	}
}

func TestPointsAreFinite(t *testing.T) {
	if !PointsAreFinite([]Point{Pt(0, 0), Pt(1, 1)}) {
		t.Error("expected finite points to be reported as finite")
	}
	if PointsAreFinite([]Point{Pt(0, 0), Pt(math.NaN(), 1)}) {
		t.Error("expected a NaN point to make the slice non-finite")
	}
	if !PointsAreFinite(nil) {
		t.Error("expected an empty slice to be finite")
	}
}

func TestPointVecIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("expected finite point to report finite")
	}
	if Pt(math.Inf(1), 0).IsFinite() {
		t.Error("expected infinite point not to report finite")
	}
	if !Vec(1, 2).IsFinite() {
		t.Error("expected finite vector to report finite")
	}
	if Vec(math.NaN(), 0).IsFinite() {
		t.Error("expected NaN vector not to report finite")
	}
}
