package internals

import (
	"math"
	"testing"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	if d := Distance(37.4979, 127.0276, 37.4979, 127.0276); d != 0 {
		t.Errorf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	forward := Distance(37.4979, 127.0276, 37.5006, 127.0364)
	backward := Distance(37.5006, 127.0364, 37.4979, 127.0276)
	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", forward, backward)
	}
}

func TestDistanceOneLatitudeDegree(t *testing.T) {
	// one degree of latitude is pi*R/180 meters regardless of longitude
	expected := math.Pi * earthRadiusMeters / 180
	if d := Distance(0, 0, 1, 0); math.Abs(d-expected) > 0.001 {
		t.Errorf("expected %f for one latitude degree, got %f", expected, d)
	}
}

func TestDistanceNonNegative(t *testing.T) {
	points := [][4]float64{
		{37.4979, 127.0276, 37.5006, 127.0364},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 179.9, 0, -179.9},
	}
	for _, p := range points {
		if d := Distance(p[0], p[1], p[2], p[3]); d < 0 {
			t.Errorf("negative distance %f for %v", d, p)
		}
	}
}

func TestDistanceGangnamToYeoksam(t *testing.T) {
	// neighboring subway stops, roughly 840 m apart
	d := Distance(37.4979, 127.0276, 37.5006, 127.0364)
	if d < 700 || d > 1000 {
		t.Errorf("implausible station distance %f", d)
	}
}
