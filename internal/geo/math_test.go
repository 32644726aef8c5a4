package geo

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

var unitSquare = []GeoPoint{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b GeoPoint
		want float64
		tol  float64
	}{
		{"one degree along equator", GeoPoint{0, 0}, GeoPoint{1, 0}, 111319, 1000},
		{"one degree along meridian", GeoPoint{0, 0}, GeoPoint{0, 1}, 111195, 1},
		{"same point", GeoPoint{116.39, 39.9}, GeoPoint{116.39, 39.9}, 0, 0},
		{"antipodes", GeoPoint{0, 0}, GeoPoint{180, 0}, math.Pi * EarthRadius, 1e-3},
		{"pole to pole", GeoPoint{0, 90}, GeoPoint{0, -90}, math.Pi * EarthRadius, 1e-3},
		{"beijing short hop", GeoPoint{116.3978146455078, 39.9076393154042}, GeoPoint{116.39652718518064, 39.93344333054544}, 2871, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.a, tc.b)
			if !almostEqual(got, tc.want, tc.tol) {
				t.Errorf("Distance(%v, %v) = %f; want %f ± %f", tc.a, tc.b, got, tc.want, tc.tol)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	points := []GeoPoint{{0, 0}, {-73.98, 40.75}, {151.2, -33.87}, {179.9, 0.1}, {-179.9, -0.1}}

	for _, a := range points {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%v, %v) = %f; want 0", a, a, d)
		}
		for _, b := range points {
			if ab, ba := Distance(a, b), Distance(b, a); ab != ba {
				t.Errorf("Distance not symmetric for %v, %v: %f != %f", a, b, ab, ba)
			}
		}
	}
}

func TestDistanceAcrossDateline(t *testing.T) {
	got := Distance(GeoPoint{179.5, 0}, GeoPoint{-179.5, 0})
	want := Distance(GeoPoint{0, 0}, GeoPoint{1, 0})
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("dateline distance = %f; want %f", got, want)
	}
}

func TestPolygonArea(t *testing.T) {
	area, err := PolygonArea(unitSquare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := (math.Pi / 180) * (math.Pi / 180) * EarthRadius * EarthRadius
	if !almostEqual(area, want, 1) {
		t.Errorf("area = %f; want %f", area, want)
	}
	if area <= 10_000_000_000 {
		t.Errorf("area = %f; want > 1e10", area)
	}

	reversed := []GeoPoint{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	rev, err := PolygonArea(reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(rev, area, 1e-6) {
		t.Errorf("winding changed area: %f != %f", rev, area)
	}
}

func TestPolygonAreaDegenerate(t *testing.T) {
	area, err := PolygonArea([]GeoPoint{{0, 0}, {1, 1}, {2, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if area != 0 {
		t.Errorf("collinear area = %f; want 0", area)
	}
}

func TestPolygonTooSmall(t *testing.T) {
	for _, pts := range [][]GeoPoint{nil, {{0, 0}}, {{0, 0}, {1, 1}}} {
		if _, err := PolygonArea(pts); !errors.Is(err, ErrPolygonTooSmall) {
			t.Errorf("PolygonArea(%v) err = %v; want polygon too small", pts, err)
		}
		if _, err := Perimeter(pts); !errors.Is(err, ErrPolygonTooSmall) {
			t.Errorf("Perimeter(%v) err = %v; want polygon too small", pts, err)
		}
	}
}

func TestPerimeter(t *testing.T) {
	got, err := Perimeter(unitSquare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want float64
	for i := range unitSquare {
		want += Distance(unitSquare[i], unitSquare[(i+1)%len(unitSquare)])
	}
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("perimeter = %f; want %f", got, want)
	}
	if !almostEqual(got, 4*111195, 100) {
		t.Errorf("perimeter = %f; want about %f", got, 4*111195.0)
	}
}

func TestIsPointInPolygon(t *testing.T) {
	concave := []GeoPoint{{0, 0}, {4, 0}, {4, 4}, {2, 2}, {0, 4}}

	cases := []struct {
		name    string
		point   GeoPoint
		polygon []GeoPoint
		want    bool
	}{
		{"center of square", GeoPoint{0.5, 0.5}, unitSquare, true},
		{"outside square", GeoPoint{2, 2}, unitSquare, false},
		{"left of square", GeoPoint{-0.5, 0.5}, unitSquare, false},
		{"left edge", GeoPoint{0, 0.5}, unitSquare, true},
		{"bottom edge", GeoPoint{0.5, 0}, unitSquare, true},
		{"right edge", GeoPoint{1, 0.5}, unitSquare, false},
		{"top edge", GeoPoint{0.5, 1}, unitSquare, false},
		{"concave body", GeoPoint{1, 1}, concave, true},
		{"concave notch", GeoPoint{2, 3}, concave, false},
		{"concave arm", GeoPoint{3.5, 3}, concave, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPointInPolygon(tc.point, tc.polygon); got != tc.want {
				t.Errorf("IsPointInPolygon(%v) = %v; want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestSetMeasurementsRequireKind(t *testing.T) {
	spot := Validate("1,1").Set
	line := Validate("0,0;0,1").Set
	region := Validate("0,0;1,0;1,1;0,1").Set

	if _, err := spot.Length(); !errors.Is(err, ErrInvalidArgumentShape) {
		t.Errorf("spot.Length() err = %v; want invalid argument shape", err)
	}
	if _, err := line.Area(); !errors.Is(err, ErrInvalidArgumentShape) {
		t.Errorf("line.Area() err = %v; want invalid argument shape", err)
	}
	if _, err := line.Perimeter(); !errors.Is(err, ErrInvalidArgumentShape) {
		t.Errorf("line.Perimeter() err = %v; want invalid argument shape", err)
	}
	if _, err := spot.Contains(GeoPoint{}); !errors.Is(err, ErrInvalidArgumentShape) {
		t.Errorf("spot.Contains() err = %v; want invalid argument shape", err)
	}

	if d, err := line.Length(); err != nil || !almostEqual(d, 111195, 1) {
		t.Errorf("line.Length() = %f, %v", d, err)
	}
	if a, err := region.Area(); err != nil || a <= 0 {
		t.Errorf("region.Area() = %f, %v", a, err)
	}
	if p, err := region.Perimeter(); err != nil || p <= 0 {
		t.Errorf("region.Perimeter() = %f, %v", p, err)
	}
	if in, err := region.Contains(GeoPoint{0.5, 0.5}); err != nil || !in {
		t.Errorf("region.Contains() = %v, %v", in, err)
	}
}
