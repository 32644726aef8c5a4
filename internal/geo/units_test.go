package geo

import "testing"

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		meters float64
		want   string
	}{
		{0, "0.00 meters"},
		{999.994, "999.99 meters"},
		{1000, "1.00 km"},
		{2871.37, "2.87 km"},
		{1500000, "1.50 thousand km"},
	}

	for _, tc := range cases {
		if got := FormatDistance(tc.meters); got != tc.want {
			t.Errorf("FormatDistance(%v) = %q; want %q", tc.meters, got, tc.want)
		}
	}
}

func TestFormatArea(t *testing.T) {
	cases := []struct {
		squareMeters float64
		want         string
	}{
		{25.5, "25.50 sq meters"},
		{10000, "1.00 hectares"},
		{250000, "25.00 hectares"},
		{12364000000, "12364.00 sq km"},
	}

	for _, tc := range cases {
		if got := FormatArea(tc.squareMeters); got != tc.want {
			t.Errorf("FormatArea(%v) = %q; want %q", tc.squareMeters, got, tc.want)
		}
	}
}
