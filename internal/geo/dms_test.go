package geo

import (
	"errors"
	"strings"
	"testing"
)

func TestDecimalToDMS(t *testing.T) {
	cases := []struct {
		name        string
		decimal     float64
		isLongitude bool
		want        string
	}{
		{"beijing longitude", 116.3978146455078, true, `116°23'52.13"E`},
		{"western longitude", -73.5, true, `73°30'0.00"W`},
		{"northern latitude", 39.9076393154042, false, `39°54'27.50"N`},
		{"southern latitude", -33.8688, false, `33°52'7.68"S`},
		{"zero longitude", 0, true, `0°0'0.00"E`},
		{"zero latitude", 0, false, `0°0'0.00"N`},
		{"seconds carry", 10.999999999, false, `11°0'0.00"N`},
		{"antimeridian", -180, true, `180°0'0.00"W`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecimalToDMS(tc.decimal, tc.isLongitude); got != tc.want {
				t.Errorf("DecimalToDMS(%v, %v) = %q; want %q", tc.decimal, tc.isLongitude, got, tc.want)
			}
		})
	}
}

func TestDMSToDecimal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{"ascii marks", `116°23'52.13"E`, 116.397814},
		{"prime marks", `116°23′52.13″E`, 116.397814},
		{"western", `73°30'0"W`, -73.5},
		{"southern lowercase", `33°52'7.68"s`, -33.8688},
		{"spaces between parts", `45° 15' 30" N`, 45.258333},
		{"embedded in text", `lat: 10°0'36"N`, 10.01},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DMSToDecimal(tc.input)
			if err != nil {
				t.Fatalf("DMSToDecimal(%q) unexpected error: %v", tc.input, err)
			}
			if !almostEqual(got, tc.want, 1e-6) {
				t.Errorf("DMSToDecimal(%q) = %f; want %f", tc.input, got, tc.want)
			}
		})
	}
}

func TestDMSToDecimalMalformed(t *testing.T) {
	for _, input := range []string{"", "116.39", `116°23'52.13"`, `116°23'52.13"Q`, `116 23 52 E`, `1°2'3.4.5"N`} {
		t.Run(input, func(t *testing.T) {
			_, err := DMSToDecimal(input)
			if !errors.Is(err, ErrMalformedDMS) {
				t.Fatalf("DMSToDecimal(%q) err = %v; want malformed DMS", input, err)
			}
		})
	}
}

func TestDMSRoundTrip(t *testing.T) {
	for x := -180.0; x <= 180; x += 0.731 {
		for _, isLon := range []bool{true, false} {
			text := DecimalToDMS(x, isLon)
			got, err := DMSToDecimal(text)
			if err != nil {
				t.Fatalf("round trip of %v failed: %v", x, err)
			}
			if !almostEqual(got, x, 1e-4) {
				t.Errorf("round trip %v -> %q -> %v", x, text, got)
			}
			if strings.Contains(text, `60.00"`) {
				t.Errorf("DecimalToDMS(%v) = %q has 60 seconds", x, text)
			}
		}
	}
}

func TestGeoPointToDMS(t *testing.T) {
	pair := GeoPoint{Longitude: -0.1276, Latitude: 51.5072}.ToDMS()
	if !strings.HasSuffix(pair.Longitude, "W") {
		t.Errorf("longitude %q; want W suffix", pair.Longitude)
	}
	if !strings.HasSuffix(pair.Latitude, "N") {
		t.Errorf("latitude %q; want N suffix", pair.Latitude)
	}
}
