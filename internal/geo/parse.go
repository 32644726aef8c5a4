package geo

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// MaxLongitude is the absolute longitude limit in degrees, inclusive.
	MaxLongitude = 180.0
	// MaxLatitude is the absolute latitude limit in degrees, inclusive.
	MaxLatitude = 90.0
)

// Signed decimal number with optional fractional part, e.g. "-116.39", "+5", "90"
var numberRegex = regexp.MustCompile(`^[-+]?\d+(\.\d+)?$`)

// Outcome is the result of validating a coordinate string.
// Exactly one of Set and Err is non-nil.
type Outcome struct {
	Set *CoordinateSet
	Err *Error
}

// OK reports whether validation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Set != nil
}

func failed(err *Error) Outcome {
	return Outcome{Err: err}
}

// Validate parses raw text of the form "lon,lat;lon,lat;..." into a CoordinateSet.
//
// All whitespace is removed before parsing and empty segments (e.g. from a
// trailing ";") are dropped. Validation stops at the first invalid segment.
func Validate(raw string) Outcome {
	if raw == "" {
		return failed(newError(KindEmptyInput, "at least one parameter is required"))
	}

	segments := splitSegments(raw)
	if len(segments) == 0 {
		return failed(newError(KindEmptyInput, "no valid coordinate data found"))
	}

	points := make([]GeoPoint, 0, len(segments))
	for i, seg := range segments {
		p, err := parsePair(i, seg)
		if err != nil {
			return failed(err)
		}
		points = append(points, p)
	}

	return Outcome{Set: &CoordinateSet{points: points, kind: kindOf(len(points))}}
}

// ValidateValue validates an untyped value, e.g. one element of a decoded JSON payload.
func ValidateValue(v any) Outcome {
	switch s := v.(type) {
	case nil:
		return failed(newError(KindEmptyInput, "at least one parameter is required"))
	case string:
		return Validate(s)
	default:
		return failed(newError(KindNotAString, "parameter should be of type string, got %T", v))
	}
}

// splitSegments strips whitespace and splits on ";" skipping empty segments.
func splitSegments(raw string) []string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	parts := strings.Split(clean, ";")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}

	return segments
}

func parsePair(index int, segment string) (GeoPoint, *Error) {
	parts := strings.Split(segment, ",")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return GeoPoint{}, segmentError(KindMalformedPair, index, segment, "",
			`invalid coordinate format, should be "longitude,latitude"`)
	}

	lonText, latText := parts[0], parts[1]

	lon, ok := parseDegrees(lonText, MaxLongitude)
	if !ok {
		return GeoPoint{}, segmentError(KindInvalidLongitude, index, segment, lonText,
			"invalid longitude "+lonText+", should be between -180 and 180")
	}

	lat, ok := parseDegrees(latText, MaxLatitude)
	if !ok {
		return GeoPoint{}, segmentError(KindInvalidLatitude, index, segment, latText,
			"invalid latitude "+latText+", should be between -90 and 90")
	}

	return GeoPoint{Longitude: lon, Latitude: lat}, nil
}

// parseDegrees parses a signed decimal and checks it lies in [-limit, limit].
func parseDegrees(text string, limit float64) (float64, bool) {
	if !numberRegex.MatchString(text) {
		return 0, false
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}

	if v < -limit || v > limit {
		return 0, false
	}

	return v, true
}
