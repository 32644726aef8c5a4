package geo

import "fmt"

// ErrorKind identifies a class of coordinate failure.
type ErrorKind string

const (
	// KindEmptyInput is an empty string or one without any coordinate segment.
	KindEmptyInput ErrorKind = "empty_input"
	// KindNotAString is an untyped input that is not a string.
	KindNotAString ErrorKind = "not_a_string"
	// KindMalformedPair is a segment that is not exactly "lon,lat".
	KindMalformedPair ErrorKind = "malformed_pair"
	// KindInvalidLongitude is a longitude that is not a number in [-180, 180].
	KindInvalidLongitude ErrorKind = "invalid_longitude"
	// KindInvalidLatitude is a latitude that is not a number in [-90, 90].
	KindInvalidLatitude ErrorKind = "invalid_latitude"
	// KindMalformedDMS is text that does not match D°M'S"X.
	KindMalformedDMS ErrorKind = "malformed_dms"
	// KindPolygonTooSmall is an area or perimeter request with fewer than 3 points.
	KindPolygonTooSmall ErrorKind = "polygon_too_small"
	// KindInvalidArgumentShape is a caller passing the wrong kind or shape of argument.
	KindInvalidArgumentShape ErrorKind = "invalid_argument_shape"
)

// Sentinels for errors.Is. Matching is done by kind only.
var (
	ErrEmptyInput           = &Error{Kind: KindEmptyInput}
	ErrNotAString           = &Error{Kind: KindNotAString}
	ErrMalformedPair        = &Error{Kind: KindMalformedPair}
	ErrInvalidLongitude     = &Error{Kind: KindInvalidLongitude}
	ErrInvalidLatitude      = &Error{Kind: KindInvalidLatitude}
	ErrMalformedDMS         = &Error{Kind: KindMalformedDMS}
	ErrPolygonTooSmall      = &Error{Kind: KindPolygonTooSmall}
	ErrInvalidArgumentShape = &Error{Kind: KindInvalidArgumentShape}
)

// Error is a structured coordinate failure.
// Index and Text are set only when a single segment is at fault.
type Error struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
	Index   *int      `json:"error_index,omitempty" yaml:"error_index,omitempty"`
	Text    string    `json:"error_coordinate,omitempty" yaml:"error_coordinate,omitempty"`
	Value   string    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// segmentError builds an error attributed to the segment at index (0-based).
func segmentError(kind ErrorKind, index int, segment, value, detail string) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf("error in coordinate point %d: %s", index+1, detail),
		Index:   &index,
		Text:    segment,
		Value:   value,
	}
}
