// Package analysis composes validation, measurement and format conversion
// into the reports consumed by the command line.
package analysis

import "github.com/woozymasta/checkcoord/internal/geo"

// Result is the validation report of one coordinate string, optionally
// extended with measurements.
type Result struct {
	Error      *geo.Error     `json:"error,omitempty" yaml:"error,omitempty"`
	Type       string         `json:"type,omitempty" yaml:"type,omitempty"`
	Spots      []geo.GeoPoint `json:"spots,omitempty" yaml:"spots,omitempty"`
	DMS        []geo.DMSPair  `json:"dms,omitempty" yaml:"dms,omitempty"`
	Distance   *Measure       `json:"distance,omitempty" yaml:"distance,omitempty"`
	Area       *Measure       `json:"area,omitempty" yaml:"area,omitempty"`
	Perimeter  *Measure       `json:"perimeter,omitempty" yaml:"perimeter,omitempty"`
	RegionSpot int            `json:"region_spot,omitempty" yaml:"region_spot,omitempty"`
	Valid      bool           `json:"valid" yaml:"valid"`
}

// Measure is a raw value with its human readable rendering.
type Measure struct {
	Formatted string  `json:"formatted" yaml:"formatted"`
	Value     float64 `json:"value" yaml:"value"`
}

// FromOutcome converts a validation outcome into a plain report.
func FromOutcome(out geo.Outcome) Result {
	if !out.OK() {
		return Result{Error: out.Err}
	}

	return Result{
		Valid:      true,
		Type:       out.Set.Kind().String(),
		Spots:      out.Set.Points(),
		RegionSpot: out.Set.RegionSpot(),
	}
}

// Message returns the failure message or an empty string.
func (r Result) Message() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Message
}
