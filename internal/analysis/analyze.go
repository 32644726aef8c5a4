package analysis

import (
	"github.com/woozymasta/checkcoord/internal/geo"

	"github.com/rs/zerolog/log"
)

// Validate parses raw and reports the result without measurements.
func Validate(raw string) Result {
	return FromOutcome(geo.Validate(raw))
}

// Analyze validates raw and, when valid, adds DMS notation for every point,
// the distance of a line, or the area and perimeter of a region.
func Analyze(raw string) Result {
	out := geo.Validate(raw)
	res := FromOutcome(out)
	if !out.OK() {
		log.Debug().
			Str("input", raw).
			Str("kind", string(out.Err.Kind)).
			Msg("Coordinates rejected")
		return res
	}

	set := out.Set
	res.DMS = make([]geo.DMSPair, 0, set.Len())
	for _, p := range res.Spots {
		res.DMS = append(res.DMS, p.ToDMS())
	}

	switch set.Kind() {
	case geo.Line:
		// kind checked, error is impossible here
		d, _ := set.Length()
		res.Distance = &Measure{Value: d, Formatted: geo.FormatDistance(d)}

	case geo.Region:
		area, _ := set.Area()
		perimeter, _ := set.Perimeter()
		res.Area = &Measure{Value: area, Formatted: geo.FormatArea(area)}
		res.Perimeter = &Measure{Value: perimeter, Formatted: geo.FormatDistance(perimeter)}
	}

	log.Debug().
		Str("type", res.Type).
		Int("points", set.Len()).
		Msg("Coordinates analyzed")

	return res
}
