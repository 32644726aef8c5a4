package geo

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Captures: 1=Degrees, 2=Minutes, 3=Seconds, 4=Direction
var dmsRegex = regexp.MustCompile(`(?i)(\d+)°\s*(\d+)[′']\s*([\d.]+)[″"]\s*([NSEW])`)

// DecimalToDMS formats decimal degrees as D°M'S.SS"X.
// X is E/W for longitudes and N/S for latitudes; zero counts as E/N.
func DecimalToDMS(decimal float64, isLongitude bool) string {
	abs := math.Abs(decimal)
	degrees := math.Floor(abs)
	minutesFloat := (abs - degrees) * 60
	minutes := math.Floor(minutesFloat)
	seconds := math.Round((minutesFloat-minutes)*60*100) / 100

	// Rounding may push seconds to 60.00
	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		degrees++
	}

	var direction string
	switch {
	case isLongitude && decimal >= 0:
		direction = "E"
	case isLongitude:
		direction = "W"
	case decimal >= 0:
		direction = "N"
	default:
		direction = "S"
	}

	return fmt.Sprintf(`%d°%d'%.2f"%s`, int(degrees), int(minutes), seconds, direction)
}

// DMSToDecimal parses D°M'S"X into signed decimal degrees.
// Both ASCII and prime marks are accepted, the direction is case-insensitive.
func DMSToDecimal(text string) (float64, error) {
	match := dmsRegex.FindStringSubmatch(text)
	if match == nil {
		return 0, newError(KindMalformedDMS, "invalid DMS format: %q", text)
	}

	degrees, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, newError(KindMalformedDMS, "invalid DMS degrees %q: %v", match[1], err)
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, newError(KindMalformedDMS, "invalid DMS minutes %q: %v", match[2], err)
	}
	seconds, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0, newError(KindMalformedDMS, "invalid DMS seconds %q: %v", match[3], err)
	}

	decimal := float64(degrees) + float64(minutes)/60 + seconds/3600

	switch strings.ToUpper(match[4]) {
	case "S", "W":
		decimal = -decimal
	}

	return decimal, nil
}

// DMSPair holds the DMS notation of one point.
type DMSPair struct {
	Longitude string `json:"longitude" yaml:"longitude"`
	Latitude  string `json:"latitude" yaml:"latitude"`
}

// ToDMS converts p into its DMS notation.
func (p GeoPoint) ToDMS() DMSPair {
	return DMSPair{
		Longitude: DecimalToDMS(p.Longitude, true),
		Latitude:  DecimalToDMS(p.Latitude, false),
	}
}
