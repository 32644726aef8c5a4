// Package geo handles geographic data structures, coordinate parsing and
// the measurements derived from them.
package geo

import "fmt"

// Kind classifies a CoordinateSet by its number of points.
type Kind int

const (
	// Spot is a single point.
	Spot Kind = iota + 1
	// Line is exactly two points.
	Line
	// Region is three or more points.
	Region
)

// String returns the lowercase kind name used in reports.
func (k Kind) String() string {
	switch k {
	case Spot:
		return "spot"
	case Line:
		return "line"
	case Region:
		return "region"
	default:
		return "unknown"
	}
}

// kindOf derives the kind from a point count.
func kindOf(n int) Kind {
	switch {
	case n == 1:
		return Spot
	case n == 2:
		return Line
	default:
		return Region
	}
}

// GeoPoint is a WGS84 position in decimal degrees.
type GeoPoint struct {
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
}

// String formats the point back into the "lon,lat" input notation.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%g,%g", p.Longitude, p.Latitude)
}

// CoordinateSet is an immutable ordered sequence of points.
// Its kind always matches its length.
type CoordinateSet struct {
	points []GeoPoint
	kind   Kind
}

// NewCoordinateSet copies points into a new set. At least one point is required.
func NewCoordinateSet(points []GeoPoint) (*CoordinateSet, error) {
	if len(points) == 0 {
		return nil, newError(KindEmptyInput, "coordinate set requires at least one point")
	}

	cp := make([]GeoPoint, len(points))
	copy(cp, points)

	return &CoordinateSet{points: cp, kind: kindOf(len(cp))}, nil
}

// Kind returns the set classification.
func (s *CoordinateSet) Kind() Kind { return s.kind }

// Len returns the number of points.
func (s *CoordinateSet) Len() int { return len(s.points) }

// Point returns the i-th point.
func (s *CoordinateSet) Point(i int) GeoPoint { return s.points[i] }

// Points returns a copy of the points in input order.
func (s *CoordinateSet) Points() []GeoPoint {
	cp := make([]GeoPoint, len(s.points))
	copy(cp, s.points)
	return cp
}

// RegionSpot returns the point count for regions and 0 for other kinds.
func (s *CoordinateSet) RegionSpot() int {
	if s.kind != Region {
		return 0
	}
	return len(s.points)
}

// Bounds returns the minimum and maximum longitude and latitude of the set.
func (s *CoordinateSet) Bounds() (minLon, minLat, maxLon, maxLat float64) {
	minLon, minLat = s.points[0].Longitude, s.points[0].Latitude
	maxLon, maxLat = minLon, minLat

	for _, p := range s.points[1:] {
		minLon = min(minLon, p.Longitude)
		maxLon = max(maxLon, p.Longitude)
		minLat = min(minLat, p.Latitude)
		maxLat = max(maxLat, p.Latitude)
	}

	return minLon, minLat, maxLon, maxLat
}
