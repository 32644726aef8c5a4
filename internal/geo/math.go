package geo

import "math"

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in meters between a and b
// using the Haversine formula.
func Distance(a, b GeoPoint) float64 {
	lat1, lat2 := toRad(a.Latitude), toRad(b.Latitude)
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	h = math.Min(h, 1)

	return EarthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Perimeter returns the length in meters of the closed ring through points.
func Perimeter(points []GeoPoint) (float64, error) {
	if len(points) < 3 {
		return 0, newError(KindPolygonTooSmall, "polygon requires at least 3 points, got %d", len(points))
	}

	var total float64
	for i := range points {
		total += Distance(points[i], points[(i+1)%len(points)])
	}

	return total, nil
}

// PolygonArea returns the area in square meters of the ring through points.
//
// The Shoelace formula is applied to longitude/latitude in radians and scaled
// by EarthRadius². This is a flat-earth approximation, only meaningful for
// regions that are small compared to the Earth. Winding order is irrelevant.
func PolygonArea(points []GeoPoint) (float64, error) {
	if len(points) < 3 {
		return 0, newError(KindPolygonTooSmall, "polygon requires at least 3 points, got %d", len(points))
	}

	var area float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := toRad(points[i].Longitude), toRad(points[i].Latitude)
		xj, yj := toRad(points[j].Longitude), toRad(points[j].Latitude)

		area += xi*yj - xj*yi
	}

	return math.Abs(area) / 2 * EarthRadius * EarthRadius, nil
}

// IsPointInPolygon reports whether p lies inside polygon using ray casting
// on planar (longitude, latitude). The polygon is implicitly closed.
//
// Points on an edge or vertex follow the half-open crossing rule: an edge
// counts when exactly one of its ends lies strictly above p, and the
// crossing must be strictly to the right of p. Points on the left or bottom
// edges of an axis-aligned box therefore test inside, points on the right or
// top edges test outside.
func IsPointInPolygon(p GeoPoint, polygon []GeoPoint) bool {
	inside := false
	x, y := p.Longitude, p.Latitude

	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		xi, yi := polygon[i].Longitude, polygon[i].Latitude
		xj, yj := polygon[j].Longitude, polygon[j].Latitude

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}

// Length returns the distance between the two points of a Line.
func (s *CoordinateSet) Length() (float64, error) {
	if s.kind != Line {
		return 0, newError(KindInvalidArgumentShape, "length requires a line, got %s", s.kind)
	}
	return Distance(s.points[0], s.points[1]), nil
}

// Area returns the approximate area of a Region. See PolygonArea.
func (s *CoordinateSet) Area() (float64, error) {
	if s.kind != Region {
		return 0, newError(KindInvalidArgumentShape, "area requires a region, got %s", s.kind)
	}
	return PolygonArea(s.points)
}

// Perimeter returns the closed ring length of a Region.
func (s *CoordinateSet) Perimeter() (float64, error) {
	if s.kind != Region {
		return 0, newError(KindInvalidArgumentShape, "perimeter requires a region, got %s", s.kind)
	}
	return Perimeter(s.points)
}

// Contains reports whether p lies inside a Region. See IsPointInPolygon.
func (s *CoordinateSet) Contains(p GeoPoint) (bool, error) {
	if s.kind != Region {
		return false, newError(KindInvalidArgumentShape, "containment requires a region, got %s", s.kind)
	}
	return IsPointInPolygon(p, s.points), nil
}
