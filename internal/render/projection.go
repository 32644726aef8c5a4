package render

import "github.com/woozymasta/checkcoord/internal/geo"

// vec is a point in image space.
type vec struct {
	X, Y float32
}

// project maps every point of the set into a Size x Size canvas, keeping the
// aspect ratio of longitude/latitude and centering the shape inside the padding.
// North is up.
func project(set *geo.CoordinateSet, size, padding int) []vec {
	minLon, minLat, maxLon, maxLat := set.Bounds()
	dx, dy := maxLon-minLon, maxLat-minLat

	span := max(dx, dy)
	if span == 0 {
		span = 1
	}

	inner := float64(size - 2*padding)
	scale := inner / span
	offX := float64(padding) + (inner-dx*scale)/2
	offY := float64(padding) + (inner-dy*scale)/2

	out := make([]vec, 0, set.Len())
	for _, p := range set.Points() {
		x := offX + (p.Longitude-minLon)*scale
		y := float64(size) - (offY + (p.Latitude-minLat)*scale)
		out = append(out, vec{X: float32(x), Y: float32(y)})
	}

	return out
}
