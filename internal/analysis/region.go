package analysis

import "github.com/woozymasta/checkcoord/internal/geo"

// RegionCheck is the report of a point-in-region test.
type RegionCheck struct {
	Inside *bool          `json:"inside,omitempty" yaml:"inside,omitempty"`
	Point  *geo.GeoPoint  `json:"point,omitempty" yaml:"point,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
	Region []geo.GeoPoint `json:"region,omitempty" yaml:"region,omitempty"`
	Valid  bool           `json:"valid" yaml:"valid"`
}

func regionError(msg string) RegionCheck {
	return RegionCheck{Error: msg}
}

// IsPointInRegion validates pointRaw as a spot and regionRaw as a region and
// tests containment with geo.IsPointInPolygon.
func IsPointInRegion(pointRaw, regionRaw string) RegionCheck {
	point := geo.Validate(pointRaw)
	region := geo.Validate(regionRaw)

	if !point.OK() {
		return regionError("invalid point coordinates: " + point.Err.Message)
	}
	if !region.OK() {
		return regionError("invalid region coordinates: " + region.Err.Message)
	}
	if point.Set.Kind() != geo.Spot {
		return regionError("first parameter must be a single point coordinate")
	}
	if region.Set.Kind() != geo.Region {
		return regionError("second parameter must be region coordinates")
	}

	p := point.Set.Point(0)
	inside, err := region.Set.Contains(p)
	if err != nil {
		return regionError(err.Error())
	}

	return RegionCheck{
		Valid:  true,
		Inside: &inside,
		Point:  &p,
		Region: region.Set.Points(),
	}
}
