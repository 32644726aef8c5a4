package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
// Coordinates is a position, a list of positions or a list of rings
// depending on Type (Point, LineString, Polygon).
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// NewFeatureCollection wraps features into a FeatureCollection.
func NewFeatureCollection(features ...GeoJSONFeature) GeoJSONFeatureCollection {
	if features == nil {
		features = []GeoJSONFeature{}
	}
	return GeoJSONFeatureCollection{Type: "FeatureCollection", Features: features}
}

// FeatureFromSet converts a set into a Point, LineString or Polygon feature.
// Polygon rings are closed by repeating the first position.
func FeatureFromSet(s *CoordinateSet) GeoJSONFeature {
	positions := make([][]float64, 0, len(s.points)+1)
	for _, p := range s.points {
		positions = append(positions, []float64{p.Longitude, p.Latitude}) // [Lon, Lat]
	}

	var geometry GeoJSONGeometry
	switch s.kind {
	case Spot:
		geometry = GeoJSONGeometry{Type: "Point", Coordinates: positions[0]}
	case Line:
		geometry = GeoJSONGeometry{Type: "LineString", Coordinates: positions}
	default:
		ring := append(positions, positions[0])
		geometry = GeoJSONGeometry{Type: "Polygon", Coordinates: [][][]float64{ring}}
	}

	return GeoJSONFeature{
		Type:     "Feature",
		Geometry: geometry,
		Properties: map[string]interface{}{
			"type":   s.kind.String(),
			"points": len(s.points),
		},
	}
}
