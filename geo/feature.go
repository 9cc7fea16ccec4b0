package geo

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// NewFeature wraps a geometry in a GeoJSON Feature.
func NewFeature(g Geometry, properties map[string]interface{}) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   g,
		Properties: properties,
	}
}
