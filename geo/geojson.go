// Package geo implements a small subset of GeoJSON geometry construction
// and validation, plus bounding-box helpers for 2dsphere radius queries.
//
// For the supported GeoJSON types within MongoDB see:
// https://docs.mongodb.com/manual/reference/geojson/
package geo

import "errors"

// ErrInvalidGeometry is returned by factories and boundary functions when
// their input does not pass the corresponding validator.
var ErrInvalidGeometry = errors.New("invalid geometry")

// GeometryType is a GeoJSON geometry type label.
type GeometryType string

const (
	TypePoint           GeometryType = "Point"
	TypeLineString      GeometryType = "LineString"
	TypePolygon         GeometryType = "Polygon"
	TypeMultiPoint      GeometryType = "MultiPoint"
	TypeMultiLineString GeometryType = "MultiLineString"
	TypeMultiPolygon    GeometryType = "MultiPolygon"
)

// GeometryTypes lists every recognized geometry type, Point first.
// The order matters: the first entry is the default type for schema fields.
var GeometryTypes = []GeometryType{
	TypePoint,
	TypeLineString,
	TypePolygon,
	TypeMultiPoint,
	TypeMultiLineString,
	TypeMultiPolygon,
}

// Geometry is a GeoJSON geometry object. The shape of Coordinates depends on
// Type: []float64 for Point, [][]float64 for LineString and [][][][]float64
// for Polygon (a single ring, wrapped twice).
type Geometry struct {
	Type        GeometryType `json:"type" bson:"type"`
	Coordinates interface{}  `json:"coordinates" bson:"coordinates"`
}

// NewPoint builds a Point geometry from a single coordinate pair.
func NewPoint(point []float64) (Geometry, error) {
	if !IsPoint(point) {
		return Geometry{}, ErrInvalidGeometry
	}

	return Geometry{Type: TypePoint, Coordinates: point}, nil
}

// NewLineString builds a LineString geometry from exactly two coordinate
// pairs. Multi-segment lines are out of scope.
func NewLineString(point1, point2 []float64) (Geometry, error) {
	coords := [][]float64{point1, point2}
	if !ArePoints(coords) {
		return Geometry{}, ErrInvalidGeometry
	}

	return Geometry{Type: TypeLineString, Coordinates: coords}, nil
}

// NewPolygon builds a Polygon geometry from a single ring of coordinate
// pairs. The ring is not checked for closure or a minimum vertex count.
func NewPolygon(ring [][]float64) (Geometry, error) {
	if !ArePoints(ring) {
		return Geometry{}, ErrInvalidGeometry
	}

	return Geometry{Type: TypePolygon, Coordinates: [][][][]float64{{ring}}}, nil
}
