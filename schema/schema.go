// Package schema declares geometry fields on a host document schema.
//
// The host schema system itself is external: this package only needs the two
// operations of the Schema interface to register a field definition and its
// spatial index.
package schema

import "github.com/fernwell/geofield/geo"

// Schema is the host document-schema contract.
type Schema interface {
	// DefinePath registers a field definition at a dotted path.
	DefinePath(path string, def FieldDefinition)

	// IndexableAt returns a handle for applying an index at a dotted path.
	IndexableAt(path string) Indexable
}

// Indexable applies an index specification to a single schema path.
type Indexable interface {
	SetIndex(spec IndexSpec)
}

// FieldKind names the primitive element kinds a field definition can carry.
type FieldKind string

const (
	KindString FieldKind = "String"
	KindNumber FieldKind = "Number"
	// KindMixed places no constraint on the element shape.
	KindMixed FieldKind = "Mixed"
)

// FieldDefinition describes a geometry field: a constrained type label and a
// coordinates array. Ownership transfers to the host schema on registration.
type FieldDefinition struct {
	Type        TypeSpec        `json:"type" yaml:"type"`
	Coordinates CoordinatesSpec `json:"coordinates" yaml:"coordinates"`
}

// TypeSpec constrains the geometry type label sub-field.
type TypeSpec struct {
	Kind     FieldKind          `json:"type" yaml:"type"`
	Enum     []geo.GeometryType `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default  geo.GeometryType   `json:"default,omitempty" yaml:"default,omitempty"`
	Required bool               `json:"required,omitempty" yaml:"required,omitempty"`
}

// CoordinatesSpec constrains the elements of the coordinates array.
// KindNumber means a flat numeric array; KindMixed leaves the nesting open so
// any GeoJSON coordinate rank fits.
type CoordinatesSpec struct {
	Element FieldKind `json:"element" yaml:"element"`
}

// IndexSpec describes a spatial index on a geometry field.
type IndexSpec struct {
	Type   string `json:"type" yaml:"type"`
	Sparse bool   `json:"sparse" yaml:"sparse"`
}
