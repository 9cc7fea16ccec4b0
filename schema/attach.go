package schema

import (
	"github.com/rs/zerolog/log"

	"github.com/fernwell/geofield/geo"
)

// DefaultPath is the schema path a geometry field is attached at when the
// options leave it empty.
const DefaultPath = "location"

// Options configures AttachGeoField. Zero values mean the defaults.
type Options struct {
	// Type restricts the geometry type label. Accepted values: nil (all six
	// types allowed, Point default), a single string or geo.GeometryType
	// (fixed default, no enum), or a []string / []geo.GeometryType (enum with
	// its first entry as default).
	Type interface{}

	// Required marks the type sub-field as mandatory.
	Required bool

	// Path is the dotted schema path of the field, DefaultPath when empty.
	Path string

	// Index is the spatial index specification, {2dsphere, sparse} when nil.
	Index *IndexSpec
}

// AttachGeoField builds a geometry field definition from opts, registers it
// on s and applies the spatial index at the same path. It returns s for
// chaining.
//
// The two registration calls are sequential and not atomic as a pair; callers
// sharing one schema across goroutines need their own synchronization.
// Options are not validated here, malformed values surface as host-schema
// errors.
func AttachGeoField(s Schema, opts Options) Schema {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	index := IndexSpec{Type: "2dsphere", Sparse: true}
	if opts.Index != nil {
		index = *opts.Index
	}

	def := buildFieldDefinition(opts)

	s.DefinePath(path, def)
	s.IndexableAt(path).SetIndex(index)

	log.Debug().
		Str("path", path).
		Str("default_type", string(def.Type.Default)).
		Str("index", index.Type).
		Msg("Geo field attached")

	return s
}

// buildFieldDefinition resolves the type constraint and coordinates element
// kind for the field definition.
func buildFieldDefinition(opts Options) FieldDefinition {
	spec := TypeSpec{Kind: KindString, Required: opts.Required}

	switch t := opts.Type.(type) {
	case string:
		// A single fixed type: default only, no enum restriction.
		spec.Default = geo.GeometryType(t)
	case geo.GeometryType:
		spec.Default = t
	case []string:
		for _, v := range t {
			spec.Enum = append(spec.Enum, geo.GeometryType(v))
		}
	case []geo.GeometryType:
		spec.Enum = append(spec.Enum, t...)
	}

	if opts.Type == nil || (spec.Default == "" && len(spec.Enum) == 0) {
		spec.Enum = append([]geo.GeometryType(nil), geo.GeometryTypes...)
	}
	if len(spec.Enum) > 0 {
		spec.Default = spec.Enum[0]
	}

	// Coordinates collapse to a flat numeric array only when the caller passed
	// the single scalar "Point"; a one-element list like []string{"Point"}
	// keeps the open nested-array form. Existing schemas rely on this exact
	// distinction.
	element := KindMixed
	if isRawPoint(opts.Type) {
		element = KindNumber
	}

	return FieldDefinition{
		Type:        spec,
		Coordinates: CoordinatesSpec{Element: element},
	}
}

func isRawPoint(t interface{}) bool {
	switch v := t.(type) {
	case string:
		return v == string(geo.TypePoint)
	case geo.GeometryType:
		return v == geo.TypePoint
	default:
		return false
	}
}
