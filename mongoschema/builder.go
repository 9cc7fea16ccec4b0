// Package mongoschema renders geometry field declarations for MongoDB: a
// $jsonSchema validator document plus the matching spatial index models.
package mongoschema

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fernwell/geofield/schema"
)

// Builder collects field definitions and index specifications through the
// schema.Schema contract and renders them as MongoDB documents. The zero
// value is not usable, call New.
type Builder struct {
	defs    map[string]schema.FieldDefinition
	paths   []string
	indexes []pathIndex
}

type pathIndex struct {
	path string
	spec schema.IndexSpec
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{defs: make(map[string]schema.FieldDefinition)}
}

// DefinePath registers a field definition at a dotted path. Registering the
// same path twice keeps the latest definition.
func (b *Builder) DefinePath(path string, def schema.FieldDefinition) {
	if _, ok := b.defs[path]; !ok {
		b.paths = append(b.paths, path)
	}
	b.defs[path] = def
}

// IndexableAt returns the index handle for a dotted path.
func (b *Builder) IndexableAt(path string) schema.Indexable {
	return &indexable{builder: b, path: path}
}

type indexable struct {
	builder *Builder
	path    string
}

// SetIndex records an index specification for later rendering.
func (i *indexable) SetIndex(spec schema.IndexSpec) {
	i.builder.indexes = append(i.builder.indexes, pathIndex{path: i.path, spec: spec})
}

// Validator renders every registered field as a $jsonSchema validator
// document. Dotted paths become nested object properties.
func (b *Builder) Validator() bson.M {
	properties := bson.M{}

	for _, path := range b.paths {
		def := b.defs[path]

		parts := strings.Split(path, ".")
		node := properties
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(bson.M)
			if !ok {
				child = bson.M{"bsonType": "object", "properties": bson.M{}}
				node[part] = child
			}
			node = child["properties"].(bson.M)
		}
		node[parts[len(parts)-1]] = fieldDocument(def)
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"properties": properties,
		},
	}
}

// fieldDocument renders one geometry field definition.
func fieldDocument(def schema.FieldDefinition) bson.M {
	typeDoc := bson.M{"bsonType": "string"}
	if len(def.Type.Enum) > 0 {
		labels := make([]string, 0, len(def.Type.Enum))
		for _, t := range def.Type.Enum {
			labels = append(labels, string(t))
		}
		typeDoc["enum"] = labels
	}

	coordsDoc := bson.M{"bsonType": "array"}
	if def.Coordinates.Element == schema.KindNumber {
		coordsDoc["items"] = bson.M{"bsonType": "number"}
	}

	doc := bson.M{
		"bsonType": "object",
		"properties": bson.M{
			"type":        typeDoc,
			"coordinates": coordsDoc,
		},
	}
	if def.Type.Required {
		doc["required"] = []string{"type"}
	}

	return doc
}

// IndexModels renders every recorded index specification as a driver index
// model, in registration order.
func (b *Builder) IndexModels() []mongo.IndexModel {
	models := make([]mongo.IndexModel, 0, len(b.indexes))
	for _, idx := range b.indexes {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.path, Value: idx.spec.Type}},
			Options: options.Index().SetSparse(idx.spec.Sparse),
		})
	}

	return models
}

// Apply installs the validator on the collection via collMod, then creates
// the spatial indexes. The two steps are not transactional: a failed index
// creation leaves the validator in place.
func (b *Builder) Apply(ctx context.Context, coll *mongo.Collection) error {
	cmd := bson.D{
		{Key: "collMod", Value: coll.Name()},
		{Key: "validator", Value: b.Validator()},
	}
	if err := coll.Database().RunCommand(ctx, cmd).Err(); err != nil {
		return err
	}

	if models := b.IndexModels(); len(models) > 0 {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	log.Info().
		Str("collection", coll.Name()).
		Int("fields", len(b.paths)).
		Int("indexes", len(b.indexes)).
		Msg("Schema applied")

	return nil
}
