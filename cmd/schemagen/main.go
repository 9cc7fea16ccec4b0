package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fernwell/geofield/internal/logger"
	"github.com/fernwell/geofield/mongoschema"
	"github.com/fernwell/geofield/schema"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Path      string   `short:"p" long:"path" description:"Schema path of the geometry field" default:"location"`
	Types     []string `short:"t" long:"type" description:"Allowed geometry type (repeatable). One value means a fixed type, none means all types"`
	Required  bool     `short:"r" long:"required" description:"Mark the type sub-field as required"`
	IndexType string   `long:"index-type" description:"Spatial index type" default:"2dsphere"`
	NoSparse  bool     `long:"no-sparse" description:"Build a non-sparse index"`
	Output    string   `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format    string   `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

// output is the rendered schema report.
type output struct {
	Validator interface{} `json:"validator" yaml:"validator"`
	Indexes   []indexOut  `json:"indexes" yaml:"indexes"`
	Field     string      `json:"field" yaml:"field"`
}

type indexOut struct {
	Keys   map[string]interface{} `json:"keys" yaml:"keys"`
	Sparse bool                   `json:"sparse" yaml:"sparse"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	fieldOpts := schema.Options{
		Required: opts.Required,
		Path:     opts.Path,
		Index: &schema.IndexSpec{
			Type:   opts.IndexType,
			Sparse: !opts.NoSparse,
		},
	}
	switch len(opts.Types) {
	case 0:
	case 1:
		fieldOpts.Type = opts.Types[0]
	default:
		fieldOpts.Type = opts.Types
	}

	builder := mongoschema.New()
	schema.AttachGeoField(builder, fieldOpts)

	report := output{
		Validator: builder.Validator(),
		Field:     opts.Path,
	}
	for _, model := range builder.IndexModels() {
		keys := make(map[string]interface{})
		if d, ok := model.Keys.(bson.D); ok {
			for _, e := range d {
				keys[e.Key] = e.Value
			}
		}
		report.Indexes = append(report.Indexes, indexOut{Keys: keys, Sparse: !opts.NoSparse})
	}

	var outputData []byte
	var err error
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(report)
	} else {
		outputData, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal schema report")
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
		}
		log.Info().Str("path", opts.Output).Str("field", opts.Path).Msg("Schema report written")
	} else {
		fmt.Println(string(outputData))
	}
}
