// Package config handles loading of point-set input files.
package config

import (
	"io"
	"os"

	"github.com/fernwell/geofield/geo"

	"gopkg.in/yaml.v3"
)

// Input represents a point-set input file.
type Input struct {
	// Properties are copied onto the resulting GeoJSON feature.
	Properties map[string]interface{} `yaml:"properties,omitempty" json:"properties,omitempty"`
	Points     []geo.LatLng           `yaml:"points" json:"points"`
}

// Load reads and parses a YAML (or JSON) point-set file from the specified
// path, or from stdin when path is empty.
func Load(path string) (*Input, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a point-set document. YAML is a superset of JSON, so both
// encodings go through the same decoder.
func Parse(data []byte) (*Input, error) {
	var in Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	return &in, nil
}
