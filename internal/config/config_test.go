package config

import (
	"reflect"
	"testing"

	"github.com/fernwell/geofield/geo"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
properties:
  name: depot
points:
  - {lat: 1, lng: 5}
  - {lat: 3, lng: 2}
`)

	in, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}

	expected := []geo.LatLng{{Lat: 1, Lng: 5}, {Lat: 3, Lng: 2}}
	if !reflect.DeepEqual(in.Points, expected) {
		t.Errorf("expected points %v, got %v", expected, in.Points)
	}
	if in.Properties["name"] != "depot" {
		t.Errorf("expected property name=depot, got %v", in.Properties)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"points": [{"lat": -1.5, "lng": 2.5}]}`)

	in, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}

	expected := []geo.LatLng{{Lat: -1.5, Lng: 2.5}}
	if !reflect.DeepEqual(in.Points, expected) {
		t.Errorf("expected points %v, got %v", expected, in.Points)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("points: {not: [a, list")); err == nil {
		t.Error("expected a parse error")
	}
}
