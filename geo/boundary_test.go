package geo

import (
	"errors"
	"reflect"
	"testing"
)

func TestPolygonToBoundary(t *testing.T) {
	tests := []struct {
		name     string
		points   []LatLng
		expected Boundary
	}{
		{
			"Two Points",
			[]LatLng{{Lat: 1, Lng: 5}, {Lat: 3, Lng: 2}},
			Boundary{{2, 1}, {5, 3}},
		},
		{
			"Single Point",
			[]LatLng{{Lat: 4, Lng: 7}},
			Boundary{{7, 4}, {7, 4}},
		},
		{
			"Extremes From Different Points",
			[]LatLng{{Lat: 0, Lng: 0}, {Lat: -5, Lng: 10}, {Lat: 5, Lng: -10}},
			Boundary{{-10, -5}, {10, 5}},
		},
		{
			"Duplicate Points",
			[]LatLng{{Lat: 2, Lng: 3}, {Lat: 2, Lng: 3}},
			Boundary{{3, 2}, {3, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := PolygonToBoundary(tt.points)
			if err != nil {
				t.Fatalf("PolygonToBoundary: unexpected error: %v", err)
			}
			if actual != tt.expected {
				t.Errorf("PolygonToBoundary: expected %v, got %v", tt.expected, actual)
			}
		})
	}
}

func TestPolygonToBoundaryEmpty(t *testing.T) {
	if _, err := PolygonToBoundary(nil); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := PolygonToBoundary([]LatLng{}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestPolygonToBoundaryPolygon(t *testing.T) {
	points := []LatLng{{Lat: 1, Lng: 5}, {Lat: 3, Lng: 2}}

	ring, err := PolygonToBoundaryPolygon(points)
	if err != nil {
		t.Fatalf("PolygonToBoundaryPolygon: unexpected error: %v", err)
	}
	if len(ring) != 5 {
		t.Fatalf("expected 5 ring entries, got %d", len(ring))
	}

	expected := []interface{}{
		[]float64{2, 1},
		[]float64{2, 3},
		[][]float64{{5, 3}}, // bottom-right stays wrapped
		[]float64{5, 1},
		[]float64{2, 1},
	}
	for i := range expected {
		if !reflect.DeepEqual(ring[i], expected[i]) {
			t.Errorf("ring[%d]: expected %v, got %v", i, expected[i], ring[i])
		}
	}

	if !reflect.DeepEqual(ring[0], ring[4]) {
		t.Error("ring is not closed: first and last entries differ")
	}
}

func TestPolygonToBoundaryPolygonEmpty(t *testing.T) {
	if _, err := PolygonToBoundaryPolygon(nil); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestBoundaryCorners(t *testing.T) {
	b := Boundary{{2, 1}, {5, 3}}
	if !reflect.DeepEqual(b.TopLeft(), []float64{2, 1}) {
		t.Errorf("TopLeft: got %v", b.TopLeft())
	}
	if !reflect.DeepEqual(b.BottomRight(), []float64{5, 3}) {
		t.Errorf("BottomRight: got %v", b.BottomRight())
	}
}
