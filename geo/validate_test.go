package geo

import "testing"

func TestIsPoint(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected bool
	}{
		{"Float Pair", []float64{1, 2}, true},
		{"Fixed Array Pair", [2]float64{1, 2}, true},
		{"Decoded JSON Pair", []interface{}{1.5, 2.5}, true},
		{"Decoded Int Pair", []interface{}{1, 2}, true},
		{"Negative Values", []float64{-180, -90}, true},
		{"Out Of Range Values", []float64{500, -500}, true},
		{"Single Element", []float64{1}, false},
		{"Three Elements", []float64{1, 2, 3}, false},
		{"Empty Slice", []float64{}, false},
		{"Non Numeric Element", []interface{}{"1", 2.0}, false},
		{"Both Non Numeric", []interface{}{"a", "b"}, false},
		{"String", "1,2", false},
		{"Nil", nil, false},
		{"Number", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := IsPoint(tt.input); actual != tt.expected {
				t.Errorf("IsPoint(%v): expected %v, got %v", tt.input, tt.expected, actual)
			}
		})
	}
}

func TestArePoints(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected bool
	}{
		{"Single Pair", [][]float64{{1, 2}}, true},
		{"Multiple Pairs", [][]float64{{0, 0}, {1, 1}, {2, 2}}, true},
		{"Decoded JSON Pairs", []interface{}{[]interface{}{0.0, 0.0}, []interface{}{1.0, 1.0}}, true},
		{"LatLng Points", []LatLng{{Lat: 1, Lng: 2}}, true},
		{"Empty Slice", [][]float64{}, false},
		{"Empty Decoded Slice", []interface{}{}, false},
		{"Empty LatLng Slice", []LatLng{}, false},
		{"One Bad Pair", [][]float64{{1, 2}, {3}}, false},
		{"Non Pair Element", []interface{}{[]interface{}{1.0, 2.0}, "nope"}, false},
		{"Not A Sequence", 42, false},
		{"Nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := ArePoints(tt.input); actual != tt.expected {
				t.Errorf("ArePoints(%v): expected %v, got %v", tt.input, tt.expected, actual)
			}
		})
	}
}

func TestArePointsMatchesIsPointForSingleElement(t *testing.T) {
	pairs := [][]float64{{1, 2}, {1, 2, 3}, {1}, {}}
	for _, p := range pairs {
		if ArePoints([][]float64{p}) != IsPoint(p) {
			t.Errorf("ArePoints([%v]) disagrees with IsPoint(%v)", p, p)
		}
	}
}
