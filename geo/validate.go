package geo

// IsPoint reports whether v is a coordinate pair: a sequence of exactly two
// numeric elements. Coordinate ranges are not checked.
func IsPoint(v interface{}) bool {
	switch p := v.(type) {
	case []float64:
		return len(p) == 2
	case [2]float64:
		return true
	case []interface{}:
		return len(p) == 2 && isNumber(p[0]) && isNumber(p[1])
	default:
		return false
	}
}

// ArePoints reports whether v is a non-empty sequence of coordinate pairs.
// An empty sequence is invalid.
func ArePoints(v interface{}) bool {
	switch points := v.(type) {
	case [][]float64:
		if len(points) == 0 {
			return false
		}
		for _, p := range points {
			if !IsPoint(p) {
				return false
			}
		}
		return true
	case []interface{}:
		if len(points) == 0 {
			return false
		}
		for _, p := range points {
			if !IsPoint(p) {
				return false
			}
		}
		return true
	case []LatLng:
		// Every LatLng is structurally a valid pair, only emptiness can fail.
		return len(points) > 0
	default:
		return false
	}
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
