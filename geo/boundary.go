package geo

// LatLng is a named geographic coordinate as used by boundary computations.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat" bson:"lat"`
	Lng float64 `json:"lng" yaml:"lng" bson:"lng"`
}

// Boundary is an axis-aligned bounding box in the form
// [[top, left], [bottom, right]], where left/right are the min/max Lat and
// top/bottom the min/max Lng of the input points.
type Boundary [2][2]float64

// TopLeft returns the [top, left] corner.
func (b Boundary) TopLeft() []float64 { return []float64{b[0][0], b[0][1]} }

// BottomRight returns the [bottom, right] corner.
func (b Boundary) BottomRight() []float64 { return []float64{b[1][0], b[1][1]} }

// PolygonToBoundary derives the bounding box of a non-empty point set in a
// single pass. Comparisons are strict, so the earliest point establishing an
// extremum wins over later equal values.
func PolygonToBoundary(points []LatLng) (Boundary, error) {
	if !ArePoints(points) {
		return Boundary{}, ErrInvalidGeometry
	}

	first := points[0]
	left, right := first.Lat, first.Lat
	top, bottom := first.Lng, first.Lng

	for _, p := range points[1:] {
		if p.Lat < left {
			left = p.Lat
		}
		if p.Lat > right {
			right = p.Lat
		}
		if p.Lng < top {
			top = p.Lng
		}
		if p.Lng > bottom {
			bottom = p.Lng
		}
	}

	return Boundary{{top, left}, {bottom, right}}, nil
}

// PolygonToBoundaryPolygon derives the closed five-entry boundary ring of a
// point set. The third entry wraps the bottom-right corner in a single-element
// array while the other entries are flat pairs; existing consumers depend on
// this exact shape, do not flatten it.
func PolygonToBoundaryPolygon(points []LatLng) ([]interface{}, error) {
	boundary, err := PolygonToBoundary(points)
	if err != nil {
		return nil, err
	}

	topLeft := boundary.TopLeft()
	bottomRight := boundary.BottomRight()

	return []interface{}{
		topLeft,
		[]float64{topLeft[0], bottomRight[1]},
		[][]float64{bottomRight},
		[]float64{bottomRight[0], topLeft[1]},
		topLeft,
	}, nil
}
