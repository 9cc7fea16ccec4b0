package geo

// EarthRadiusMeters is the WGS 84 equatorial Earth radius, used as the
// spherical radius for converting metric distances to radians.
const EarthRadiusMeters = 6378137.0

// MeterToRadian converts a distance in meters to radians on a spherical
// Earth, the unit 2dsphere radius queries expect. The sign and magnitude of
// m are not checked.
func MeterToRadian(m float64) float64 {
	return m / EarthRadiusMeters
}
