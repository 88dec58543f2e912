package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// DistanceKm computes the haversine great-circle distance in kilometers
// between two coordinates given in decimal degrees.
func DistanceKm(aLat, aLon, bLat, bLon float64) float64 {
	lat1 := aLat * math.Pi / 180
	lat2 := bLat * math.Pi / 180
	dLat := (bLat - aLat) * math.Pi / 180
	dLon := (bLon - aLon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// BatchDistanceKm computes haversine distances from one origin to many
// points. lats and lons must be the same length; element i of the result
// is the distance to (lats[i], lons[i]).
//
// The per-element arithmetic is the same as DistanceKm, so scalar and
// batch results agree on identical inputs.
func BatchDistanceKm(originLat, originLon float64, lats, lons []float64) []float64 {
	lat1 := originLat * math.Pi / 180
	cosLat1 := math.Cos(lat1)

	out := make([]float64, len(lats))
	for i := range lats {
		lat2 := lats[i] * math.Pi / 180
		dLat := (lats[i] - originLat) * math.Pi / 180
		dLon := (lons[i] - originLon) * math.Pi / 180

		sinLat := math.Sin(dLat / 2)
		sinLon := math.Sin(dLon / 2)
		h := sinLat*sinLat + cosLat1*math.Cos(lat2)*sinLon*sinLon

		out[i] = 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
	}
	return out
}
