package core

import "math"

// EarthRadiusM is the mean Earth radius used for all great-circle
// calculations in the checker (metres).
const EarthRadiusM = 6371000.0

// DistanceFunc computes the great-circle distance in metres between two
// lat/lon pairs in degrees. The checker takes it as a collaborator so tests
// and callers with survey-grade geodesy can substitute their own.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// DistanceMeters is the default DistanceFunc: haversine distance over the
// mean Earth sphere.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	if a > 1 {
		a = 1
	}
	return 2 * EarthRadiusM * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// orbitTangentDistance models a tangent exit from a circular orbit: the
// horizontal distance flown from leaving an orbit of the given radius to a
// point at centerDist from the orbit centre. Only valid when the point lies
// outside the orbit (centerDist > radius).
func orbitTangentDistance(centerDist, radius float64) float64 {
	return math.Sqrt(centerDist*centerDist - radius*radius)
}

// glideSlopeBufferDeg pads the configured landing angle before comparing
// slopes, absorbing floating point rounding on the boundary.
const glideSlopeBufferDeg = 0.1

// maxGlideSlope converts the configured landing angle into the steepest
// acceptable altitude-over-distance ratio.
func maxGlideSlope(landingAngleDeg float64) float64 {
	return math.Tan(radians(landingAngleDeg + glideSlopeBufferDeg))
}
