package geo

import (
	"math"

	"github.com/freightnav/freightnav/pkg/util"
)

// mean Earth radius (IUGG).
const earthRadiusKM = 6371.0088

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// DistanceKm calculates the haversine great-circle distance in km between
// two lon/lat pairs in degrees.
func DistanceKm(lonOne, latOne, lonTwo, latTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	lonOne = util.DegreeToRadians(lonOne)
	latTwo = util.DegreeToRadians(latTwo)
	lonTwo = util.DegreeToRadians(lonTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(lonOne-lonTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}
