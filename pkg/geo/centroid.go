package geo

import (
	"github.com/paulmach/orb"
)

// Centroid approximates the center of a boundary geometry as the plain
// average of its outer-ring vertices. Holes are ignored and multipolygons
// are not area-weighted, so small islands pull the centroid the same as the
// mainland. Good enough for hub assignment, not for cartography.
//
// The ok result is false for empty or unsupported geometries; callers must
// skip those features.
func Centroid(g orb.Geometry) (orb.Point, bool) {
	switch geom := g.(type) {
	case orb.Point:
		return geom, true
	case orb.Polygon:
		return ringAverage(outerRing(geom))
	case orb.MultiPolygon:
		var points []orb.Point
		for _, poly := range geom {
			points = append(points, outerRing(poly)...)
		}
		return ringAverage(points)
	default:
		return orb.Point{}, false
	}
}

func outerRing(poly orb.Polygon) []orb.Point {
	if len(poly) == 0 {
		return nil
	}
	return poly[0]
}

func ringAverage(points []orb.Point) (orb.Point, bool) {
	if len(points) == 0 {
		return orb.Point{}, false
	}
	var sumLon, sumLat float64
	for _, p := range points {
		sumLon += p.Lon()
		sumLat += p.Lat()
	}
	n := float64(len(points))
	return orb.Point{sumLon / n, sumLat / n}, true
}
