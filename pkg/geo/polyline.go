package geo

import (
	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
)

// PolylineFromPoints encodes lon/lat points as a Google encoded polyline
// (lat,lon order on the wire).
func PolylineFromPoints(points []orb.Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat(), p.Lon()}
	}
	return string(polyline.EncodeCoords(coords))
}
