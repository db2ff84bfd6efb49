package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKmIdentity(t *testing.T) {
	testCases := []struct {
		name     string
		lon, lat float64
	}{
		{name: "equator", lon: 0, lat: 0},
		{name: "warsaw", lon: 21.0122, lat: 52.2297},
		{name: "antimeridian", lon: 179.99, lat: -45.0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, DistanceKm(tt.lon, tt.lat, tt.lon, tt.lat))
		})
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	ab := DistanceKm(21.0122, 52.2297, 13.4050, 52.5200)
	ba := DistanceKm(13.4050, 52.5200, 21.0122, 52.2297)
	assert.Equal(t, ab, ba)
}

func TestDistanceKmKnownValues(t *testing.T) {
	// Warsaw -> Berlin, roughly 517 km great-circle.
	got := DistanceKm(21.0122, 52.2297, 13.4050, 52.5200)
	assert.InDelta(t, 517.0, got, 5.0)

	// quarter of the meridian circumference
	got = DistanceKm(0, 0, 0, 90)
	assert.InDelta(t, 10007.5, got, 5.0)
}

func TestCentroidPoint(t *testing.T) {
	p := orb.Point{10, 20}
	got, ok := Centroid(p)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestCentroidPolygonOuterRingAverage(t *testing.T) {
	poly := orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, // outer
		{{1, 1}, {2, 1}, {2, 2}, {1, 2}}, // hole, must be ignored
	}
	got, ok := Centroid(poly)
	require.True(t, ok)
	assert.Equal(t, orb.Point{2, 2}, got)
}

func TestCentroidMultiPolygonNotAreaWeighted(t *testing.T) {
	// two outer rings with different vertex counts; plain vertex average,
	// not an area-weighted centroid
	mp := orb.MultiPolygon{
		{{{0, 0}, {2, 0}, {2, 2}, {0, 2}}},
		{{{10, 10}, {12, 10}}},
	}
	got, ok := Centroid(mp)
	require.True(t, ok)
	assert.InDelta(t, (0+2+2+0+10+12)/6.0, got.Lon(), 1e-12)
	assert.InDelta(t, (0+0+2+2+10+10)/6.0, got.Lat(), 1e-12)
}

func TestCentroidEmptyGeometry(t *testing.T) {
	_, ok := Centroid(orb.Polygon{})
	assert.False(t, ok)

	_, ok = Centroid(orb.MultiPolygon{})
	assert.False(t, ok)

	_, ok = Centroid(orb.LineString{{0, 0}, {1, 1}})
	assert.False(t, ok)
}

func TestPolylineFromPoints(t *testing.T) {
	// reference encoding from the polyline algorithm docs
	got := PolylineFromPoints([]orb.Point{
		{-120.2, 38.5},
		{-120.95, 40.7},
		{-126.453, 43.252},
	})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", got)
}
