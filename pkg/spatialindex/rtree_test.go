package spatialindex

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/geo"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKNearestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	points := make([]orb.Point, 0, 200)
	index := NewNodeIndex()
	for i := 0; i < 200; i++ {
		p := orb.Point{rng.Float64()*100 - 40, rng.Float64()*50 + 20}
		points = append(points, p)
		index.Insert(p, datastructure.Index(i))
	}

	query := orb.Point{10.0, 50.0}
	for _, k := range []int{1, 3, 10} {
		got := index.KNearest(query, k, nil)
		require.Len(t, got, k)

		want := bruteForceNearest(query, points, k)
		for i := range got {
			gotDist := index.DistanceKmTo(query, got[i])
			assert.InDelta(t, want[i], gotDist, 1e-9, "k=%d rank=%d", k, i)
		}
	}
}

func bruteForceNearest(query orb.Point, points []orb.Point, k int) []float64 {
	dists := make([]float64, len(points))
	for i, p := range points {
		dists[i] = geo.DistanceKm(query.Lon(), query.Lat(), p.Lon(), p.Lat())
	}
	sort.Float64s(dists)
	return dists[:k]
}

func TestKNearestHighLatitude(t *testing.T) {
	// longitude degrees shrink to about a third of latitude degrees up
	// here, the worst planar-order skew the re-rank window must absorb
	rng := rand.New(rand.NewSource(7))

	points := make([]orb.Point, 0, 150)
	index := NewNodeIndex()
	for i := 0; i < 150; i++ {
		p := orb.Point{rng.Float64()*100 - 40, rng.Float64()*16 + 62}
		points = append(points, p)
		index.Insert(p, datastructure.Index(i))
	}

	query := orb.Point{10.0, 70.0}
	got := index.KNearest(query, 5, nil)
	require.Len(t, got, 5)

	want := bruteForceNearest(query, points, 5)
	for i := range got {
		assert.InDelta(t, want[i], index.DistanceKmTo(query, got[i]), 1e-9, "rank=%d", i)
	}
}

func TestKNearestAcceptPredicate(t *testing.T) {
	index := NewNodeIndex()
	index.Insert(orb.Point{0, 0}, 0)
	index.Insert(orb.Point{1, 0}, 1)
	index.Insert(orb.Point{2, 0}, 2)

	// reject the nearest node, the next one must win
	got := index.KNearest(orb.Point{0, 0}, 1, func(idx datastructure.Index) bool {
		return idx != 0
	})
	require.Len(t, got, 1)
	assert.Equal(t, datastructure.Index(1), got[0])
}

func TestKNearestOnEmptyOrNonPositiveK(t *testing.T) {
	index := NewNodeIndex()
	assert.Empty(t, index.KNearest(orb.Point{0, 0}, 3, nil))

	index.Insert(orb.Point{0, 0}, 0)
	assert.Empty(t, index.KNearest(orb.Point{0, 0}, 0, nil))
	assert.Empty(t, index.KNearest(orb.Point{0, 0}, -1, nil))
}

func TestKNearestFewerThanK(t *testing.T) {
	index := NewNodeIndex()
	index.Insert(orb.Point{0, 0}, 0)
	index.Insert(orb.Point{1, 1}, 1)

	got := index.KNearest(orb.Point{0, 0}, 10, nil)
	assert.Len(t, got, 2)
}

func TestNearestWithinCutoff(t *testing.T) {
	index := NewNodeIndex()
	index.Insert(orb.Point{0, 0}, 0)  // at the query point
	index.Insert(orb.Point{1, 0}, 1)  // ~111 km away
	index.Insert(orb.Point{90, 0}, 2) // ~10000 km away

	got := index.NearestWithin(orb.Point{0, 0}, 3, 500.0, nil)
	require.Len(t, got, 2)
	assert.Equal(t, datastructure.Index(0), got[0])
	assert.Equal(t, datastructure.Index(1), got[1])
}

func TestSize(t *testing.T) {
	index := NewNodeIndex()
	assert.Zero(t, index.Size())
	index.Insert(orb.Point{0, 0}, 0)
	index.Insert(orb.Point{1, 1}, 1)
	assert.Equal(t, 2, index.Size())
}
