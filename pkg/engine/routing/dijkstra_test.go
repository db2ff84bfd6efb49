package routing

import (
	"errors"
	"testing"

	"github.com/freightnav/freightnav/pkg"
	da "github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/util"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNode(id string, lon, lat float64) da.Node {
	return da.NewNode(id, id, pkg.HUB, "", "", orb.Point{lon, lat})
}

// diamondGraph builds A-B-D (cheap) and A-C-D (expensive) plus an isolated
// node X. The cheap branch is longer in kilometres but lighter in weight.
func diamondGraph(t *testing.T) *da.Graph {
	t.Helper()
	g := da.NewGraph()
	for _, n := range []da.Node{
		testNode("A", 0, 0),
		testNode("B", 10, 0),
		testNode("C", 5, 5),
		testNode("D", 20, 0),
		testNode("X", 90, 45),
	} {
		g.AddNode(n)
	}

	idx := func(id string) da.Index {
		i, ok := g.GetNodeIndex(id)
		require.True(t, ok)
		return i
	}

	g.AddEdgePair(idx("A"), idx("B"), pkg.SEA, 1200, 1.0)
	g.AddEdgePair(idx("B"), idx("D"), pkg.SEA, 1200, 1.0)
	g.AddEdgePair(idx("A"), idx("C"), pkg.AIR, 800, 5.0)
	g.AddEdgePair(idx("C"), idx("D"), pkg.AIR, 800, 5.0)
	return g
}

func TestRoutePicksLightestWeightNotShortestDistance(t *testing.T) {
	g := diamondGraph(t)
	result, err := NewDijkstra(g).Route("A", "D")
	require.NoError(t, err)

	require.Len(t, result.Path, 3)
	assert.Equal(t, "A", result.Path[0].GetID())
	assert.Equal(t, "B", result.Path[1].GetID())
	assert.Equal(t, "D", result.Path[2].GetID())

	require.Len(t, result.Legs, 2)
	assert.Equal(t, pkg.SEA, result.Legs[0].GetMode())
	assert.InDelta(t, 2.0, result.Summary.TotalWeight, 1e-9)
	assert.InDelta(t, 2400.0, result.Summary.TotalDistanceKm, 1e-9)
	assert.Equal(t, 2, result.Summary.Hops)
}

func TestRouteLegsMatchPathOrder(t *testing.T) {
	g := diamondGraph(t)
	result, err := NewDijkstra(g).Route("A", "D")
	require.NoError(t, err)

	for i, leg := range result.Legs {
		assert.Equal(t, result.Path[i].GetID(), g.GetNode(leg.GetSource()).GetID())
		assert.Equal(t, result.Path[i+1].GetID(), g.GetNode(leg.GetTarget()).GetID())
	}
}

func TestRouteSourceEqualsTarget(t *testing.T) {
	g := diamondGraph(t)
	result, err := NewDijkstra(g).Route("A", "A")
	require.NoError(t, err)

	require.Len(t, result.Path, 1)
	assert.Equal(t, "A", result.Path[0].GetID())
	assert.Empty(t, result.Legs)
	assert.Zero(t, result.Summary.Hops)
	assert.Zero(t, result.Summary.TotalWeight)
	assert.Zero(t, result.Summary.TotalDistanceKm)
}

func TestRouteUnknownNode(t *testing.T) {
	g := diamondGraph(t)

	_, err := NewDijkstra(g).Route("A", "NOPE")
	require.Error(t, err)

	var domainErr *util.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, util.ErrNotFound, domainErr.Code())
	assert.Contains(t, err.Error(), "NOPE")
}

func TestRouteDisconnectedTarget(t *testing.T) {
	g := diamondGraph(t)

	_, err := NewDijkstra(g).Route("A", "X")
	require.Error(t, err)

	var domainErr *util.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, util.ErrNoRoute, domainErr.Code())
}

func TestRouteIsSymmetricOnReciprocalEdges(t *testing.T) {
	g := diamondGraph(t)
	d := NewDijkstra(g)

	forward, err := d.Route("A", "D")
	require.NoError(t, err)
	backward, err := NewDijkstra(g).Route("D", "A")
	require.NoError(t, err)

	assert.InDelta(t, forward.Summary.TotalWeight, backward.Summary.TotalWeight, 1e-9)
	assert.InDelta(t, forward.Summary.TotalDistanceKm, backward.Summary.TotalDistanceKm, 1e-9)
	assert.Equal(t, forward.Summary.Hops, backward.Summary.Hops)
}
