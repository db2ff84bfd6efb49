package routing

import (
	da "github.com/freightnav/freightnav/pkg/datastructure"
)

// Summary aggregates a computed route: the final accumulated weighted cost,
// the sum of the legs' physical distances (not weights), and the hop count.
type Summary struct {
	TotalWeight     float64
	TotalDistanceKm float64
	Hops            int
}

// RouteResult is the full answer to a point-to-point query: the node path in
// travel order from source to target, the edges actually traversed per hop,
// and the summary.
type RouteResult struct {
	Path    []da.Node
	Legs    []da.Edge
	Summary Summary
}
