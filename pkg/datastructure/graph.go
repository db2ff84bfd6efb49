package datastructure

import (
	"github.com/freightnav/freightnav/pkg"
)

// Graph is the transient aggregate the builder emits: a node arena indexed
// by stable string id plus a flat edge list. It is rebuilt per request from
// the current loader outputs and never mutated after construction.
type Graph struct {
	nodes   []Node
	nodeIdx map[string]Index
	edges   []Edge
}

func NewGraph() *Graph {
	return &Graph{
		nodes:   make([]Node, 0),
		nodeIdx: make(map[string]Index),
		edges:   make([]Edge, 0),
	}
}

// AddNode inserts a node into the arena. A duplicate id replaces the earlier
// node in place (last-write-wins), keeping the merge precedence rule of the
// ordered loader sources explicit.
func (g *Graph) AddNode(n Node) Index {
	if idx, ok := g.nodeIdx[n.GetID()]; ok {
		g.nodes[idx] = n
		return idx
	}
	idx := Index(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.nodeIdx[n.GetID()] = idx
	return idx
}

// AddEdgePair inserts the reciprocal directed pair (u,v) and (v,u) with equal
// mode, distance and weight. Self-loops are dropped.
func (g *Graph) AddEdgePair(u, v Index, mode pkg.TransportMode, distanceKm, weight float64) {
	if u == v {
		return
	}
	g.edges = append(g.edges,
		NewEdge(u, v, mode, distanceKm, weight),
		NewEdge(v, u, mode, distanceKm, weight),
	)
}

func (g *Graph) GetNode(idx Index) Node {
	return g.nodes[idx]
}

// GetNodeIndex resolves a stable string id to its arena index.
func (g *Graph) GetNodeIndex(id string) (Index, bool) {
	idx, ok := g.nodeIdx[id]
	return idx, ok
}

func (g *Graph) GetEdge(idx Index) Edge {
	return g.edges[idx]
}

func (g *Graph) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) ForNodes(fn func(idx Index, n Node)) {
	for i := range g.nodes {
		fn(Index(i), g.nodes[i])
	}
}

func (g *Graph) ForEdges(fn func(idx Index, e Edge)) {
	for i := range g.edges {
		fn(Index(i), g.edges[i])
	}
}

// CountNodesByKind tallies arena nodes per kind for snapshot summaries.
func (g *Graph) CountNodesByKind() map[pkg.NodeKind]int {
	counts := make(map[pkg.NodeKind]int)
	for i := range g.nodes {
		counts[g.nodes[i].GetKind()]++
	}
	return counts
}

// OutArc is one adjacency entry: the head node plus the weight and the edge
// it came from. The arc references the edge by index to avoid pointer cycles
// between nodes and edges.
type OutArc struct {
	head   Index
	weight float64
	edgeID Index
}

func (a OutArc) GetHead() Index {
	return a.head
}

func (a OutArc) GetWeight() float64 {
	return a.weight
}

func (a OutArc) GetEdgeID() Index {
	return a.edgeID
}

// AdjacencyList materializes the edge list as per-node outgoing arcs. Built
// once per query by the router.
func (g *Graph) AdjacencyList() [][]OutArc {
	adj := make([][]OutArc, len(g.nodes))
	for i := range g.edges {
		e := &g.edges[i]
		adj[e.source] = append(adj[e.source], OutArc{
			head:   e.target,
			weight: e.weight,
			edgeID: Index(i),
		})
	}
	return adj
}
