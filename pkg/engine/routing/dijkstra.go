package routing

import (
	"github.com/freightnav/freightnav/pkg"
	da "github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/util"
)

// Dijkstra runs a single-source search over one built graph snapshot. The
// search state is scoped to a single query; a new Dijkstra is constructed
// per route request.
type Dijkstra struct {
	graph *da.Graph
	adj   [][]da.OutArc

	dist     []float64
	prev     []da.Index
	prevEdge []da.Index
	visited  []bool

	heapNodes []*da.PriorityQueueNode[da.Index]
	pq        *da.MinHeap[da.Index]
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		adj:   graph.AdjacencyList(),
		pq:    da.NewFourAryHeap[da.Index](),
	}
}

// Route computes the least-cost path between two node ids. Unknown ids fail
// with ErrNotFound naming the id; a disconnected target fails with
// ErrNoRoute, a legitimate topology outcome, not an input defect.
func (d *Dijkstra) Route(sourceID, targetID string) (*RouteResult, error) {
	source, ok := d.graph.GetNodeIndex(sourceID)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "node %s not found", sourceID)
	}
	target, ok := d.graph.GetNodeIndex(targetID)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "node %s not found", targetID)
	}

	d.preallocate()

	d.dist[source] = 0
	sourceNode := da.NewPriorityQueueNode(0, source)
	d.heapNodes[source] = sourceNode
	d.pq.Insert(sourceNode)

	for !d.pq.IsEmpty() {
		minNode, err := d.pq.ExtractMin()
		if err != nil {
			break
		}
		u := minNode.GetItem()
		if d.visited[u] {
			continue
		}
		d.visited[u] = true

		// target dequeued means its distance is confirmed shortest.
		if u == target {
			break
		}

		d.relaxOutArcs(u)
	}

	if d.dist[target] >= pkg.INF_WEIGHT {
		return nil, util.WrapErrorf(nil, util.ErrNoRoute, "no path from %s to %s", sourceID, targetID)
	}

	return d.reconstruct(source, target), nil
}

func (d *Dijkstra) relaxOutArcs(u da.Index) {
	for _, arc := range d.adj[u] {
		v := arc.GetHead()
		if d.visited[v] {
			continue
		}

		newDist := d.dist[u] + arc.GetWeight()
		if newDist >= d.dist[v] {
			continue
		}

		d.dist[v] = newDist
		d.prev[v] = u
		d.prevEdge[v] = arc.GetEdgeID()

		if hn := d.heapNodes[v]; hn != nil && hn.GetPos() >= 0 {
			// newDist < dist[v] <= the node's current rank, so this cannot fail
			_ = d.pq.DecreaseKey(hn, newDist)
		} else {
			hn := da.NewPriorityQueueNode(newDist, v)
			d.heapNodes[v] = hn
			d.pq.Insert(hn)
		}
	}
}

// reconstruct follows predecessor links from target back to source, then
// reverses both the node path and the edge legs into travel order.
func (d *Dijkstra) reconstruct(source, target da.Index) *RouteResult {
	pathRev := []da.Node{d.graph.GetNode(target)}
	legsRev := []da.Edge{}

	totalDistance := 0.0
	for at := target; at != source; at = d.prev[at] {
		leg := d.graph.GetEdge(d.prevEdge[at])
		legsRev = append(legsRev, leg)
		totalDistance += leg.GetDistanceKm()
		pathRev = append(pathRev, d.graph.GetNode(d.prev[at]))
	}

	path := util.ReverseG(pathRev)
	legs := util.ReverseG(legsRev)

	return &RouteResult{
		Path: path,
		Legs: legs,
		Summary: Summary{
			TotalWeight:     d.dist[target],
			TotalDistanceKm: totalDistance,
			Hops:            len(path) - 1,
		},
	}
}

func (d *Dijkstra) preallocate() {
	n := d.graph.NumberOfNodes()
	d.dist = make([]float64, n)
	d.prev = make([]da.Index, n)
	d.prevEdge = make([]da.Index, n)
	d.visited = make([]bool, n)
	d.heapNodes = make([]*da.PriorityQueueNode[da.Index], n)
	for i := range d.dist {
		d.dist[i] = pkg.INF_WEIGHT
		d.prev[i] = da.INVALID_INDEX
		d.prevEdge[i] = da.INVALID_INDEX
	}
	d.pq.Preallocate(n)
}
