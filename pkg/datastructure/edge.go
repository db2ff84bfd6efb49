package datastructure

import (
	"github.com/freightnav/freightnav/pkg"
)

// Edge is one direction of a weighted connection between two arena nodes.
// Edges are always inserted as reciprocal pairs, so the graph behaves as an
// undirected multigraph stored in directed form.
type Edge struct {
	source     Index
	target     Index
	mode       pkg.TransportMode
	distanceKm float64
	weight     float64
}

func NewEdge(source, target Index, mode pkg.TransportMode, distanceKm, weight float64) Edge {
	return Edge{
		source:     source,
		target:     target,
		mode:       mode,
		distanceKm: distanceKm,
		weight:     weight,
	}
}

func (e Edge) GetSource() Index {
	return e.source
}

func (e Edge) GetTarget() Index {
	return e.target
}

func (e Edge) GetMode() pkg.TransportMode {
	return e.mode
}

func (e Edge) GetDistanceKm() float64 {
	return e.distanceKm
}

func (e Edge) GetWeight() float64 {
	return e.weight
}
