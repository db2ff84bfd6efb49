package spatialindex

import (
	"sort"

	"github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/geo"
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// NodeIndex is an r-tree over node coordinates used by the graph builder's
// nearest-selection rules (nearest same-country port, k nearest airports,
// waypoint attachment).
type NodeIndex struct {
	tr     *rtree.RTreeG[datastructure.Index]
	points map[datastructure.Index]orb.Point
}

func NewNodeIndex() *NodeIndex {
	var tr rtree.RTreeG[datastructure.Index]
	return &NodeIndex{
		tr:     &tr,
		points: make(map[datastructure.Index]orb.Point),
	}
}

func (ni *NodeIndex) Insert(point orb.Point, idx datastructure.Index) {
	p := [2]float64{point.Lon(), point.Lat()}
	ni.tr.Insert(p, p, idx)
	ni.points[idx] = point
}

func (ni *NodeIndex) Size() int {
	return len(ni.points)
}

type candidate struct {
	idx  datastructure.Index
	dist float64
}

// KNearest returns up to k node indices nearest to point by great-circle
// distance, restricted to nodes the accept predicate admits (nil accepts
// all). The r-tree streams candidates in planar degree-space order, so the
// first k*4+16 accepted candidates are re-ranked by haversine before
// cutting to k; ties keep the stream's stable order, first encountered
// nearest wins.
//
// Planar and great-circle order disagree by at most a 1/cos(lat) factor on
// the longitude axis, so the window covers the true k nearest up to about
// 75 degrees latitude at the worst-case density skew. Planar degree
// distance is not a lower bound on kilometres near the poles, which rules
// out an exact streaming cutoff in this coordinate space.
func (ni *NodeIndex) KNearest(point orb.Point, k int, accept func(datastructure.Index) bool) []datastructure.Index {
	if k <= 0 || len(ni.points) == 0 {
		return nil
	}

	oversample := k*4 + 16
	cands := make([]candidate, 0, oversample)

	q := [2]float64{point.Lon(), point.Lat()}
	ni.tr.Nearby(
		rtree.BoxDist[float64, datastructure.Index](q, q, nil),
		func(min, max [2]float64, data datastructure.Index, dist float64) bool {
			if accept != nil && !accept(data) {
				return true
			}
			cands = append(cands, candidate{
				idx:  data,
				dist: ni.DistanceKmTo(point, data),
			})
			return len(cands) < oversample
		})

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].dist < cands[j].dist
	})

	if len(cands) > k {
		cands = cands[:k]
	}
	out := make([]datastructure.Index, len(cands))
	for i, c := range cands {
		out[i] = c.idx
	}
	return out
}

// NearestWithin returns the k nearest accepted nodes whose great-circle
// distance does not exceed cutoffKm.
func (ni *NodeIndex) NearestWithin(point orb.Point, k int, cutoffKm float64, accept func(datastructure.Index) bool) []datastructure.Index {
	nearest := ni.KNearest(point, k, accept)
	out := make([]datastructure.Index, 0, len(nearest))
	for _, idx := range nearest {
		if ni.DistanceKmTo(point, idx) <= cutoffKm {
			out = append(out, idx)
		}
	}
	return out
}

// DistanceKmTo is the great-circle distance from point to an indexed node.
func (ni *NodeIndex) DistanceKmTo(point orb.Point, idx datastructure.Index) float64 {
	p := ni.points[idx]
	return geo.DistanceKm(point.Lon(), point.Lat(), p.Lon(), p.Lat())
}
