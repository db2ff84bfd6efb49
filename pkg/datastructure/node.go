package datastructure

import (
	"github.com/freightnav/freightnav/pkg"
	"github.com/paulmach/orb"
)

// Index is the integer handle into the graph's node arena and edge list.
type Index int32

const INVALID_INDEX Index = -1

// Node is a routable point: a country centroid, a seaport, an air-cargo
// terminal, a city, or a sea waypoint. Country and ISO3 are empty for sea
// waypoints.
type Node struct {
	id      string
	name    string
	kind    pkg.NodeKind
	country string
	iso3    string
	point   orb.Point
}

func NewNode(id, name string, kind pkg.NodeKind, country, iso3 string, point orb.Point) Node {
	return Node{
		id:      id,
		name:    name,
		kind:    kind,
		country: country,
		iso3:    iso3,
		point:   point,
	}
}

func (n Node) GetID() string {
	return n.id
}

func (n Node) GetName() string {
	return n.name
}

func (n Node) GetKind() pkg.NodeKind {
	return n.kind
}

func (n Node) GetCountry() string {
	return n.country
}

func (n Node) GetISO3() string {
	return n.iso3
}

func (n Node) GetPoint() orb.Point {
	return n.point
}

func (n Node) GetLon() float64 {
	return n.point.Lon()
}

func (n Node) GetLat() float64 {
	return n.point.Lat()
}
