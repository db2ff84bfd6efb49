package builder

import (
	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/dataset"
	da "github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/geo"
	"github.com/freightnav/freightnav/pkg/spatialindex"
	"go.uber.org/zap"
)

// Builder composes loader outputs into the unified routing graph. It holds
// only immutable loaded data: every Build call performs a full rebuild from
// scratch with the supplied factors and limits, so concurrent queries never
// share mutable state.
type Builder struct {
	log       *zap.Logger
	countries *dataset.CountryData
	hubs      []da.Node
	waypoints *dataset.SeaWaypointData
}

func NewBuilder(log *zap.Logger, countries *dataset.CountryData, hubs []da.Node,
	waypoints *dataset.SeaWaypointData) *Builder {
	return &Builder{
		log:       log,
		countries: countries,
		hubs:      hubs,
		waypoints: waypoints,
	}
}

// Build assembles the node arena (countries, hubs and sea waypoints) and
// derives the edge list from the per-mode connection rules. Each rule
// inserts reciprocal edge pairs; dedup applies within a rule only, so two
// independent rules may create parallel edges between the same endpoints.
func (b *Builder) Build(cfg Config) *da.Graph {
	g := da.NewGraph()

	for _, n := range b.countries.Nodes {
		g.AddNode(n)
	}
	for _, n := range b.hubs {
		g.AddNode(n)
	}
	for _, n := range b.waypoints.Nodes {
		g.AddNode(n)
	}

	seaports := b.indexByKind(g, pkg.SEAPORT)
	airports := b.indexByKind(g, pkg.AIR_CARGO)
	waypointIndex := b.indexByKind(g, pkg.SEA_WAYPOINT)

	b.connectCountryHubs(g, cfg, seaports, airports)
	b.connectCities(g, cfg, seaports, airports)
	b.connectLandBorders(g, cfg)
	b.connectSea(g, cfg, seaports, waypointIndex)
	b.connectAir(g, cfg, airports)

	return g
}

func (b *Builder) indexByKind(g *da.Graph, kind pkg.NodeKind) *spatialindex.NodeIndex {
	index := spatialindex.NewNodeIndex()
	g.ForNodes(func(idx da.Index, n da.Node) {
		if n.GetKind() == kind {
			index.Insert(n.GetPoint(), idx)
		}
	})
	return index
}

// addPair inserts the reciprocal weighted pair between two arena nodes.
func (b *Builder) addPair(g *da.Graph, u, v da.Index, mode pkg.TransportMode, cfg Config) {
	nu, nv := g.GetNode(u), g.GetNode(v)
	dist := geo.DistanceKm(nu.GetLon(), nu.GetLat(), nv.GetLon(), nv.GetLat())
	g.AddEdgePair(u, v, mode, dist, dist*cfg.FactorFor(mode))
}

// sameISO3 admits only nodes owned by the given country code.
func sameISO3(g *da.Graph, iso3 string) func(da.Index) bool {
	return func(idx da.Index) bool {
		return g.GetNode(idx).GetISO3() == iso3
	}
}

// connectCountryHubs links each country to its single nearest seaport and,
// independently, its single nearest airport sharing the country's ISO3.
func (b *Builder) connectCountryHubs(g *da.Graph, cfg Config,
	seaports, airports *spatialindex.NodeIndex) {
	g.ForNodes(func(idx da.Index, n da.Node) {
		if n.GetKind() != pkg.COUNTRY {
			return
		}
		for _, port := range seaports.KNearest(n.GetPoint(), 1, sameISO3(g, n.GetISO3())) {
			b.addPair(g, idx, port, pkg.ROAD, cfg)
		}
		for _, airport := range airports.KNearest(n.GetPoint(), 1, sameISO3(g, n.GetISO3())) {
			b.addPair(g, idx, airport, pkg.ROAD, cfg)
		}
	})
}

// connectCities links each city hub to its owning country node and to the
// nearest same-country seaport and airport, making cities usable as
// alternative route endpoints.
func (b *Builder) connectCities(g *da.Graph, cfg Config,
	seaports, airports *spatialindex.NodeIndex) {
	g.ForNodes(func(idx da.Index, n da.Node) {
		if n.GetKind() != pkg.CITY {
			return
		}
		if countryIdx, ok := g.GetNodeIndex(pkg.COUNTRY_NODE_PREFIX + n.GetISO3()); ok {
			b.addPair(g, idx, countryIdx, pkg.ROAD, cfg)
		}
		for _, port := range seaports.KNearest(n.GetPoint(), 1, sameISO3(g, n.GetISO3())) {
			b.addPair(g, idx, port, pkg.ROAD, cfg)
		}
		for _, airport := range airports.KNearest(n.GetPoint(), 1, sameISO3(g, n.GetISO3())) {
			b.addPair(g, idx, airport, pkg.ROAD, cfg)
		}
	})
}

// connectLandBorders declares two countries land-adjacent iff their
// quantized boundary vertex sets share at least one rounded coordinate.
// This is a coordinate-matching approximation of shared-border detection,
// sensitive to the quantization precision, not a topological test.
func (b *Builder) connectLandBorders(g *da.Graph, cfg Config) {
	countries := b.countries.Nodes
	for i := 0; i < len(countries); i++ {
		for j := i + 1; j < len(countries); j++ {
			a, c := countries[i], countries[j]
			if !boundarySetsIntersect(
				b.countries.BoundaryPoints[a.GetID()],
				b.countries.BoundaryPoints[c.GetID()],
			) {
				continue
			}
			aIdx, aOk := g.GetNodeIndex(a.GetID())
			cIdx, cOk := g.GetNodeIndex(c.GetID())
			if aOk && cOk {
				b.addPair(g, aIdx, cIdx, pkg.ROAD, cfg)
			}
		}
	}
}

func boundarySetsIntersect(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for key := range a {
		if _, ok := b[key]; ok {
			return true
		}
	}
	return false
}

// connectSea wires sea connectivity. With a waypoint network present, each
// seaport attaches to its nearest waypoints within the distance cutoff and
// the declared waypoint adjacencies become sea edges; ports never connect
// directly in this mode. Without a network, ports fall back to connecting
// their kSea nearest peers directly.
func (b *Builder) connectSea(g *da.Graph, cfg Config,
	seaports, waypointIndex *spatialindex.NodeIndex) {
	if waypointIndex.Size() > 0 {
		g.ForNodes(func(idx da.Index, n da.Node) {
			if n.GetKind() != pkg.SEAPORT {
				return
			}
			links := waypointIndex.NearestWithin(n.GetPoint(), cfg.waypointLinkLimit(),
				pkg.SEA_WAYPOINT_LINK_CUTOFF_KM, nil)
			for _, wp := range links {
				b.addPair(g, idx, wp, pkg.SEA, cfg)
			}
		})

		for _, pair := range b.waypoints.Pairs {
			uIdx, uOk := g.GetNodeIndex(pair[0])
			vIdx, vOk := g.GetNodeIndex(pair[1])
			if uOk && vOk {
				b.addPair(g, uIdx, vIdx, pkg.SEA, cfg)
			}
		}
		return
	}

	b.connectKNearestPeers(g, cfg, seaports, pkg.SEAPORT, pkg.SEA, cfg.KSea)
}

// connectAir links every airport to its kAir nearest other airports, with
// no distance cutoff.
func (b *Builder) connectAir(g *da.Graph, cfg Config, airports *spatialindex.NodeIndex) {
	b.connectKNearestPeers(g, cfg, airports, pkg.AIR_CARGO, pkg.AIR, cfg.KAir)
}

// connectKNearestPeers connects every node of the given kind to its k
// nearest peers of the same kind, deduplicating undirected pairs so
// overlapping nearest sets only produce one reciprocal edge pair.
func (b *Builder) connectKNearestPeers(g *da.Graph, cfg Config, index *spatialindex.NodeIndex,
	kind pkg.NodeKind, mode pkg.TransportMode, k int) {
	seen := make(map[[2]da.Index]struct{})
	g.ForNodes(func(idx da.Index, n da.Node) {
		if n.GetKind() != kind {
			return
		}
		peers := index.KNearest(n.GetPoint(), k, func(other da.Index) bool {
			return other != idx
		})
		for _, peer := range peers {
			key := sortedIndexPair(idx, peer)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			b.addPair(g, idx, peer, mode, cfg)
		}
	})
}

func sortedIndexPair(a, b da.Index) [2]da.Index {
	if a > b {
		a, b = b, a
	}
	return [2]da.Index{a, b}
}
