package dataset

import (
	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// SeaWaypointData is the waypoint loader output: the waypoint nodes plus
// the declared undirected adjacency pairs, each unordered pair kept once.
type SeaWaypointData struct {
	Nodes []datastructure.Node
	Pairs [][2]string
}

func emptySeaWaypointData() *SeaWaypointData {
	return &SeaWaypointData{
		Nodes: []datastructure.Node{},
		Pairs: [][2]string{},
	}
}

// LoadSeaWaypoints reads the shipping-lane waypoint network: Point features
// carrying a "neighbors" id-list property. Waypoints have no owning country.
func (l *Loader) LoadSeaWaypoints(path string) *SeaWaypointData {
	fc, ok := l.readFeatureCollection(path)
	if !ok {
		return emptySeaWaypointData()
	}

	data := &SeaWaypointData{
		Nodes: make([]datastructure.Node, 0, len(fc.Features)),
		Pairs: make([][2]string, 0),
	}
	seenPair := make(map[[2]string]struct{})

	for _, feat := range fc.Features {
		point, ok := feat.Geometry.(orb.Point)
		if !ok {
			continue
		}

		id, ok := stringProperty(feat.Properties, "id")
		if !ok {
			id, ok = stringProperty(feat.Properties, "name")
		}
		if !ok {
			continue
		}

		name, ok := stringProperty(feat.Properties, "name")
		if !ok {
			name = id
		}

		data.Nodes = append(data.Nodes, datastructure.NewNode(
			id, name, pkg.SEA_WAYPOINT, "", "", point,
		))

		for _, neighborID := range neighborIDs(feat.Properties) {
			if neighborID == id {
				continue
			}
			key := sortedPair(id, neighborID)
			if _, dup := seenPair[key]; dup {
				continue
			}
			seenPair[key] = struct{}{}
			data.Pairs = append(data.Pairs, key)
		}
	}

	l.log.Info("sea waypoints loaded", zap.String("path", path),
		zap.Int("waypoints", len(data.Nodes)), zap.Int("links", len(data.Pairs)))
	return data
}

func neighborIDs(props geojson.Properties) []string {
	raw, ok := props["neighbors"]
	if !ok {
		return nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}

func sortedPair(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
