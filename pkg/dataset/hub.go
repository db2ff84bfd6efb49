package dataset

import (
	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// LoadHubs merges zero or more point-feature datasets into port/airport/city
// nodes. Later datasets override earlier ones on id collisions, so the
// caller controls precedence through load order (country hubs, then extra
// hubs, then city hubs). The merge is an explicit ordered-map insertion: the
// winning node keeps its first insertion position.
func (l *Loader) LoadHubs(paths ...string) []datastructure.Node {
	nodes := make([]datastructure.Node, 0)
	position := make(map[string]int)

	for _, path := range paths {
		fc, ok := l.readFeatureCollection(path)
		if !ok {
			continue
		}

		loaded := 0
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

			kind := pkg.HUB
			if kindStr, ok := stringProperty(feat.Properties, "kind"); ok {
				kind = pkg.ParseNodeKind(kindStr)
			}

			country, _ := stringProperty(feat.Properties, "country")
			iso3, _ := stringProperty(feat.Properties, "iso3")

			node := datastructure.NewNode(id, name, kind, country, iso3, point)
			if pos, exists := position[id]; exists {
				nodes[pos] = node
			} else {
				position[id] = len(nodes)
				nodes = append(nodes, node)
			}
			loaded++
		}
		l.log.Info("hub dataset loaded", zap.String("path", path), zap.Int("features", loaded))
	}

	return nodes
}
