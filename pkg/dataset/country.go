package dataset

import (
	"strings"

	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/geo"
	"github.com/freightnav/freightnav/pkg/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// property-name aliases probed in priority order. Natural Earth style
// datasets spell the ISO3 code several ways, and some features carry the
// "-99"/"UNK" placeholders instead of a real code.
var (
	iso3Aliases = []string{"ISO_A3", "ADM0_A3", "ISO_A3_EH", "SOV_A3", "iso_a3", "adm0_a3"}
	nameAliases = []string{"ADMIN", "NAME", "NAME_LONG", "name", "admin"}

	iso3Sentinels = map[string]struct{}{
		"-99": {},
		"UNK": {},
	}
)

// CountryData is the country loader output: one node per resolvable
// country plus, for the land-adjacency heuristic, each country's quantized
// boundary vertex set. Raw keeps the decoded collection for map-rendering
// passthrough.
type CountryData struct {
	Nodes []datastructure.Node

	// BoundaryPoints maps node id to the set of quantized "<lon>,<lat>"
	// keys from the first ring of every constituent polygon.
	BoundaryPoints map[string]map[string]struct{}

	Raw *geojson.FeatureCollection
}

func emptyCountryData() *CountryData {
	return &CountryData{
		Nodes:          []datastructure.Node{},
		BoundaryPoints: map[string]map[string]struct{}{},
		Raw:            geojson.NewFeatureCollection(),
	}
}

// LoadCountries builds country nodes from a boundary-polygon dataset.
// Features with no resolvable ISO3 or centroid are silently dropped.
func (l *Loader) LoadCountries(path string, precision uint) *CountryData {
	fc, ok := l.readFeatureCollection(path)
	if !ok {
		return emptyCountryData()
	}

	data := &CountryData{
		Nodes:          make([]datastructure.Node, 0, len(fc.Features)),
		BoundaryPoints: make(map[string]map[string]struct{}, len(fc.Features)),
		Raw:            fc,
	}

	dropped := 0
	for _, feat := range fc.Features {
		iso3, ok := resolveProperty(feat.Properties, iso3Aliases, iso3Sentinels)
		if !ok {
			dropped++
			continue
		}
		iso3 = strings.ToUpper(iso3)

		centroid, ok := geo.Centroid(feat.Geometry)
		if !ok {
			dropped++
			continue
		}

		name, ok := resolveProperty(feat.Properties, nameAliases, nil)
		if !ok {
			name = iso3
		}

		id := pkg.COUNTRY_NODE_PREFIX + iso3
		data.Nodes = append(data.Nodes, datastructure.NewNode(
			id, name, pkg.COUNTRY, name, iso3, centroid,
		))
		data.BoundaryPoints[id] = quantizeBoundary(feat, precision)
	}

	if dropped > 0 {
		l.log.Info("country features dropped during load",
			zap.String("path", path), zap.Int("dropped", dropped))
	}
	l.log.Info("countries loaded", zap.String("path", path), zap.Int("count", len(data.Nodes)))
	return data
}

// quantizeBoundary collects the first ring of every constituent polygon,
// rounded to precision decimal degrees. Shared rounded vertices between two
// countries are what the builder treats as a land border.
func quantizeBoundary(feat *geojson.Feature, precision uint) map[string]struct{} {
	points := map[string]struct{}{}
	for _, ring := range firstRings(feat) {
		for _, p := range ring {
			points[util.QuantizeCoordKey(p.Lon(), p.Lat(), precision)] = struct{}{}
		}
	}
	return points
}

func firstRings(feat *geojson.Feature) []orb.Ring {
	switch geom := feat.Geometry.(type) {
	case orb.Polygon:
		if len(geom) == 0 {
			return nil
		}
		return []orb.Ring{geom[0]}
	case orb.MultiPolygon:
		rings := make([]orb.Ring, 0, len(geom))
		for _, poly := range geom {
			if len(poly) > 0 {
				rings = append(rings, poly[0])
			}
		}
		return rings
	default:
		return nil
	}
}
