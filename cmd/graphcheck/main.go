package main

import (
	"flag"
	"strings"

	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/builder"
	"github.com/freightnav/freightnav/pkg/dataset"
	"github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/logger"
	"go.uber.org/zap"
)

// graphcheck loads the configured datasets, builds one graph with the
// default factors/limits, and logs what came out. Run it after swapping a
// dataset to see how much of it survived loading.

var (
	countryPath  = flag.String("countries", "./data/world_countries.geojson", "country boundary dataset")
	hubPaths     = flag.String("hubs", "./data/country_hubs.geojson,./data/extra_hubs.geojson,./data/city_hubs.geojson", "comma-separated hub datasets, in precedence order")
	waypointPath = flag.String("waypoints", "./data/sea_waypoints.geojson", "sea waypoint dataset")
	precision    = flag.Uint("precision", pkg.DEFAULT_ADJACENCY_PRECISION, "boundary quantization precision in decimal degrees")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	loader := dataset.NewLoader(log)
	countries := loader.LoadCountries(*countryPath, *precision)
	hubs := loader.LoadHubs(splitPaths(*hubPaths)...)
	waypoints := loader.LoadSeaWaypoints(*waypointPath)

	graph := builder.NewBuilder(log, countries, hubs, waypoints).Build(builder.DefaultConfig())

	counts := graph.CountNodesByKind()
	modeCounts := make(map[pkg.TransportMode]int)
	graph.ForEdges(func(_ datastructure.Index, e datastructure.Edge) {
		modeCounts[e.GetMode()]++
	})

	log.Info("graph built",
		zap.Int("countries", counts[pkg.COUNTRY]),
		zap.Int("seaports", counts[pkg.SEAPORT]),
		zap.Int("airports", counts[pkg.AIR_CARGO]),
		zap.Int("cities", counts[pkg.CITY]),
		zap.Int("sea_waypoints", counts[pkg.SEA_WAYPOINT]),
		zap.Int("total_nodes", graph.NumberOfNodes()),
		zap.Int("total_edges", graph.NumberOfEdges()),
		zap.Int("road_edges", modeCounts[pkg.ROAD]),
		zap.Int("sea_edges", modeCounts[pkg.SEA]),
		zap.Int("air_edges", modeCounts[pkg.AIR]),
	)
}

func splitPaths(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
