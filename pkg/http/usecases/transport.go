package usecases

import (
	"github.com/freightnav/freightnav/pkg/builder"
	da "github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/engine/routing"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// TransportService answers graph snapshot and route queries. Every query
// triggers a fresh build from the immutable loaded datasets with the
// query-supplied factors and limits; nothing is cached between requests.
type TransportService struct {
	log       *zap.Logger
	builder   *builder.Builder
	countries *geojson.FeatureCollection
}

func NewTransportService(log *zap.Logger, b *builder.Builder,
	countries *geojson.FeatureCollection) *TransportService {
	return &TransportService{
		log:       log,
		builder:   b,
		countries: countries,
	}
}

func (s *TransportService) BuildGraph(cfg builder.Config) *da.Graph {
	graph := s.builder.Build(cfg)
	s.log.Debug("graph built",
		zap.Int("nodes", graph.NumberOfNodes()),
		zap.Int("edges", graph.NumberOfEdges()))
	return graph
}

// Route builds a graph for the given config and runs Dijkstra between the
// two node ids. The graph the route was computed on is returned alongside
// the result so callers can resolve leg endpoints.
func (s *TransportService) Route(cfg builder.Config, sourceID, targetID string) (*da.Graph, *routing.RouteResult, error) {
	graph := s.BuildGraph(cfg)

	search := routing.NewDijkstra(graph)
	result, err := search.Route(sourceID, targetID)
	if err != nil {
		return nil, nil, err
	}
	return graph, result, nil
}

func (s *TransportService) Countries() *geojson.FeatureCollection {
	return s.countries
}
