package controllers

import (
	"github.com/freightnav/freightnav/pkg/builder"
	"github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/engine/routing"
	"github.com/paulmach/orb/geojson"
)

type TransportService interface {
	BuildGraph(cfg builder.Config) *datastructure.Graph
	Route(cfg builder.Config, sourceID, targetID string) (*datastructure.Graph, *routing.RouteResult, error)
	Countries() *geojson.FeatureCollection
}
