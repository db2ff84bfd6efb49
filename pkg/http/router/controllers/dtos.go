package controllers

import (
	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/builder"
	da "github.com/freightnav/freightnav/pkg/datastructure"
	"github.com/freightnav/freightnav/pkg/engine/routing"
)

type routeRequest struct {
	SourceID string `json:"source_node" validate:"required"`
	TargetID string `json:"target_node" validate:"required"`
}

// factorsResponse echoes the cost factors and fan-out limits the graph was
// built with.
type factorsResponse struct {
	FactorRoad float64 `json:"factor_road"`
	FactorSea  float64 `json:"factor_sea"`
	FactorAir  float64 `json:"factor_air"`
	KSea       int     `json:"k_sea"`
	KAir       int     `json:"k_air"`
}

func NewFactorsResponse(cfg builder.Config) factorsResponse {
	return factorsResponse{
		FactorRoad: cfg.FactorRoad,
		FactorSea:  cfg.FactorSea,
		FactorAir:  cfg.FactorAir,
		KSea:       cfg.KSea,
		KAir:       cfg.KAir,
	}
}

type nodeResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Kind        string     `json:"kind"`
	Country     *string    `json:"country"`
	ISO3        *string    `json:"iso3"`
	Coordinates [2]float64 `json:"coordinates"`
}

func NewNodeResponse(n da.Node) nodeResponse {
	return nodeResponse{
		ID:          n.GetID(),
		Name:        n.GetName(),
		Kind:        n.GetKind().String(),
		Country:     nullableString(n.GetCountry()),
		ISO3:        nullableString(n.GetISO3()),
		Coordinates: [2]float64{n.GetLon(), n.GetLat()},
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type edgeResponse struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Transport  string  `json:"transport"`
	DistanceKm float64 `json:"distance_km"`
	Weight     float64 `json:"weight"`
}

func NewEdgeResponse(g *da.Graph, e da.Edge) edgeResponse {
	return edgeResponse{
		Source:     g.GetNode(e.GetSource()).GetID(),
		Target:     g.GetNode(e.GetTarget()).GetID(),
		Transport:  e.GetMode().String(),
		DistanceKm: e.GetDistanceKm(),
		Weight:     e.GetWeight(),
	}
}

type graphSummaryResponse struct {
	Countries  int `json:"countries"`
	Seaports   int `json:"seaports"`
	Airports   int `json:"airports"`
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}

type graphResponse struct {
	Factors factorsResponse      `json:"factors"`
	Summary graphSummaryResponse `json:"summary"`
	Nodes   []nodeResponse       `json:"nodes"`
	Edges   []edgeResponse       `json:"edges"`
}

func NewGraphResponse(cfg builder.Config, g *da.Graph) graphResponse {
	nodes := make([]nodeResponse, 0, g.NumberOfNodes())
	g.ForNodes(func(_ da.Index, n da.Node) {
		nodes = append(nodes, NewNodeResponse(n))
	})
	edges := make([]edgeResponse, 0, g.NumberOfEdges())
	g.ForEdges(func(_ da.Index, e da.Edge) {
		edges = append(edges, NewEdgeResponse(g, e))
	})

	counts := g.CountNodesByKind()
	return graphResponse{
		Factors: NewFactorsResponse(cfg),
		Summary: graphSummaryResponse{
			Countries:  counts[pkg.COUNTRY],
			Seaports:   counts[pkg.SEAPORT],
			Airports:   counts[pkg.AIR_CARGO],
			TotalNodes: g.NumberOfNodes(),
			TotalEdges: g.NumberOfEdges(),
		},
		Nodes: nodes,
		Edges: edges,
	}
}

type routeSummaryResponse struct {
	TotalWeight     float64 `json:"total_weight"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	Hops            int     `json:"hops"`
}

type routeResponse struct {
	Factors  factorsResponse      `json:"factors"`
	Source   nodeResponse         `json:"source"`
	Target   nodeResponse         `json:"target"`
	Summary  routeSummaryResponse `json:"summary"`
	Path     []nodeResponse       `json:"path"`
	Legs     []edgeResponse       `json:"legs"`
	Polyline string               `json:"polyline"`
}

func NewRouteResponse(cfg builder.Config, g *da.Graph, result *routing.RouteResult,
	polyline string) routeResponse {
	path := make([]nodeResponse, len(result.Path))
	for i, n := range result.Path {
		path[i] = NewNodeResponse(n)
	}
	legs := make([]edgeResponse, len(result.Legs))
	for i, e := range result.Legs {
		legs[i] = NewEdgeResponse(g, e)
	}

	return routeResponse{
		Factors: NewFactorsResponse(cfg),
		Source:  path[0],
		Target:  path[len(path)-1],
		Summary: routeSummaryResponse{
			TotalWeight:     result.Summary.TotalWeight,
			TotalDistanceKm: result.Summary.TotalDistanceKm,
			Hops:            result.Summary.Hops,
		},
		Path:     path,
		Legs:     legs,
		Polyline: polyline,
	}
}
