package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/geo"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/paulmach/orb"

	helper "github.com/freightnav/freightnav/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type transportAPI struct {
	transportService TransportService
	log              *zap.Logger
}

func New(transportService TransportService, log *zap.Logger) *transportAPI {
	return &transportAPI{
		transportService: transportService,
		log:              log,
	}
}

func (api *transportAPI) Routes(group *helper.RouteGroup) {
	group.GET("/graph", api.graphSnapshot)
	group.GET("/route", api.route)
	group.GET("/countries", api.countries)
}

// graphSnapshot builds a fresh graph with the requested factors/limits and
// returns the full node list, edge list and summary counts.
func (api *transportAPI) graphSnapshot(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	cfg := parseBuilderConfig(r.URL.Query())

	graph := api.transportService.BuildGraph(cfg)

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewGraphResponse(cfg, graph)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// resolveEndpoint picks the explicit node id form when present, otherwise
// translates an ISO3 code to its country node id.
func resolveEndpoint(query map[string][]string, nodeKey, iso3Key string) string {
	if vals := query[nodeKey]; len(vals) > 0 && strings.TrimSpace(vals[0]) != "" {
		return strings.TrimSpace(vals[0])
	}
	if vals := query[iso3Key]; len(vals) > 0 && strings.TrimSpace(vals[0]) != "" {
		return pkg.COUNTRY_NODE_PREFIX + strings.ToUpper(strings.TrimSpace(vals[0]))
	}
	return ""
}

// route answers a point-to-point least-cost query over a freshly built
// graph.
func (api *transportAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	cfg := parseBuilderConfig(query)

	request := routeRequest{
		SourceID: resolveEndpoint(query, "source_node", "source_iso3"),
		TargetID: resolveEndpoint(query, "target_node", "target_iso3"),
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v (provide source_node/target_node or source_iso3/target_iso3)", vvString))
		return
	}

	graph, result, err := api.transportService.Route(cfg, request.SourceID, request.TargetID)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	pathPoints := make([]orb.Point, len(result.Path))
	for i, n := range result.Path {
		pathPoints[i] = n.GetPoint()
	}
	pathPolyline := geo.PolylineFromPoints(pathPoints)

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewRouteResponse(cfg, graph, result, pathPolyline)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// countries serves the raw boundary collection for map rendering; an empty
// collection when the dataset is absent.
func (api *transportAPI) countries(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	fc := api.transportService.Countries()

	js, err := fc.MarshalJSON()
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(js)
}
