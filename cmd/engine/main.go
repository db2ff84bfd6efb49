package main

import (
	"context"

	"github.com/freightnav/freightnav/pkg/builder"
	"github.com/freightnav/freightnav/pkg/dataset"
	"github.com/freightnav/freightnav/pkg/http"
	"github.com/freightnav/freightnav/pkg/http/usecases"
	"github.com/freightnav/freightnav/pkg/logger"
	"github.com/freightnav/freightnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		// defaults cover every setting; a missing config file is not fatal
		log.Warn("config file not loaded, using defaults", zap.Error(err))
	}

	loader := dataset.NewLoader(log)
	countries := loader.LoadCountries(viper.GetString("COUNTRY_DATASET"),
		uint(viper.GetInt("ADJACENCY_PRECISION")))
	hubs := loader.LoadHubs(viper.GetStringSlice("HUB_DATASETS")...)
	waypoints := loader.LoadSeaWaypoints(viper.GetString("SEA_WAYPOINT_DATASET"))

	graphBuilder := builder.NewBuilder(log, countries, hubs, waypoints)
	transportService := usecases.NewTransportService(log, graphBuilder, countries.Raw)

	api := http.NewServer(log)

	ctx, cleanup := newContext()
	if _, err := api.Use(ctx, log, viper.GetBool("API_RATE_LIMIT"), transportService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	log.Info("Freightnav Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func newContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, cancel
}
