package util

import (
	"fmt"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	viper.SetDefault("COUNTRY_DATASET", "./data/world_countries.geojson")
	viper.SetDefault("HUB_DATASETS", []string{
		"./data/country_hubs.geojson",
		"./data/extra_hubs.geojson",
		"./data/city_hubs.geojson",
	})
	viper.SetDefault("SEA_WAYPOINT_DATASET", "./data/sea_waypoints.geojson")
	viper.SetDefault("ADJACENCY_PRECISION", 3)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
