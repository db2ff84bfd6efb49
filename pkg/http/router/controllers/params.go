package controllers

import (
	"net/url"
	"strconv"

	"github.com/freightnav/freightnav/pkg/builder"
	"github.com/freightnav/freightnav/pkg/util"
)

// parseFloatDefault falls back to the documented default on a missing or
// unparseable value; a bad factor never rejects the request.
func parseFloatDefault(query url.Values, key string, def float64) float64 {
	raw := query.Get(key)
	if raw == "" {
		return def
	}
	val, err := util.StringToFloat64(raw)
	if err != nil {
		return def
	}
	return val
}

func parseIntDefault(query url.Values, key string, def int) int {
	raw := query.Get(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}

// parseBuilderConfig reads the optional factor/limit parameters, each
// independently defaulted.
func parseBuilderConfig(query url.Values) builder.Config {
	def := builder.DefaultConfig()
	return builder.Config{
		FactorRoad: parseFloatDefault(query, "factor_road", def.FactorRoad),
		FactorSea:  parseFloatDefault(query, "factor_sea", def.FactorSea),
		FactorAir:  parseFloatDefault(query, "factor_air", def.FactorAir),
		KSea:       parseIntDefault(query, "k_sea", def.KSea),
		KAir:       parseIntDefault(query, "k_air", def.KAir),
	}
}
