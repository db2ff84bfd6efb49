package builder

import (
	"github.com/freightnav/freightnav/pkg"
	"github.com/freightnav/freightnav/pkg/util"
)

// Config carries the per-query cost factors and fan-out limits. A fresh
// Config is supplied on every build, so changing a factor is reflected
// deterministically in the next build without any cache invalidation.
type Config struct {
	FactorRoad float64
	FactorSea  float64
	FactorAir  float64
	KSea       int
	KAir       int
}

func DefaultConfig() Config {
	return Config{
		FactorRoad: pkg.DEFAULT_FACTOR_ROAD,
		FactorSea:  pkg.DEFAULT_FACTOR_SEA,
		FactorAir:  pkg.DEFAULT_FACTOR_AIR,
		KSea:       pkg.DEFAULT_K_SEA,
		KAir:       pkg.DEFAULT_K_AIR,
	}
}

// FactorFor converts physical distance into routing cost per transport mode.
func (c Config) FactorFor(mode pkg.TransportMode) float64 {
	switch mode {
	case pkg.SEA:
		return c.FactorSea
	case pkg.AIR:
		return c.FactorAir
	default:
		return c.FactorRoad
	}
}

// waypointLinkLimit caps how many waypoints a seaport attaches to:
// min(3, max(1, kSea)).
func (c Config) waypointLinkLimit() int {
	return util.MinInt(pkg.MAX_SEA_WAYPOINT_LINKS, util.MaxInt(1, c.KSea))
}
