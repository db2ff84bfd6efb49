package pkg

// TransportMode enum for edge cost classes.
type TransportMode uint8

const (
	ROAD TransportMode = iota
	SEA
	AIR
)

func (m TransportMode) String() string {
	switch m {
	case ROAD:
		return "road"
	case SEA:
		return "sea"
	case AIR:
		return "air"
	default:
		return "unknown"
	}
}

// NodeKind enum for routable point categories.
type NodeKind uint8

const (
	COUNTRY NodeKind = iota
	SEAPORT
	AIR_CARGO
	CITY
	SEA_WAYPOINT
	HUB
)

func (k NodeKind) String() string {
	switch k {
	case COUNTRY:
		return "country"
	case SEAPORT:
		return "seaport"
	case AIR_CARGO:
		return "air_cargo"
	case CITY:
		return "city"
	case SEA_WAYPOINT:
		return "sea_waypoint"
	case HUB:
		return "hub"
	default:
		return "unknown"
	}
}

// ParseNodeKind maps the hub dataset "kind" property onto the enum.
// unrecognized values fall back to the generic HUB kind.
func ParseNodeKind(kind string) NodeKind {
	switch kind {
	case "country":
		return COUNTRY
	case "seaport":
		return SEAPORT
	case "air_cargo":
		return AIR_CARGO
	case "city":
		return CITY
	case "sea_waypoint":
		return SEA_WAYPOINT
	default:
		return HUB
	}
}

const (
	INF_WEIGHT float64 = 1e15

	// per-mode cost multipliers applied to great-circle distance.
	DEFAULT_FACTOR_ROAD = 1.0
	DEFAULT_FACTOR_SEA  = 0.5
	DEFAULT_FACTOR_AIR  = 5.0

	// fan-out limits: how many nearest alternatives get connected per node.
	DEFAULT_K_SEA = 3
	DEFAULT_K_AIR = 3

	// seaports only attach to waypoints reachable within this great-circle cutoff.
	SEA_WAYPOINT_LINK_CUTOFF_KM = 20000.0

	// hard cap on waypoint links per seaport, regardless of k_sea.
	MAX_SEA_WAYPOINT_LINKS = 3

	// land adjacency quantization: boundary vertices rounded to this many
	// decimal degrees before set intersection.
	DEFAULT_ADJACENCY_PRECISION = 3

	COUNTRY_NODE_PREFIX = "COUNTRY_"
)
