package generator

import "math/rand"

// Deterministic defaults.
const (
	defaultSeed          int64 = 1   // used when the caller passes seed 0
	defaultMaxWeight           = 100 // upper bound for a single weight
	defaultMaxValue            = 100 // upper bound for a single value
	defaultCapacityRatio       = 0.7 // share of the nominal weight budget
	defaultCapacityUnit        = 70  // nominal weight budget per item
)

// config aggregates all generator knobs. Options mutate it in order.
type config struct {
	rng           *rand.Rand
	maxWeight     int
	maxValue      int
	capacityRatio float64
	capacity      int // fixed capacity; <0 ⇒ derive from ratio
}

// newConfig applies opts over the defaults. A nil rng is resolved to the
// default seed here so callers never see a nil source.
func newConfig(opts ...Option) config {
	cfg := config{
		maxWeight:     defaultMaxWeight,
		maxValue:      defaultMaxValue,
		capacityRatio: defaultCapacityRatio,
		capacity:      -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
