// SPDX-License-Identifier: MIT
// Package: cohort/sensitivity
//
// options.go — functional options for sampling and the Analyzer.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     analysis functions never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand,
//     otherwise DefaultSeed is used.

package sensitivity

import (
	"math/rand"

	"go.uber.org/zap"
)

// Defaults.
const (
	// DefaultBaseSamples is N, the number of base rows of the Saltelli design
	// (the design has N·(d+2) rows).
	DefaultBaseSamples = 1 << 11

	// DefaultSeed seeds the sampler when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
)

// DefaultHorizons are the projection horizons, in steps, analyzed by default:
// 10, 20, 50 and 100 years.
func DefaultHorizons() []int { return []int{2, 4, 10, 20} }

// Option customizes sampling and analysis.
type Option func(*config)

type config struct {
	seed     int64
	rng      *rand.Rand // explicit shared source; nil means "seed"
	logger   *zap.Logger
	base     int
	horizons []int
}

func defaultConfig() config {
	return config{
		seed:     DefaultSeed,
		logger:   zap.NewNop(),
		base:     DefaultBaseSamples,
		horizons: DefaultHorizons(),
	}
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// source returns the explicit RNG, or a fresh one seeded with seed so that
// every call with the same options draws the same design.
func (c config) source() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(c.seed))
}

// WithSeed draws samples from a fresh source seeded with seed on every call.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand draws samples from r. Panics on nil.
// A shared r advances across calls, so results depend on call order.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sensitivity: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger attaches a structured logger to the Analyzer. Panics on nil;
// the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sensitivity: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithBaseSamples sets N for Analyzer.Run. Panics when n < 1.
func WithBaseSamples(n int) Option {
	if n < 1 {
		panic("sensitivity: WithBaseSamples: n must be >= 1")
	}
	return func(c *config) {
		c.base = n
	}
}

// WithHorizons sets the analyzed horizons, in projection steps. Panics when
// empty or when any horizon is < 1.
func WithHorizons(steps ...int) Option {
	if len(steps) == 0 {
		panic("sensitivity: WithHorizons: at least one horizon required")
	}
	for _, s := range steps {
		if s < 1 {
			panic("sensitivity: WithHorizons: horizons must be >= 1 step")
		}
	}
	cp := append([]int(nil), steps...)
	return func(c *config) {
		c.horizons = cp
	}
}
