// Package workload generates synthetic order streams for benchmarks and
// load-style tests.
package workload

import (
	"math"
	"math/rand"

	"github.com/nikolaydubina/fpdecimal"

	"github.com/ofir-starkware/matching-engine-playground/pkg/core"
)

// Generator produces random order attributes from a seeded source, so the
// same seed always yields the same stream.
type Generator struct {
	cfg *Config
	rng *rand.Rand
}

// NewGenerator creates a generator with the given config and seed.
func NewGenerator(cfg *Config, seed int64) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// RandomPrice draws a uniform price in [1, MaxPrice].
func (g *Generator) RandomPrice() fpdecimal.Decimal {
	return fpdecimal.FromInt(g.rng.Intn(g.cfg.MaxPrice) + 1)
}

// RandomNormalPrice draws a price from N(NormalMean, NormalStdDev), folded
// to stay positive.
func (g *Generator) RandomNormalPrice() fpdecimal.Decimal {
	p := math.Abs(g.rng.NormFloat64()*g.cfg.NormalStdDev + g.cfg.NormalMean)
	return fpdecimal.FromFloat(p)
}

// RandomSize draws a uniform quantity in [1, MaxSize].
func (g *Generator) RandomSize() fpdecimal.Decimal {
	return fpdecimal.FromInt(g.rng.Intn(g.cfg.MaxSize) + 1)
}

// RandomSide is a fair coin between bid and ask.
func (g *Generator) RandomSide() core.Side {
	if g.rng.Intn(2) == 0 {
		return core.Buy
	}
	return core.Sell
}

// MostlyAsks returns ask three times out of four.
func (g *Generator) MostlyAsks() core.Side {
	if g.rng.Intn(4) == 0 {
		return core.Buy
	}
	return core.Sell
}
