package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim"
)

// GeneratorConfig bounds randomly generated reference strings.
type GeneratorConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
	MaxPage   int `yaml:"max_page"` // page ids are drawn from [0, MaxPage]
}

// DefaultGeneratorConfig returns short strings over a small page space: 6 to 12 references to
// pages 0..9, which keeps per-step tables readable.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{MinLength: 6, MaxLength: 12, MaxPage: 9}
}

// Validate checks the length and page bounds.
func (c GeneratorConfig) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("min_length must be at least 1, got %d", c.MinLength)
	}
	if c.MaxLength < c.MinLength {
		return fmt.Errorf("max_length (%d) must be >= min_length (%d)", c.MaxLength, c.MinLength)
	}
	if c.MaxPage < 0 {
		return fmt.Errorf("max_page must be non-negative, got %d", c.MaxPage)
	}
	return nil
}

// GenerateReferences draws a reference string whose length is uniform in
// [MinLength, MaxLength] and whose page ids are uniform in [0, MaxPage].
// Deterministic given the same config and seed.
func GenerateReferences(cfg GeneratorConfig, seed int64) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	lengthRNG := rng.ForSubsystem(sim.SubsystemLength)
	pageRNG := rng.ForSubsystem(sim.SubsystemPages)

	n := cfg.MinLength + lengthRNG.Intn(cfg.MaxLength-cfg.MinLength+1)
	refs := make([]int, n)
	for i := range refs {
		refs[i] = pageRNG.Intn(cfg.MaxPage + 1)
	}
	logrus.Debugf("generated %d references with %v", n, rng)
	return refs, nil
}
