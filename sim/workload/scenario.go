package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim"
)

// Scenario is a saved simulation setup, loaded from YAML via LoadScenario(path).
// Either references or random may be given, not both.
type Scenario struct {
	References []int            `yaml:"references"`
	Frames     int              `yaml:"frames"`
	Policy     string           `yaml:"policy"`
	Seed       int64            `yaml:"seed"`
	Random     *GeneratorConfig `yaml:"random"` // nil means "use references"
}

// LoadScenario reads and parses a YAML scenario file.
// Unknown fields are errors so that typos do not silently fall back to defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks policy names and value ranges.
func (s *Scenario) Validate() error {
	if s.Policy != "" {
		if _, err := sim.ParsePolicy(s.Policy); err != nil {
			return err
		}
	}
	if s.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", s.Frames)
	}
	for i, p := range s.References {
		if p < 0 {
			return fmt.Errorf("references[%d]: page id must be non-negative, got %d", i, p)
		}
	}
	if s.Random != nil {
		if len(s.References) > 0 {
			return fmt.Errorf("references and random are mutually exclusive")
		}
		if err := s.Random.Validate(); err != nil {
			return fmt.Errorf("random: %w", err)
		}
	}
	return nil
}

// ResolveReferences returns the scenario's reference string, generating it from Random
// and Seed when no explicit references are listed.
func (s *Scenario) ResolveReferences() ([]int, error) {
	if s.Random == nil {
		return s.References, nil
	}
	return GenerateReferences(*s.Random, s.Seed)
}
