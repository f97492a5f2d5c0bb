package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim"
	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/workload"
)

// inputFlags holds the flags that describe what to simulate. Shared by every simulation command.
type inputFlags struct {
	refs         string // comma-separated reference string
	frames       int    // number of page frames
	policy       string // replacement policy name
	scenarioPath string // optional YAML scenario
	random       bool   // generate a random reference string instead of --refs
	seed         int64  // seed for --random
}

// simInput is a validated simulation request.
type simInput struct {
	refs   []int
	frames int
	policy sim.Policy
}

// resolveInput merges the scenario file (if any) with explicitly set flags and validates the
// result. changed reports whether a flag was set on the command line; set flags win over the
// scenario, unset flags fall back to the scenario and then to their defaults.
func resolveInput(f inputFlags, changed func(name string) bool) (*simInput, error) {
	frames, policyName := f.frames, f.policy
	var refs []int

	if f.scenarioPath != "" {
		sc, err := workload.LoadScenario(f.scenarioPath)
		if err != nil {
			return nil, err
		}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scenario %s: %w", f.scenarioPath, err)
		}
		if !changed("frames") && sc.Frames > 0 {
			frames = sc.Frames
		}
		if !changed("policy") && sc.Policy != "" {
			policyName = sc.Policy
		}
		if !changed("refs") && !changed("random") {
			if changed("seed") {
				sc.Seed = f.seed
			}
			if refs, err = sc.ResolveReferences(); err != nil {
				return nil, err
			}
		}
		logrus.Infof("Loaded scenario %s", f.scenarioPath)
	}

	if refs == nil {
		var err error
		if f.random {
			refs, err = workload.GenerateReferences(workload.DefaultGeneratorConfig(), f.seed)
		} else {
			refs, err = workload.ParseReferences(f.refs)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("no page references given; use --refs, --random or --scenario")
	}
	if frames < 1 {
		return nil, fmt.Errorf("frames must be at least 1, got %d", frames)
	}
	policy, err := sim.ParsePolicy(policyName)
	if err != nil {
		return nil, err
	}
	return &simInput{refs: refs, frames: frames, policy: policy}, nil
}
