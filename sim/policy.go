package sim

import (
	"fmt"
	"strings"
)

// Policy names a page-replacement policy.
type Policy string

const (
	PolicyFIFO    Policy = "FIFO"
	PolicyLRU     Policy = "LRU"
	PolicyOptimal Policy = "Optimal"
	PolicyLFU     Policy = "LFU"
)

// AllPolicies lists every known policy in presentation order.
// Comparison tables and tie-breaks between policies follow this order.
var AllPolicies = []Policy{PolicyFIFO, PolicyLRU, PolicyOptimal, PolicyLFU}

// ValidPolicies is the set of recognized policy names.
// Shared by ParsePolicy(), Scenario.Validate() and NewVictimSelector().
var ValidPolicies = map[Policy]bool{PolicyFIFO: true, PolicyLRU: true, PolicyOptimal: true, PolicyLFU: true}

// IsValidPolicy returns true if p is one of the known policies (exact spelling).
func IsValidPolicy(p Policy) bool {
	return ValidPolicies[p]
}

// ParsePolicy resolves a user-supplied policy name, ignoring case.
// "opt" and "min" are accepted as aliases for Optimal.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo":
		return PolicyFIFO, nil
	case "lru":
		return PolicyLRU, nil
	case "optimal", "opt", "min":
		return PolicyOptimal, nil
	case "lfu":
		return PolicyLFU, nil
	default:
		return "", fmt.Errorf("unknown policy %q; valid: FIFO, LRU, Optimal, LFU", name)
	}
}

// VictimSelector chooses which resident entry to evict on a fault when all frames are full.
// future is the remainder of the reference sequence after the current position.
// Implementations must return an index in [0, frames.Len()).
type VictimSelector interface {
	SelectVictim(frames *FrameSet, freq FrequencyTable, future []int) int
}

// NewVictimSelector creates the victim selector for a policy.
// Panics on unrecognized policies.
func NewVictimSelector(p Policy) VictimSelector {
	if !IsValidPolicy(p) {
		panic(fmt.Sprintf("unknown replacement policy %q", p))
	}
	switch p {
	case PolicyFIFO:
		return &FIFOSelector{}
	case PolicyLRU:
		return &LRUSelector{}
	case PolicyOptimal:
		return &OptimalSelector{}
	case PolicyLFU:
		return &LFUSelector{}
	default:
		panic(fmt.Sprintf("unhandled replacement policy %q", p))
	}
}
