package sim

import (
	"golang.org/x/sync/errgroup"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/trace"
)

// Comparison maps each policy to its totals for one sequence and capacity.
type Comparison map[Policy]PolicyResult

// CompareAll evaluates every policy in AllPolicies on the same refs and capacity.
// Traces are discarded. Each policy runs in its own goroutine with its own frame state.
func CompareAll(refs []int, capacity int) Comparison {
	results := make([]PolicyResult, len(AllPolicies))

	var g errgroup.Group
	for i, p := range AllPolicies {
		i, p := i, p // per-iteration copies (go.mod targets go 1.21)
		g.Go(func() error {
			_, results[i] = simulate(refs, capacity, p, trace.TraceLevelNone)
			return nil
		})
	}
	_ = g.Wait() // evaluations cannot fail

	cmp := make(Comparison, len(AllPolicies))
	for i, p := range AllPolicies {
		cmp[p] = results[i]
	}
	return cmp
}

// Best returns the policy with the fewest faults. Ties resolve in AllPolicies order.
func (c Comparison) Best() Policy {
	var best Policy
	for _, p := range AllPolicies {
		r, ok := c[p]
		if !ok {
			continue
		}
		if best == "" || r.Faults < c[best].Faults {
			best = p
		}
	}
	return best
}
