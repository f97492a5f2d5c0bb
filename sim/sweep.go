package sim

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/trace"
)

// SizeFaults is the fault count observed at one frame capacity.
type SizeFaults struct {
	Size   int `json:"size"`
	Faults int `json:"faults"`
}

// Sweep evaluates policy at every capacity in [from, to] and returns the fault counts in
// ascending capacity order. Returns nil when to < from.
//
// Capacities are evaluated concurrently; each evaluation owns its frame state and writes only
// its own result slot, so the output matches a sequential scan.
func Sweep(refs []int, policy Policy, from, to int) []SizeFaults {
	if from < 0 {
		panic(fmt.Sprintf("sweep lower bound must be non-negative, got %d", from))
	}
	if to < from {
		return nil
	}
	results := make([]SizeFaults, to-from+1)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range results {
		i := i // per-iteration copy (go.mod targets go 1.21)
		size := from + i
		g.Go(func() error {
			_, r := simulate(refs, size, policy, trace.TraceLevelNone)
			results[i] = SizeFaults{Size: size, Faults: r.Faults}
			return nil
		})
	}
	_ = g.Wait() // evaluations cannot fail

	return results
}
