package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/trace"
)

// PolicyResult holds the totals of one simulation run.
// Hits + Faults always equals the number of references simulated.
type PolicyResult struct {
	Hits   int `json:"hits"`
	Faults int `json:"faults"`
}

// Total returns the number of references simulated.
func (r PolicyResult) Total() int { return r.Hits + r.Faults }

// HitRatio returns Hits / Total, or 0 for an empty run.
func (r PolicyResult) HitRatio() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Total())
}

// Evaluate simulates policy over refs with capacity frames and returns the full step trace
// together with the hit/fault totals.
//
// Each call builds its own FrameSet and FrequencyTable, so identical inputs always yield
// identical traces. refs is never modified. A capacity of 0 makes every reference a fault
// without any page becoming resident.
// Panics on negative capacity or an unknown policy.
func Evaluate(refs []int, capacity int, policy Policy) (*trace.SimulationTrace, PolicyResult) {
	return simulate(refs, capacity, policy, trace.TraceLevelSteps)
}

// simulate is the shared replacement loop. Callers that only need totals pass TraceLevelNone.
func simulate(refs []int, capacity int, policy Policy, level trace.TraceLevel) (*trace.SimulationTrace, PolicyResult) {
	if capacity < 0 {
		panic(fmt.Sprintf("frame capacity must be non-negative, got %d", capacity))
	}
	selector := NewVictimSelector(policy)
	frames := NewFrameSet(capacity)
	freq := make(FrequencyTable)
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: level, Policy: string(policy), Capacity: capacity})

	var result PolicyResult
	for i, page := range refs {
		evicted := trace.NoEviction
		idx := frames.IndexOf(page)
		isFault := idx < 0

		if isFault {
			result.Faults++
			if capacity > 0 {
				if frames.Full() {
					victim := frames.Remove(selector.SelectVictim(frames, freq, refs[i+1:]))
					evicted = victim.Page
					logrus.Debugf("[%s] ref %d: page %d evicts page %d (loaded at %d, last used %d)",
						policy, i, page, victim.Page, victim.LoadedAt, victim.LastUsedAt)
				}
				frames.Insert(page, i)
			}
		} else {
			result.Hits++
			if policy == PolicyLRU {
				frames.Touch(idx, i)
			}
		}

		// Counted after the victim is chosen: LFU scores reflect history before this reference.
		freq.Increment(page)

		if st.Config.Enabled() {
			st.RecordStep(trace.StepRecord{
				Page:    page,
				Frames:  frames.Pages(),
				IsFault: isFault,
				Evicted: evicted,
			})
		}
	}
	return st, result
}
