package sim

import "github.com/sirupsen/logrus"

// MaxSuggestedFrames caps the capacities tried by SuggestFrameSize.
const MaxSuggestedFrames = 10

// SuggestFrameSize recommends a frame capacity for refs by running the Optimal policy at
// every capacity in [1, min(len(refs), MaxSuggestedFrames)] and returning the smallest
// capacity that reaches the lowest fault count seen.
//
// refs must be non-empty; callers reject empty input first. Panics on empty refs.
func SuggestFrameSize(refs []int) int {
	if len(refs) == 0 {
		panic("SuggestFrameSize requires a non-empty reference sequence")
	}
	maxSize := min(len(refs), MaxSuggestedFrames)

	best := 1
	minFaults := -1
	for _, sf := range Sweep(refs, PolicyOptimal, 1, maxSize) {
		if minFaults < 0 || sf.Faults < minFaults {
			minFaults = sf.Faults
			best = sf.Size
		}
	}
	logrus.Debugf("suggested %d frames (%d optimal faults, tried 1..%d)", best, minFaults, maxSize)
	return best
}
