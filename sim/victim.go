package sim

import "math"

// neverReferenced is the distance assigned to pages with no future reference.
const neverReferenced = math.MaxInt

// FIFOSelector evicts the longest-resident page regardless of use.
type FIFOSelector struct{}

func (s *FIFOSelector) SelectVictim(_ *FrameSet, _ FrequencyTable, _ []int) int {
	return 0
}

// LRUSelector evicts the page whose last access is oldest.
type LRUSelector struct{}

func (s *LRUSelector) SelectVictim(frames *FrameSet, _ FrequencyTable, _ []int) int {
	return firstMinIndex(frames, func(e FrameEntry) int { return e.LastUsedAt })
}

// OptimalSelector evicts the page whose next reference lies furthest ahead.
// Pages never referenced again are preferred; among those the earliest loaded wins.
type OptimalSelector struct{}

func (s *OptimalSelector) SelectVictim(frames *FrameSet, _ FrequencyTable, future []int) int {
	return firstMaxIndex(frames, func(e FrameEntry) int { return nextUse(future, e.Page) })
}

// LFUSelector evicts the page with the fewest references so far.
// Ties go to the entry nearest the front of the frame set, not the oldest access.
type LFUSelector struct{}

func (s *LFUSelector) SelectVictim(frames *FrameSet, freq FrequencyTable, _ []int) int {
	return firstMinIndex(frames, func(e FrameEntry) int { return freq.Count(e.Page) })
}

// nextUse returns the offset of page's first occurrence in future, or neverReferenced.
func nextUse(future []int, page int) int {
	for i, p := range future {
		if p == page {
			return i
		}
	}
	return neverReferenced
}

// firstMinIndex returns the position of the lowest score; the earliest position wins ties.
func firstMinIndex(frames *FrameSet, score func(FrameEntry) int) int {
	return firstExtremeIndex(frames, score, func(candidate, best int) bool { return candidate < best })
}

// firstMaxIndex returns the position of the highest score; the earliest position wins ties.
func firstMaxIndex(frames *FrameSet, score func(FrameEntry) int) int {
	return firstExtremeIndex(frames, score, func(candidate, best int) bool { return candidate > best })
}

// firstExtremeIndex scans entries in insertion order and keeps the first one that no later
// entry strictly beats.
func firstExtremeIndex(frames *FrameSet, score func(FrameEntry) int, beats func(candidate, best int) bool) int {
	best := 0
	bestScore := score(frames.At(0))
	for i := 1; i < frames.Len(); i++ {
		if s := score(frames.At(i)); beats(s, bestScore) {
			best, bestScore = i, s
		}
	}
	return best
}
