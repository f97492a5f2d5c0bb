// Package trace provides per-step recording of page-replacement simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// NoEviction marks a StepRecord whose reference did not displace a resident page.
const NoEviction = -1

// StepRecord captures the outcome of a single page reference.
type StepRecord struct {
	Page    int   `json:"page"`
	Frames  []int `json:"frames"` // resident pages after this step, in frame order
	IsFault bool  `json:"is_fault"`
	Evicted int   `json:"evicted"` // victim page id, or NoEviction
}

// IsHit reports whether the referenced page was already resident.
func (r StepRecord) IsHit() bool {
	return !r.IsFault
}

// HasEviction reports whether a victim was removed at this step.
func (r StepRecord) HasEviction() bool {
	return r.Evicted != NoEviction
}
