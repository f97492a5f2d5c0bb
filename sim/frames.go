package sim

import "fmt"

// FrameEntry is one resident page.
type FrameEntry struct {
	Page       int
	LoadedAt   int // reference index at which the page became resident
	LastUsedAt int // reference index of the most recent access; maintained for LRU
}

// FrameSet holds the resident pages of one simulation run in insertion order.
// Invariants: Len() <= capacity, and no page appears twice.
// Thread-safety: NOT thread-safe. Each run owns its FrameSet.
type FrameSet struct {
	capacity int
	entries  []FrameEntry
}

// NewFrameSet creates an empty FrameSet with room for capacity pages.
// Panics on negative capacity.
func NewFrameSet(capacity int) *FrameSet {
	if capacity < 0 {
		panic(fmt.Sprintf("frame capacity must be non-negative, got %d", capacity))
	}
	return &FrameSet{
		capacity: capacity,
		entries:  make([]FrameEntry, 0, capacity),
	}
}

// Capacity returns the maximum number of resident pages.
func (fs *FrameSet) Capacity() int { return fs.capacity }

// Len returns the number of resident pages.
func (fs *FrameSet) Len() int { return len(fs.entries) }

// Full reports whether inserting another page requires an eviction.
func (fs *FrameSet) Full() bool { return len(fs.entries) >= fs.capacity }

// At returns the entry at insertion-order position i.
func (fs *FrameSet) At(i int) FrameEntry { return fs.entries[i] }

// IndexOf returns the position of page, or -1 if it is not resident.
func (fs *FrameSet) IndexOf(page int) int {
	for i := range fs.entries {
		if fs.entries[i].Page == page {
			return i
		}
	}
	return -1
}

// Touch records an access to the entry at position i.
func (fs *FrameSet) Touch(i, at int) {
	fs.entries[i].LastUsedAt = at
}

// Remove evicts the entry at position i, preserving the order of the others.
func (fs *FrameSet) Remove(i int) FrameEntry {
	victim := fs.entries[i]
	fs.entries = append(fs.entries[:i], fs.entries[i+1:]...)
	return victim
}

// Insert appends a newly loaded page. Panics if the set is full or the page is already resident.
func (fs *FrameSet) Insert(page, at int) {
	if fs.Full() {
		panic(fmt.Sprintf("insert of page %d into full frame set (capacity %d)", page, fs.capacity))
	}
	if fs.IndexOf(page) >= 0 {
		panic(fmt.Sprintf("page %d is already resident", page))
	}
	fs.entries = append(fs.entries, FrameEntry{Page: page, LoadedAt: at, LastUsedAt: at})
}

// Pages returns a snapshot of the resident page ids in frame order.
func (fs *FrameSet) Pages() []int {
	pages := make([]int, len(fs.entries))
	for i, e := range fs.entries {
		pages[i] = e.Page
	}
	return pages
}

// FrequencyTable counts every reference to a page over a whole run, hits included.
type FrequencyTable map[int]int

// Count returns the number of references recorded for page (0 if never seen).
func (ft FrequencyTable) Count(page int) int { return ft[page] }

// Increment records one more reference to page.
func (ft FrequencyTable) Increment(page int) { ft[page]++ }
