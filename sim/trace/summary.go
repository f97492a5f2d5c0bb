package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalReferences int         `json:"total_references"`
	Hits            int         `json:"hits"`
	Faults          int         `json:"faults"`
	Evictions       int         `json:"evictions"`
	HitRatio        float64     `json:"hit_ratio"`
	UniquePages     int         `json:"unique_pages"`
	PeakResident    int         `json:"peak_resident"`
	FaultsPerPage   map[int]int `json:"faults_per_page"` // page id → number of faults it caused
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		FaultsPerPage: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	seen := make(map[int]bool)
	summary.TotalReferences = len(st.Steps)
	for _, s := range st.Steps {
		seen[s.Page] = true
		if s.IsFault {
			summary.Faults++
			summary.FaultsPerPage[s.Page]++
		} else {
			summary.Hits++
		}
		if s.HasEviction() {
			summary.Evictions++
		}
		summary.PeakResident = max(summary.PeakResident, len(s.Frames))
	}
	if summary.TotalReferences > 0 {
		summary.HitRatio = float64(summary.Hits) / float64(summary.TotalReferences)
	}
	summary.UniquePages = len(seen)

	return summary
}
