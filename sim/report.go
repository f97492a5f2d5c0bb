// Renders simulation results as text tables and JSON.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/trace"
)

// Report collects one run and whichever analyses were requested for it.
// Optional sections are omitted from JSON when not computed.
type Report struct {
	Policy     Policy              `json:"policy"`
	Frames     int                 `json:"frames"`
	References []int               `json:"references"`
	Hits       int                 `json:"hits"`
	Faults     int                 `json:"faults"`
	Summary    *trace.TraceSummary `json:"summary,omitempty"`
	Steps      []trace.StepRecord  `json:"steps,omitempty"`

	Comparison      Comparison    `json:"comparison,omitempty"`
	BestPolicy      Policy        `json:"best_policy,omitempty"`
	AnomalyChecked  bool          `json:"anomaly_checked,omitempty"`
	Anomalies       []AnomalyPair `json:"anomalies,omitempty"`
	SuggestedFrames int           `json:"suggested_frames,omitempty"`
}

// NewRunReport evaluates policy over refs and returns a report holding the trace and totals.
func NewRunReport(refs []int, frames int, policy Policy) *Report {
	st, result := Evaluate(refs, frames, policy)
	return &Report{
		Policy:     policy,
		Frames:     frames,
		References: refs,
		Hits:       result.Hits,
		Faults:     result.Faults,
		Summary:    trace.Summarize(st),
		Steps:      st.Steps,
	}
}

// AddComparison runs every policy on the report's references and frames.
func (r *Report) AddComparison() {
	r.Comparison = CompareAll(r.References, r.Frames)
	r.BestPolicy = r.Comparison.Best()
}

// AddAnomalyCheck scans capacities 1..Frames+2 under the report's policy.
func (r *Report) AddAnomalyCheck() {
	r.Anomalies, _ = DetectAnomalies(r.References, r.Policy, r.Frames)
	r.AnomalyChecked = true
}

// AddSuggestion records the suggested frame count. No-op for an empty reference string.
func (r *Report) AddSuggestion() {
	if len(r.References) == 0 {
		return
	}
	r.SuggestedFrames = SuggestFrameSize(r.References)
}

// PrintSteps writes one line per reference: the page, the frames after it, and the outcome.
func (r *Report) PrintSteps(w io.Writer) {
	fmt.Fprintf(w, "=== %s with %d frames ===\n", r.Policy, r.Frames)
	fmt.Fprintf(w, "%-6s %-6s %-*s %-6s %s\n", "Step", "Page", frameColumnWidth(r.Frames), "Frames", "Result", "Evicted")
	for i, s := range r.Steps {
		outcome := "HIT"
		if s.IsFault {
			outcome = "FAULT"
		}
		evicted := "-"
		if s.HasEviction() {
			evicted = fmt.Sprintf("%d", s.Evicted)
		}
		fmt.Fprintf(w, "%-6d %-6d %-*s %-6s %s\n", i+1, s.Page, frameColumnWidth(r.Frames), formatFrames(s.Frames, r.Frames), outcome, evicted)
	}
}

// PrintSummary writes the run totals and, when computed, the frame suggestion.
func (r *Report) PrintSummary(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Summary ===")
	fmt.Fprintf(w, "Policy            : %s\n", r.Policy)
	fmt.Fprintf(w, "Frames            : %d\n", r.Frames)
	fmt.Fprintf(w, "References        : %d\n", len(r.References))
	fmt.Fprintf(w, "Page Faults       : %d\n", r.Faults)
	fmt.Fprintf(w, "Page Hits         : %d\n", r.Hits)
	if total := r.Hits + r.Faults; total > 0 {
		fmt.Fprintf(w, "Hit Ratio         : %.2f%%\n", 100*float64(r.Hits)/float64(total))
	}
	if r.Summary != nil {
		fmt.Fprintf(w, "Evictions         : %d\n", r.Summary.Evictions)
		fmt.Fprintf(w, "Distinct Pages    : %d\n", r.Summary.UniquePages)
	}
	if r.SuggestedFrames > 0 {
		fmt.Fprintf(w, "Suggested Frames  : %d\n", r.SuggestedFrames)
	}
}

// PrintComparison writes the per-policy hit/fault table. No-op unless AddComparison ran.
func (r *Report) PrintComparison(w io.Writer) {
	if r.Comparison == nil {
		return
	}
	fmt.Fprintf(w, "=== Policy Comparison (%d frames) ===\n", r.Frames)
	fmt.Fprintf(w, "%-8s %6s %6s\n", "Policy", "Hits", "Faults")
	for _, p := range AllPolicies {
		res := r.Comparison[p]
		fmt.Fprintf(w, "%-8s %6d %6d\n", p, res.Hits, res.Faults)
	}
	fmt.Fprintf(w, "Fewest faults: %s\n", r.BestPolicy)
}

// PrintAnomalies writes every Belady's anomaly pair found. No-op unless AddAnomalyCheck ran.
func (r *Report) PrintAnomalies(w io.Writer) {
	if !r.AnomalyChecked {
		return
	}
	fmt.Fprintf(w, "=== Belady's Anomaly (%s, 1..%d frames) ===\n", r.Policy, r.Frames+2)
	if len(r.Anomalies) == 0 {
		fmt.Fprintln(w, "No Belady's anomaly detected in the given input.")
		return
	}
	for _, a := range r.Anomalies {
		fmt.Fprintf(w, "%d frames: %d faults -> %d frames: %d faults\n", a.From.Size, a.From.Faults, a.To.Size, a.To.Faults)
	}
}

// SaveResults writes the report as indented JSON to outputFilePath.
func (r *Report) SaveResults(outputFilePath string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}
	if err := os.WriteFile(outputFilePath, data, 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", outputFilePath, err)
	}
	logrus.Infof("Report written to: %s", outputFilePath)
	return nil
}

// formatFrames renders a snapshot padded with "-" for empty slots, e.g. "[1 2 -]".
func formatFrames(pages []int, capacity int) string {
	cells := make([]string, 0, max(capacity, len(pages)))
	for _, p := range pages {
		cells = append(cells, fmt.Sprintf("%d", p))
	}
	for len(cells) < capacity {
		cells = append(cells, "-")
	}
	return "[" + strings.Join(cells, " ") + "]"
}

func frameColumnWidth(capacity int) int {
	return max(len("Frames"), 4*capacity+2)
}
