// Package sim provides the page-replacement simulation engine.
//
// # Reading Guide
//
// Start with these files:
//   - evaluator.go: Evaluate, the per-reference hit/fault/evict loop
//   - victim.go: victim selection for FIFO, LRU, Optimal and LFU
//   - frames.go: FrameSet and FrequencyTable, the per-run state
//
// # Analyses
//
// Built on top of Evaluate:
//   - compare.go: CompareAll, every policy on the same input
//   - anomaly.go: DetectAnomalies, Belady's anomaly across capacities 1..base+2
//   - advisor.go: SuggestFrameSize, smallest capacity with the fewest Optimal faults
//   - sweep.go: Sweep, fault counts over a capacity range (shared by the two above)
//
// # Architecture
//
// Every call is independent: per-run state is created inside the call and discarded on
// return, so identical inputs always produce identical traces. Sub-packages:
//   - sim/trace/: step records and trace summaries (no dependency on sim)
//   - sim/workload/: reference-string parsing, random generation, YAML scenarios
//
// # Key Interfaces
//
//   - VictimSelector: pick the frame to evict, given resident entries, reference counts
//     and the remaining references
package sim
