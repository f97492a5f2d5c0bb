// Package testutil provides shared test infrastructure for the simulator.
// It holds the golden dataset types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one reference string at one frame count with the expected totals for
// every policy.
type GoldenTestCase struct {
	Name            string                  `json:"name"`
	References      []int                   `json:"references"`
	Frames          int                     `json:"frames"`
	Results         map[string]GoldenResult `json:"results"` // keyed by policy name
	SuggestedFrames int                     `json:"suggested_frames"`
	FIFOAnomalies   []GoldenAnomaly         `json:"fifo_anomalies"` // FIFO over 1..frames+2
}

// GoldenResult holds expected hit/fault totals.
type GoldenResult struct {
	Hits   int `json:"hits"`
	Faults int `json:"faults"`
}

// GoldenAnomaly is an expected Belady's anomaly pair.
type GoldenAnomaly struct {
	From GoldenSizeFaults `json:"from"`
	To   GoldenSizeFaults `json:"to"`
}

// GoldenSizeFaults is a fault count at one frame capacity.
type GoldenSizeFaults struct {
	Size   int `json:"size"`
	Faults int `json:"faults"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// AssertFramesInvariant fails the test if a snapshot exceeds capacity or holds a page twice.
func AssertFramesInvariant(t *testing.T, step int, frames []int, capacity int) {
	t.Helper()
	if len(frames) > capacity {
		t.Errorf("step %d: %d resident pages exceed capacity %d", step, len(frames), capacity)
	}
	sorted := slices.Clone(frames)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(frames) {
		t.Errorf("step %d: duplicate page in frames %v", step, frames)
	}
}
