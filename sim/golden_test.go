package sim

import (
	"fmt"
	"testing"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/internal/testutil"
)

// TestEvaluate_GoldenDataset checks every policy's totals against known-good values.
func TestEvaluate_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		for _, p := range AllPolicies {
			t.Run(fmt.Sprintf("%s/frames=%d/%s", tc.Name, tc.Frames, p), func(t *testing.T) {
				want, ok := tc.Results[string(p)]
				if !ok {
					t.Fatalf("golden case has no result for %s", p)
				}
				_, got := Evaluate(tc.References, tc.Frames, p)
				if got.Hits != want.Hits || got.Faults != want.Faults {
					t.Errorf("got hits=%d faults=%d, want hits=%d faults=%d",
						got.Hits, got.Faults, want.Hits, want.Faults)
				}
			})
		}
	}
}

// TestCompareAll_GoldenDataset checks the aggregator agrees with direct evaluation.
func TestCompareAll_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(fmt.Sprintf("%s/frames=%d", tc.Name, tc.Frames), func(t *testing.T) {
			cmp := CompareAll(tc.References, tc.Frames)
			for _, p := range AllPolicies {
				want := tc.Results[string(p)]
				if got := cmp[p]; got.Hits != want.Hits || got.Faults != want.Faults {
					t.Errorf("%s: got %+v, want %+v", p, got, want)
				}
			}
		})
	}
}

func TestSuggestFrameSize_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(fmt.Sprintf("%s/frames=%d", tc.Name, tc.Frames), func(t *testing.T) {
			if got := SuggestFrameSize(tc.References); got != tc.SuggestedFrames {
				t.Errorf("SuggestFrameSize = %d, want %d", got, tc.SuggestedFrames)
			}
		})
	}
}

func TestDetectAnomalies_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(fmt.Sprintf("%s/frames=%d", tc.Name, tc.Frames), func(t *testing.T) {
			pairs, found := DetectAnomalies(tc.References, PolicyFIFO, tc.Frames)
			if found != (len(tc.FIFOAnomalies) > 0) {
				t.Fatalf("found = %v, want %v", found, len(tc.FIFOAnomalies) > 0)
			}
			if len(pairs) != len(tc.FIFOAnomalies) {
				t.Fatalf("got %d pairs, want %d", len(pairs), len(tc.FIFOAnomalies))
			}
			for i, want := range tc.FIFOAnomalies {
				got := pairs[i]
				if got.From.Size != want.From.Size || got.From.Faults != want.From.Faults ||
					got.To.Size != want.To.Size || got.To.Faults != want.To.Faults {
					t.Errorf("pair %d: got %+v, want %+v", i, got, want)
				}
			}
		})
	}
}
