package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns what it wrote to stdout.
// Flag values and Changed markers are reset first so tests do not leak into each other.
func executeCommand(t *testing.T, args ...string) string {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		resetFlags(c)
	}
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestRunCommand_PrintsStepsAndSummary(t *testing.T) {
	// GIVEN the classic Belady sequence
	// WHEN run under FIFO with 3 frames
	out := executeCommand(t, "run", "--refs", "1,2,3,4,1,2,5,1,2,3,4,5", "--frames", "3", "--policy", "fifo")

	// THEN the step table, totals and suggestion are printed
	assert.Contains(t, out, "=== FIFO with 3 frames ===")
	assert.Contains(t, out, "Page Faults       : 9")
	assert.Contains(t, out, "Page Hits         : 3")
	assert.Contains(t, out, "Suggested Frames  : 5")
	assert.NotContains(t, out, "Policy Comparison", "comparison is opt-in for run")
}

func TestRunCommand_WithAnalyses(t *testing.T) {
	out := executeCommand(t, "run", "--refs", "1,2,3,4,1,2,5,1,2,3,4,5", "--compare", "--belady")
	assert.Contains(t, out, "=== Policy Comparison (3 frames) ===")
	assert.Contains(t, out, "3 frames: 9 faults -> 4 frames: 10 faults")
}

func TestCompareCommand(t *testing.T) {
	out := executeCommand(t, "compare", "--refs", "7,0,1,2,0,3,0,4,2,3,0,3,2,1,2,0,1,7,0,1", "--frames", "3")
	lines := strings.Split(out, "\n")
	assert.Contains(t, out, "Fewest faults: Optimal")
	assert.Contains(t, lines, "FIFO          5     15")
	assert.Contains(t, lines, "LRU           8     12")
	assert.Contains(t, lines, "Optimal      11      9")
}

func TestBeladyCommand_NoAnomaly(t *testing.T) {
	out := executeCommand(t, "belady", "--refs", "1,2,3,4,1,2,5,1,2,3,4,5", "--policy", "lru")
	assert.Contains(t, out, "No Belady's anomaly detected")
}

func TestSuggestCommand(t *testing.T) {
	out := executeCommand(t, "suggest", "--refs", "1,2,3,1,2,4")
	assert.Equal(t, "Suggested optimal frame size: 3\n", out)
}

func TestGenerateCommand_SameSeedSameOutput(t *testing.T) {
	a := executeCommand(t, "generate", "--seed", "5")
	b := executeCommand(t, "generate", "--seed", "5")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, strings.TrimSpace(a))
}

func TestGenerateCommand_FixedLength(t *testing.T) {
	out := executeCommand(t, "generate", "--min-length", "4", "--max-length", "4", "--max-page", "0")
	assert.Equal(t, "0,0,0,0\n", out)
}
