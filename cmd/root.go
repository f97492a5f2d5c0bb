package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim"
	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/workload"
)

var (
	input       inputFlags // what to simulate
	logLevel    string     // Log verbosity level
	resultsPath string     // File to save the JSON report to
	withCompare bool       // Include the policy comparison in run output
	withBelady  bool       // Include the Belady's anomaly check in run output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page-replacement policy simulator (FIFO, LRU, Optimal, LFU)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// mustResolveInput resolves the input flags for cmd or exits.
func mustResolveInput(cmd *cobra.Command) *simInput {
	in, err := resolveInput(input, cmd.Flags().Changed)
	if err != nil {
		logrus.Fatalf("Invalid input: %v", err)
	}
	logrus.Infof("Simulating %d references with %d frames under %s", len(in.refs), in.frames, in.policy)
	logrus.Debugf("References: %s", workload.FormatReferences(in.refs))
	return in
}

// runCmd simulates one policy and prints the per-step frame table
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one replacement policy step by step",
	Run: func(cmd *cobra.Command, args []string) {
		in := mustResolveInput(cmd)

		report := sim.NewRunReport(in.refs, in.frames, in.policy)
		report.AddSuggestion()
		if withCompare {
			report.AddComparison()
		}
		if withBelady {
			report.AddAnomalyCheck()
		}

		out := cmd.OutOrStdout()
		report.PrintSteps(out)
		report.PrintSummary(out)
		report.PrintComparison(out)
		report.PrintAnomalies(out)

		if resultsPath != "" {
			if err := report.SaveResults(resultsPath); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		logrus.Info("Simulation complete.")
	},
}

// compareCmd runs every policy on the same input
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare hits and faults of every policy",
	Run: func(cmd *cobra.Command, args []string) {
		in := mustResolveInput(cmd)
		report := sim.NewRunReport(in.refs, in.frames, in.policy)
		report.AddComparison()
		report.PrintComparison(cmd.OutOrStdout())
	},
}

// beladyCmd scans frame counts for Belady's anomaly
var beladyCmd = &cobra.Command{
	Use:   "belady",
	Short: "Check for Belady's anomaly over 1..frames+2 frames",
	Run: func(cmd *cobra.Command, args []string) {
		in := mustResolveInput(cmd)
		report := sim.NewRunReport(in.refs, in.frames, in.policy)
		report.AddAnomalyCheck()
		report.PrintAnomalies(cmd.OutOrStdout())
	},
}

// suggestCmd recommends a frame count
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a frame count using the Optimal policy",
	Run: func(cmd *cobra.Command, args []string) {
		in := mustResolveInput(cmd)
		fmt.Fprintf(cmd.OutOrStdout(), "Suggested optimal frame size: %d\n", sim.SuggestFrameSize(in.refs))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerInputFlags attaches the shared input flags to a simulation command.
func registerInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&input.refs, "refs", "", "Comma-separated page reference string, e.g. 7,0,1,2,0,3")
	cmd.Flags().IntVar(&input.frames, "frames", 3, "Number of page frames")
	cmd.Flags().StringVar(&input.policy, "policy", "FIFO", "Replacement policy (FIFO, LRU, Optimal, LFU)")
	cmd.Flags().StringVar(&input.scenarioPath, "scenario", "", "Path to a YAML scenario file")
	cmd.Flags().BoolVar(&input.random, "random", false, "Use a random reference string (6-12 references to pages 0-9)")
	cmd.Flags().Int64Var(&input.seed, "seed", 42, "Seed for random reference generation")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	for _, c := range []*cobra.Command{runCmd, compareCmd, beladyCmd, suggestCmd} {
		registerInputFlags(c)
		rootCmd.AddCommand(c)
	}
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Save the report as JSON to this file")
	runCmd.Flags().BoolVar(&withCompare, "compare", false, "Also compare every policy")
	runCmd.Flags().BoolVar(&withBelady, "belady", false, "Also check for Belady's anomaly")
}
