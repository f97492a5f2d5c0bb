package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aradhyacp/Page-Replacement-Visualizer/sim/workload"
)

var (
	genConfig = workload.DefaultGeneratorConfig()
	genSeed   int64
)

// generateCmd prints a random reference string that can be fed back through --refs
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random page reference string",
	Run: func(cmd *cobra.Command, args []string) {
		refs, err := workload.GenerateReferences(genConfig, genSeed)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), workload.FormatReferences(refs))
	},
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for reference generation")
	generateCmd.Flags().IntVar(&genConfig.MinLength, "min-length", genConfig.MinLength, "Minimum number of references")
	generateCmd.Flags().IntVar(&genConfig.MaxLength, "max-length", genConfig.MaxLength, "Maximum number of references")
	generateCmd.Flags().IntVar(&genConfig.MaxPage, "max-page", genConfig.MaxPage, "Largest page id")
	rootCmd.AddCommand(generateCmd)
}
