package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kiki-couriers/courier-sim/sim/workload"
)

var (
	generatorSpecPath string
	generatorSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic manifest",
	Long:  "Sample package weights, distances and offer codes from the distributions in a generator spec. Output is written to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.LoadGeneratorSpec(generatorSpecPath)
		if err != nil {
			logrus.Fatalf("generate: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			spec.Seed = generatorSeed
		}
		m, err := workload.Generate(spec)
		if err != nil {
			logrus.Fatalf("generate: %v", err)
		}
		if err := writeManifest(cmd.OutOrStdout(), m); err != nil {
			logrus.Fatalf("generate: %v", err)
		}
	},
}

func init() {
	generateCmd.Flags().StringVar(&generatorSpecPath, "spec", "", "Path to generator spec YAML")
	generateCmd.Flags().Int64Var(&generatorSeed, "seed", 0, "Override the spec's seed")
	_ = generateCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(generateCmd)
}
