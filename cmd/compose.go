package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kiki-couriers/courier-sim/sim/manifest"
)

var composeFromPaths []string

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Merge multiple manifests into one",
	Long:  "Load multiple manifest YAML files and concatenate their package lists. Output is written to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		merged, err := composeManifests(composeFromPaths)
		if err != nil {
			logrus.Fatalf("Compose failed: %v", err)
		}
		if err := writeManifest(cmd.OutOrStdout(), merged); err != nil {
			logrus.Fatalf("Compose failed: %v", err)
		}
	},
}

func composeManifests(paths []string) (*manifest.Manifest, error) {
	var manifests []*manifest.Manifest
	for _, path := range paths {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	merged, err := manifest.Compose(manifests)
	if err != nil {
		return nil, err
	}
	logrus.Infof("composed %d manifests into %d packages", len(manifests), len(merged.Packages))
	return merged, nil
}

func init() {
	composeCmd.Flags().StringArrayVar(&composeFromPaths, "from", nil, "Path to manifest YAML file (can be repeated)")
	_ = composeCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(composeCmd)
}
