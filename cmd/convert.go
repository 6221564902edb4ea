package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kiki-couriers/courier-sim/sim/manifest"
)

// convertCmd turns positional arguments into a manifest. Output is written to
// stdout for piping into --manifest.
var convertCmd = &cobra.Command{
	Use:   "convert BASE_COST N [ID WEIGHT DISTANCE OFFER]... [VEHICLES MAX_SPEED MAX_LOAD]",
	Short: "Convert positional arguments to a manifest YAML",
	Long: "Convert the positional form accepted by cost and deliver into a manifest. " +
		"When the three fleet fields are present the manifest gets a fleet section.",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := convertArgs(args)
		if err != nil {
			logrus.Fatalf("convert: %v", err)
		}
		if err := writeManifest(cmd.OutOrStdout(), m); err != nil {
			logrus.Fatalf("convert: %v", err)
		}
	},
}

// convertArgs accepts both the cost and the deliver argument forms.
func convertArgs(args []string) (*manifest.Manifest, error) {
	in, err := parseCostArgs(args)
	if errors.Is(err, errArgCount) {
		in, err = parseDeliverArgs(args)
	}
	if err != nil {
		return nil, err
	}
	return manifest.FromPackages(in.BaseDeliveryCost, in.Packages, in.Fleet), nil
}

// writeManifest marshals a manifest to YAML.
func writeManifest(w io.Writer, m *manifest.Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
