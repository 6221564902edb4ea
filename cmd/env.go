package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Environment variables consulted for flags the user did not set explicitly.
const (
	envOffersFile = "COURIER_OFFERS_FILE"
	envLogLevel   = "COURIER_LOG_LEVEL"
)

// loadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left untouched. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	logrus.Debugf("loaded environment from %s", path)
	return nil
}

// getEnv returns the value of key, or fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// applyEnvDefaults fills flag-backed settings from the environment, but only
// for flags not given on the command line.
func applyEnvDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("offers") {
		offersPath = getEnv(envOffersFile, offersPath)
	}
	if !cmd.Flags().Changed("log") {
		logLevel = getEnv(envLogLevel, logLevel)
	}
}
