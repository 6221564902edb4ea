package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kiki-couriers/courier-sim/sim"
)

// OfferFile represents the full offers.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type OfferFile struct {
	Version string      `yaml:"version"`
	Offers  []sim.Offer `yaml:"offers"`
}

// LoadOfferCatalog parses an offers file into a validated catalog.
// Uses strict field checking: a misspelled key is an error, not a zero bound.
func LoadOfferCatalog(path string) (*sim.OfferCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading offers file: %w", err)
	}

	var file OfferFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing offers file %s: %w", path, err)
	}

	catalog := sim.NewOfferCatalog(file.Offers...)
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("offers file %s: %w", path, err)
	}
	return catalog, nil
}

// resolveOfferCatalog returns the catalog from path, or the built-in one when
// path is empty.
func resolveOfferCatalog(path string) (*sim.OfferCatalog, error) {
	if path == "" {
		return sim.DefaultOfferCatalog(), nil
	}
	return LoadOfferCatalog(path)
}
