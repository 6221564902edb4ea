// Package manifest loads delivery run inputs from YAML.
package manifest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kiki-couriers/courier-sim/sim"
)

// CurrentVersion is the manifest format written by this release.
const CurrentVersion = "1"

// Manifest is the top-level run input file.
// Loaded from YAML via Load(path).
type Manifest struct {
	Version          string         `yaml:"version"`
	BaseDeliveryCost int            `yaml:"base_delivery_cost"`
	Packages         []PackageEntry `yaml:"packages"`
	Fleet            *FleetEntry    `yaml:"fleet,omitempty"` // nil = cost estimation only
}

// PackageEntry is one package line in the manifest.
type PackageEntry struct {
	ID        string `yaml:"id"`
	Weight    int    `yaml:"weight"`   // kg
	Distance  int    `yaml:"distance"` // km
	OfferCode string `yaml:"offer_code,omitempty"`
}

// FleetEntry describes the vehicles available for dispatch.
type FleetEntry struct {
	Vehicles int `yaml:"vehicles"`
	MaxSpeed int `yaml:"max_speed"` // km/h
	MaxLoad  int `yaml:"max_load"`  // kg per trip
}

// Load reads and parses a manifest. Unknown keys are rejected so that typos
// surface as errors instead of silently zero-valued fields.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Version == "" {
		logrus.Warnf("manifest %s has no version; assuming %q", path, CurrentVersion)
		m.Version = CurrentVersion
	}
	return &m, nil
}

// Validate checks that all fields in the manifest are valid.
func (m *Manifest) Validate() error {
	if m.Version != CurrentVersion {
		return fmt.Errorf("unsupported manifest version %q; valid: %s", m.Version, CurrentVersion)
	}
	if m.BaseDeliveryCost < 0 {
		return fmt.Errorf("base_delivery_cost must not be negative, got %d", m.BaseDeliveryCost)
	}
	if len(m.Packages) == 0 {
		return fmt.Errorf("at least one package required")
	}
	seen := make(map[string]bool, len(m.Packages))
	for i, p := range m.Packages {
		if err := validatePackage(p, i); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("package[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}
	if m.Fleet != nil {
		if err := m.FleetConfig().Validate(); err != nil {
			return fmt.Errorf("fleet: %w", err)
		}
	}
	return nil
}

func validatePackage(p PackageEntry, idx int) error {
	prefix := fmt.Sprintf("package[%d]", idx)
	if p.ID == "" {
		return fmt.Errorf("%s: id must not be empty", prefix)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("%s (%s): weight must be positive, got %d", prefix, p.ID, p.Weight)
	}
	if p.Distance < 0 {
		return fmt.Errorf("%s (%s): distance must not be negative, got %d", prefix, p.ID, p.Distance)
	}
	return nil
}

// SimPackages converts the manifest entries into unannotated packages.
func (m *Manifest) SimPackages() []sim.Package {
	pkgs := make([]sim.Package, len(m.Packages))
	for i, p := range m.Packages {
		pkgs[i] = sim.NewPackage(p.ID, p.Weight, p.Distance, p.OfferCode)
	}
	return pkgs
}

// FleetConfig returns the fleet section as a sim.FleetConfig.
// Returns the zero value when the manifest has no fleet.
func (m *Manifest) FleetConfig() sim.FleetConfig {
	if m.Fleet == nil {
		return sim.FleetConfig{}
	}
	return sim.NewFleetConfig(m.Fleet.Vehicles, m.Fleet.MaxSpeed, m.Fleet.MaxLoad)
}
