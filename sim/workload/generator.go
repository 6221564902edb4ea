// Package workload generates synthetic delivery manifests for exercising the
// dispatcher at scale. Generation is deterministic for a given seed.
package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kiki-couriers/courier-sim/sim"
	"github.com/kiki-couriers/courier-sim/sim/manifest"
)

// GeneratorSpec describes a synthetic manifest.
type GeneratorSpec struct {
	Seed             int64                `yaml:"seed"`
	Packages         int                  `yaml:"packages"`
	BaseDeliveryCost int                  `yaml:"base_delivery_cost"`
	Weight           DistSpec             `yaml:"weight"`   // kg
	Distance         DistSpec             `yaml:"distance"` // km
	OfferCodes       []string             `yaml:"offer_codes,omitempty"`
	OfferRate        float64              `yaml:"offer_rate,omitempty"` // fraction of packages carrying a code
	Fleet            *manifest.FleetEntry `yaml:"fleet,omitempty"`
}

// LoadGeneratorSpec reads a generator spec with strict field checking.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	return &spec, nil
}

// Validate checks counts, rates and distribution bounds.
func (s *GeneratorSpec) Validate() error {
	if s.Packages <= 0 {
		return fmt.Errorf("packages must be positive, got %d", s.Packages)
	}
	if s.BaseDeliveryCost < 0 {
		return fmt.Errorf("base_delivery_cost must not be negative, got %d", s.BaseDeliveryCost)
	}
	if s.Weight.Min <= 0 {
		return fmt.Errorf("weight: min must be positive, got %d", s.Weight.Min)
	}
	if _, err := NewSampler(s.Weight); err != nil {
		return fmt.Errorf("weight: %w", err)
	}
	if s.Distance.Min < 0 {
		return fmt.Errorf("distance: min must not be negative, got %d", s.Distance.Min)
	}
	if _, err := NewSampler(s.Distance); err != nil {
		return fmt.Errorf("distance: %w", err)
	}
	if s.OfferRate < 0 || s.OfferRate > 1 {
		return fmt.Errorf("offer_rate must be in [0, 1], got %g", s.OfferRate)
	}
	if s.OfferRate > 0 && len(s.OfferCodes) == 0 {
		return fmt.Errorf("offer_rate %g needs at least one offer code", s.OfferRate)
	}
	if s.Fleet != nil {
		fleet := sim.NewFleetConfig(s.Fleet.Vehicles, s.Fleet.MaxSpeed, s.Fleet.MaxLoad)
		if err := fleet.Validate(); err != nil {
			return fmt.Errorf("fleet: %w", err)
		}
		if s.Weight.Max > fleet.MaxCarriableWeight {
			return fmt.Errorf("weight: max %d exceeds fleet max_load %d", s.Weight.Max, fleet.MaxCarriableWeight)
		}
	}
	return nil
}

// Generate builds a manifest from the spec. Package IDs are PKG1..PKGn.
func Generate(spec *GeneratorSpec) (*manifest.Manifest, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	weights, _ := NewSampler(spec.Weight)
	distances, _ := NewSampler(spec.Distance)
	rng := NewPartitionedRNG(spec.Seed)
	weightRNG := rng.ForSubsystem(SubsystemWeight)
	distanceRNG := rng.ForSubsystem(SubsystemDistance)
	offerRNG := rng.ForSubsystem(SubsystemOffer)

	pkgs := make([]sim.Package, spec.Packages)
	offered := 0
	for i := range pkgs {
		code := ""
		if spec.OfferRate > 0 && offerRNG.Float64() < spec.OfferRate {
			code = spec.OfferCodes[offerRNG.Intn(len(spec.OfferCodes))]
			offered++
		}
		pkgs[i] = sim.NewPackage(fmt.Sprintf("PKG%d", i+1), weights.Sample(weightRNG), distances.Sample(distanceRNG), code)
	}

	var fleet *sim.FleetConfig
	if spec.Fleet != nil {
		f := sim.NewFleetConfig(spec.Fleet.Vehicles, spec.Fleet.MaxSpeed, spec.Fleet.MaxLoad)
		fleet = &f
	}
	logrus.Debugf("generated %d packages (%d with offer codes) from seed %d", len(pkgs), offered, spec.Seed)
	return manifest.FromPackages(spec.BaseDeliveryCost, pkgs, fleet), nil
}
