package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiki-couriers/courier-sim/sim"
	"github.com/kiki-couriers/courier-sim/sim/manifest"
)

func baseSpec() *GeneratorSpec {
	return &GeneratorSpec{
		Seed:             42,
		Packages:         50,
		BaseDeliveryCost: 100,
		Weight:           DistSpec{Type: "uniform", Min: 5, Max: 200},
		Distance:         DistSpec{Type: "gaussian", Min: 1, Max: 250, Mean: 100, StdDev: 50},
		OfferCodes:       []string{"OFR001", "OFR002", "OFR003"},
		OfferRate:        0.5,
		Fleet:            &manifest.FleetEntry{Vehicles: 3, MaxSpeed: 70, MaxLoad: 200},
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(baseSpec())
	require.NoError(t, err)
	b, err := Generate(baseSpec())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := baseSpec()
	other.Seed = 43
	c, err := Generate(other)
	require.NoError(t, err)
	assert.NotEqual(t, a.Packages, c.Packages)
}

func TestGenerate_ProducesValidRunnableManifest(t *testing.T) {
	// GIVEN a generated manifest
	m, err := Generate(baseSpec())
	require.NoError(t, err)

	// THEN it validates and the pipeline accepts it
	require.NoError(t, m.Validate())
	assert.Len(t, m.Packages, 50)
	assert.Equal(t, "PKG1", m.Packages[0].ID)
	assert.Equal(t, "PKG50", m.Packages[49].ID)

	res, err := sim.Run(sim.RunInput{
		BaseDeliveryCost: m.BaseDeliveryCost,
		Packages:         m.SimPackages(),
		Catalog:          sim.DefaultOfferCatalog(),
		Fleet:            m.FleetConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Metrics.Packages)
}

func TestGenerate_ZeroOfferRate_NoCodes(t *testing.T) {
	spec := baseSpec()
	spec.OfferRate = 0
	m, err := Generate(spec)
	require.NoError(t, err)
	for _, p := range m.Packages {
		assert.Empty(t, p.OfferCode)
	}
}

func TestGeneratorSpec_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *GeneratorSpec)
		want   string
	}{
		{"no packages", func(s *GeneratorSpec) { s.Packages = 0 }, "packages must be positive"},
		{"negative base", func(s *GeneratorSpec) { s.BaseDeliveryCost = -1 }, "base_delivery_cost"},
		{"zero weight", func(s *GeneratorSpec) { s.Weight.Min = 0 }, "weight: min must be positive"},
		{"negative distance", func(s *GeneratorSpec) { s.Distance.Min = -1 }, "distance: min"},
		{"bad rate", func(s *GeneratorSpec) { s.OfferRate = 1.5 }, "offer_rate"},
		{"rate without codes", func(s *GeneratorSpec) { s.OfferCodes = nil }, "needs at least one offer code"},
		{"weight over capacity", func(s *GeneratorSpec) { s.Weight.Max = 500 }, "exceeds fleet max_load"},
		{"bad fleet", func(s *GeneratorSpec) { s.Fleet.Vehicles = 0 }, "fleet:"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := baseSpec()
			tc.mutate(spec)
			err := spec.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadGeneratorSpec_StrictKeys(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
seed: 7
packages: 10
base_delivery_cost: 100
weight: {type: uniform, min: 1, max: 100}
distance: {type: exponential, min: 0, max: 200, mean: 30}
`), 0644))
	spec, err := LoadGeneratorSpec(good)
	require.NoError(t, err)
	assert.Equal(t, int64(7), spec.Seed)
	assert.Equal(t, 30.0, spec.Distance.Mean)
	assert.NoError(t, spec.Validate())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("packages: 1\nwieght: {}\n"), 0644))
	_, err = LoadGeneratorSpec(bad)
	assert.Error(t, err)
}
