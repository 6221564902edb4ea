package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiki-couriers/courier-sim/sim"
)

func TestFromPackages_CopiesFieldsAndFleet(t *testing.T) {
	fleet := sim.NewFleetConfig(2, 70, 200)
	m := FromPackages(100, []sim.Package{
		sim.NewPackage("PKG1", 50, 30, "OFR001"),
		sim.NewPackage("PKG2", 75, 125, ""),
	}, &fleet)

	assert.Equal(t, CurrentVersion, m.Version)
	assert.Equal(t, 100, m.BaseDeliveryCost)
	assert.Equal(t, PackageEntry{ID: "PKG1", Weight: 50, Distance: 30, OfferCode: "OFR001"}, m.Packages[0])
	require.NotNil(t, m.Fleet)
	assert.Equal(t, fleet, m.FleetConfig())
	assert.NoError(t, m.Validate())
}

func TestFromPackages_NilFleet_CostOnly(t *testing.T) {
	m := FromPackages(100, []sim.Package{sim.NewPackage("a", 1, 1, "")}, nil)
	assert.Nil(t, m.Fleet)
}

func TestCompose_ConcatenatesInOrder(t *testing.T) {
	a := &Manifest{Version: "1", BaseDeliveryCost: 100, Packages: []PackageEntry{{ID: "a", Weight: 1}}}
	b := &Manifest{Version: "1", BaseDeliveryCost: 100, Packages: []PackageEntry{{ID: "b", Weight: 2}, {ID: "c", Weight: 3}},
		Fleet: &FleetEntry{Vehicles: 2, MaxSpeed: 70, MaxLoad: 200}}

	merged, err := Compose([]*Manifest{a, b})
	require.NoError(t, err)

	ids := make([]string, len(merged.Packages))
	for i, p := range merged.Packages {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	require.NotNil(t, merged.Fleet)
	assert.Equal(t, 2, merged.Fleet.Vehicles)

	// the merged fleet is a copy
	merged.Fleet.Vehicles = 9
	assert.Equal(t, 2, b.Fleet.Vehicles)
}

func TestCompose_Errors(t *testing.T) {
	fleetA := &FleetEntry{Vehicles: 2, MaxSpeed: 70, MaxLoad: 200}
	fleetB := &FleetEntry{Vehicles: 3, MaxSpeed: 70, MaxLoad: 200}

	tests := []struct {
		name   string
		inputs []*Manifest
		want   string
	}{
		{"empty", nil, "no manifests"},
		{"base cost mismatch", []*Manifest{
			{BaseDeliveryCost: 100, Packages: []PackageEntry{{ID: "a"}}},
			{BaseDeliveryCost: 50, Packages: []PackageEntry{{ID: "b"}}},
		}, "base_delivery_cost"},
		{"duplicate id", []*Manifest{
			{BaseDeliveryCost: 100, Packages: []PackageEntry{{ID: "a"}}},
			{BaseDeliveryCost: 100, Packages: []PackageEntry{{ID: "a"}}},
		}, `package "a"`},
		{"fleet conflict", []*Manifest{
			{BaseDeliveryCost: 100, Fleet: fleetA},
			{BaseDeliveryCost: 100, Fleet: fleetB},
		}, "conflicts"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compose(tc.inputs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCompose_SameFleetTwice_Accepted(t *testing.T) {
	_, err := Compose([]*Manifest{
		{BaseDeliveryCost: 100, Fleet: &FleetEntry{Vehicles: 2, MaxSpeed: 70, MaxLoad: 200}},
		{BaseDeliveryCost: 100, Fleet: &FleetEntry{Vehicles: 2, MaxSpeed: 70, MaxLoad: 200}},
	})
	assert.NoError(t, err)
}
