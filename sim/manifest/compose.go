package manifest

import (
	"fmt"

	"github.com/kiki-couriers/courier-sim/sim"
)

// FromPackages builds a manifest from already-parsed run inputs.
// A nil fleet produces a cost-only manifest.
func FromPackages(baseDeliveryCost int, pkgs []sim.Package, fleet *sim.FleetConfig) *Manifest {
	m := &Manifest{
		Version:          CurrentVersion,
		BaseDeliveryCost: baseDeliveryCost,
		Packages:         make([]PackageEntry, len(pkgs)),
	}
	for i, p := range pkgs {
		m.Packages[i] = PackageEntry{ID: p.ID, Weight: p.Weight, Distance: p.Distance, OfferCode: p.OfferCode}
	}
	if fleet != nil {
		m.Fleet = &FleetEntry{Vehicles: fleet.NumVehicles, MaxSpeed: fleet.MaxSpeed, MaxLoad: fleet.MaxCarriableWeight}
	}
	return m
}

// Compose merges manifests into one by concatenating their package lists in
// argument order. All inputs must share a base delivery cost. The first fleet
// section found is used; a later, different fleet is an error.
// Package IDs must be unique across all inputs.
func Compose(manifests []*Manifest) (*Manifest, error) {
	if len(manifests) == 0 {
		return nil, fmt.Errorf("compose: no manifests provided")
	}
	merged := &Manifest{
		Version:          CurrentVersion,
		BaseDeliveryCost: manifests[0].BaseDeliveryCost,
	}
	seen := make(map[string]int)
	for i, m := range manifests {
		if m.BaseDeliveryCost != merged.BaseDeliveryCost {
			return nil, fmt.Errorf("compose: manifest[%d] base_delivery_cost %d differs from %d",
				i, m.BaseDeliveryCost, merged.BaseDeliveryCost)
		}
		for _, p := range m.Packages {
			if prev, dup := seen[p.ID]; dup {
				return nil, fmt.Errorf("compose: package %q in manifest[%d] already defined in manifest[%d]", p.ID, i, prev)
			}
			seen[p.ID] = i
			merged.Packages = append(merged.Packages, p)
		}
		if m.Fleet == nil {
			continue
		}
		if merged.Fleet == nil {
			f := *m.Fleet
			merged.Fleet = &f
		} else if *merged.Fleet != *m.Fleet {
			return nil, fmt.Errorf("compose: manifest[%d] fleet %+v conflicts with %+v", i, *m.Fleet, *merged.Fleet)
		}
	}
	return merged, nil
}
