// Defines the Package struct that models a single parcel moving through the pipeline.
// Tracks its physical attributes, the cost annotations set by the estimator and
// the timing annotations set by the dispatch simulator.

package sim

import (
	"fmt"
)

// Package is a single parcel to be priced and delivered.
// Each pipeline stage returns annotated copies:
// - EstimatePackages sets DiscountAmount and DeliveryCost
// - Simulator.Dispatch sets TransitTime and DeliveredAt
type Package struct {
	ID        string // Unique within one run
	Weight    int    // kg
	Distance  int    // km from the depot
	OfferCode string // Promotional code; empty when none was given

	DiscountAmount int // currency units, truncated
	DeliveryCost   int // currency units after discount, truncated

	TransitTime float64 // one-way hours, two decimals (truncated)
	DeliveredAt float64 // simulated hours since start, two decimals
}

// NewPackage creates an unannotated Package.
func NewPackage(id string, weight, distance int, offerCode string) Package {
	return Package{
		ID:        id,
		Weight:    weight,
		Distance:  distance,
		OfferCode: offerCode,
	}
}

// This method returns a human-readable string representation of a Package.
func (p Package) String() string {
	return fmt.Sprintf("Package: (ID: %s, Weight: %dkg, Distance: %dkm, Offer: %q)", p.ID, p.Weight, p.Distance, p.OfferCode)
}
