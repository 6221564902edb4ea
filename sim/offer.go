package sim

import (
	"errors"
	"fmt"
	"slices"
)

// Offer is a promotional discount rule. A package qualifies when its offer
// code equals Code and both its weight and distance fall inside the
// inclusive bounds.
type Offer struct {
	Code         string  `yaml:"code"`
	DiscountRate float64 `yaml:"discount"`     // fraction of total cost, 0..1
	MinDistance  int     `yaml:"min_distance"` // km, inclusive
	MaxDistance  int     `yaml:"max_distance"` // km, inclusive
	MinWeight    int     `yaml:"min_weight"`   // kg, inclusive
	MaxWeight    int     `yaml:"max_weight"`   // kg, inclusive
}

// Applies reports whether weight and distance lie within the offer's bounds.
// The code is not checked here.
func (o Offer) Applies(weight, distance int) bool {
	return weight >= o.MinWeight && weight <= o.MaxWeight &&
		distance >= o.MinDistance && distance <= o.MaxDistance
}

// OfferCatalog is an immutable, ordered set of offers keyed by code.
// The zero value and a nil *OfferCatalog are both empty catalogs.
type OfferCatalog struct {
	offers []Offer
}

// NewOfferCatalog builds a catalog from offers. The slice is copied, so later
// changes by the caller do not leak into the catalog.
func NewOfferCatalog(offers ...Offer) *OfferCatalog {
	return &OfferCatalog{offers: slices.Clone(offers)}
}

// DefaultOfferCatalog returns the catalog of currently running promotions.
// New promotions are added here.
func DefaultOfferCatalog() *OfferCatalog {
	return NewOfferCatalog(
		Offer{Code: "OFR001", DiscountRate: 0.10, MinDistance: 0, MaxDistance: 200, MinWeight: 70, MaxWeight: 200},
		Offer{Code: "OFR002", DiscountRate: 0.07, MinDistance: 50, MaxDistance: 150, MinWeight: 100, MaxWeight: 250},
		Offer{Code: "OFR003", DiscountRate: 0.05, MinDistance: 50, MaxDistance: 250, MinWeight: 10, MaxWeight: 150},
	)
}

// FindDiscount returns the discount rate for a package carrying code, or 0.0
// when the code is empty, unknown, or the package is outside the offer's
// bounds. Only the first offer with a matching code is considered.
func (c *OfferCatalog) FindDiscount(code string, weight, distance int) float64 {
	if c == nil || code == "" {
		return 0.0
	}
	for _, o := range c.offers {
		if o.Code != code {
			continue
		}
		if o.Applies(weight, distance) {
			return o.DiscountRate
		}
		return 0.0
	}
	return 0.0
}

// Lookup returns the offer registered under code.
func (c *OfferCatalog) Lookup(code string) (Offer, bool) {
	if c == nil {
		return Offer{}, false
	}
	for _, o := range c.offers {
		if o.Code == code {
			return o, true
		}
	}
	return Offer{}, false
}

// Codes lists offer codes in catalog order.
func (c *OfferCatalog) Codes() []string {
	if c == nil {
		return nil
	}
	codes := make([]string, 0, len(c.offers))
	for _, o := range c.offers {
		codes = append(codes, o.Code)
	}
	return codes
}

// Len returns the number of offers in the catalog.
func (c *OfferCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.offers)
}

// ErrInvalidOffer is wrapped by every error returned from Validate.
var ErrInvalidOffer = errors.New("invalid offer")

// Validate checks that codes are non-empty and unique, rates lie in [0, 1],
// and no range is inverted.
func (c *OfferCatalog) Validate() error {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool, c.Len())
	for i, o := range c.offers {
		prefix := fmt.Sprintf("offer[%d]", i)
		if o.Code == "" {
			return fmt.Errorf("%s: %w: code must not be empty", prefix, ErrInvalidOffer)
		}
		if seen[o.Code] {
			return fmt.Errorf("%s: %w: duplicate code %q", prefix, ErrInvalidOffer, o.Code)
		}
		seen[o.Code] = true
		if o.DiscountRate < 0 || o.DiscountRate > 1 {
			return fmt.Errorf("%s (%s): %w: discount must be in [0, 1], got %g", prefix, o.Code, ErrInvalidOffer, o.DiscountRate)
		}
		if o.MinDistance > o.MaxDistance {
			return fmt.Errorf("%s (%s): %w: min_distance %d exceeds max_distance %d", prefix, o.Code, ErrInvalidOffer, o.MinDistance, o.MaxDistance)
		}
		if o.MinWeight > o.MaxWeight {
			return fmt.Errorf("%s (%s): %w: min_weight %d exceeds max_weight %d", prefix, o.Code, ErrInvalidOffer, o.MinWeight, o.MaxWeight)
		}
	}
	return nil
}
