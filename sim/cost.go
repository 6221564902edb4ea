package sim

// Per-unit delivery charges. These are part of the published tariff and are
// not configurable.
const (
	CostPerKg = 10
	CostPerKm = 5
)

// TotalCost returns the undiscounted delivery cost of a package.
func TotalCost(baseDeliveryCost, weight, distance int) int {
	return baseDeliveryCost + weight*CostPerKg + distance*CostPerKm
}

// EstimateCost returns the discount and final cost for one package. Both are
// truncated toward zero independently, so discount+cost may fall one unit
// short of the total. An unknown or absent offerCode yields no discount.
func EstimateCost(catalog *OfferCatalog, baseDeliveryCost, weight, distance int, offerCode string) (discount, cost int) {
	total := float64(TotalCost(baseDeliveryCost, weight, distance))
	rate := catalog.FindDiscount(offerCode, weight, distance)
	return int(rate * total), int(total * (1 - rate))
}

// EstimatePackages prices every package and returns annotated copies in the
// same order. pkgs is not modified.
func EstimatePackages(catalog *OfferCatalog, baseDeliveryCost int, pkgs []Package) []Package {
	out := make([]Package, len(pkgs))
	for i, p := range pkgs {
		p.DiscountAmount, p.DeliveryCost = EstimateCost(catalog, baseDeliveryCost, p.Weight, p.Distance, p.OfferCode)
		out[i] = p
	}
	return out
}
