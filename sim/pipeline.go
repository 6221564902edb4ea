package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kiki-couriers/courier-sim/sim/trace"
)

var (
	// ErrOverweight is returned when a package cannot fit on any vehicle.
	ErrOverweight = errors.New("package exceeds max carriable weight")
	// ErrDuplicatePackage is returned when two packages share an ID.
	ErrDuplicatePackage = errors.New("duplicate package id")
	// ErrNegativeBaseCost is returned for a base delivery cost below zero.
	ErrNegativeBaseCost = errors.New("base delivery cost must not be negative")
)

// RunInput is everything a delivery run needs.
type RunInput struct {
	BaseDeliveryCost int
	Packages         []Package
	Catalog          *OfferCatalog // nil means no offers
	Fleet            FleetConfig
	Trace            trace.TraceConfig
}

// RunResult is the outcome of a delivery run.
type RunResult struct {
	Packages []Package // annotated, in input order
	Batches  []Batch   // in dispatch order, cost-annotated but without timing
	Metrics  *Metrics
	Trace    *trace.DispatchTrace // nil unless tracing was enabled
}

// Run validates the input, prices every package, partitions them into
// trips and simulates dispatch. It is deterministic: identical inputs give
// identical results.
func Run(in RunInput) (*RunResult, error) {
	if err := validateRunInput(in); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	priced := EstimatePackages(in.Catalog, in.BaseDeliveryCost, in.Packages)
	batches := PartitionBatches(priced, in.Fleet.MaxCarriableWeight)

	var dt *trace.DispatchTrace
	if in.Trace.Enabled() {
		dt = trace.NewDispatchTrace(in.Trace)
	}
	s := NewSimulator(in.Fleet).WithTrace(dt)
	dispatched := s.Dispatch(batches)

	byID := make(map[string]Package, len(dispatched))
	for _, p := range dispatched {
		byID[p.ID] = p
	}

	metrics := NewMetrics()
	out := make([]Package, len(in.Packages))
	for i, p := range in.Packages {
		out[i] = byID[p.ID]
		metrics.RecordPackage(in.BaseDeliveryCost, out[i])
	}
	metrics.Trips = s.Trips
	metrics.VehicleFreeAt = s.VehicleAvailability()

	logrus.Infof("delivered %d packages in %d trips, last delivery at %.2fh",
		metrics.Packages, metrics.Trips, metrics.Makespan)

	return &RunResult{
		Packages: out,
		Batches:  batches,
		Metrics:  metrics,
		Trace:    dt,
	}, nil
}

// Estimate prices packages without dispatching them. Packages are returned
// in input order with TransitTime and DeliveredAt left at zero.
func Estimate(baseDeliveryCost int, pkgs []Package, catalog *OfferCatalog) ([]Package, *Metrics, error) {
	if baseDeliveryCost < 0 {
		return nil, nil, fmt.Errorf("estimate: %w, got %d", ErrNegativeBaseCost, baseDeliveryCost)
	}
	priced := EstimatePackages(catalog, baseDeliveryCost, pkgs)
	metrics := NewMetrics()
	for _, p := range priced {
		metrics.RecordPackage(baseDeliveryCost, p)
	}
	return priced, metrics, nil
}

func validateRunInput(in RunInput) error {
	if err := in.Fleet.Validate(); err != nil {
		return err
	}
	if in.BaseDeliveryCost < 0 {
		return fmt.Errorf("%w, got %d", ErrNegativeBaseCost, in.BaseDeliveryCost)
	}
	seen := make(map[string]bool, len(in.Packages))
	for _, p := range in.Packages {
		if seen[p.ID] {
			return fmt.Errorf("%w %q", ErrDuplicatePackage, p.ID)
		}
		seen[p.ID] = true
		if p.Weight > in.Fleet.MaxCarriableWeight {
			return fmt.Errorf("package %q weighs %dkg: %w (%dkg)", p.ID, p.Weight, ErrOverweight, in.Fleet.MaxCarriableWeight)
		}
	}
	return nil
}
