// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kiki-couriers/courier-sim/sim/trace"
)

// Simulator dispatches batches to vehicles over simulated time.
// Every batch goes to the vehicle that is back at the depot earliest
// (lowest index on ties). A vehicle's next availability is its departure
// time plus twice the farthest transit in the batch it carried.
//
// Thread-safety: NOT thread-safe. Each run needs its own Simulator.
type Simulator struct {
	Fleet FleetConfig
	// Vehicles ordered by availability; one entry per vehicle in the fleet
	Vehicles *VehicleHeap
	// Pending holds batches not yet dispatched, in partitioner order
	Pending *BatchQueue
	// Trips is the number of trips started so far
	Trips int

	trace *trace.DispatchTrace
}

// NewSimulator creates a Simulator with every vehicle available at time 0.
// Panics if fleet is invalid; callers validate with FleetConfig.Validate first.
func NewSimulator(fleet FleetConfig) *Simulator {
	if err := fleet.Validate(); err != nil {
		panic(fmt.Sprintf("NewSimulator: %v", err))
	}
	return &Simulator{
		Fleet:    fleet,
		Vehicles: NewVehicleHeap(fleet.NumVehicles),
		Pending:  &BatchQueue{},
	}
}

// WithTrace attaches a trip trace. A nil trace disables recording.
func (s *Simulator) WithTrace(dt *trace.DispatchTrace) *Simulator {
	s.trace = dt
	return s
}

// Dispatch enqueues batches and runs trips until the pending queue is empty.
// It returns every dispatched package annotated with TransitTime and
// DeliveredAt, in dispatch order. Vehicle state carries over between calls.
func (s *Simulator) Dispatch(batches []Batch) []Package {
	for _, b := range batches {
		s.Pending.Enqueue(b)
	}

	delivered := make([]Package, 0)
	for s.Pending.Len() > 0 {
		b, _ := s.Pending.Dequeue()
		delivered = append(delivered, s.dispatchBatch(b)...)
	}
	return delivered
}

// dispatchBatch sends one batch out on the earliest-available vehicle.
func (s *Simulator) dispatchBatch(b Batch) []Package {
	v := s.Vehicles.Acquire()
	departAt := v.AvailableAt

	out := make([]Package, len(b.Packages))
	var farthest int64
	for i, p := range b.Packages {
		transit := TransitTicks(p.Distance, s.Fleet.MaxSpeed)
		p.TransitTime = TicksToHours(transit)
		p.DeliveredAt = TicksToHours(departAt + transit)
		farthest = max(farthest, transit)
		out[i] = p
	}

	v.AvailableAt = departAt + 2*farthest
	v.Trips++
	s.Vehicles.Release(v)

	logrus.Debugf("[trip %03d] vehicle %d departs %.2fh with %dkg %v, back at %.2fh",
		s.Trips, v.ID, TicksToHours(departAt), b.TotalWeight(), b.IDs(), TicksToHours(v.AvailableAt))

	if s.trace != nil {
		s.trace.RecordTrip(trace.TripRecord{
			Trip:       s.Trips,
			Vehicle:    v.ID,
			DepartAt:   TicksToHours(departAt),
			ReturnAt:   TicksToHours(v.AvailableAt),
			Load:       b.TotalWeight(),
			PackageIDs: b.IDs(),
		})
	}
	s.Trips++
	return out
}

// VehicleAvailability returns each vehicle's next availability in hours,
// indexed by vehicle ID.
func (s *Simulator) VehicleAvailability() []float64 {
	snapshot := s.Vehicles.Snapshot()
	hours := make([]float64, len(snapshot))
	for i, v := range snapshot {
		hours[i] = TicksToHours(v.AvailableAt)
	}
	return hours
}
