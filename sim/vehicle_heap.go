package sim

import "container/heap"

// Vehicle is one delivery vehicle in the fleet.
type Vehicle struct {
	ID          int   // 0..NumVehicles-1
	AvailableAt int64 // ticks at which the vehicle is back at the depot
	Trips       int   // trips started so far
}

// VehicleHeap implements a priority queue of vehicles with deterministic ordering
// Ordering: availability time → vehicle ID
type VehicleHeap struct {
	vehicles []*Vehicle
}

// NewVehicleHeap creates a heap of n vehicles, all available at tick 0
func NewVehicleHeap(n int) *VehicleHeap {
	h := &VehicleHeap{
		vehicles: make([]*Vehicle, 0, n),
	}
	for i := 0; i < n; i++ {
		h.vehicles = append(h.vehicles, &Vehicle{ID: i})
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *VehicleHeap) Len() int {
	return len(h.vehicles)
}

// Less implements heap.Interface with deterministic ordering
func (h *VehicleHeap) Less(i, j int) bool {
	vi, vj := h.vehicles[i], h.vehicles[j]

	// Primary: earliest available first
	if vi.AvailableAt != vj.AvailableAt {
		return vi.AvailableAt < vj.AvailableAt
	}

	// Secondary: lowest index
	return vi.ID < vj.ID
}

// Swap implements heap.Interface
func (h *VehicleHeap) Swap(i, j int) {
	h.vehicles[i], h.vehicles[j] = h.vehicles[j], h.vehicles[i]
}

// Push implements heap.Interface
func (h *VehicleHeap) Push(x interface{}) {
	h.vehicles = append(h.vehicles, x.(*Vehicle))
}

// Pop implements heap.Interface
func (h *VehicleHeap) Pop() interface{} {
	old := h.vehicles
	n := len(old)
	item := old[n-1]
	h.vehicles = old[0 : n-1]
	return item
}

// Acquire removes and returns the earliest-available vehicle
func (h *VehicleHeap) Acquire() *Vehicle {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*Vehicle)
}

// Release returns a vehicle to the heap after its availability was updated
func (h *VehicleHeap) Release(v *Vehicle) {
	heap.Push(h, v)
}

// Peek returns the earliest-available vehicle without removing it
func (h *VehicleHeap) Peek() *Vehicle {
	if h.Len() == 0 {
		return nil
	}
	return h.vehicles[0]
}

// Snapshot returns copies of all vehicles currently in the heap, ordered by ID.
func (h *VehicleHeap) Snapshot() []Vehicle {
	out := make([]Vehicle, len(h.vehicles))
	for _, v := range h.vehicles {
		if v.ID >= 0 && v.ID < len(out) {
			out[v.ID] = *v
		}
	}
	return out
}
