// batch.go
//
// Defines the Batch struct which represents a group of packages carried together
// on a single vehicle trip.

package sim

// Batch is the set of packages loaded onto one vehicle for one trip.
// Order is the order in which packages were placed by the partitioner.
type Batch struct {
	Packages []Package
}

// NewBatch creates a Batch holding pkgs.
func NewBatch(pkgs ...Package) Batch {
	return Batch{Packages: pkgs}
}

// TotalWeight returns the combined weight of the batch in kg.
func (b Batch) TotalWeight() int {
	total := 0
	for _, p := range b.Packages {
		total += p.Weight
	}
	return total
}

// IDs returns the package IDs in batch order.
func (b Batch) IDs() []string {
	ids := make([]string, len(b.Packages))
	for i, p := range b.Packages {
		ids[i] = p.ID
	}
	return ids
}
