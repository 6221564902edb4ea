package sim

import (
	"cmp"
	"slices"

	"github.com/sirupsen/logrus"
)

// PartitionBatches groups packages into trips whose combined weight does not
// exceed maxWeight, using first-fit-descending:
//
//  1. packages are taken heaviest first (stable, so equal weights keep input order)
//  2. each goes into the first existing batch, in creation order, with room for it
//  3. a package that fits nowhere opens a new batch
//
// The result is ordered by batch weight, heaviest first (stable on ties).
// This is a greedy heuristic, not optimal bin packing; downstream timing
// depends on reproducing it exactly.
//
// A package heavier than maxWeight ends up alone in its own batch. Callers
// are expected to reject such packages beforehand (see Run).
func PartitionBatches(pkgs []Package, maxWeight int) []Batch {
	sorted := slices.Clone(pkgs)
	slices.SortStableFunc(sorted, func(a, b Package) int {
		return cmp.Compare(b.Weight, a.Weight)
	})

	var batches []Batch
	var loads []int
	for _, p := range sorted {
		placed := false
		for i := range batches {
			if loads[i]+p.Weight <= maxWeight {
				batches[i].Packages = append(batches[i].Packages, p)
				loads[i] += p.Weight
				placed = true
				break
			}
		}
		if !placed {
			if p.Weight > maxWeight {
				logrus.Warnf("package %s weighs %dkg, over the %dkg trip limit", p.ID, p.Weight, maxWeight)
			}
			batches = append(batches, NewBatch(p))
			loads = append(loads, p.Weight)
		}
	}

	slices.SortStableFunc(batches, func(a, b Batch) int {
		return cmp.Compare(b.TotalWeight(), a.TotalWeight())
	})
	logrus.Debugf("partitioned %d packages into %d batches (max %dkg)", len(pkgs), len(batches), maxWeight)
	return batches
}
