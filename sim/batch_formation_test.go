package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchIDs(batches []Batch) [][]string {
	out := make([][]string, len(batches))
	for i, b := range batches {
		out[i] = b.IDs()
	}
	return out
}

func TestPartitionBatches_ReferenceSample(t *testing.T) {
	// GIVEN five packages and a 200kg trip limit
	pkgs := []Package{
		NewPackage("PKG1", 50, 150, "OFR002"),
		NewPackage("PKG2", 75, 200, ""),
		NewPackage("PKG3", 175, 100, "OFR001"),
		NewPackage("PKG4", 110, 50, ""),
		NewPackage("PKG5", 155, 50, "OFR001"),
	}

	// WHEN partitioned
	batches := PartitionBatches(pkgs, 200)

	// THEN first-fit-descending gives [175] [155] [110 75] [50], reordered by load
	assert.Equal(t, [][]string{{"PKG4", "PKG2"}, {"PKG3"}, {"PKG5"}, {"PKG1"}}, batchIDs(batches))
	assert.Equal(t, []int{185, 175, 155, 50}, []int{
		batches[0].TotalWeight(), batches[1].TotalWeight(), batches[2].TotalWeight(), batches[3].TotalWeight(),
	})
}

func TestPartitionBatches_ScansBatchesInCreationOrder(t *testing.T) {
	// GIVEN weights that arrive 30 70 40 60, processed as 70 60 40 30
	pkgs := []Package{
		NewPackage("a", 30, 1, ""),
		NewPackage("b", 70, 1, ""),
		NewPackage("c", 40, 1, ""),
		NewPackage("d", 60, 1, ""),
	}

	// WHEN partitioned at 100kg
	batches := PartitionBatches(pkgs, 100)

	// THEN 70 opens B0, 60 opens B1, 40 only fits B1, 30 fits B0 first
	assert.Equal(t, [][]string{{"b", "a"}, {"d", "c"}}, batchIDs(batches))
}

func TestPartitionBatches_EqualWeights_KeepInputOrder(t *testing.T) {
	pkgs := []Package{
		NewPackage("x", 50, 1, ""),
		NewPackage("y", 50, 1, ""),
		NewPackage("z", 50, 1, ""),
	}

	batches := PartitionBatches(pkgs, 100)

	// THEN x,y share the first batch and z opens the second
	assert.Equal(t, [][]string{{"x", "y"}, {"z"}}, batchIDs(batches))
}

func TestPartitionBatches_EqualBatchWeights_KeepCreationOrder(t *testing.T) {
	pkgs := []Package{
		NewPackage("p", 80, 1, ""),
		NewPackage("q", 80, 1, ""),
	}

	batches := PartitionBatches(pkgs, 100)

	assert.Equal(t, [][]string{{"p"}, {"q"}}, batchIDs(batches))
}

func TestPartitionBatches_Empty(t *testing.T) {
	assert.Empty(t, PartitionBatches(nil, 200))
}

func TestPartitionBatches_OverweightPackage_GetsOwnBatch(t *testing.T) {
	pkgs := []Package{NewPackage("big", 300, 1, ""), NewPackage("small", 10, 1, "")}

	batches := PartitionBatches(pkgs, 200)

	assert.Equal(t, [][]string{{"big"}, {"small"}}, batchIDs(batches))
}

func TestPartitionBatches_DoesNotMutateInput(t *testing.T) {
	pkgs := []Package{
		NewPackage("a", 10, 1, ""),
		NewPackage("b", 90, 1, ""),
	}
	_ = PartitionBatches(pkgs, 100)
	assert.Equal(t, "a", pkgs[0].ID)
	assert.Equal(t, "b", pkgs[1].ID)
}

// TestPartitionBatches_Invariants checks capacity, coverage and ordering
// over a deterministic spread of inputs.
func TestPartitionBatches_Invariants(t *testing.T) {
	for n := 1; n <= 40; n++ {
		maxWeight := 50 + n*7
		pkgs := make([]Package, n)
		for i := range pkgs {
			// deterministic pseudo-random weights in [1, maxWeight]
			w := (i*37+n*13)%maxWeight + 1
			pkgs[i] = NewPackage(string(rune('A'+i%26))+string(rune('0'+i/26)), w, i, "")
		}

		batches := PartitionBatches(pkgs, maxWeight)

		seen := make(map[string]int)
		for bi, b := range batches {
			require.NotEmpty(t, b.Packages, "n=%d batch %d empty", n, bi)
			if b.TotalWeight() > maxWeight {
				t.Fatalf("n=%d batch %d weighs %d > %d", n, bi, b.TotalWeight(), maxWeight)
			}
			if bi > 0 && b.TotalWeight() > batches[bi-1].TotalWeight() {
				t.Fatalf("n=%d batches not descending at %d", n, bi)
			}
			for _, p := range b.Packages {
				seen[p.ID]++
			}
		}
		require.Len(t, seen, n)
		for id, count := range seen {
			if count != 1 {
				t.Fatalf("n=%d package %s appears %d times", n, id, count)
			}
		}
	}
}
