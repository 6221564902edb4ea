// Package testutil provides shared test infrastructure for the courier simulator.
// It holds the golden dataset types and assertion helpers used across
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	CostCases      []GoldenCostCase      `json:"cost_cases"`
	PartitionCases []GoldenPartitionCase `json:"partition_cases"`
	DeliveryCases  []GoldenDeliveryCase  `json:"delivery_cases"`
}

// GoldenPackage is an input package in the golden dataset.
type GoldenPackage struct {
	ID        string `json:"id"`
	Weight    int    `json:"weight"`
	Distance  int    `json:"distance"`
	OfferCode string `json:"offer_code"`
}

// GoldenCostCase is a single cost estimation case.
type GoldenCostCase struct {
	Name             string `json:"name"`
	BaseDeliveryCost int    `json:"base_delivery_cost"`
	Weight           int    `json:"weight"`
	Distance         int    `json:"distance"`
	OfferCode        string `json:"offer_code"`
	Discount         int    `json:"discount"`
	Cost             int    `json:"cost"`
}

// GoldenPartitionCase lists the expected batches, by package ID, for a set of packages.
type GoldenPartitionCase struct {
	Name      string          `json:"name"`
	MaxWeight int             `json:"max_weight"`
	Packages  []GoldenPackage `json:"packages"`
	Batches   [][]string      `json:"batches"`
}

// GoldenDeliveryCase is a full run with expected per-package results in input order.
type GoldenDeliveryCase struct {
	Name             string           `json:"name"`
	BaseDeliveryCost int              `json:"base_delivery_cost"`
	Vehicles         int              `json:"vehicles"`
	MaxSpeed         int              `json:"max_speed"`
	MaxLoad          int              `json:"max_load"`
	Packages         []GoldenPackage  `json:"packages"`
	Expected         []GoldenDelivery `json:"expected"`
}

// GoldenDelivery is the expected outcome for one package.
type GoldenDelivery struct {
	ID          string  `json:"id"`
	Discount    int     `json:"discount"`
	Cost        int     `json:"cost"`
	TransitTime float64 `json:"transit_time"`
	DeliveredAt float64 `json:"delivered_at"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertHoursEqual compares two hour values to within half a hundredth.
func AssertHoursEqual(t *testing.T, name string, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 0.005 {
		t.Errorf("%s: got %.4f, want %.2f", name, got, want)
	}
}
