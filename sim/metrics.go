// Tracks run-wide totals such as billed cost, discounts given and the time
// the last package is delivered.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Metrics aggregates statistics about a run for final reporting.
type Metrics struct {
	Packages          int       `json:"packages"`            // packages priced
	Trips             int       `json:"trips"`               // vehicle trips started
	TotalGrossCost    int       `json:"total_gross_cost"`    // sum of undiscounted costs
	TotalDiscount     int       `json:"total_discount"`      // sum of DiscountAmount
	TotalDeliveryCost int       `json:"total_delivery_cost"` // sum of DeliveryCost
	DiscountedCount   int       `json:"discounted_packages"` // packages with a non-zero discount
	Makespan          float64   `json:"makespan_hours"`      // latest DeliveredAt
	VehicleFreeAt     []float64 `json:"vehicle_free_at_hours,omitempty"`
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordPackage folds one annotated package into the totals.
func (m *Metrics) RecordPackage(baseDeliveryCost int, p Package) {
	m.Packages++
	m.TotalGrossCost += TotalCost(baseDeliveryCost, p.Weight, p.Distance)
	m.TotalDiscount += p.DiscountAmount
	m.TotalDeliveryCost += p.DeliveryCost
	if p.DiscountAmount > 0 {
		m.DiscountedCount++
	}
	if p.DeliveredAt > m.Makespan {
		m.Makespan = p.DeliveredAt
	}
}

// Print writes the totals in a fixed-width layout.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Run Summary ===")
	fmt.Fprintf(w, "Packages             : %d\n", m.Packages)
	fmt.Fprintf(w, "Discounted Packages  : %d\n", m.DiscountedCount)
	fmt.Fprintf(w, "Gross Cost           : %d\n", m.TotalGrossCost)
	fmt.Fprintf(w, "Total Discount       : %d\n", m.TotalDiscount)
	fmt.Fprintf(w, "Total Delivery Cost  : %d\n", m.TotalDeliveryCost)
	if m.Trips > 0 {
		fmt.Fprintf(w, "Trips                : %d\n", m.Trips)
		fmt.Fprintf(w, "Last Delivery        : %.2f h\n", m.Makespan)
		for i, t := range m.VehicleFreeAt {
			fmt.Fprintf(w, "Vehicle %02d Free At   : %.2f h\n", i, t)
		}
	}
}

// SaveJSON writes the metrics as indented JSON to path.
func (m *Metrics) SaveJSON(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
