package trace

// TraceSummary aggregates statistics from a DispatchTrace.
type TraceSummary struct {
	TotalTrips      int
	TotalPackages   int
	MaxLoad         int
	MeanLoad        float64
	LastReturn      float64     // latest ReturnAt across trips, hours
	TripsPerVehicle map[int]int // vehicle index → trips taken
}

// Summarize computes aggregate statistics from a DispatchTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(dt *DispatchTrace) *TraceSummary {
	summary := &TraceSummary{
		TripsPerVehicle: make(map[int]int),
	}
	if dt == nil {
		return summary
	}

	summary.TotalTrips = len(dt.Trips)
	if len(dt.Trips) == 0 {
		return summary
	}

	totalLoad := 0
	for _, r := range dt.Trips {
		summary.TripsPerVehicle[r.Vehicle]++
		summary.TotalPackages += len(r.PackageIDs)
		totalLoad += r.Load
		if r.Load > summary.MaxLoad {
			summary.MaxLoad = r.Load
		}
		if r.ReturnAt > summary.LastReturn {
			summary.LastReturn = r.ReturnAt
		}
	}
	summary.MeanLoad = float64(totalLoad) / float64(len(dt.Trips))

	return summary
}
