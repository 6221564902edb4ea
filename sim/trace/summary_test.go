package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalTrips != 0 || summary.TotalPackages != 0 {
		t.Errorf("expected zero counts, got trips=%d packages=%d", summary.TotalTrips, summary.TotalPackages)
	}
	if summary.TripsPerVehicle == nil {
		t.Error("expected non-nil TripsPerVehicle map")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	dt := NewDispatchTrace(TraceConfig{Level: TraceLevelTrips})

	// WHEN summarized
	summary := Summarize(dt)

	// THEN all counts are zero
	if summary.TotalTrips != 0 {
		t.Errorf("expected 0 trips, got %d", summary.TotalTrips)
	}
	if summary.MaxLoad != 0 || summary.MeanLoad != 0 {
		t.Error("expected 0 load values")
	}
	if summary.LastReturn != 0 {
		t.Errorf("expected 0 last return, got %v", summary.LastReturn)
	}
	if len(summary.TripsPerVehicle) != 0 {
		t.Error("expected empty trips-per-vehicle")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN the trips of a two-vehicle run
	dt := NewDispatchTrace(TraceConfig{Level: TraceLevelTrips})
	dt.RecordTrip(TripRecord{Trip: 0, Vehicle: 0, DepartAt: 0, ReturnAt: 3.56, Load: 185, PackageIDs: []string{"PKG4", "PKG2"}})
	dt.RecordTrip(TripRecord{Trip: 1, Vehicle: 1, DepartAt: 0, ReturnAt: 2.84, Load: 175, PackageIDs: []string{"PKG3"}})
	dt.RecordTrip(TripRecord{Trip: 2, Vehicle: 1, DepartAt: 2.84, ReturnAt: 5.54, Load: 155, PackageIDs: []string{"PKG5"}})
	dt.RecordTrip(TripRecord{Trip: 3, Vehicle: 0, DepartAt: 3.56, ReturnAt: 4.40, Load: 50, PackageIDs: []string{"PKG1"}})

	// WHEN summarized
	summary := Summarize(dt)

	// THEN counts match
	if summary.TotalTrips != 4 {
		t.Errorf("expected 4 trips, got %d", summary.TotalTrips)
	}
	if summary.TotalPackages != 5 {
		t.Errorf("expected 5 packages, got %d", summary.TotalPackages)
	}
	if summary.MaxLoad != 185 {
		t.Errorf("expected max load 185, got %d", summary.MaxLoad)
	}
	expectedMean := (185.0 + 175 + 155 + 50) / 4
	if summary.MeanLoad != expectedMean {
		t.Errorf("expected mean load %.2f, got %.2f", expectedMean, summary.MeanLoad)
	}
	if summary.LastReturn != 5.54 {
		t.Errorf("expected last return 5.54, got %v", summary.LastReturn)
	}
	if summary.TripsPerVehicle[0] != 2 || summary.TripsPerVehicle[1] != 2 {
		t.Errorf("expected 2 trips per vehicle, got %v", summary.TripsPerVehicle)
	}
}
