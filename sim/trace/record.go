// Package trace provides trip-level recording for dispatch analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// TripRecord captures a single vehicle trip: which vehicle took which batch,
// when it left the depot and when it is back.
type TripRecord struct {
	Trip       int      // 0-based trip sequence number
	Vehicle    int      // vehicle index
	DepartAt   float64  // hours
	ReturnAt   float64  // hours; DepartAt + 2 * farthest transit
	Load       int      // kg carried
	PackageIDs []string // in batch order
}

// Duration returns the round-trip time in hours.
func (r TripRecord) Duration() float64 {
	return r.ReturnAt - r.DepartAt
}
