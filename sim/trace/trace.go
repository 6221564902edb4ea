package trace

// TraceLevel controls the verbosity of dispatch tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTrips captures every vehicle trip started by the simulator.
	TraceLevelTrips TraceLevel = "trips"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelTrips: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether the config asks for any records.
func (c TraceConfig) Enabled() bool {
	return c.Level != TraceLevelNone && c.Level != ""
}

// DispatchTrace collects trip records during a dispatch simulation.
type DispatchTrace struct {
	Config TraceConfig
	Trips  []TripRecord
}

// NewDispatchTrace creates a DispatchTrace ready for recording.
func NewDispatchTrace(config TraceConfig) *DispatchTrace {
	return &DispatchTrace{
		Config: config,
		Trips:  make([]TripRecord, 0),
	}
}

// RecordTrip appends a trip record.
func (dt *DispatchTrace) RecordTrip(record TripRecord) {
	dt.Trips = append(dt.Trips, record)
}
