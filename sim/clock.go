package sim

import "math"

// TicksPerHour is the resolution of the simulation clock. One tick is 0.01 h,
// matching the two decimal places used for every reported time.
const TicksPerHour = 100

// TransitTicks returns the one-way travel time for distance km at speed km/h,
// truncated to whole ticks. Integer division gives floor(distance/speed) to
// two decimals without float error.
func TransitTicks(distance, speed int) int64 {
	return int64(distance) * TicksPerHour / int64(speed)
}

// TicksToHours converts a tick count to hours rounded to two decimals.
func TicksToHours(ticks int64) float64 {
	return Round2(float64(ticks) / TicksPerHour)
}

// Round2 rounds x half-up to two decimals. Times are never negative, so
// math.Round's half-away-from-zero is half-up here.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
