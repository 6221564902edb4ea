package sim

import (
	"errors"
	"fmt"
)

// FleetConfig groups the vehicle fleet parameters.
type FleetConfig struct {
	NumVehicles        int // vehicles available (must be > 0)
	MaxSpeed           int // km/h, same for every vehicle (must be > 0)
	MaxCarriableWeight int // kg per trip (must be > 0)
}

// NewFleetConfig creates a FleetConfig with all fields explicitly set.
// No defaults are injected.
func NewFleetConfig(numVehicles, maxSpeed, maxCarriableWeight int) FleetConfig {
	return FleetConfig{
		NumVehicles:        numVehicles,
		MaxSpeed:           maxSpeed,
		MaxCarriableWeight: maxCarriableWeight,
	}
}

var (
	// ErrNoVehicles is returned when the fleet has no vehicles.
	ErrNoVehicles = errors.New("fleet must have at least one vehicle")
	// ErrInvalidSpeed is returned for a non-positive max speed.
	ErrInvalidSpeed = errors.New("max speed must be positive")
	// ErrInvalidCapacity is returned for a non-positive max carriable weight.
	ErrInvalidCapacity = errors.New("max carriable weight must be positive")
)

// Validate checks that every fleet parameter is positive.
func (f FleetConfig) Validate() error {
	if f.NumVehicles <= 0 {
		return fmt.Errorf("%w, got %d", ErrNoVehicles, f.NumVehicles)
	}
	if f.MaxSpeed <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidSpeed, f.MaxSpeed)
	}
	if f.MaxCarriableWeight <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidCapacity, f.MaxCarriableWeight)
	}
	return nil
}
