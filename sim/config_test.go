package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFleetConfig_FieldEquivalence(t *testing.T) {
	got := NewFleetConfig(2, 70, 200)
	want := FleetConfig{
		NumVehicles:        2,
		MaxSpeed:           70,
		MaxCarriableWeight: 200,
	}
	assert.Equal(t, want, got)
}

func TestNewFleetConfig_ZeroValues_NoDefaults(t *testing.T) {
	// Zero-value arguments must NOT inject non-zero defaults
	got := NewFleetConfig(0, 0, 0)
	assert.Equal(t, FleetConfig{}, got)
}

func TestFleetConfig_Validate(t *testing.T) {
	assert.NoError(t, NewFleetConfig(1, 1, 1).Validate())
	assert.ErrorIs(t, NewFleetConfig(0, 70, 200).Validate(), ErrNoVehicles)
	assert.ErrorIs(t, NewFleetConfig(-2, 70, 200).Validate(), ErrNoVehicles)
	assert.ErrorIs(t, NewFleetConfig(2, 0, 200).Validate(), ErrInvalidSpeed)
	assert.ErrorIs(t, NewFleetConfig(2, 70, 0).Validate(), ErrInvalidCapacity)
}

func TestFleetConfig_Validate_ReportsValue(t *testing.T) {
	err := NewFleetConfig(-3, 70, 200).Validate()
	assert.EqualError(t, err, "fleet must have at least one vehicle, got -3")
}
