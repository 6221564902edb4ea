package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// Sampler generates integer samples within fixed bounds.
type Sampler interface {
	// Sample returns a value in [min, max] of the sampler's spec.
	Sample(rng *rand.Rand) int
}

// DistSpec describes a bounded integer distribution in YAML.
type DistSpec struct {
	Type   string  `yaml:"type"` // uniform, gaussian, exponential
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	Mean   float64 `yaml:"mean,omitempty"`
	StdDev float64 `yaml:"std_dev,omitempty"`
}

// UniformSampler draws uniformly from [min, max].
type UniformSampler struct {
	min, max int
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	return s.min + rng.Intn(s.max-s.min+1)
}

// GaussianSampler produces clamped Gaussian values.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	return clamp(int(math.Round(val)), s.min, s.max)
}

// ExponentialSampler produces exponentially-distributed values offset by min
// and clamped at max.
type ExponentialSampler struct {
	mean     float64
	min, max int
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int {
	val := float64(s.min) + rng.ExpFloat64()*s.mean
	if math.IsInf(val, 0) || val > float64(s.max) {
		return s.max
	}
	return clamp(int(math.Round(val)), s.min, s.max)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// NewSampler creates a Sampler from a DistSpec.
func NewSampler(spec DistSpec) (Sampler, error) {
	if spec.Min > spec.Max {
		return nil, fmt.Errorf("min %d exceeds max %d", spec.Min, spec.Max)
	}
	switch spec.Type {
	case "uniform", "":
		return &UniformSampler{min: spec.Min, max: spec.Max}, nil
	case "gaussian":
		if spec.StdDev < 0 {
			return nil, fmt.Errorf("gaussian std_dev must be non-negative, got %g", spec.StdDev)
		}
		return &GaussianSampler{mean: spec.Mean, stdDev: spec.StdDev, min: spec.Min, max: spec.Max}, nil
	case "exponential":
		if spec.Mean <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %g", spec.Mean)
		}
		return &ExponentialSampler{mean: spec.Mean, min: spec.Min, max: spec.Max}, nil
	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
