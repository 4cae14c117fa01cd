package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/disk-sim/sim"
)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version         string    `yaml:"version"`
	Seed            int64     `yaml:"seed"`
	DiskSize        int       `yaml:"disk_size"`
	InitialPosition *int      `yaml:"initial_position,omitempty"` // nil = drawn from the seed
	Direction       string    `yaml:"direction,omitempty"`
	Algorithm       string    `yaml:"algorithm,omitempty"`
	NStep           int       `yaml:"n_step,omitempty"`
	NumRequests     int       `yaml:"num_requests,omitempty"`
	Requests        []int     `yaml:"requests,omitempty"` // explicit tracks; bypass sampling
	Distribution    *DistSpec `yaml:"distribution,omitempty"`
}

// DistSpec parameterizes a track distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Valid value registries.
var (
	validVersions = map[string]bool{
		"": true, "1": true,
	}
	validDistTypes = map[string]bool{
		"uniform": true, "gaussian": true, "hotspot": true, "sequential": true, "empirical": true,
	}
)

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported version %q; valid: 1", s.Version)
	}
	if s.DiskSize <= 0 {
		return fmt.Errorf("disk_size must be positive, got %d", s.DiskSize)
	}
	if s.InitialPosition != nil && (*s.InitialPosition < 0 || *s.InitialPosition >= s.DiskSize) {
		return fmt.Errorf("initial_position %d lies outside [0, %d]", *s.InitialPosition, s.DiskSize-1)
	}
	if s.Direction != "" {
		if _, err := sim.ParseDirection(s.Direction); err != nil {
			return err
		}
	}
	if s.Algorithm != "" && !sim.IsValidAlgorithm(s.Algorithm) {
		return fmt.Errorf("unknown algorithm %q; valid: %v", s.Algorithm, sim.AlgorithmNames())
	}
	if s.NStep < 0 {
		return fmt.Errorf("n_step must be non-negative, got %d", s.NStep)
	}
	if len(s.Requests) > 0 {
		if s.Distribution != nil || s.NumRequests != 0 {
			return fmt.Errorf("requests cannot be combined with num_requests or distribution")
		}
		for i, r := range s.Requests {
			if r < 0 || r >= s.DiskSize {
				return fmt.Errorf("requests[%d] = %d lies outside [0, %d]", i, r, s.DiskSize-1)
			}
		}
		return nil
	}
	if s.NumRequests <= 0 {
		return fmt.Errorf("num_requests must be positive when no explicit requests are given, got %d", s.NumRequests)
	}
	if s.Distribution == nil {
		return fmt.Errorf("distribution required when no explicit requests are given")
	}
	return validateDistSpec("distribution", s.Distribution)
}

func validateDistSpec(prefix string, d *DistSpec) error {
	if !validDistTypes[d.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: uniform, gaussian, hotspot, sequential, empirical", prefix, d.Type)
	}
	for name, val := range d.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", prefix, name, val)
		}
	}
	return nil
}
