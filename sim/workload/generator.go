package workload

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/disk-sim/sim"
)

// Workload is a generated request set ready for a sim.Scheduler.
type Workload struct {
	Requests        []int
	InitialPosition int
	DiskSize        int
}

// GenerateWorkload creates a request set from a WorkloadSpec.
// Deterministic given the same spec and seed: tracks come from the workload
// RNG subsystem and an unset initial position from the head subsystem, so
// one never perturbs the other.
func GenerateWorkload(spec *WorkloadSpec) (*Workload, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))

	w := &Workload{DiskSize: spec.DiskSize}
	if spec.InitialPosition != nil {
		w.InitialPosition = *spec.InitialPosition
	} else {
		w.InitialPosition = rng.ForSubsystem(sim.SubsystemHead).Intn(spec.DiskSize)
		logrus.Debugf("initial_position unset; drew track %d from seed %d", w.InitialPosition, spec.Seed)
	}

	if len(spec.Requests) > 0 {
		w.Requests = slices.Clone(spec.Requests)
		return w, nil
	}

	sampler, err := NewTrackSampler(*spec.Distribution, spec.DiskSize)
	if err != nil {
		return nil, fmt.Errorf("distribution: %w", err)
	}
	workloadRNG := rng.ForSubsystem(sim.SubsystemWorkload)
	w.Requests = make([]int, spec.NumRequests)
	for i := range w.Requests {
		w.Requests[i] = sampler.Sample(workloadRNG)
	}
	if cc, ok := sampler.(clampCounter); ok && cc.Clamped() > 0 {
		logrus.Warnf("%s distribution: %d of %d samples fell outside the track range and were clamped",
			spec.Distribution.Type, cc.Clamped(), spec.NumRequests)
	}
	logrus.Debugf("generated %d %s requests on a %d-track disk", len(w.Requests), spec.Distribution.Type, spec.DiskSize)
	return w, nil
}
