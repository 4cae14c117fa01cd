package cmd

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/workload"
)

// inputOptions carries raw flag values plus which of them were set explicitly.
type inputOptions struct {
	Requests        []int
	InitialPosition int
	DiskSize        int
	WorkloadPath    string
	Algorithm       string
	Direction       string
	NStep           int

	changed map[string]bool
}

// simInput is a validated simulation request handed to the engine.
type simInput struct {
	Requests        []int
	InitialPosition int
	DiskSize        int
	Algorithm       sim.Algorithm
	Direction       sim.Direction
	NStep           int
}

func optionsFromFlags(c *cobra.Command) inputOptions {
	opts := inputOptions{
		Requests:        requestTracks,
		InitialPosition: initialPosition,
		DiskSize:        diskSize,
		WorkloadPath:    workloadPath,
		Algorithm:       algorithmName,
		Direction:       direction,
		NStep:           nStep,
		changed:         map[string]bool{},
	}
	for _, name := range []string{"requests", "initial-position", "disk-size", "algorithm", "direction", "n-step"} {
		if f := c.Flags().Lookup(name); f != nil && f.Changed {
			opts.changed[name] = true
		}
	}
	return opts
}

func (o inputOptions) isSet(flag string) bool {
	return o.changed[flag]
}

// resolve merges the workload file (if any) with explicit flags and validates
// the presence of every required field. Track bounds are left to the engine.
func (o inputOptions) resolve(needAlgorithm bool) (*simInput, error) {
	in := &simInput{DiskSize: o.DiskSize, NStep: o.NStep}
	algName, dirName := o.Algorithm, o.Direction

	if o.WorkloadPath != "" {
		spec, err := workload.LoadWorkloadSpec(o.WorkloadPath)
		if err != nil {
			return nil, err
		}
		if o.isSet("disk-size") {
			spec.DiskSize = o.DiskSize
		}
		if o.isSet("initial-position") {
			spec.InitialPosition = &o.InitialPosition
		}
		if o.isSet("requests") {
			spec.Requests = slices.Clone(o.Requests)
			spec.NumRequests = 0
			spec.Distribution = nil
		}
		w, err := workload.GenerateWorkload(spec)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Using workload %s: %d requests", o.WorkloadPath, len(w.Requests))
		in.Requests, in.InitialPosition, in.DiskSize = w.Requests, w.InitialPosition, w.DiskSize
		if spec.Algorithm != "" && !o.isSet("algorithm") {
			algName = spec.Algorithm
		}
		if spec.Direction != "" && !o.isSet("direction") {
			dirName = spec.Direction
		}
		if spec.NStep > 0 && !o.isSet("n-step") {
			in.NStep = spec.NStep
		}
	} else {
		if len(o.Requests) == 0 {
			return nil, fmt.Errorf("--requests is required (or --workload)")
		}
		if !o.isSet("initial-position") {
			return nil, fmt.Errorf("--initial-position is required (or --workload)")
		}
		in.Requests = slices.Clone(o.Requests)
		in.InitialPosition = o.InitialPosition
	}

	if in.DiskSize <= 0 {
		return nil, fmt.Errorf("--disk-size must be positive, got %d", in.DiskSize)
	}
	if in.InitialPosition < 0 || in.InitialPosition >= in.DiskSize {
		logrus.Warnf("initial position %d lies outside the disk [0, %d]", in.InitialPosition, in.DiskSize-1)
	}

	dir, err := sim.ParseDirection(dirName)
	if err != nil {
		return nil, err
	}
	in.Direction = dir

	if needAlgorithm {
		if algName == "" {
			return nil, fmt.Errorf("--algorithm is required")
		}
		alg, err := sim.ParseAlgorithm(algName)
		if err != nil {
			return nil, err
		}
		in.Algorithm = alg
		if alg == sim.AlgorithmNStepSCAN && in.NStep < 1 {
			return nil, fmt.Errorf("%w: --n-step must be at least 1, got %d", sim.ErrInvalidParameter, in.NStep)
		}
	}
	return in, nil
}
