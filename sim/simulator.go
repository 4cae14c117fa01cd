package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of one simulation call.
type Result struct {
	Algorithm       Algorithm       `json:"algorithm"`
	Sequence        []int           `json:"sequence"`
	TotalSeekTime   int             `json:"total_seek_time"`
	AverageSeekTime float64         `json:"average_seek_time"` // per serviced track, 2 decimals
	SeekOperations  []SeekOperation `json:"seek_operations"`
	TotalRequests   int             `json:"total_requests"`
	InitialPosition int             `json:"initial_position"`
}

// Simulate runs alg over the scheduler's workload. dir is ignored by FCFS and
// SSTF. batchSize only applies to N-Step SCAN; values below 1 select
// DefaultNStepBatchSize.
func (s *Scheduler) Simulate(alg Algorithm, dir Direction, batchSize int) (*Result, error) {
	var (
		sched Schedule
		err   error
	)
	switch alg {
	case AlgorithmFCFS:
		sched = s.FCFS()
	case AlgorithmSSTF:
		sched = s.SSTF()
	case AlgorithmSCAN:
		sched = s.SCAN(dir)
	case AlgorithmCSCAN:
		sched = s.CSCAN(dir)
	case AlgorithmLOOK:
		sched = s.LOOK(dir)
	case AlgorithmCLOOK:
		sched = s.CLOOK(dir)
	case AlgorithmNStepSCAN:
		if batchSize < 1 {
			batchSize = DefaultNStepBatchSize
		}
		sched, err = s.NStepSCAN(batchSize, dir)
	case AlgorithmFSCAN:
		sched, err = s.FSCAN(dir)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return nil, err
	}

	avg := 0.0
	if len(sched.Sequence) > 0 {
		avg = roundTo(float64(sched.TotalSeekTime)/float64(len(sched.Sequence)), 2)
	}
	logrus.Debugf("%s: %d requests from track %d, %d seeks, total=%d",
		alg, len(s.requests), s.initialPosition, len(sched.SeekOperations), sched.TotalSeekTime)

	return &Result{
		Algorithm:       alg,
		Sequence:        sched.Sequence,
		TotalSeekTime:   sched.TotalSeekTime,
		AverageSeekTime: avg,
		SeekOperations:  sched.SeekOperations,
		TotalRequests:   len(s.requests),
		InitialPosition: s.initialPosition,
	}, nil
}

// SimulateByName normalizes name and direction before dispatching. Unknown
// names are rejected before any seek is computed.
func (s *Scheduler) SimulateByName(name, direction string, batchSize int) (*Result, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return s.Simulate(alg, Direction(direction), batchSize)
}
