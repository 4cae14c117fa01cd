package sim

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// Schedule is the outcome of one policy run: the trajectory the head follows,
// its total seek distance and the per-step seek operations.
type Schedule struct {
	Sequence       []int
	TotalSeekTime  int
	SeekOperations []SeekOperation
}

func newSchedule(initialPosition int, sequence []int) Schedule {
	total, ops := CalculateSeekTime(initialPosition, sequence)
	return Schedule{Sequence: sequence, TotalSeekTime: total, SeekOperations: ops}
}

func emptySchedule() Schedule {
	return Schedule{Sequence: []int{}, SeekOperations: []SeekOperation{}}
}

// extend appends a later run to s.
func (s *Schedule) extend(next Schedule) {
	s.Sequence = append(s.Sequence, next.Sequence...)
	s.TotalSeekTime += next.TotalSeekTime
	s.SeekOperations = append(s.SeekOperations, next.SeekOperations...)
}

// lastTrack returns the final head position of s, or fallback if s is empty.
func (s Schedule) lastTrack(fallback int) int {
	if len(s.Sequence) == 0 {
		return fallback
	}
	return s.Sequence[len(s.Sequence)-1]
}

// Scheduler holds one validated workload: a private copy of the pending
// requests, the initial head position and the disk size. It is never mutated
// after construction, so every policy method can be called any number of
// times and from multiple goroutines.
type Scheduler struct {
	requests        []int
	initialPosition int
	diskSize        int
}

// NewScheduler copies requests and checks that every track lies in
// [0, diskSize). An empty request list is accepted.
func NewScheduler(requests []int, initialPosition, diskSize int) (*Scheduler, error) {
	s := &Scheduler{
		requests:        append([]int{}, requests...),
		initialPosition: initialPosition,
		diskSize:        diskSize,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) validate() error {
	for _, r := range s.requests {
		if r < 0 || r >= s.diskSize {
			return fmt.Errorf("%w: request %d not in 0-%d", ErrOutOfBounds, r, s.diskSize-1)
		}
	}
	return nil
}

// Requests returns a copy of the pending requests in submission order.
func (s *Scheduler) Requests() []int { return slices.Clone(s.requests) }

// InitialPosition returns the head position the runs start from.
func (s *Scheduler) InitialPosition() int { return s.initialPosition }

// DiskSize returns the number of addressable tracks.
func (s *Scheduler) DiskSize() int { return s.diskSize }

// FCFS services requests in submission order.
func (s *Scheduler) FCFS() Schedule {
	return newSchedule(s.initialPosition, slices.Clone(s.requests))
}

// SSTF repeatedly services the pending request nearest to the head. On a tie
// the request submitted first wins.
func (s *Scheduler) SSTF() Schedule {
	remaining := slices.Clone(s.requests)
	sequence := make([]int, 0, len(remaining))
	current := s.initialPosition
	for len(remaining) > 0 {
		idx := 0
		for i := 1; i < len(remaining); i++ {
			if absInt(remaining[i]-current) < absInt(remaining[idx]-current) {
				idx = i
			}
		}
		closest := remaining[idx]
		sequence = append(sequence, closest)
		remaining = slices.Delete(remaining, idx, idx+1)
		current = closest
	}
	return newSchedule(s.initialPosition, sequence)
}

// SCAN sweeps in dir to the disk edge, then reverses.
func (s *Scheduler) SCAN(dir Direction) Schedule {
	return runScan(s.requests, s.initialPosition, s.diskSize, dir)
}

// CSCAN sweeps in dir to the disk edge, jumps to the opposite edge and
// continues in dir.
func (s *Scheduler) CSCAN(dir Direction) Schedule {
	return newSchedule(s.initialPosition, cscanOrder(s.requests, s.initialPosition, s.diskSize, dir))
}

// LOOK is SCAN without the trip to the disk edge.
func (s *Scheduler) LOOK(dir Direction) Schedule {
	if len(s.requests) == 0 {
		return emptySchedule()
	}
	return newSchedule(s.initialPosition, lookOrder(s.requests, s.initialPosition, dir))
}

// CLOOK is C-SCAN without the trips to the disk edges.
func (s *Scheduler) CLOOK(dir Direction) Schedule {
	if len(s.requests) == 0 {
		return emptySchedule()
	}
	return newSchedule(s.initialPosition, clookOrder(s.requests, s.initialPosition, dir))
}

// NStepSCAN chunks the requests, in submission order, into batches of n and
// services each batch with SCAN from where the previous batch left the head.
// The sweep direction flips after every batch.
func (s *Scheduler) NStepSCAN(n int, dir Direction) (Schedule, error) {
	if n < 1 {
		return Schedule{}, fmt.Errorf("%w: n-step batch size must be at least 1, got %d", ErrInvalidParameter, n)
	}
	out := emptySchedule()
	current := s.initialPosition
	for start := 0; start < len(s.requests); start += n {
		end := min(start+n, len(s.requests))
		batch, err := NewScheduler(s.requests[start:end], current, s.diskSize)
		if err != nil {
			return Schedule{}, err
		}
		run := batch.SCAN(dir)
		logrus.Debugf("n-step batch %d: %d requests from track %d sweeping %s, seek=%d",
			start/n, end-start, current, dir, run.TotalSeekTime)
		out.extend(run)
		current = run.lastTrack(current)
		dir = dir.Reverse()
	}
	return out, nil
}

// FSCAN splits the requests into two frozen queues, the first ceil(n/2)
// submissions and the rest, and services them one after the other with SCAN
// in the same direction.
func (s *Scheduler) FSCAN(dir Direction) (Schedule, error) {
	out := emptySchedule()
	mid := (len(s.requests) + 1) / 2
	current := s.initialPosition
	for i, queue := range [][]int{s.requests[:mid], s.requests[mid:]} {
		if len(queue) == 0 {
			continue
		}
		sub, err := NewScheduler(queue, current, s.diskSize)
		if err != nil {
			return Schedule{}, err
		}
		run := sub.SCAN(dir)
		logrus.Debugf("fscan queue %d: %d requests from track %d, seek=%d", i+1, len(queue), current, run.TotalSeekTime)
		out.extend(run)
		current = run.lastTrack(current)
	}
	return out, nil
}
