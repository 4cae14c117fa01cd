package sim

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// textbookRequests is the classic eight-request workload, head at 53 on a
// 200-track disk.
var textbookRequests = []int{98, 183, 37, 122, 14, 124, 65, 67}

const (
	textbookHead = 53
	textbookDisk = 200
)

func mustScheduler(t *testing.T, requests []int, head, diskSize int) *Scheduler {
	t.Helper()
	s, err := NewScheduler(requests, head, diskSize)
	require.NoError(t, err)
	return s
}

// assertAccountingConsistent checks that ops chain from head through the
// sequence and that their distances sum to total.
func assertAccountingConsistent(t *testing.T, head int, sched Schedule) {
	t.Helper()
	require.Len(t, sched.SeekOperations, len(sched.Sequence))
	sum := 0
	prev := head
	for i, op := range sched.SeekOperations {
		if op.From != prev {
			t.Errorf("op %d: From=%d, want %d", i, op.From, prev)
		}
		if op.To != sched.Sequence[i] {
			t.Errorf("op %d: To=%d, want %d", i, op.To, sched.Sequence[i])
		}
		sum += op.Distance()
		prev = op.To
	}
	if sum != sched.TotalSeekTime {
		t.Errorf("sum of op distances = %d, TotalSeekTime = %d", sum, sched.TotalSeekTime)
	}
}

// withoutBoundaries drops edge tracks (0 and diskSize-1) that the sequence
// visits beyond the requested ones.
func withoutBoundaries(seq, requests []int, diskSize int) []int {
	remaining := slices.Clone(requests)
	out := make([]int, 0, len(seq))
	for _, t := range seq {
		if idx := slices.Index(remaining, t); idx >= 0 {
			remaining = slices.Delete(remaining, idx, idx+1)
			out = append(out, t)
			continue
		}
		if t == 0 || t == diskSize-1 {
			continue
		}
		out = append(out, t)
	}
	return out
}

func sortedInts(v []int) []int {
	out := slices.Clone(v)
	slices.Sort(out)
	return out
}
