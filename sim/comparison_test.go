package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_Textbook_AllAlgorithms(t *testing.T) {
	// GIVEN the textbook workload
	s := mustScheduler(t, textbookRequests, textbookHead, textbookDisk)

	// WHEN every algorithm is compared sweeping right with N=4
	c, err := s.Compare(DirectionRight, 4)
	require.NoError(t, err)

	// THEN all eight run in catalog order
	require.Len(t, c.Entries, 8)
	totals := map[Algorithm]int{}
	for i, e := range c.Entries {
		assert.Equal(t, AllAlgorithms()[i], e.Result.Algorithm)
		totals[e.Result.Algorithm] = e.Result.TotalSeekTime
		assert.Equal(t, ComputePerformanceMetrics(e.Result, textbookDisk), e.Metrics)
	}
	assert.Equal(t, map[Algorithm]int{
		AlgorithmFCFS: 640, AlgorithmSSTF: 236, AlgorithmSCAN: 331, AlgorithmCSCAN: 382,
		AlgorithmLOOK: 299, AlgorithmCLOOK: 322, AlgorithmNStepSCAN: 469, AlgorithmFSCAN: 655,
	}, totals)

	// AND SSTF wins, FSCAN loses
	assert.Equal(t, AlgorithmSSTF, c.BestAlgorithm)
	assert.Equal(t, 236, c.BestTotalSeekTime)
	assert.Equal(t, 655, c.WorstTotalSeekTime)
	assert.Equal(t, 416.75, c.AverageTotalSeekTime)
}

func TestCompare_Tie_EarliestAlgorithmWins(t *testing.T) {
	// GIVEN requests all above the head, where SCAN and LOOK coincide
	s := mustScheduler(t, []int{60, 80, 70}, 50, 100)

	c, err := s.Compare(DirectionRight, 0, AlgorithmSCAN, AlgorithmLOOK)
	require.NoError(t, err)

	require.Len(t, c.Entries, 2)
	assert.Equal(t, AlgorithmSCAN, c.BestAlgorithm)
	assert.Equal(t, 30, c.BestTotalSeekTime)
	assert.Equal(t, 30, c.WorstTotalSeekTime)
}

func TestCompare_UnknownAlgorithm_Error(t *testing.T) {
	s := mustScheduler(t, textbookRequests, textbookHead, textbookDisk)
	_, err := s.Compare(DirectionRight, 0, AlgorithmFCFS, Algorithm("RANDOM"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestCompare_AverageTotal_NotRounded(t *testing.T) {
	// GIVEN three algorithms whose totals (640, 236, 331) average to 402.33...
	s := mustScheduler(t, textbookRequests, textbookHead, textbookDisk)

	// WHEN compared
	c, err := s.Compare(DirectionRight, 0, AlgorithmFCFS, AlgorithmSSTF, AlgorithmSCAN)
	require.NoError(t, err)

	// THEN the average keeps full precision
	assert.Equal(t, 1207.0/3, c.AverageTotalSeekTime)
}
