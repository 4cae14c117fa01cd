package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePerformanceMetrics_TextbookFCFS(t *testing.T) {
	// GIVEN the textbook FCFS run (total 640 over 8 requests)
	s := mustScheduler(t, textbookRequests, textbookHead, textbookDisk)
	r, err := s.Simulate(AlgorithmFCFS, DirectionRight, 0)
	require.NoError(t, err)

	// WHEN derived metrics are computed
	m := ComputePerformanceMetrics(r, textbookDisk)

	// THEN they follow the documented formulas
	assert.Equal(t, 60.0, m.Efficiency) // (1 - 640/1600) * 100
	assert.Equal(t, 1.25, m.Throughput) // 8/640 * 100
	assert.Equal(t, 146, m.MaxSeekDistance)
	assert.Equal(t, 0.48, m.FairnessIndex)
}

func TestComputePerformanceMetrics_TextbookSSTF(t *testing.T) {
	s := mustScheduler(t, textbookRequests, textbookHead, textbookDisk)
	r, err := s.Simulate(AlgorithmSSTF, DirectionRight, 0)
	require.NoError(t, err)

	m := ComputePerformanceMetrics(r, textbookDisk)
	assert.Equal(t, 85.25, m.Efficiency)
	assert.Equal(t, 3.39, m.Throughput)
	assert.Equal(t, 84, m.MaxSeekDistance)
	assert.Equal(t, 0.09, m.FairnessIndex)
}

func TestFairnessIndex_HighVariance_FlooredAtZero(t *testing.T) {
	s := mustScheduler(t, textbookRequests, textbookHead, textbookDisk)
	r, err := s.Simulate(AlgorithmSCAN, DirectionRight, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, FairnessIndex(r.SeekOperations))
}

func TestFairnessIndex_EdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, FairnessIndex(nil), "no operations")
	assert.Equal(t, 1.0, FairnessIndex([]SeekOperation{{5, 5}, {5, 5}}), "zero mean")
	assert.Equal(t, 1.0, FairnessIndex([]SeekOperation{{0, 10}, {10, 20}, {20, 30}}), "equal distances")
}

func TestComputePerformanceMetrics_NoSeek_ZeroThroughput(t *testing.T) {
	// GIVEN every request already under the head
	s := mustScheduler(t, []int{53, 53}, 53, 200)
	r, err := s.Simulate(AlgorithmFCFS, DirectionRight, 0)
	require.NoError(t, err)

	m := ComputePerformanceMetrics(r, 200)
	assert.Equal(t, 100.0, m.Efficiency)
	assert.Equal(t, 0.0, m.Throughput)
	assert.Equal(t, 1.0, m.FairnessIndex)
	assert.Equal(t, 0, m.MaxSeekDistance)
}

func TestComputePerformanceMetrics_EmptyOrNil_ZeroValue(t *testing.T) {
	assert.Equal(t, PerformanceMetrics{}, ComputePerformanceMetrics(nil, 200))

	s := mustScheduler(t, nil, 53, 200)
	r, err := s.Simulate(AlgorithmLOOK, DirectionRight, 0)
	require.NoError(t, err)
	assert.Equal(t, PerformanceMetrics{}, ComputePerformanceMetrics(r, 200))
}
