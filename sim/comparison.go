package sim

import (
	"fmt"
)

// ComparisonEntry pairs one algorithm's result with its derived metrics.
type ComparisonEntry struct {
	Result  *Result            `json:"result"`
	Metrics PerformanceMetrics `json:"performance_metrics"`
}

// Comparison summarizes every policy run over the same workload.
type Comparison struct {
	Entries              []ComparisonEntry `json:"results"`
	BestAlgorithm        Algorithm         `json:"best_algorithm"`
	BestTotalSeekTime    int               `json:"best_total_seek_time"`
	WorstTotalSeekTime   int               `json:"worst_total_seek_time"`
	AverageTotalSeekTime float64           `json:"average_total_seek_time"`
}

// Compare runs the given algorithms, or all of them in catalog order when
// none are given, over the scheduler's workload. The best algorithm has the
// lowest total seek time; the earliest one wins a tie.
func (s *Scheduler) Compare(dir Direction, batchSize int, algorithms ...Algorithm) (*Comparison, error) {
	if len(algorithms) == 0 {
		algorithms = AllAlgorithms()
	}
	c := &Comparison{Entries: make([]ComparisonEntry, 0, len(algorithms))}
	totals := make([]int, 0, len(algorithms))
	for _, alg := range algorithms {
		r, err := s.Simulate(alg, dir, batchSize)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", alg, err)
		}
		c.Entries = append(c.Entries, ComparisonEntry{Result: r, Metrics: ComputePerformanceMetrics(r, s.diskSize)})
		if len(totals) == 0 || r.TotalSeekTime < c.BestTotalSeekTime {
			c.BestAlgorithm = alg
			c.BestTotalSeekTime = r.TotalSeekTime
		}
		c.WorstTotalSeekTime = max(c.WorstTotalSeekTime, r.TotalSeekTime)
		totals = append(totals, r.TotalSeekTime)
	}
	c.AverageTotalSeekTime = CalculateMean(totals)
	return c, nil
}
