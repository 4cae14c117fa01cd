package sim

import (
	"gonum.org/v1/gonum/stat"
)

// PerformanceMetrics are caller-side figures derived from a Result. They are
// not part of the engine's contract; the CLI reports them next to each run.
type PerformanceMetrics struct {
	Efficiency      float64 `json:"efficiency"`
	Throughput      float64 `json:"throughput"`
	FairnessIndex   float64 `json:"fairness_index"`
	MaxSeekDistance int     `json:"max_seek_distance"`
}

// ComputePerformanceMetrics derives PerformanceMetrics from r for a disk of
// diskSize tracks:
//   - efficiency = (1 - total/(diskSize*requests)) * 100, 0 with no requests
//   - throughput = requests/total * 100, 0 when total is 0
//   - fairness   = max(0, 1 - stddev/mean) over seek distances, 1 when mean is 0
//
// All ratios are rounded to two decimals.
func ComputePerformanceMetrics(r *Result, diskSize int) PerformanceMetrics {
	var m PerformanceMetrics
	if r == nil {
		return m
	}
	if r.TotalRequests > 0 && diskSize > 0 {
		m.Efficiency = roundTo((1-float64(r.TotalSeekTime)/float64(diskSize*r.TotalRequests))*100, 2)
	}
	if r.TotalSeekTime > 0 {
		m.Throughput = roundTo(float64(r.TotalRequests)/float64(r.TotalSeekTime)*100, 2)
	}
	m.FairnessIndex = FairnessIndex(r.SeekOperations)
	for _, op := range r.SeekOperations {
		m.MaxSeekDistance = max(m.MaxSeekDistance, op.Distance())
	}
	return m
}

// FairnessIndex scores how evenly seek cost is spread across operations:
// one minus the coefficient of variation of the distances, floored at 0.
// No operations scores 0; all-zero distances score 1.
func FairnessIndex(ops []SeekOperation) float64 {
	if len(ops) == 0 {
		return 0
	}
	distances := make([]float64, len(ops))
	for i, op := range ops {
		distances[i] = float64(op.Distance())
	}
	mean, std := stat.PopMeanStdDev(distances, nil)
	if mean == 0 {
		return 1
	}
	return roundTo(max(0, 1-std/mean), 2)
}
