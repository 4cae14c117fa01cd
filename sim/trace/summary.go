package trace

// TraceSummary aggregates statistics from a SeekTrace.
type TraceSummary struct {
	Seeks         int     `json:"seeks"`
	TotalDistance int     `json:"total_distance"`
	MaxDistance   int     `json:"max_distance"`
	MeanDistance  float64 `json:"mean_distance"`
	Reversals     int     `json:"reversals"` // changes of travel direction, wraps excluded
	Wraps         int     `json:"wraps"`     // edge-to-edge jumps
	EdgeVisits    int     `json:"edge_visits"`
}

// Summarize computes aggregate statistics from a SeekTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SeekTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	lastSign := 0
	for _, r := range st.Records {
		summary.Seeks++
		summary.TotalDistance += r.Distance
		if r.Distance > summary.MaxDistance {
			summary.MaxDistance = r.Distance
		}
		if r.AtEdge {
			summary.EdgeVisits++
		}
		if r.Distance == 0 {
			continue
		}
		if st.isWrap(r) {
			summary.Wraps++
			continue
		}
		sign := 1
		if r.To < r.From {
			sign = -1
		}
		if lastSign != 0 && sign != lastSign {
			summary.Reversals++
		}
		lastSign = sign
	}

	if summary.Seeks > 0 {
		summary.MeanDistance = float64(summary.TotalDistance) / float64(summary.Seeks)
	}
	return summary
}
