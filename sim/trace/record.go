// Package trace records the head motion of a simulation run, one record per
// seek, and summarizes it. This package has no dependencies on sim/ and
// stores pure data types.
package trace

// SeekRecord captures a single head movement.
type SeekRecord struct {
	Step     int  `json:"step"` // 1-based position in the run
	From     int  `json:"from"`
	To       int  `json:"to"`
	Distance int  `json:"distance"`
	AtEdge   bool `json:"at_edge"` // To is track 0 or the last track
}
