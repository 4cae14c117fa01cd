package sim

import "encoding/json"

// SeekOperation records one head movement between two tracks.
type SeekOperation struct {
	From int
	To   int
}

// Distance is the seek cost of the movement.
func (op SeekOperation) Distance() int {
	return absInt(op.To - op.From)
}

// MarshalJSON encodes the operation as a [from, to] pair.
func (op SeekOperation) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{op.From, op.To})
}

// UnmarshalJSON decodes a [from, to] pair.
func (op *SeekOperation) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	op.From, op.To = pair[0], pair[1]
	return nil
}

// CalculateSeekTime walks the trajectory from initialPosition and returns the
// total seek distance together with one operation per visited track, in
// trajectory order. An empty trajectory costs nothing.
func CalculateSeekTime(initialPosition int, trajectory []int) (int, []SeekOperation) {
	ops := make([]SeekOperation, 0, len(trajectory))
	total := 0
	current := initialPosition
	for _, track := range trajectory {
		ops = append(ops, SeekOperation{From: current, To: track})
		total += absInt(track - current)
		current = track
	}
	return total, ops
}
