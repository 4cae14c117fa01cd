package sim

import (
	"fmt"
	"strings"
)

// Algorithm is the canonical label of a disk scheduling policy.
type Algorithm string

const (
	AlgorithmFCFS      Algorithm = "FCFS"
	AlgorithmSSTF      Algorithm = "SSTF"
	AlgorithmSCAN      Algorithm = "SCAN"
	AlgorithmCSCAN     Algorithm = "C-SCAN"
	AlgorithmLOOK      Algorithm = "LOOK"
	AlgorithmCLOOK     Algorithm = "C-LOOK"
	AlgorithmNStepSCAN Algorithm = "N-STEP SCAN"
	AlgorithmFSCAN     Algorithm = "FSCAN"
)

// DefaultNStepBatchSize is the N-Step SCAN batch size used by Simulate when
// the caller passes none (or a value below 1).
const DefaultNStepBatchSize = 4

// algorithmAliases maps normalized (upper-case, single-spaced) spellings to
// canonical labels.
var algorithmAliases = map[string]Algorithm{
	"FCFS":        AlgorithmFCFS,
	"SSTF":        AlgorithmSSTF,
	"SCAN":        AlgorithmSCAN,
	"C-SCAN":      AlgorithmCSCAN,
	"CSCAN":       AlgorithmCSCAN,
	"LOOK":        AlgorithmLOOK,
	"C-LOOK":      AlgorithmCLOOK,
	"CLOOK":       AlgorithmCLOOK,
	"N-STEP SCAN": AlgorithmNStepSCAN,
	"NSTEP SCAN":  AlgorithmNStepSCAN,
	"N-STEP-SCAN": AlgorithmNStepSCAN,
	"NSTEP-SCAN":  AlgorithmNStepSCAN,
	"N-STEP":      AlgorithmNStepSCAN,
	"NSTEP":       AlgorithmNStepSCAN,
	"FSCAN":       AlgorithmFSCAN,
}

// ParseAlgorithm normalizes a user-supplied algorithm name. Matching ignores
// case, surrounding whitespace and repeated inner whitespace.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToUpper(strings.Join(strings.Fields(name), " "))
	if alg, ok := algorithmAliases[key]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w %q; valid: %s", ErrUnknownAlgorithm, name, strings.Join(AlgorithmNames(), ", "))
}

// IsValidAlgorithm reports whether name normalizes to a supported policy.
func IsValidAlgorithm(name string) bool {
	_, err := ParseAlgorithm(name)
	return err == nil
}

// AlgorithmInfo describes a policy for listings.
type AlgorithmInfo struct {
	Name              Algorithm `json:"name"`
	FullName          string    `json:"full_name"`
	Description       string    `json:"description"`
	RequiresDirection bool      `json:"requires_direction"`
	RequiresBatchSize bool      `json:"requires_batch_size"`
}

var catalog = []AlgorithmInfo{
	{AlgorithmFCFS, "First Come First Served", "Services requests in the order they arrive", false, false},
	{AlgorithmSSTF, "Shortest Seek Time First", "Always services the request closest to the current head position", false, false},
	{AlgorithmSCAN, "SCAN (Elevator Algorithm)", "Moves the head in one direction until the end, then reverses", true, false},
	{AlgorithmCSCAN, "Circular SCAN", "Moves the head in one direction until the end, then jumps to the beginning", true, false},
	{AlgorithmLOOK, "LOOK Algorithm", "Similar to SCAN but only goes to the last request in that direction", true, false},
	{AlgorithmCLOOK, "Circular LOOK", "Similar to C-SCAN but only goes to the last request", true, false},
	{AlgorithmNStepSCAN, "N-Step SCAN", "Splits requests into batches of N and services each batch with SCAN, alternating direction", true, true},
	{AlgorithmFSCAN, "FSCAN", "Services two frozen queues in turn, each with SCAN in the same direction", true, false},
}

// Catalog returns descriptions of every supported policy in canonical order.
func Catalog() []AlgorithmInfo {
	out := make([]AlgorithmInfo, len(catalog))
	copy(out, catalog)
	return out
}

// AllAlgorithms returns every supported policy in canonical order.
func AllAlgorithms() []Algorithm {
	out := make([]Algorithm, len(catalog))
	for i, info := range catalog {
		out[i] = info.Name
	}
	return out
}

// AlgorithmNames returns the canonical labels as strings.
func AlgorithmNames() []string {
	names := make([]string, len(catalog))
	for i, info := range catalog {
		names[i] = string(info.Name)
	}
	return names
}

// Direction is the initial sweep direction for directional policies.
type Direction string

const (
	DirectionRight Direction = "right" // ascending track numbers
	DirectionLeft  Direction = "left"  // descending track numbers
)

// ParseDirection accepts "right" or "left" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return DirectionRight, nil
	case "left":
		return DirectionLeft, nil
	default:
		return "", fmt.Errorf("%w: direction must be right or left, got %q", ErrInvalidParameter, s)
	}
}

// IsRight reports whether the sweep ascends. Anything other than "right" is
// treated as a leftward sweep.
func (d Direction) IsRight() bool {
	return strings.EqualFold(string(d), string(DirectionRight))
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d.IsRight() {
		return DirectionLeft
	}
	return DirectionRight
}
