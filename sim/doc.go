// Package sim provides the disk head-scheduling engine.
//
// # Reading Guide
//
// Start with these files:
//   - seek.go: seek accounting shared by every policy
//   - scan.go: the sweep orderings (SCAN, C-SCAN, LOOK, C-LOOK)
//   - scheduler.go: Scheduler construction and the eight policies
//   - simulator.go: dispatch from an Algorithm to a Result
//
// # Model
//
// A Scheduler owns a private copy of a request set (tracks in [0, diskSize)),
// an initial head position and a disk size. Each policy turns that set into a
// trajectory, the ordered tracks the head visits, and CalculateSeekTime turns
// the trajectory into seek operations and a total distance. Batched policies
// (N-Step SCAN, FSCAN) build a fresh Scheduler per batch and chain the head
// position from one batch to the next.
//
// The engine is synchronous and keeps no state between calls. Derived
// figures (efficiency, throughput, fairness) live in metrics.go and are
// computed by callers from a Result.
//
// Sub-packages:
//   - sim/workload/: YAML workload specs and seeded track samplers
//   - sim/trace/: per-seek trace records and motion summaries
package sim
