package sim

import (
	"slices"
)

// partition splits ascending-sorted tracks around pos. A rightward sweep keeps
// tracks at pos on the right; a leftward sweep keeps them on the left. Both
// halves stay ascending.
func partition(sorted []int, pos int, dir Direction) (left, right []int) {
	for _, t := range sorted {
		if dir.IsRight() {
			if t >= pos {
				right = append(right, t)
			} else {
				left = append(left, t)
			}
			continue
		}
		if t <= pos {
			left = append(left, t)
		} else {
			right = append(right, t)
		}
	}
	return left, right
}

func sortedCopy(tracks []int) []int {
	out := slices.Clone(tracks)
	slices.Sort(out)
	return out
}

func descending(ascending []int) []int {
	out := slices.Clone(ascending)
	slices.Reverse(out)
	return out
}

// scanOrder sweeps to the disk edge before reversing.
func scanOrder(requests []int, pos, diskSize int, dir Direction) []int {
	left, right := partition(sortedCopy(requests), pos, dir)
	seq := make([]int, 0, len(requests)+1)
	if dir.IsRight() {
		seq = append(seq, right...)
		if len(left) > 0 {
			seq = append(seq, diskSize-1)
			seq = append(seq, descending(left)...)
		}
		return seq
	}
	seq = append(seq, descending(left)...)
	if len(right) > 0 {
		seq = append(seq, 0)
		seq = append(seq, right...)
	}
	return seq
}

// cscanOrder sweeps to the edge, jumps to the opposite edge and keeps going
// the same way.
func cscanOrder(requests []int, pos, diskSize int, dir Direction) []int {
	left, right := partition(sortedCopy(requests), pos, dir)
	seq := make([]int, 0, len(requests)+2)
	if dir.IsRight() {
		seq = append(seq, right...)
		if len(left) > 0 {
			seq = append(seq, diskSize-1, 0)
			seq = append(seq, left...)
		}
		return seq
	}
	seq = append(seq, descending(left)...)
	if len(right) > 0 {
		seq = append(seq, 0, diskSize-1)
		seq = append(seq, descending(right)...)
	}
	return seq
}

// lookOrder reverses at the last request in the current direction.
func lookOrder(requests []int, pos int, dir Direction) []int {
	left, right := partition(sortedCopy(requests), pos, dir)
	seq := make([]int, 0, len(requests))
	if dir.IsRight() {
		seq = append(seq, right...)
		return append(seq, descending(left)...)
	}
	seq = append(seq, descending(left)...)
	return append(seq, right...)
}

// clookOrder jumps from the last request to the farthest one on the other
// side and continues in the original direction.
func clookOrder(requests []int, pos int, dir Direction) []int {
	left, right := partition(sortedCopy(requests), pos, dir)
	seq := make([]int, 0, len(requests))
	if dir.IsRight() {
		seq = append(seq, right...)
		return append(seq, left...)
	}
	seq = append(seq, descending(left)...)
	return append(seq, descending(right)...)
}

// runScan services requests with SCAN starting at start. Batched policies
// call it once per batch.
func runScan(requests []int, start, diskSize int, dir Direction) Schedule {
	return newSchedule(start, scanOrder(requests, start, diskSize, dir))
}
