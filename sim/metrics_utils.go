// sim/metrics_utils.go
package sim

import (
	"math"
	"strconv"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculateMean returns the arithmetic mean of numbers, 0 for an empty list.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return sum / float64(len(numbers))
}

// roundTo rounds v to the given number of decimals using the exact binary
// value of v, with ties going to the even digit: 0.125 becomes 0.12 and
// 2.675 (stored as 2.67499...) becomes 2.67.
func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
