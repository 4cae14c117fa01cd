package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
)

// TrackSampler generates track numbers for a disk.
type TrackSampler interface {
	// Sample returns a track in [0, diskSize).
	Sample(rng *rand.Rand) int
}

// UniformSampler draws tracks uniformly from [lo, hi].
type UniformSampler struct {
	lo, hi int
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	return s.lo + rng.Intn(s.hi-s.lo+1)
}

// GaussianSampler produces clamped Gaussian tracks around a center.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int
	clamped      int
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	if val < float64(s.min) || val > float64(s.max) {
		s.clamped++
	}
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int(math.Round(clamped))
}

// Clamped returns how many samples fell outside [min, max] and were pulled
// back to the nearest bound.
func (s *GaussianSampler) Clamped() int {
	return s.clamped
}

// clampCounter is implemented by samplers that clip draws to their track range.
type clampCounter interface {
	Clamped() int
}

// HotspotSampler is a mixture: with probability hotFraction a track is drawn
// uniformly from the hot region, otherwise uniformly from the whole disk.
type HotspotSampler struct {
	hot         UniformSampler
	cold        UniformSampler
	hotFraction float64
}

func (s *HotspotSampler) Sample(rng *rand.Rand) int {
	if rng.Float64() < s.hotFraction {
		return s.hot.Sample(rng)
	}
	return s.cold.Sample(rng)
}

// SequentialSampler walks the disk in fixed strides with optional jitter,
// wrapping past the last track. Models streaming reads.
type SequentialSampler struct {
	next     int
	stride   int
	jitter   int
	diskSize int
}

func (s *SequentialSampler) Sample(rng *rand.Rand) int {
	track := s.next
	if s.jitter > 0 {
		track += rng.Intn(2*s.jitter+1) - s.jitter
	}
	s.next = wrapTrack(s.next+s.stride, s.diskSize)
	return wrapTrack(track, s.diskSize)
}

func wrapTrack(track, diskSize int) int {
	track %= diskSize
	if track < 0 {
		track += diskSize
	}
	return track
}

// EmpiricalPDFSampler samples from an empirical track distribution
// using inverse CDF via binary search.
type EmpiricalPDFSampler struct {
	values []int     // Sorted track values
	cdf    []float64 // Cumulative probabilities (same length as values)
}

// NewEmpiricalPDFSampler creates a sampler from a PDF map (track → probability).
// Automatically normalizes probabilities if they don't sum to 1.0.
func NewEmpiricalPDFSampler(pdf map[int]float64) *EmpiricalPDFSampler {
	keys := make([]int, 0, len(pdf))
	for k := range pdf {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	totalProb := 0.0
	for _, k := range keys {
		if pdf[k] > 0 {
			totalProb += pdf[k]
		}
	}

	values := make([]int, 0, len(keys))
	cdf := make([]float64, 0, len(keys))
	cumulative := 0.0
	for _, k := range keys {
		p := pdf[k]
		if p <= 0 {
			continue // skip zero or negative probabilities
		}
		cumulative += p / totalProb
		values = append(values, k)
		cdf = append(cdf, cumulative)
	}
	// Ensure last CDF entry is exactly 1.0
	if len(cdf) > 0 {
		cdf[len(cdf)-1] = 1.0
	}

	return &EmpiricalPDFSampler{values: values, cdf: cdf}
}

func (s *EmpiricalPDFSampler) Sample(rng *rand.Rand) int {
	if len(s.values) == 0 {
		return 0
	}
	if len(s.values) == 1 {
		return s.values[0]
	}
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cdf, u)
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	return s.values[idx]
}

// param returns params[key], or def when the key is absent.
func param(params map[string]float64, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return def
}

// trackRange reads an inclusive [min, max] track range, defaulting to the
// whole disk.
func trackRange(params map[string]float64, diskSize int) (int, int, error) {
	lo := int(param(params, "min", 0))
	hi := int(param(params, "max", float64(diskSize-1)))
	if lo < 0 || hi >= diskSize || lo > hi {
		return 0, 0, fmt.Errorf("track range [%d, %d] must lie within [0, %d]", lo, hi, diskSize-1)
	}
	return lo, hi, nil
}

// NewTrackSampler creates a TrackSampler from a DistSpec for a disk of
// diskSize tracks. Missing parameters fall back to disk-relative defaults.
func NewTrackSampler(spec DistSpec, diskSize int) (TrackSampler, error) {
	if diskSize < 1 {
		return nil, fmt.Errorf("disk size must be positive, got %d", diskSize)
	}
	switch spec.Type {
	case "uniform":
		lo, hi, err := trackRange(spec.Params, diskSize)
		if err != nil {
			return nil, err
		}
		return &UniformSampler{lo: lo, hi: hi}, nil

	case "gaussian":
		lo, hi, err := trackRange(spec.Params, diskSize)
		if err != nil {
			return nil, err
		}
		stdDev := param(spec.Params, "std_dev", float64(diskSize)/6)
		if stdDev < 0 {
			return nil, fmt.Errorf("gaussian std_dev must be non-negative, got %f", stdDev)
		}
		return &GaussianSampler{
			mean:   param(spec.Params, "mean", float64(diskSize-1)/2),
			stdDev: stdDev,
			min:    lo,
			max:    hi,
		}, nil

	case "hotspot":
		if err := requireParam(spec.Params, "center"); err != nil {
			return nil, err
		}
		center := int(spec.Params["center"])
		if center < 0 || center >= diskSize {
			return nil, fmt.Errorf("hotspot center %d lies outside [0, %d]", center, diskSize-1)
		}
		width := int(param(spec.Params, "width", float64(diskSize)/10))
		fraction := param(spec.Params, "hot_fraction", 0.8)
		if fraction < 0 || fraction > 1 {
			return nil, fmt.Errorf("hotspot hot_fraction must be in [0, 1], got %f", fraction)
		}
		if width < 0 {
			return nil, fmt.Errorf("hotspot width must be non-negative, got %d", width)
		}
		lo := max(0, center-width/2)
		hi := min(diskSize-1, center+width/2)
		return &HotspotSampler{
			hot:         UniformSampler{lo: lo, hi: hi},
			cold:        UniformSampler{lo: 0, hi: diskSize - 1},
			hotFraction: fraction,
		}, nil

	case "sequential":
		start := int(param(spec.Params, "start", 0))
		if start < 0 || start >= diskSize {
			return nil, fmt.Errorf("sequential start %d lies outside [0, %d]", start, diskSize-1)
		}
		jitter := int(param(spec.Params, "jitter", 0))
		if jitter < 0 {
			return nil, fmt.Errorf("sequential jitter must be non-negative, got %d", jitter)
		}
		return &SequentialSampler{
			next:     start,
			stride:   int(param(spec.Params, "stride", 1)),
			jitter:   jitter,
			diskSize: diskSize,
		}, nil

	case "empirical":
		if len(spec.Params) == 0 {
			return nil, fmt.Errorf("empirical distribution requires inline params")
		}
		// Inline params used as PDF (track → probability)
		pdf := make(map[int]float64, len(spec.Params))
		keyFor := make(map[int]string, len(spec.Params))
		for k, v := range spec.Params {
			track, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("empirical PDF key %q is not an integer track", k)
			}
			if track < 0 || track >= diskSize {
				return nil, fmt.Errorf("empirical PDF track %d lies outside [0, %d]", track, diskSize-1)
			}
			if prev, dup := keyFor[track]; dup {
				return nil, fmt.Errorf("empirical PDF keys %q and %q both name track %d", prev, k, track)
			}
			keyFor[track] = k
			pdf[track] = v
		}
		sampler := NewEmpiricalPDFSampler(pdf)
		if len(sampler.values) == 0 {
			return nil, fmt.Errorf("empirical distribution has no bins with positive probability")
		}
		return sampler, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}
