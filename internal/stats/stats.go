package stats

import "errors"

// ErrNoSamples is returned when reducing an empty duration sequence.
var ErrNoSamples = errors.New("no samples to reduce")

// Summary holds the reduced statistics of a duration sequence, in milliseconds.
type Summary struct {
	Min   int64 `json:"min" yaml:"min"`
	Max   int64 `json:"max" yaml:"max"`
	Avg   int64 `json:"avg" yaml:"avg"`
	Count int   `json:"count" yaml:"count"`
}

// Reduce returns the minimum, maximum and integer-truncated mean of samples.
func Reduce(samples []int64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	s := Summary{
		Min:   samples[0],
		Max:   samples[0],
		Count: len(samples),
	}

	var total int64
	for _, v := range samples {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		total += v
	}
	s.Avg = total / int64(len(samples))

	return s, nil
}

// Precise holds statistics of fractional millisecond samples.
type Precise struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Mean float64 `json:"mean" yaml:"mean"`
}

// ReducePrecise returns the minimum, maximum and arithmetic mean of samples.
func ReducePrecise(samples []float64) (Precise, error) {
	if len(samples) == 0 {
		return Precise{}, ErrNoSamples
	}

	p := Precise{Min: samples[0], Max: samples[0]}
	var total float64
	for _, v := range samples {
		p.Min = min(p.Min, v)
		p.Max = max(p.Max, v)
		total += v
	}
	p.Mean = total / float64(len(samples))

	return p, nil
}
