package profile

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
)

// Stats is the descriptive summary for quantitative columns.
type Stats struct {
	Count  float64
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max over the given values. Std is 0 for fewer than two values.
func Describe(vals []float64) Stats {
	s := Stats{Count: float64(len(vals))}
	if len(vals) == 0 {
		return s
	}
	var mean, m2 float64
	mn, mx := vals[0], vals[0]
	for i, x := range vals {
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}
	s.Mean = mean
	if len(vals) > 1 {
		s.Std = math.Sqrt(m2 / float64(len(vals)-1))
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	s.Min = mn
	s.Max = mx
	s.Q25 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q75 = quantile(sorted, 0.75)
	return s
}

func (Stats) Inline() bool { return false }
func (s Stats) Value() any { return s }

// MarshalJSON keeps the conventional describe() key order; map encoding
// would sort keys alphabetically and scramble it.
func (s Stats) MarshalJSON() ([]byte, error) {
	fields := []struct {
		key string
		val float64
	}{
		{"count", s.Count}, {"mean", s.Mean}, {"std", s.Std}, {"min", s.Min},
		{"25%", s.Q25}, {"50%", s.Median}, {"75%", s.Q75}, {"max", s.Max},
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.val)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// quantile linearly interpolates over an already-sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
