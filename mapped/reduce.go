package mapped

import (
	"math"

	vbt "github.com/2lambda123/vectorbt"
)

// Series is a labeled result of a reduction: one value per column, or per
// reduction group when the source wrapper is grouped
type Series struct {
	Labels []string
	Values []float64
}

// ReduceOption configures a single reduction call
type ReduceOption func(*reduceOptions)

type reduceOptions struct {
	grouping    *vbt.Grouping
	hasGrouping bool
}

// ReduceWithGrouping applies a column grouping for this reduction only,
// with the same semantics as MappedArray.Regroup
func ReduceWithGrouping(grouping *vbt.Grouping) ReduceOption {
	return func(o *reduceOptions) {
		o.grouping = grouping
		o.hasGrouping = true
	}
}

// Reduce collapses the mapped values of each column (or group) to a single
// scalar using fn. Columns and groups with no records yield defaultVal.
func (m *MappedArray) Reduce(fn vbt.ReduceKernel, defaultVal float64, opts ...ReduceOption) (*Series, error) {
	var o reduceOptions
	for _, opt := range opts {
		opt(&o)
	}
	target := m
	if o.hasGrouping {
		regrouped, err := m.Regroup(o.grouping)
		if err != nil {
			return nil, err
		}
		target = regrouped
	}
	labels, targetOf := target.reductionTargets()
	buckets := make([][]float64, len(labels))
	for i, c := range target.colIDs {
		t := targetOf[c]
		buckets[t] = append(buckets[t], target.values[i])
	}
	out := make([]float64, len(labels))
	for t, vals := range buckets {
		if len(vals) == 0 {
			out[t] = defaultVal
		} else {
			out[t] = fn(vals)
		}
	}
	return &Series{Labels: labels, Values: out}, nil
}

// reductionTargets returns the labels of the reduction output and, for each
// column id, the output position its values fold into
func (m *MappedArray) reductionTargets() (labels []string, targetOf map[int64]int) {
	targetOf = make(map[int64]int)
	if g := m.wrapper.Grouping(); g != nil {
		labels = g.GroupLabels()
		for c, t := range g.GroupIDs() {
			targetOf[int64(c)] = t
		}
		return
	}
	labels = m.wrapper.ColumnLabels()
	for c := range labels {
		targetOf[int64(c)] = c
	}
	return
}

// Count reduces each column (or group) to its number of records. Empty
// columns count as 0.
func (m *MappedArray) Count(opts ...ReduceOption) (*Series, error) {
	return m.Reduce(func(values []float64) float64 {
		return float64(len(values))
	}, 0, opts...)
}

// Sum reduces each column (or group) to the sum of its mapped values
func (m *MappedArray) Sum(opts ...ReduceOption) (*Series, error) {
	return m.Reduce(func(values []float64) float64 {
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum
	}, 0, opts...)
}

// Mean reduces each column (or group) to the mean of its mapped values.
// Empty columns yield NaN.
func (m *MappedArray) Mean(opts ...ReduceOption) (*Series, error) {
	return m.Reduce(func(values []float64) float64 {
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}, math.NaN(), opts...)
}

// Min reduces each column (or group) to the minimum of its mapped values.
// Empty columns yield NaN.
func (m *MappedArray) Min(opts ...ReduceOption) (*Series, error) {
	return m.Reduce(func(values []float64) float64 {
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min
	}, math.NaN(), opts...)
}

// Max reduces each column (or group) to the maximum of its mapped values.
// Empty columns yield NaN.
func (m *MappedArray) Max(opts ...ReduceOption) (*Series, error) {
	return m.Reduce(func(values []float64) float64 {
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	}, math.NaN(), opts...)
}
