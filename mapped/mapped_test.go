package mapped

import (
	"math"
	"testing"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
	"github.com/2lambda123/vectorbt/wrapper"
	"github.com/stretchr/testify/require"
)

func createTestMapped(t *testing.T, opts ...Option) *MappedArray {
	w := wrapper.Create([]string{"x", "y", "z"}, []string{"a", "b", "c"})
	values := []float64{10, 11, 12, 13, 14, 15, 16, 17, 18}
	colIDs := []int64{0, 0, 0, 1, 1, 1, 2, 2, 2}
	m, err := Create(w, values, colIDs, opts...)
	require.Nil(t, err)
	return m
}

func TestMappedCreate(t *testing.T) {
	m := createTestMapped(t)
	require.Equal(t, 9, m.Len())
	require.Nil(t, m.IdxArr())
	require.Nil(t, m.ValueMap())
}

func TestMappedCreateShapeMismatch(t *testing.T) {
	w := wrapper.Create([]string{"x"}, []string{"a"})
	_, err := Create(w, []float64{1, 2}, []int64{0})
	require.IsType(t, errors.ShapeError{}, err)

	_, err = Create(w, []float64{1}, []int64{0}, WithIdxArr([]int64{0, 1}))
	require.IsType(t, errors.ShapeError{}, err)
}

func TestMappedCreateColOutOfRange(t *testing.T) {
	w := wrapper.Create([]string{"x"}, []string{"a"})
	_, err := Create(w, []float64{1}, []int64{1})
	require.IsType(t, errors.SchemaError{}, err)
}

func TestMappedCountPerColumn(t *testing.T) {
	m := createTestMapped(t)
	s, err := m.Count()
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c"}, s.Labels)
	require.Equal(t, []float64{3, 3, 3}, s.Values)
}

func TestMappedCountGrouped(t *testing.T) {
	m := createTestMapped(t)
	s, err := m.Count(ReduceWithGrouping(vbt.NewGrouping("g1", "g1", "g2")))
	require.Nil(t, err)
	require.Equal(t, []string{"g1", "g2"}, s.Labels)
	require.Equal(t, []float64{6, 3}, s.Values)
}

func TestMappedMean(t *testing.T) {
	m := createTestMapped(t)
	s, err := m.Mean()
	require.Nil(t, err)
	require.Equal(t, []float64{11, 14, 17}, s.Values)

	// grouped mean matches the original example: first=12.5, second=17
	s, err = m.Mean(ReduceWithGrouping(vbt.NewGrouping("first", "first", "second")))
	require.Nil(t, err)
	require.Equal(t, []string{"first", "second"}, s.Labels)
	require.Equal(t, []float64{12.5, 17}, s.Values)
}

func TestMappedSumMinMax(t *testing.T) {
	m := createTestMapped(t)
	s, err := m.Sum()
	require.Nil(t, err)
	require.Equal(t, []float64{33, 42, 51}, s.Values)

	s, err = m.Min()
	require.Nil(t, err)
	require.Equal(t, []float64{10, 13, 16}, s.Values)

	s, err = m.Max()
	require.Nil(t, err)
	require.Equal(t, []float64{12, 15, 18}, s.Values)
}

func TestMappedEmptyColumnDefaults(t *testing.T) {
	w := wrapper.Create([]string{"x"}, []string{"a", "b"})
	m, err := Create(w, []float64{5}, []int64{0})
	require.Nil(t, err)

	s, err := m.Count()
	require.Nil(t, err)
	require.Equal(t, []float64{1, 0}, s.Values)

	s, err = m.Mean()
	require.Nil(t, err)
	require.Equal(t, 5.0, s.Values[0])
	require.True(t, math.IsNaN(s.Values[1]))
}

func TestMappedRegroup(t *testing.T) {
	m := createTestMapped(t)
	same, err := m.Regroup(nil)
	require.Nil(t, err)
	require.Same(t, m, same)

	g := vbt.NewGrouping("g1", "g1", "g2")
	grouped, err := m.Regroup(g)
	require.Nil(t, err)
	require.NotSame(t, m, grouped)
	require.Equal(t, m.Values(), grouped.Values())
	require.True(t, vbt.GroupingEqual(g, grouped.Wrapper().Grouping()))

	_, err = m.Regroup(vbt.NewGrouping("g1"))
	require.IsType(t, errors.GroupingError{}, err)
}

func TestMappedReduceCustomKernel(t *testing.T) {
	m := createTestMapped(t)
	s, err := m.Reduce(func(values []float64) float64 {
		return values[len(values)-1]
	}, math.NaN())
	require.Nil(t, err)
	require.Equal(t, []float64{12, 15, 18}, s.Values)
}
