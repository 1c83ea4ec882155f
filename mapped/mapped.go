// Package mapped holds the typed output of every record projection: a flat
// value sequence paired with a parallel column-id sequence and an optional
// parallel time-position sequence. It also implements the group-aware
// reductions which consume that handoff, turning per-record values into one
// scalar per column (or per reduction group, when the wrapper is grouped).
package mapped

import (
	"fmt"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
)

// MappedArray pairs mapped per-record values with their column and
// time-position provenance. All sequences share the same length and the
// same ordering as the record array they were projected from. A
// MappedArray is immutable once created.
type MappedArray struct {
	wrapper  vbt.Wrapper
	values   []float64
	colIDs   []int64
	idxArr   []int64
	valueMap map[float64]string
}

// Option configures the creation of a MappedArray
type Option func(*MappedArray)

// WithIdxArr attaches a parallel time-position sequence
func WithIdxArr(idxArr []int64) Option {
	return func(m *MappedArray) {
		m.idxArr = idxArr
	}
}

// WithValueMap attaches a display-label lookup for mapped values. It is
// carried through uninterpreted.
func WithValueMap(valueMap map[float64]string) Option {
	return func(m *MappedArray) {
		m.valueMap = valueMap
	}
}

// Create builds a MappedArray from a wrapper, mapped values and their
// parallel column ids. Fails with a ShapeError if the sequences differ in
// length, or with a SchemaError if a column id falls outside the wrapper's
// column universe.
func Create(wrapper vbt.Wrapper, values []float64, colIDs []int64, opts ...Option) (*MappedArray, error) {
	m := &MappedArray{wrapper: wrapper, values: values, colIDs: colIDs}
	for _, opt := range opts {
		opt(m)
	}
	if len(colIDs) != len(values) {
		return nil, errors.ShapeError{Expected: len(values), Actual: len(colIDs)}
	}
	if m.idxArr != nil && len(m.idxArr) != len(values) {
		return nil, errors.ShapeError{Expected: len(values), Actual: len(m.idxArr)}
	}
	numCols := wrapper.NumColumns()
	for i, c := range colIDs {
		if c < 0 || c >= int64(numCols) {
			return nil, errors.SchemaError{Message: fmt.Sprintf("col id %d at record %d outside [0, %d)", c, i, numCols)}
		}
	}
	return m, nil
}

// Wrapper returns the shape/grouping handle of this MappedArray
func (m *MappedArray) Wrapper() vbt.Wrapper {
	return m.wrapper
}

// Len returns the number of mapped values
func (m *MappedArray) Len() int {
	return len(m.values)
}

// Values returns the mapped value sequence
func (m *MappedArray) Values() []float64 {
	return m.values
}

// ColIDs returns the parallel column-id sequence
func (m *MappedArray) ColIDs() []int64 {
	return m.colIDs
}

// IdxArr returns the parallel time-position sequence, or nil when absent
func (m *MappedArray) IdxArr() []int64 {
	return m.idxArr
}

// ValueMap returns the display-label lookup, or nil when absent
func (m *MappedArray) ValueMap() map[float64]string {
	return m.valueMap
}

// Regroup returns this MappedArray under a new column grouping. The values
// are untouched; only the wrapper changes. Returns the receiver when the
// grouping is unchanged.
func (m *MappedArray) Regroup(grouping *vbt.Grouping) (*MappedArray, error) {
	if !m.wrapper.IsGroupingChanged(grouping) {
		return m, nil
	}
	if err := m.wrapper.CheckGrouping(grouping); err != nil {
		return nil, err
	}
	newWrapper, err := m.wrapper.WithGrouping(grouping)
	if err != nil {
		return nil, err
	}
	return &MappedArray{
		wrapper:  newWrapper,
		values:   m.values,
		colIDs:   m.colIDs,
		idxArr:   m.idxArr,
		valueMap: m.valueMap,
	}, nil
}
