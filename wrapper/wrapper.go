package wrapper

import (
	"fmt"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
)

// ArrayWrapper is the default shape/grouping handle for a record store. It
// describes the dense logical matrix a store sparsely represents: labels
// along the time axis, labels across columns, and an optional grouping of
// columns into reduction groups. When grouped, label-based selection
// resolves against group labels and expands to their member columns.
type ArrayWrapper struct {
	index    []string
	columns  []string
	grouping *vbt.Grouping
}

// Create builds an ArrayWrapper from time-axis labels and column labels
func Create(index []string, columns []string) *ArrayWrapper {
	idxCpy := make([]string, len(index))
	copy(idxCpy, index)
	colCpy := make([]string, len(columns))
	copy(colCpy, columns)
	return &ArrayWrapper{index: idxCpy, columns: colCpy}
}

// NumRows returns the row count of the logical matrix
func (w *ArrayWrapper) NumRows() int {
	return len(w.index)
}

// NumColumns returns the column count of the logical matrix
func (w *ArrayWrapper) NumColumns() int {
	return len(w.columns)
}

// IndexLabels returns the labels of the time axis
func (w *ArrayWrapper) IndexLabels() []string {
	cpy := make([]string, len(w.index))
	copy(cpy, w.index)
	return cpy
}

// ColumnLabels returns the labels of the columns
func (w *ArrayWrapper) ColumnLabels() []string {
	cpy := make([]string, len(w.columns))
	copy(cpy, w.columns)
	return cpy
}

// Grouping returns the current column grouping, or nil when ungrouped
func (w *ArrayWrapper) Grouping() *vbt.Grouping {
	return w.grouping
}

// IsGroupingChanged returns true iff adopting candidate would alter the
// current grouping
func (w *ArrayWrapper) IsGroupingChanged(candidate *vbt.Grouping) bool {
	return !vbt.GroupingEqual(w.grouping, candidate)
}

// CheckGrouping validates candidate against this wrapper's shape. A nil
// candidate (ungrouped) is always valid.
func (w *ArrayWrapper) CheckGrouping(candidate *vbt.Grouping) error {
	if candidate == nil {
		return nil
	}
	if candidate.NumColumns() != w.NumColumns() {
		return errors.GroupingError{Message: fmt.Sprintf("grouping assigns %d columns, wrapper has %d", candidate.NumColumns(), w.NumColumns())}
	}
	return nil
}

// WithGrouping returns a wrapper sharing this shape but carrying candidate
func (w *ArrayWrapper) WithGrouping(candidate *vbt.Grouping) (vbt.Wrapper, error) {
	if err := w.CheckGrouping(candidate); err != nil {
		return nil, err
	}
	return &ArrayWrapper{index: w.index, columns: w.columns, grouping: candidate}, nil
}

// ResolveSelection translates a label-based Selection into a SelectionPlan.
// When this wrapper is grouped, labels resolve against group labels and each
// selected group expands to its member columns; otherwise labels resolve
// against column labels directly. The resulting plan lists the selected
// original column ids in their new order, paired with a wrapper for the
// narrowed column universe.
func (w *ArrayWrapper) ResolveSelection(sel vbt.Selection) (*vbt.SelectionPlan, error) {
	universe := w.columns
	if w.grouping != nil {
		universe = w.grouping.GroupLabels()
	}
	picked, err := resolve(sel, universe)
	if err != nil {
		return nil, err
	}
	var colIDs []int
	if w.grouping != nil {
		labels := w.grouping.GroupLabels()
		for _, g := range picked {
			colIDs = append(colIDs, w.grouping.GroupColumns(labels[g])...)
		}
	} else {
		colIDs = picked
	}
	newColumns := make([]string, len(colIDs))
	for i, c := range colIDs {
		newColumns[i] = w.columns[c]
	}
	narrowed := &ArrayWrapper{index: w.index, columns: newColumns}
	if w.grouping != nil {
		narrowed.grouping = w.grouping.Select(colIDs)
	}
	return &vbt.SelectionPlan{Wrapper: narrowed, ColIDs: colIDs}, nil
}

// resolve maps a Selection onto positions within a label universe
func resolve(sel vbt.Selection, universe []string) ([]int, error) {
	byLabel := make(map[string]int, len(universe))
	for i, l := range universe {
		byLabel[l] = i
	}
	if labels := sel.Labels(); labels != nil {
		ids := make([]int, 0, len(labels))
		for _, l := range labels {
			id, ok := byLabel[l]
			if !ok {
				return nil, errors.SelectionError{Message: fmt.Sprintf("label %q not found", l)}
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	if mask := sel.Mask(); mask != nil {
		if len(mask) != len(universe) {
			return nil, errors.ShapeError{Expected: len(universe), Actual: len(mask)}
		}
		var ids []int
		for i, keep := range mask {
			if keep {
				ids = append(ids, i)
			}
		}
		return ids, nil
	}
	if from, to, ok := sel.Range(); ok {
		start, ok := byLabel[from]
		if !ok {
			return nil, errors.SelectionError{Message: fmt.Sprintf("label %q not found", from)}
		}
		stop, ok := byLabel[to]
		if !ok {
			return nil, errors.SelectionError{Message: fmt.Sprintf("label %q not found", to)}
		}
		var ids []int
		for i := start; i <= stop; i++ {
			ids = append(ids, i)
		}
		return ids, nil
	}
	return nil, errors.SelectionError{Message: "empty selection"}
}
