package records

import (
	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
)

// SelectOption configures a Select call
type SelectOption func(*selectOptions)

type selectOptions struct {
	requireMatch bool
}

// RequireMatch makes Select fail with a SelectionError when the selection
// resolves to zero columns, instead of returning an empty store
func RequireMatch() SelectOption {
	return func(o *selectOptions) {
		o.requireMatch = true
	}
}

// Select narrows this store to the columns (or groups) matching a
// label-based selection. The wrapper resolves the selection into a plan: a
// narrowed wrapper plus the surviving original column ids in their new
// order. Rows are then gathered through the column index in ascending order
// of new column id, preserving the original relative order within each
// column, and each surviving row's col field is renumbered to its column's
// position in the narrowed universe.
func (r *Records) Select(sel vbt.Selection, opts ...SelectOption) (*Records, error) {
	var o selectOptions
	for _, opt := range opts {
		opt(&o)
	}
	plan, err := r.wrapper.ResolveSelection(sel)
	if err != nil {
		return nil, err
	}
	if len(plan.ColIDs) == 0 && o.requireMatch {
		return nil, errors.SelectionError{Message: "selection resolved to zero columns"}
	}
	ix := r.ColIndex()
	var positions []int
	var newCols []int64
	for newCol, c := range plan.ColIDs {
		for _, pos := range ix.RowsOf(c) {
			positions = append(positions, pos)
			newCols = append(newCols, int64(newCol))
		}
	}
	newArr := r.arr.gatherRenumber(positions, newCols)
	return newRecords(plan.Wrapper, newArr, r.idxField, r.policy)
}
