package vectorbt

// Selection describes a label-based narrowing of the column universe of a
// record store, using the same grammar as other label-indexable collections:
// a single label, a list of labels, a half-open label range, or a boolean
// mask over the current columns (or groups, when the store is grouped).
type Selection struct {
	labels   []string
	mask     []bool
	from, to string
	isRange  bool
}

// SelectLabel selects a single column (or group) by label
func SelectLabel(label string) Selection {
	return Selection{labels: []string{label}}
}

// SelectLabels selects multiple columns (or groups) by label, in the given order
func SelectLabels(labels ...string) Selection {
	cpy := make([]string, len(labels))
	copy(cpy, labels)
	return Selection{labels: cpy}
}

// SelectRange selects all columns (or groups) between the label from and the
// label to, inclusive of both endpoints, in current column order
func SelectRange(from string, to string) Selection {
	return Selection{from: from, to: to, isRange: true}
}

// SelectMask selects columns (or groups) whose position in the mask is true.
// The mask length must equal the current column (or group) count.
func SelectMask(mask []bool) Selection {
	cpy := make([]bool, len(mask))
	copy(cpy, mask)
	return Selection{mask: cpy}
}

// Labels returns the labels of this Selection, or nil for mask/range selections
func (s Selection) Labels() []string { return s.labels }

// Mask returns the mask of this Selection, or nil for label/range selections
func (s Selection) Mask() []bool { return s.mask }

// Range returns the endpoints of this Selection and whether it is a range
func (s Selection) Range() (from string, to string, ok bool) {
	return s.from, s.to, s.isRange
}

// SelectionPlan pairs a narrowed shape/grouping Wrapper with the original
// ids of the columns that survive a Selection, in their new order. Producing
// a plan first, then rebuilding rows from it in a single step, keeps the
// wrapper and the record array consistent with one another.
type SelectionPlan struct {
	Wrapper Wrapper // the wrapper for the narrowed column universe
	ColIDs  []int   // selected original column ids; position = new column id
}
