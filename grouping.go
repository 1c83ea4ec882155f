package vectorbt

// Grouping partitions the columns of a record store into named reduction
// groups, one group label per column. Reductions over a grouped store treat
// all columns sharing a label as a single column. A nil *Grouping means the
// store is ungrouped.
type Grouping struct {
	labels []string
}

// NewGrouping produces a Grouping from one group label per column
func NewGrouping(labels ...string) *Grouping {
	cpy := make([]string, len(labels))
	copy(cpy, labels)
	return &Grouping{labels: cpy}
}

// NumColumns returns the number of columns this Grouping assigns
func (g *Grouping) NumColumns() int {
	return len(g.labels)
}

// Labels returns the group label assigned to each column, in column order
func (g *Grouping) Labels() []string {
	cpy := make([]string, len(g.labels))
	copy(cpy, g.labels)
	return cpy
}

// GroupLabels returns the distinct group labels in order of first appearance
func (g *Grouping) GroupLabels() []string {
	seen := make(map[string]bool)
	distinct := make([]string, 0, len(g.labels))
	for _, l := range g.labels {
		if !seen[l] {
			seen[l] = true
			distinct = append(distinct, l)
		}
	}
	return distinct
}

// NumGroups returns the number of distinct groups
func (g *Grouping) NumGroups() int {
	return len(g.GroupLabels())
}

// GroupIDs returns, for each column, the id of the group it belongs to.
// Group ids are assigned in order of first appearance of each label.
func (g *Grouping) GroupIDs() []int {
	ids := make([]int, len(g.labels))
	byLabel := make(map[string]int)
	for i, l := range g.labels {
		id, ok := byLabel[l]
		if !ok {
			id = len(byLabel)
			byLabel[l] = id
		}
		ids[i] = id
	}
	return ids
}

// GroupColumns returns the column ids belonging to the group with the given
// label, in ascending order, or nil if no column carries the label
func (g *Grouping) GroupColumns(label string) []int {
	var cols []int
	for i, l := range g.labels {
		if l == label {
			cols = append(cols, i)
		}
	}
	return cols
}

// Select returns a new Grouping restricted to the given columns, preserving
// their selection order
func (g *Grouping) Select(colIDs []int) *Grouping {
	labels := make([]string, len(colIDs))
	for i, c := range colIDs {
		labels[i] = g.labels[c]
	}
	return &Grouping{labels: labels}
}

// GroupingEqual returns true iff two groupings (either possibly nil) assign
// identical labels to identical columns
func GroupingEqual(a *Grouping, b *Grouping) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a.labels) != len(b.labels) {
		return false
	}
	for i := range a.labels {
		if a.labels[i] != b.labels[i] {
			return false
		}
	}
	return true
}
