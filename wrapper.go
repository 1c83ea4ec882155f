package vectorbt

// Wrapper is the shape/grouping handle consumed by a record store. It maps
// the store's sparse records onto the logical dense matrix they represent:
// row labels along the time axis, column labels across entities, and an
// optional Grouping of columns into reduction groups. A Wrapper is never
// mutated; narrowing or regrouping produces a new Wrapper.
type Wrapper interface {
	NumRows() int                                           // NumRows returns the row count of the logical matrix
	NumColumns() int                                        // NumColumns returns the column count of the logical matrix
	IndexLabels() []string                                  // IndexLabels returns the labels of the time axis
	ColumnLabels() []string                                 // ColumnLabels returns the labels of the columns
	Grouping() *Grouping                                    // Grouping returns the current column grouping, or nil when ungrouped
	IsGroupingChanged(candidate *Grouping) bool             // IsGroupingChanged returns true iff adopting candidate would alter the current grouping
	CheckGrouping(candidate *Grouping) error                // CheckGrouping validates candidate against this Wrapper's shape
	WithGrouping(candidate *Grouping) (Wrapper, error)      // WithGrouping returns a Wrapper sharing this shape but carrying candidate
	ResolveSelection(sel Selection) (*SelectionPlan, error) // ResolveSelection translates a label-based Selection into a SelectionPlan
}
