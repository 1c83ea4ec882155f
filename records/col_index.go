package records

import (
	"fmt"

	"github.com/2lambda123/vectorbt/errors"
	"github.com/RoaringBitmap/roaring/v2"
)

// ColIndex is a derived lookup from column id to the positions of the
// records belonging to that column. It is built in a single linear pass over
// the col field and supports fully scattered column ids; record order is
// never assumed to be sorted by column. A ColIndex is immutable once built.
type ColIndex struct {
	bitmaps []*roaring.Bitmap
}

// BuildColIndex builds a ColIndex from the col field of a record array and
// the total column count. Pure function of its inputs, safe to memoize per
// record array. Fails with a SchemaError if a column id falls outside
// [0, numColumns).
func BuildColIndex(colIDs []int64, numColumns int) (*ColIndex, error) {
	bitmaps := make([]*roaring.Bitmap, numColumns)
	for c := range bitmaps {
		bitmaps[c] = roaring.New()
	}
	for pos, c := range colIDs {
		if c < 0 || c >= int64(numColumns) {
			return nil, errors.SchemaError{Message: fmt.Sprintf("col id %d at record %d outside [0, %d)", c, pos, numColumns)}
		}
		bitmaps[c].Add(uint32(pos))
	}
	return &ColIndex{bitmaps: bitmaps}, nil
}

// NumColumns returns the number of columns this index covers
func (ix *ColIndex) NumColumns() int {
	return len(ix.bitmaps)
}

// RowsOf returns the positions of the records belonging to the given
// column, in ascending order
func (ix *ColIndex) RowsOf(col int) []int {
	bm := ix.bitmaps[col]
	positions := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		positions = append(positions, int(it.Next()))
	}
	return positions
}

// CountOf returns the number of records belonging to the given column
func (ix *ColIndex) CountOf(col int) int {
	return int(ix.bitmaps[col].GetCardinality())
}

// ForEachRow invokes fn with each record position belonging to the given
// column, in ascending order, stopping at the first error
func (ix *ColIndex) ForEachRow(col int, fn func(pos int) error) error {
	it := ix.bitmaps[col].Iterator()
	for it.HasNext() {
		if err := fn(int(it.Next())); err != nil {
			return err
		}
	}
	return nil
}
