package records

import (
	"math/rand"
	"testing"

	"github.com/2lambda123/vectorbt/errors"
	"github.com/stretchr/testify/require"
)

func TestColIndexSorted(t *testing.T) {
	ix, err := BuildColIndex([]int64{0, 0, 0, 1, 1, 1, 2, 2, 2}, 3)
	require.Nil(t, err)
	require.Equal(t, 3, ix.NumColumns())
	require.Equal(t, []int{0, 1, 2}, ix.RowsOf(0))
	require.Equal(t, []int{3, 4, 5}, ix.RowsOf(1))
	require.Equal(t, []int{6, 7, 8}, ix.RowsOf(2))
}

func TestColIndexScattered(t *testing.T) {
	ix, err := BuildColIndex([]int64{2, 0, 1, 2, 0, 1, 0}, 3)
	require.Nil(t, err)
	require.Equal(t, []int{1, 4, 6}, ix.RowsOf(0))
	require.Equal(t, []int{2, 5}, ix.RowsOf(1))
	require.Equal(t, []int{0, 3}, ix.RowsOf(2))
	require.Equal(t, 3, ix.CountOf(0))
	require.Equal(t, 2, ix.CountOf(1))
}

func TestColIndexEmptyColumn(t *testing.T) {
	ix, err := BuildColIndex([]int64{0, 0, 2}, 3)
	require.Nil(t, err)
	require.Empty(t, ix.RowsOf(1))
	require.Equal(t, 0, ix.CountOf(1))
}

func TestColIndexOutOfRange(t *testing.T) {
	_, err := BuildColIndex([]int64{0, 3}, 3)
	require.IsType(t, errors.SchemaError{}, err)
	_, err = BuildColIndex([]int64{-1}, 3)
	require.IsType(t, errors.SchemaError{}, err)
}

// for any ordering, RowsOf(c) returns exactly the positions whose record
// has col value c, and the union over all columns is the full record set
func TestColIndexPartitionsRowSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const numCols = 7
	colIDs := make([]int64, 500)
	for i := range colIDs {
		colIDs[i] = int64(rng.Intn(numCols))
	}
	ix, err := BuildColIndex(colIDs, numCols)
	require.Nil(t, err)
	seen := make(map[int]bool)
	for c := 0; c < numCols; c++ {
		for _, pos := range ix.RowsOf(c) {
			require.Equal(t, int64(c), colIDs[pos])
			require.False(t, seen[pos])
			seen[pos] = true
		}
	}
	require.Len(t, seen, len(colIDs))
}

func TestColIndexForEachRow(t *testing.T) {
	ix, err := BuildColIndex([]int64{1, 0, 1}, 2)
	require.Nil(t, err)
	var visited []int
	require.Nil(t, ix.ForEachRow(1, func(pos int) error {
		visited = append(visited, pos)
		return nil
	}))
	require.Equal(t, []int{0, 2}, visited)
}
