package records

import (
	"testing"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/schema"
	"github.com/2lambda123/vectorbt/wrapper"
	"github.com/stretchr/testify/require"
)

// createTestSchema builds the example schema: col, idx (both int) and a
// float field v
func createTestSchema(t *testing.T) vbt.Schema {
	s := schema.CreateSchema()
	_, err := s.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = s.CreateField("idx", vbt.IntKind)
	require.Nil(t, err)
	_, err = s.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)
	return s
}

// createTestArray builds 9 records over columns {0,1,2}, 3 records each,
// time positions 0..2 per column, v = 10..18
func createTestArray(t *testing.T) *Array {
	arr, err := CreateArray(createTestSchema(t), 9)
	require.Nil(t, err)
	for col := 0; col < 3; col++ {
		for i := 0; i < 3; i++ {
			require.Nil(t, arr.Append(col, i, float64(10+col*3+i)))
		}
	}
	return arr
}

// createTestRecords wraps the example array in a 3x3 logical matrix with
// columns a, b, c
func createTestRecords(t *testing.T, opts ...Option) *Records {
	w := wrapper.Create([]string{"x", "y", "z"}, []string{"a", "b", "c"})
	r, err := Create(w, createTestArray(t), opts...)
	require.Nil(t, err)
	return r
}
