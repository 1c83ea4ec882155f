package records

import (
	"strings"
	"testing"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
	"github.com/stretchr/testify/require"
)

func TestArrayAppendAndAccess(t *testing.T) {
	arr := createTestArray(t)
	require.Equal(t, 9, arr.Len())

	cols, err := arr.Ints("col")
	require.Nil(t, err)
	require.Equal(t, []int64{0, 0, 0, 1, 1, 1, 2, 2, 2}, cols)

	vs, err := arr.Floats("v")
	require.Nil(t, err)
	require.Equal(t, []float64{10, 11, 12, 13, 14, 15, 16, 17, 18}, vs)
}

func TestArrayAppendWrongArity(t *testing.T) {
	arr, err := CreateArray(createTestSchema(t), 0)
	require.Nil(t, err)
	err = arr.Append(0, 1)
	require.IsType(t, errors.ShapeError{}, err)
	require.Equal(t, 0, arr.Len())
}

func TestArrayAppendKindMismatch(t *testing.T) {
	arr, err := CreateArray(createTestSchema(t), 0)
	require.Nil(t, err)
	// both the idx and v values have the wrong kind; both are reported
	err = arr.Append(0, "one", "ten")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "idx")
	require.Contains(t, err.Error(), "v")
}

func TestArrayFieldKindAccessMismatch(t *testing.T) {
	arr := createTestArray(t)
	_, err := arr.Floats("col")
	require.IsType(t, errors.SchemaError{}, err)
	_, err = arr.Ints("missing")
	require.IsType(t, errors.SchemaError{}, err)
}

func TestArrayFloat64Values(t *testing.T) {
	arr := createTestArray(t)
	vs, err := arr.Float64Values("col")
	require.Nil(t, err)
	require.Equal(t, []float64{0, 0, 0, 1, 1, 1, 2, 2, 2}, vs)

	s := createTestSchema(t)
	_, err = s.CreateField("name", vbt.StringKind)
	require.Nil(t, err)
	withStr, err := CreateArray(s, 1)
	require.Nil(t, err)
	require.Nil(t, withStr.Append(0, 0, 1.5, "first"))
	_, err = withStr.Float64Values("name")
	require.IsType(t, errors.SchemaError{}, err)
}

func TestArrayMask(t *testing.T) {
	arr := createTestArray(t)
	mask := make([]bool, 9)
	mask[0], mask[4], mask[8] = true, true, true
	filtered, err := arr.Mask(mask)
	require.Nil(t, err)
	require.Equal(t, 3, filtered.Len())
	vs, err := filtered.Floats("v")
	require.Nil(t, err)
	require.Equal(t, []float64{10, 14, 18}, vs)

	_, err = arr.Mask([]bool{true})
	require.IsType(t, errors.ShapeError{}, err)
}

func TestArrayRowView(t *testing.T) {
	arr := createTestArray(t)
	row := arr.Row(4)
	require.Equal(t, 4, row.Pos())
	require.Equal(t, 1, row.Col())
	v, err := row.GetFloat64("v")
	require.Nil(t, err)
	require.Equal(t, 14.0, v)
	idx, err := row.GetInt64("idx")
	require.Nil(t, err)
	require.Equal(t, int64(1), idx)
	_, err = row.Get("missing")
	require.IsType(t, errors.SchemaError{}, err)
	require.Contains(t, row.ToString(), "\"v\": 14")
}

func TestArrayConcat(t *testing.T) {
	a := createTestArray(t)
	b := createTestArray(t)
	both, err := Concat(a, b)
	require.Nil(t, err)
	require.Equal(t, 18, both.Len())
	cols, err := both.Ints("col")
	require.Nil(t, err)
	require.Equal(t, int64(0), cols[0])
	require.Equal(t, int64(0), cols[9])

	other, err := CreateArray(createTestSchema(t), 0)
	require.Nil(t, err)
	short, err := Concat(a, other)
	require.Nil(t, err)
	require.Equal(t, 9, short.Len())
}

func TestArrayTable(t *testing.T) {
	arr := createTestArray(t)
	table := arr.Table()
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 10)
	require.Contains(t, lines[0], "col")
	require.Contains(t, lines[0], "idx")
	require.Contains(t, lines[0], "v")
	require.Contains(t, lines[1], "10")
}
