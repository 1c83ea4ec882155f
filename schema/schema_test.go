package schema

import (
	"testing"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualityBasic(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = schema1.CreateField("idx", vbt.IntKind)
	require.Nil(t, err)
	_, err = schema1.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = schema2.CreateField("idx", vbt.IntKind)
	require.Nil(t, err)
	_, err = schema2.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)

	require.Nil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityDifferentKind(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = schema1.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = schema2.CreateField("v", vbt.IntKind)
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityOrder(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = schema1.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)
	_, err = schema2.CreateField("col", vbt.IntKind)
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaDuplicateField(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = s.CreateField("col", vbt.IntKind)
	require.NotNil(t, err)
}

func TestSchemaFieldNamesInOrder(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	_, err = s.CreateField("idx", vbt.IntKind)
	require.Nil(t, err)
	_, err = s.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)
	require.Equal(t, []string{"col", "idx", "v"}, s.FieldNames())
	require.Equal(t, []vbt.FieldKind{vbt.IntKind, vbt.IntKind, vbt.FloatKind}, s.FieldKinds())
	require.True(t, s.HasField("idx"))
	require.False(t, s.HasField("missing"))
}

func TestSchemaClone(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateField("col", vbt.IntKind)
	require.Nil(t, err)
	clone := s.Clone()
	_, err = clone.CreateField("v", vbt.FloatKind)
	require.Nil(t, err)
	require.Equal(t, 1, s.NumFields())
	require.Equal(t, 2, clone.NumFields())
}
