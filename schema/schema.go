package schema

import (
	"fmt"
	"sort"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/hashicorp/go-multierror"
)

// field describes the position and kind of a single attribute in a Schema
type field struct {
	idx  int
	kind vbt.FieldKind
}

// Clone returns a copy of this Field
func (f *field) Clone() vbt.Field {
	return &field{f.idx, f.kind}
}

// Index returns the position of this Field within a Schema
func (f *field) Index() int {
	return f.idx
}

// SetIndex modifies the position of this Field within a Schema
func (f *field) SetIndex(newIndex int) {
	f.idx = newIndex
}

// Kind returns the FieldKind of this Field
func (f *field) Kind() vbt.FieldKind {
	return f.kind
}

// Schema is a mapping from field names to positions and kinds within a
// record array. It allows one to look up fields by name, define new fields,
// and compare schemas for equivalence.
type schema struct {
	fields map[string]vbt.Field
}

// CreateSchema is a factory for Schemas
func CreateSchema() vbt.Schema {
	return &schema{fields: make(map[string]vbt.Field)}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema vbt.Schema) error {
	var result *multierror.Error
	if s.NumFields() != otherSchema.NumFields() {
		result = multierror.Append(result, fmt.Errorf("schemas have unequal numbers of fields"))
	}
	err := s.ForEachField(func(name string, f vbt.Field) error {
		other, err := otherSchema.GetField(name)
		if err != nil {
			result = multierror.Append(result, err)
			return nil
		}
		if f.Index() != other.Index() {
			result = multierror.Append(result, fmt.Errorf("field %s indices do not match", name))
		}
		if f.Kind() != other.Kind() {
			result = multierror.Append(result, fmt.Errorf("field %s kinds do not match", name))
		}
		return nil
	})
	if err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Clone returns a copy of this Schema
func (s *schema) Clone() vbt.Schema {
	newFields := make(map[string]vbt.Field)
	for k, v := range s.fields {
		newFields[k] = v.Clone()
	}
	return &schema{fields: newFields}
}

// NumFields returns the number of fields in this Schema
func (s *schema) NumFields() int {
	return len(s.fields)
}

// GetField returns the named field, if it exists
func (s *schema) GetField(name string) (f vbt.Field, err error) {
	f, ok := s.fields[name]
	if !ok {
		err = fmt.Errorf("schema does not contain field with name %s", name)
	}
	return
}

// HasField returns true iff this Schema contains a field with the given name
func (s *schema) HasField(name string) bool {
	_, err := s.GetField(name)
	return err == nil
}

// CreateField defines a new field within the Schema
func (s *schema) CreateField(name string, kind vbt.FieldKind) (newSchema vbt.Schema, err error) {
	_, contains := s.fields[name]
	if contains {
		err = fmt.Errorf("schema already contains field with name %s", name)
	} else {
		s.fields[name] = &field{len(s.fields), kind}
		newSchema = s
	}
	return
}

// FieldNames returns the names in the Schema, in field order
func (s *schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for k, v := range s.fields {
		names[v.Index()] = k
	}
	return names
}

// FieldKinds returns the kinds in the Schema, in field order
func (s *schema) FieldKinds() []vbt.FieldKind {
	kinds := make([]vbt.FieldKind, len(s.fields))
	for _, v := range s.fields {
		kinds[v.Index()] = v.Kind()
	}
	return kinds
}

// ForEachField iterates over the fields in this Schema, in field order
func (s *schema) ForEachField(fn func(name string, f vbt.Field) error) error {
	names := make([]string, 0, len(s.fields))
	for k := range s.fields {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.fields[names[i]].Index() < s.fields[names[j]].Index()
	})
	for _, name := range names {
		if err := fn(name, s.fields[name]); err != nil {
			return err
		}
	}
	return nil
}
