package records

import (
	"fmt"
	"strings"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
)

// rowView is a read-only window onto a single record of an Array
type rowView struct {
	arr *Array
	pos int
}

// Schema returns the schema for this row
func (r *rowView) Schema() vbt.Schema {
	return r.arr.schema
}

// Pos returns the position of this row within its record array
func (r *rowView) Pos() int {
	return r.pos
}

// Col returns the logical column id this row belongs to
func (r *rowView) Col() int {
	return int(r.arr.ints[vbt.ColField][r.pos])
}

// Get returns the value of any field as an interface{}, if it exists
func (r *rowView) Get(name string) (interface{}, error) {
	f, err := r.arr.schema.GetField(name)
	if err != nil {
		return nil, errors.SchemaError{Message: err.Error()}
	}
	switch f.Kind() {
	case vbt.IntKind:
		return r.arr.ints[name][r.pos], nil
	case vbt.FloatKind:
		return r.arr.floats[name][r.pos], nil
	case vbt.BoolKind:
		return r.arr.bools[name][r.pos], nil
	default:
		return r.arr.strings[name][r.pos], nil
	}
}

// GetInt64 retrieves a single int64 from the field with the given name
func (r *rowView) GetInt64(name string) (int64, error) {
	vals, err := r.arr.Ints(name)
	if err != nil {
		return 0, err
	}
	return vals[r.pos], nil
}

// GetFloat64 retrieves a single float64 from the field with the given name
func (r *rowView) GetFloat64(name string) (float64, error) {
	vals, err := r.arr.Floats(name)
	if err != nil {
		return 0, err
	}
	return vals[r.pos], nil
}

// GetBool retrieves a single bool from the field with the given name
func (r *rowView) GetBool(name string) (bool, error) {
	vals, err := r.arr.Bools(name)
	if err != nil {
		return false, err
	}
	return vals[r.pos], nil
}

// GetString retrieves a single string from the field with the given name
func (r *rowView) GetString(name string) (string, error) {
	vals, err := r.arr.Strings(name)
	if err != nil {
		return "", err
	}
	return vals[r.pos], nil
}

// ToString returns a string representation of this row
func (r *rowView) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.arr.schema.ForEachField(func(name string, f vbt.Field) error {
		v, err := r.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(&res, "\"%s\": %v,", name, v)
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}
