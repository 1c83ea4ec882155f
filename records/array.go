package records

import (
	"fmt"
	"strings"
	"text/tabwriter"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
	"github.com/hashicorp/go-multierror"
)

// Array is a fixed-schema record array stored column-major: one typed slice
// per field. Rows are appended during construction; once an Array is owned
// by a Records instance it must be treated as immutable. Every structural
// change (masking, gathering) produces a new Array.
type Array struct {
	schema  vbt.Schema
	length  int
	ints    map[string][]int64
	floats  map[string][]float64
	bools   map[string][]bool
	strings map[string][]string
}

// CreateArray builds an empty Array for the given schema, with room for
// capacity records
func CreateArray(schema vbt.Schema, capacity int) (*Array, error) {
	if schema == nil || schema.NumFields() == 0 {
		return nil, errors.SchemaError{Message: "record array requires a non-empty schema"}
	}
	a := &Array{
		schema:  schema,
		ints:    make(map[string][]int64),
		floats:  make(map[string][]float64),
		bools:   make(map[string][]bool),
		strings: make(map[string][]string),
	}
	schema.ForEachField(func(name string, f vbt.Field) error {
		switch f.Kind() {
		case vbt.IntKind:
			a.ints[name] = make([]int64, 0, capacity)
		case vbt.FloatKind:
			a.floats[name] = make([]float64, 0, capacity)
		case vbt.BoolKind:
			a.bools[name] = make([]bool, 0, capacity)
		case vbt.StringKind:
			a.strings[name] = make([]string, 0, capacity)
		}
		return nil
	})
	return a, nil
}

// Schema returns the schema of this Array
func (a *Array) Schema() vbt.Schema {
	return a.schema
}

// Len returns the number of records in this Array
func (a *Array) Len() int {
	return a.length
}

// Append adds one record, with one value per schema field in field order.
// Ints may be supplied as int or int64. Kind mismatches across all fields
// are accumulated and reported together.
func (a *Array) Append(values ...interface{}) error {
	names := a.schema.FieldNames()
	kinds := a.schema.FieldKinds()
	if len(values) != len(names) {
		return errors.ShapeError{Expected: len(names), Actual: len(values)}
	}
	// validate every value before mutating, so a failed append leaves the
	// array untouched
	var result *multierror.Error
	for i, name := range names {
		var ok bool
		switch kinds[i] {
		case vbt.IntKind:
			switch values[i].(type) {
			case int64, int:
				ok = true
			}
		case vbt.FloatKind:
			_, ok = values[i].(float64)
		case vbt.BoolKind:
			_, ok = values[i].(bool)
		case vbt.StringKind:
			_, ok = values[i].(string)
		}
		if !ok {
			result = multierror.Append(result, errors.SchemaError{Message: fmt.Sprintf("field %s expects a %s, got %T", name, kinds[i], values[i])})
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	for i, name := range names {
		switch kinds[i] {
		case vbt.IntKind:
			if v, isInt := values[i].(int); isInt {
				a.ints[name] = append(a.ints[name], int64(v))
			} else {
				a.ints[name] = append(a.ints[name], values[i].(int64))
			}
		case vbt.FloatKind:
			a.floats[name] = append(a.floats[name], values[i].(float64))
		case vbt.BoolKind:
			a.bools[name] = append(a.bools[name], values[i].(bool))
		case vbt.StringKind:
			a.strings[name] = append(a.strings[name], values[i].(string))
		}
	}
	a.length++
	return nil
}

// Ints returns the backing slice of an int field. The result must be
// treated as read-only.
func (a *Array) Ints(name string) ([]int64, error) {
	vals, ok := a.ints[name]
	if !ok {
		return nil, a.missingField(name, vbt.IntKind)
	}
	return vals, nil
}

// Floats returns the backing slice of a float field. The result must be
// treated as read-only.
func (a *Array) Floats(name string) ([]float64, error) {
	vals, ok := a.floats[name]
	if !ok {
		return nil, a.missingField(name, vbt.FloatKind)
	}
	return vals, nil
}

// Bools returns the backing slice of a bool field. The result must be
// treated as read-only.
func (a *Array) Bools(name string) ([]bool, error) {
	vals, ok := a.bools[name]
	if !ok {
		return nil, a.missingField(name, vbt.BoolKind)
	}
	return vals, nil
}

// Strings returns the backing slice of a string field. The result must be
// treated as read-only.
func (a *Array) Strings(name string) ([]string, error) {
	vals, ok := a.strings[name]
	if !ok {
		return nil, a.missingField(name, vbt.StringKind)
	}
	return vals, nil
}

// Float64Values projects a numeric field to a fresh []float64. Ints convert
// exactly, bools project as 0/1. Fails with a SchemaError for missing or
// non-numeric fields.
func (a *Array) Float64Values(name string) ([]float64, error) {
	f, err := a.schema.GetField(name)
	if err != nil {
		return nil, errors.SchemaError{Message: err.Error()}
	}
	out := make([]float64, a.length)
	switch f.Kind() {
	case vbt.IntKind:
		for i, v := range a.ints[name] {
			out[i] = float64(v)
		}
	case vbt.FloatKind:
		copy(out, a.floats[name])
	case vbt.BoolKind:
		for i, v := range a.bools[name] {
			if v {
				out[i] = 1
			}
		}
	default:
		return nil, errors.SchemaError{Message: fmt.Sprintf("field %s of kind %s is not numeric", name, f.Kind())}
	}
	return out, nil
}

func (a *Array) missingField(name string, kind vbt.FieldKind) error {
	if f, err := a.schema.GetField(name); err == nil {
		return errors.SchemaError{Message: fmt.Sprintf("field %s has kind %s, not %s", name, f.Kind(), kind)}
	}
	return errors.SchemaError{Message: fmt.Sprintf("schema does not contain field with name %s", name)}
}

// Row returns a read-only view of the record at pos
func (a *Array) Row(pos int) vbt.Row {
	return &rowView{arr: a, pos: pos}
}

// Mask returns a new Array containing the records where mask is true, in
// their original relative order. Fails with a ShapeError if the mask length
// does not equal the record count.
func (a *Array) Mask(mask []bool) (*Array, error) {
	if len(mask) != a.length {
		return nil, errors.ShapeError{Expected: a.length, Actual: len(mask)}
	}
	positions := make([]int, 0, a.length)
	for pos, keep := range mask {
		if keep {
			positions = append(positions, pos)
		}
	}
	return a.gather(positions), nil
}

// gather returns a new Array holding the records at the given positions, in
// the given order
func (a *Array) gather(positions []int) *Array {
	out := &Array{
		schema:  a.schema,
		length:  len(positions),
		ints:    make(map[string][]int64),
		floats:  make(map[string][]float64),
		bools:   make(map[string][]bool),
		strings: make(map[string][]string),
	}
	for name, vals := range a.ints {
		next := make([]int64, len(positions))
		for i, pos := range positions {
			next[i] = vals[pos]
		}
		out.ints[name] = next
	}
	for name, vals := range a.floats {
		next := make([]float64, len(positions))
		for i, pos := range positions {
			next[i] = vals[pos]
		}
		out.floats[name] = next
	}
	for name, vals := range a.bools {
		next := make([]bool, len(positions))
		for i, pos := range positions {
			next[i] = vals[pos]
		}
		out.bools[name] = next
	}
	for name, vals := range a.strings {
		next := make([]string, len(positions))
		for i, pos := range positions {
			next[i] = vals[pos]
		}
		out.strings[name] = next
	}
	return out
}

// gatherRenumber gathers the records at positions and overwrites their col
// field with newCols, position for position
func (a *Array) gatherRenumber(positions []int, newCols []int64) *Array {
	out := a.gather(positions)
	cols := make([]int64, len(newCols))
	copy(cols, newCols)
	out.ints[vbt.ColField] = cols
	return out
}

// Concat produces one Array holding the records of all the given arrays in
// argument order. All arrays must share an equivalent schema.
func Concat(arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, errors.SchemaError{Message: "nothing to concatenate"}
	}
	total := 0
	for _, a := range arrays {
		if err := arrays[0].schema.Equals(a.schema); err != nil {
			return nil, errors.SchemaError{Message: err.Error()}
		}
		total += a.length
	}
	out, err := CreateArray(arrays[0].schema, total)
	if err != nil {
		return nil, err
	}
	out.length = total
	for name := range out.ints {
		vals := out.ints[name]
		for _, a := range arrays {
			vals = append(vals, a.ints[name]...)
		}
		out.ints[name] = vals
	}
	for name := range out.floats {
		vals := out.floats[name]
		for _, a := range arrays {
			vals = append(vals, a.floats[name]...)
		}
		out.floats[name] = vals
	}
	for name := range out.bools {
		vals := out.bools[name]
		for _, a := range arrays {
			vals = append(vals, a.bools[name]...)
		}
		out.bools[name] = vals
	}
	for name := range out.strings {
		vals := out.strings[name]
		for _, a := range arrays {
			vals = append(vals, a.strings[name]...)
		}
		out.strings[name] = vals
	}
	return out, nil
}

// Table renders this Array as a label-columned table for inspection, one
// column per schema field
func (a *Array) Table() string {
	var res strings.Builder
	w := tabwriter.NewWriter(&res, 0, 0, 2, ' ', 0)
	names := a.schema.FieldNames()
	fmt.Fprintln(w, strings.Join(names, "\t"))
	for pos := 0; pos < a.length; pos++ {
		row := a.Row(pos)
		cells := make([]string, len(names))
		for i, name := range names {
			v, err := row.Get(name)
			if err != nil {
				cells[i] = "?"
			} else {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	return res.String()
}
