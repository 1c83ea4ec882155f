package records

import (
	"fmt"
	"sync"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/cache"
	"github.com/2lambda123/vectorbt/errors"
	"github.com/2lambda123/vectorbt/internal/util"
	"github.com/2lambda123/vectorbt/logging"
	"github.com/2lambda123/vectorbt/mapped"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// Records exposes methods for working with a fixed-schema record array: a
// sparse representation of the dense logical matrix described by its shape/
// grouping wrapper. A Records instance is immutable; filtering, regrouping
// and selection each produce a new instance sharing nothing mutable with
// the old one.
type Records struct {
	id       string
	wrapper  vbt.Wrapper
	arr      *Array
	idxField string
	policy   cache.Policy

	colIndexOnce sync.Once
	colIndex     *ColIndex
}

// Option configures the creation of a Records instance
type Option func(*createOptions)

type createOptions struct {
	idxField    string
	hasIdxField bool
	policy      cache.Policy
}

// WithIdxField designates the named field as the time-position field. The
// field must exist in the schema.
func WithIdxField(name string) Option {
	return func(o *createOptions) {
		o.idxField = name
		o.hasIdxField = true
	}
}

// WithCachePolicy controls memoization of derived structures, such as the
// column index, for this instance and the instances derived from it
func WithCachePolicy(policy cache.Policy) Option {
	return func(o *createOptions) {
		o.policy = policy
	}
}

// Create builds a Records store from a wrapper and a record array. The
// array must contain an int field named for the column id; a field
// literally named "idx" is adopted as the time-position field unless one is
// designated explicitly. Every col id must fall inside the wrapper's column
// universe.
func Create(wrapper vbt.Wrapper, arr *Array, opts ...Option) (*Records, error) {
	var o createOptions
	for _, opt := range opts {
		opt(&o)
	}
	if arr == nil {
		return nil, errors.SchemaError{Message: "record array is required"}
	}
	colField, err := arr.Schema().GetField(vbt.ColField)
	if err != nil {
		return nil, errors.SchemaError{Message: fmt.Sprintf("record array must contain field %q", vbt.ColField)}
	}
	if colField.Kind() != vbt.IntKind {
		return nil, errors.SchemaError{Message: fmt.Sprintf("field %q must be of kind int, not %s", vbt.ColField, colField.Kind())}
	}
	idxField := ""
	if o.hasIdxField {
		if !arr.Schema().HasField(o.idxField) {
			return nil, errors.SchemaError{Message: fmt.Sprintf("designated time-position field %q does not exist", o.idxField)}
		}
		idxField = o.idxField
	} else if arr.Schema().HasField(vbt.IdxField) {
		idxField = vbt.IdxField
	}
	colIDs, _ := arr.Ints(vbt.ColField)
	numCols := wrapper.NumColumns()
	for pos, c := range colIDs {
		if c < 0 || c >= int64(numCols) {
			return nil, errors.SchemaError{Message: fmt.Sprintf("col id %d at record %d outside [0, %d)", c, pos, numCols)}
		}
	}
	return newRecords(wrapper, arr, idxField, o.policy)
}

// newRecords assembles a Records instance from pre-validated parts
func newRecords(wrapper vbt.Wrapper, arr *Array, idxField string, policy cache.Policy) (*Records, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Records{
		id:       id.String(),
		wrapper:  wrapper,
		arr:      arr,
		idxField: idxField,
		policy:   policy,
	}, nil
}

// ID returns an identifier for this instance, used for log correlation
func (r *Records) ID() string {
	return r.id
}

// Wrapper returns the shape/grouping handle of this store
func (r *Records) Wrapper() vbt.Wrapper {
	return r.wrapper
}

// Array returns the record array of this store. It must be treated as
// read-only.
func (r *Records) Array() *Array {
	return r.arr
}

// IdxField returns the name of the time-position field, or "" when absent
func (r *Records) IdxField() string {
	return r.idxField
}

// Len returns the number of records in this store
func (r *Records) Len() int {
	return r.arr.Len()
}

// CachePolicy returns the cache policy of this instance
func (r *Records) CachePolicy() cache.Policy {
	return r.policy
}

// Table renders the record array as a label-columned table for inspection
func (r *Records) Table() string {
	return r.arr.Table()
}

// ColIndex returns the column index for this store's record array, building
// it on first access. Under an allowing cache policy the index is computed
// at most once per instance; under a disabled policy it is rebuilt on every
// call.
func (r *Records) ColIndex() *ColIndex {
	if !r.policy.Resolve(cache.PolicyEnabled).Allows() {
		return r.buildColIndex()
	}
	r.colIndexOnce.Do(func() {
		r.colIndex = r.buildColIndex()
	})
	return r.colIndex
}

func (r *Records) buildColIndex() *ColIndex {
	colIDs, _ := r.arr.Ints(vbt.ColField)
	// col ids were validated against the wrapper at construction
	ix, _ := BuildColIndex(colIDs, r.wrapper.NumColumns())
	return ix
}

// Regroup returns this store under a new column grouping. The record array
// is untouched; only the wrapper changes. Returns the receiver when the
// grouping is unchanged.
func (r *Records) Regroup(grouping *vbt.Grouping) (*Records, error) {
	if !r.wrapper.IsGroupingChanged(grouping) {
		return r, nil
	}
	if err := r.wrapper.CheckGrouping(grouping); err != nil {
		return nil, err
	}
	newWrapper, err := r.wrapper.WithGrouping(grouping)
	if err != nil {
		return nil, err
	}
	return newRecords(newWrapper, r.arr, r.idxField, r.policy)
}

// CallOption configures a single filtering or mapping call
type CallOption func(*callOptions)

type callOptions struct {
	grouping    *vbt.Grouping
	hasGrouping bool
	idxArr      []int64
	valueMap    map[float64]string
}

// WithGrouping applies a column grouping for this call only, with the same
// semantics as Regroup
func WithGrouping(grouping *vbt.Grouping) CallOption {
	return func(o *callOptions) {
		o.grouping = grouping
		o.hasGrouping = true
	}
}

// WithIdxArr supplies an explicit time-position sequence for the resulting
// mapped array, overriding the store's own time-position field
func WithIdxArr(idxArr []int64) CallOption {
	return func(o *callOptions) {
		o.idxArr = idxArr
	}
}

// WithValueMap attaches a display-label lookup which is passed through to
// the resulting mapped array uninterpreted
func WithValueMap(valueMap map[float64]string) CallOption {
	return func(o *callOptions) {
		o.valueMap = valueMap
	}
}

// regrouped resolves the wrapper to use for a call, applying a per-call
// grouping when one was supplied
func (r *Records) regrouped(o *callOptions) (vbt.Wrapper, error) {
	if !o.hasGrouping || !r.wrapper.IsGroupingChanged(o.grouping) {
		return r.wrapper, nil
	}
	if err := r.wrapper.CheckGrouping(o.grouping); err != nil {
		return nil, err
	}
	return r.wrapper.WithGrouping(o.grouping)
}

// FilterByMask returns a new store containing the records where mask is
// true, in their original relative order. Fails with a ShapeError if the
// mask length does not equal the record count. Masks matching all or no
// records are valid outcomes and are logged, not failed.
func (r *Records) FilterByMask(mask []bool, opts ...CallOption) (*Records, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	wrapper, err := r.regrouped(&o)
	if err != nil {
		return nil, err
	}
	if len(mask) != r.arr.Len() {
		return nil, errors.ShapeError{Expected: r.arr.Len(), Actual: len(mask)}
	}
	all, any := true, false
	for _, keep := range mask {
		all = all && keep
		any = any || keep
	}
	if all {
		logging.Logger().Debug("records already satisfy this mask", zap.String("records_id", r.id))
	} else if !any {
		logging.Logger().Debug("no records satisfy this mask", zap.String("records_id", r.id))
	}
	newArr, err := r.arr.Mask(mask)
	if err != nil {
		return nil, err
	}
	return newRecords(wrapper, newArr, r.idxField, r.policy)
}

// idxArr resolves the time-position sequence for a projection: an explicit
// sequence wins, then the store's own time-position field, then absent
func (r *Records) idxArr(o *callOptions) ([]int64, error) {
	if o.idxArr != nil {
		if len(o.idxArr) != r.arr.Len() {
			return nil, errors.ShapeError{Expected: r.arr.Len(), Actual: len(o.idxArr)}
		}
		return o.idxArr, nil
	}
	if r.idxField == "" {
		return nil, nil
	}
	vals, err := r.arr.Ints(r.idxField)
	if err != nil {
		return nil, err
	}
	cpy := make([]int64, len(vals))
	copy(cpy, vals)
	return cpy, nil
}

// handoff assembles the MappedArray for a projection from already-computed
// values
func (r *Records) handoff(values []float64, o *callOptions) (*mapped.MappedArray, error) {
	wrapper, err := r.regrouped(o)
	if err != nil {
		return nil, err
	}
	idxArr, err := r.idxArr(o)
	if err != nil {
		return nil, err
	}
	colIDs, _ := r.arr.Ints(vbt.ColField)
	colsCpy := make([]int64, len(colIDs))
	copy(colsCpy, colIDs)
	mopts := make([]mapped.Option, 0, 2)
	if idxArr != nil {
		mopts = append(mopts, mapped.WithIdxArr(idxArr))
	}
	if o.valueMap != nil {
		mopts = append(mopts, mapped.WithValueMap(o.valueMap))
	}
	return mapped.Create(wrapper, values, colsCpy, mopts...)
}

// Map applies kernel to every record in order and returns the resulting
// mapped array. args are passed through to the kernel on every invocation.
// The first kernel error or panic aborts the whole call with a KernelError;
// no partial result is ever returned.
func (r *Records) Map(kernel vbt.MapKernel, args []interface{}, opts ...CallOption) (*mapped.MappedArray, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	safe := util.SafeMapKernel(kernel)
	values := make([]float64, r.arr.Len())
	for pos := 0; pos < r.arr.Len(); pos++ {
		v, err := safe(r.arr.Row(pos), args...)
		if err != nil {
			return nil, err
		}
		values[pos] = v
	}
	return r.handoff(values, &o)
}

// MapField projects the named numeric field of every record and returns
// the resulting mapped array. Fails with a SchemaError if the field does
// not exist or is not numeric.
func (r *Records) MapField(field string, opts ...CallOption) (*mapped.MappedArray, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	values, err := r.arr.Float64Values(field)
	if err != nil {
		return nil, err
	}
	return r.handoff(values, &o)
}

// MapArray adopts an externally computed value sequence as a mapped array.
// Fails with a ShapeError if its length does not equal the record count.
func (r *Records) MapArray(values []float64, opts ...CallOption) (*mapped.MappedArray, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(values) != r.arr.Len() {
		return nil, errors.ShapeError{Expected: r.arr.Len(), Actual: len(values)}
	}
	cpy := make([]float64, len(values))
	copy(cpy, values)
	return r.handoff(cpy, &o)
}

// Count reduces each column (or group) to its number of records. An empty
// store yields 0 for every column rather than failing.
func (r *Records) Count(opts ...CallOption) (*mapped.Series, error) {
	m, err := r.MapField(vbt.ColField, opts...)
	if err != nil {
		return nil, err
	}
	return m.Count()
}
