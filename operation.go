package vectorbt

// MapKernel - A generic function for computing a single scalar value from a
// record. Auxiliary arguments supplied to Records.Map are passed through
// unmodified on every invocation. Any error (or panic) inside the kernel
// aborts the whole mapping operation.
type MapKernel func(row Row, args ...interface{}) (float64, error)

// ReduceKernel - A generic function for reducing the mapped values of a
// single column or group to one scalar. values holds the mapped values
// belonging to the column/group, in record order.
type ReduceKernel func(values []float64) float64
