// Package vectorbt contains the core types of a columnar record store for
// sparse, attribute-rich event data. Records are rows of a fixed schema,
// each tagged with the logical column (entity) it belongs to and, optionally,
// a position along the time axis. This root package defines the types which
// are employed during regular use of the store, as well as in its extension,
// and is an overview of the key concepts: schemas, rows, the shape/grouping
// wrapper, selections and map kernels.
package vectorbt
