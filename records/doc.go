// Package records implements the columnar record store: a fixed-schema,
// column-major record array tagged with logical column ids, the derived
// column index which makes column-scoped access efficient, and the
// filtering, regrouping, projection and label-based selection operations
// over it. Stores are immutable; every structural change produces a new
// instance.
package records
