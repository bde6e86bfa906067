// Package matrix provides the row-major Dense storage used for sampled
// parameter designs.
//
// The matrix package provides:
//
//   - Dense: an r×c float64 matrix in a flat, cache-friendly buffer with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Row access without copying the whole matrix, for evaluating one
//     sampled parameter vector at a time.
//   - Column statistics (ColumnMeans, ColumnVariances) for summarizing a
//     design or a block of model outputs.
//
// Set rejects NaN and ±Inf: a sampled design must stay finite.
package matrix
