// Package series provides the batch container consumed by the transform
// package, plus per-series normalization helpers.
//
// A [Batch] holds a fixed number of equal-length series in one contiguous
// row-major float64 slice. Heterogeneous-length collections must be
// truncated or padded by the caller before batching; [FromRows] rejects
// ragged input.
//
// # Usage
//
//	batch, err := series.FromRows(rows)
//	batch.NormalizeRows()
//
// # Normalization
//
// Convolution features degrade (without erroring) when series are not
// z-normalized, because kernel biases are drawn on a unit scale.
// [Batch.NormalizeRows] brings every series to zero mean and unit
// standard deviation; the transform package itself never normalizes or
// checks normalization.
package series
