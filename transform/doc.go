// Package transform applies a random kernel population to a batch of
// series, producing the dense feature matrix consumed by a downstream
// linear classifier.
//
// Every kernel is slid across every series at stride 1 with its dilation
// spacing, accumulating bias + Σ w[j]·x[p+j·d] per position. Kernels with
// the padding flag use "same" mode: taps that fall outside the series
// contribute zero and the convolution output is as long as the input.
// Each kernel's output sequence is pooled into two scalars: the maximum,
// and the proportion of strictly positive values (ppv). Kernel k owns
// feature columns 2k (max) and 2k+1 (ppv).
//
// # Usage
//
// One-shot:
//
//	features, err := transform.Apply(batch, pop)
//
// When the same population is applied to several batches (train and test
// splits must share one population), create a reusable [Transformer]:
//
//	tr, err := transform.New(pop, transform.WithWorkers(8))
//	train, err := tr.Process(trainBatch)
//	test, err := tr.Process(testBatch)
//
// # Parallelism
//
// Feature extraction is data-parallel across series: rows are partitioned
// across workers (default runtime.NumCPU), each writing a disjoint region
// of the output matrix. Results are bit-identical for any worker count.
// With [WithContext], cancellation is honored between rows; a cancelled
// extraction returns the context error and no matrix, never a partially
// filled one.
package transform
