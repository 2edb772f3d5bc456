package transform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rocket/kernel"
	"github.com/cwbudde/algo-rocket/series"
)

// Errors returned by feature extraction.
var (
	ErrNilPopulation  = errors.New("transform: nil kernel population")
	ErrNilBatch       = errors.New("transform: nil series batch")
	ErrShapeMismatch  = errors.New("transform: batch length does not match population input length")
	ErrKernelTooLarge = errors.New("transform: kernel receptive field exceeds series length")
)

// Transformer applies one kernel population to any number of batches.
// It is safe for concurrent use; Process never mutates the population or
// the batch.
type Transformer struct {
	pop     *kernel.Population
	cfg     config
	scratch sync.Pool // *[]float64 convolution output buffers
}

// New validates the population once and returns a reusable Transformer.
func New(pop *kernel.Population, opts ...Option) (*Transformer, error) {
	if pop == nil {
		return nil, ErrNilPopulation
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	inputLength := pop.InputLength()
	t := &Transformer{pop: pop, cfg: cfg}
	t.scratch.New = func() any {
		s := make([]float64, inputLength)
		return &s
	}

	return t, nil
}

// Apply extracts features from batch using pop in one shot. For repeated
// extraction with the same population, create a [Transformer] instead.
func Apply(batch *series.Batch, pop *kernel.Population, opts ...Option) (*Features, error) {
	t, err := New(pop, opts...)
	if err != nil {
		return nil, err
	}
	return t.Process(batch)
}

// Process extracts the feature matrix for batch. The result has one row
// per series and two columns per kernel. A zero-series batch yields a
// zero-row matrix. On any error, no matrix is returned.
func (t *Transformer) Process(batch *series.Batch) (*Features, error) {
	if batch == nil {
		return nil, ErrNilBatch
	}

	rows := batch.NumSeries()
	cols := FeaturesPerKernel * t.pop.Len()
	if rows == 0 {
		return &Features{data: []float64{}, rows: 0, cols: cols}, nil
	}

	inputLength := batch.Length()
	if inputLength != t.pop.InputLength() {
		return nil, fmt.Errorf("%w: batch length %d, population input length %d",
			ErrShapeMismatch, inputLength, t.pop.InputLength())
	}

	// The generator guarantees receptive fields fit the input; custom
	// populations may not.
	for i := 0; i < t.pop.Len(); i++ {
		k := t.pop.At(i)
		if !k.Padding && k.ReceptiveField() > inputLength {
			return nil, fmt.Errorf("%w: kernel %d spans %d samples, series have %d",
				ErrKernelTooLarge, i, k.ReceptiveField(), inputLength)
		}
	}

	out := make([]float64, rows*cols)
	if err := t.run(batch, out, rows, cols); err != nil {
		return nil, err
	}

	return &Features{data: out, rows: rows, cols: cols}, nil
}

// extractRow fills one feature-matrix row from one series. conv is a
// scratch buffer of at least the series length.
func (t *Transformer) extractRow(dst, x, conv []float64) {
	for i := 0; i < t.pop.Len(); i++ {
		k := t.pop.At(i)
		n := convolveTo(conv, x, k)
		maxv, ppv := pool(conv[:n])
		dst[FeaturesPerKernel*i] = maxv
		dst[FeaturesPerKernel*i+1] = ppv
	}
}

// convolveTo computes the dilated convolution of x with k at stride 1,
// writing the output sequence to dst and returning its length.
//
// In valid mode the output has len(x) - (len-1)*dilation positions, each a
// full window. In same mode the output has len(x) positions; taps landing
// outside x contribute zero, implemented by clamping the tap range rather
// than materializing a padded copy.
func convolveTo(dst, x []float64, k kernel.Kernel) int {
	w := k.Weights
	d := k.Dilation
	bias := k.Bias

	if !k.Padding {
		n := len(x) - (len(w)-1)*d
		if d == 1 {
			for p := 0; p < n; p++ {
				dst[p] = bias + vecmath.DotProduct(w, x[p:p+len(w)])
			}
			return n
		}
		for p := 0; p < n; p++ {
			acc := bias
			idx := p
			for j := 0; j < len(w); j++ {
				acc += w[j] * x[idx]
				idx += d
			}
			dst[p] = acc
		}
		return n
	}

	n := len(x)
	pad := (len(w) - 1) * d / 2
	for p := 0; p < n; p++ {
		start := p - pad

		// Clamp the tap index range [jLo, jHi] so start + j*d stays
		// inside x; everything outside is zero padding.
		jLo := 0
		if start < 0 {
			jLo = (-start + d - 1) / d
		}
		jHi := len(w) - 1
		if last := start + jHi*d; last >= n {
			jHi = (n - 1 - start) / d
		}

		acc := bias
		idx := start + jLo*d
		for j := jLo; j <= jHi; j++ {
			acc += w[j] * x[idx]
			idx += d
		}
		dst[p] = acc
	}
	return n
}

// pool reduces one convolution output sequence to its two summary
// statistics: the maximum, and the proportion of values strictly
// greater than zero.
func pool(conv []float64) (maxv, ppv float64) {
	maxv = conv[0]
	positive := 0
	for _, v := range conv {
		if v > maxv {
			maxv = v
		}
		if v > 0 {
			positive++
		}
	}
	return maxv, float64(positive) / float64(len(conv))
}
