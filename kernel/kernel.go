package kernel

import (
	"errors"
	"fmt"
)

// Errors returned by population construction and generation.
var (
	ErrInvalidLength = errors.New("kernel: invalid input length")
	ErrInvalidCount  = errors.New("kernel: population size must be >= 1")
	ErrInvalidKernel = errors.New("kernel: invalid kernel parameters")
)

// Kernel is a single random 1-D convolution filter.
//
// Weights holds Length taps. Dilation is the spacing, in series samples,
// between consecutive taps; the kernel's receptive field therefore spans
// (Length-1)*Dilation + 1 samples. Padding selects "same" output mode
// (zero-padded, output as long as the input) over "valid" mode.
//
// Kernels are immutable after generation. The Weights slice of a kernel
// obtained from a [Population] is shared storage and must not be modified.
type Kernel struct {
	Weights  []float64
	Bias     float64
	Length   int
	Dilation int
	Padding  bool
}

// ReceptiveField returns the span of the kernel in input samples,
// (Length-1)*Dilation + 1.
func (k Kernel) ReceptiveField() int {
	return (k.Length-1)*k.Dilation + 1
}

// validate checks the structural invariants of a single kernel.
func (k Kernel) validate() error {
	if k.Length < 1 {
		return fmt.Errorf("%w: length must be >= 1: %d", ErrInvalidKernel, k.Length)
	}
	if len(k.Weights) != k.Length {
		return fmt.Errorf("%w: %d weights for length %d", ErrInvalidKernel, len(k.Weights), k.Length)
	}
	if k.Dilation < 1 {
		return fmt.Errorf("%w: dilation must be >= 1: %d", ErrInvalidKernel, k.Dilation)
	}
	return nil
}

// Population is an ordered, immutable set of kernels generated for a fixed
// input series length. Order is stable: applying the same population twice
// yields the same feature column ordering.
type Population struct {
	kernels     []Kernel
	inputLength int
}

// NewPopulation assembles a population from explicit kernels.
//
// Every kernel must have Length == len(Weights), Length >= 1 and
// Dilation >= 1. The Length field may be left zero, in which case it is
// filled in from len(Weights); a zero Dilation defaults to 1. Kernels are
// copied shallowly: weight slices are shared with the caller, which must
// not modify them afterwards.
func NewPopulation(inputLength int, kernels []Kernel) (*Population, error) {
	if inputLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, inputLength)
	}
	if len(kernels) == 0 {
		return nil, fmt.Errorf("%w: got 0 kernels", ErrInvalidCount)
	}

	ks := make([]Kernel, len(kernels))
	copy(ks, kernels)
	for i := range ks {
		if ks[i].Length == 0 {
			ks[i].Length = len(ks[i].Weights)
		}
		if ks[i].Dilation == 0 {
			ks[i].Dilation = 1
		}
		if err := ks[i].validate(); err != nil {
			return nil, fmt.Errorf("kernel %d: %w", i, err)
		}
	}

	return &Population{kernels: ks, inputLength: inputLength}, nil
}

// Len returns the number of kernels in the population.
func (p *Population) Len() int {
	return len(p.kernels)
}

// InputLength returns the series length the population was generated for.
func (p *Population) InputLength() int {
	return p.inputLength
}

// At returns the i-th kernel. The returned value shares weight storage
// with the population and must be treated as read-only.
func (p *Population) At(i int) Kernel {
	return p.kernels[i]
}
