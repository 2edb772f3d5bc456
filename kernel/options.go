package kernel

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultPaddingProbability = 0.5
	defaultBiasLow            = -1.0
	defaultBiasHigh           = 1.0
)

// defaultCandidateLengths is the classic {7, 9, 11} candidate set.
var defaultCandidateLengths = []int{7, 9, 11}

type config struct {
	rng         *rand.Rand
	lengths     []int
	paddingProb float64
	biasLow     float64
	biasHigh    float64
}

func defaultConfig() config {
	return config{
		lengths:     defaultCandidateLengths,
		paddingProb: defaultPaddingProbability,
		biasLow:     defaultBiasLow,
		biasHigh:    defaultBiasHigh,
	}
}

// Option configures population generation.
type Option func(*config) error

// WithSeed makes generation deterministic: the same seed and arguments
// always produce a bit-identical population.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.rng = rand.New(rand.NewPCG(seed, seed))
		return nil
	}
}

// WithRNG sets an explicit random source, e.g. a deterministic substitute
// for testing. Overrides [WithSeed].
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		if rng == nil {
			return fmt.Errorf("%w: nil RNG", ErrInvalidKernel)
		}
		cfg.rng = rng
		return nil
	}
}

// WithCandidateLengths sets the kernel length candidate set
// (default {7, 9, 11}). Each length must be >= 1.
func WithCandidateLengths(lengths ...int) Option {
	return func(cfg *config) error {
		if len(lengths) == 0 {
			return fmt.Errorf("%w: empty candidate length set", ErrInvalidKernel)
		}
		for _, l := range lengths {
			if l < 1 {
				return fmt.Errorf("%w: candidate length must be >= 1: %d", ErrInvalidKernel, l)
			}
		}
		cfg.lengths = append([]int(nil), lengths...)
		return nil
	}
}

// WithPaddingProbability sets the probability that a kernel uses "same"
// (zero-padded) convolution (default 0.5). Must be in [0, 1].
func WithPaddingProbability(p float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: padding probability must be in [0, 1]: %f", ErrInvalidKernel, p)
		}
		cfg.paddingProb = p
		return nil
	}
}

// WithBiasRange sets the uniform bias draw range (default [-1, 1]).
func WithBiasRange(lo, hi float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
			return fmt.Errorf("%w: bias range must be finite with lo <= hi: [%f, %f]", ErrInvalidKernel, lo, hi)
		}
		cfg.biasLow = lo
		cfg.biasHigh = hi
		return nil
	}
}
