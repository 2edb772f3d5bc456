package kernel

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
)

// Generate draws a population of count random kernels for series of the
// given input length.
//
// Per kernel, independently: the length is uniform over the candidate set,
// the weights are standard normal draws shifted to zero mean, the bias is
// uniform over the bias range, the dilation is an exponentially biased draw
// bounded so the receptive field fits the input, and the padding flag is a
// Bernoulli draw.
//
// The input length must be at least the smallest candidate kernel length.
// Without [WithSeed] or [WithRNG] the population is not reproducible; see
// the package documentation.
func Generate(inputLength, count int, opts ...Option) (*Population, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	minLength := cfg.lengths[0]
	for _, l := range cfg.lengths[1:] {
		if l < minLength {
			minLength = l
		}
	}
	if inputLength < minLength {
		return nil, fmt.Errorf("%w: input length %d is shorter than the smallest candidate kernel length %d",
			ErrInvalidLength, inputLength, minLength)
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	kernels := make([]Kernel, count)
	for i := range kernels {
		kernels[i] = draw(rng, inputLength, &cfg)
	}

	return &Population{kernels: kernels, inputLength: inputLength}, nil
}

// draw produces one random kernel. All randomness flows through rng so a
// seeded source yields a bit-identical kernel sequence.
func draw(rng *rand.Rand, inputLength int, cfg *config) Kernel {
	length := cfg.lengths[rng.IntN(len(cfg.lengths))]

	weights := make([]float64, length)
	for j := range weights {
		weights[j] = rng.NormFloat64()
	}
	// Mean-center so the kernel has zero net gain; decouples the kernel
	// response from the series mean.
	mean := vecmath.Sum(weights) / float64(length)
	for j := range weights {
		weights[j] -= mean
	}

	bias := cfg.biasLow + rng.Float64()*(cfg.biasHigh-cfg.biasLow)

	dilation := 1
	if length > 1 {
		// Largest dilation whose receptive field (length-1)*d + 1 still
		// fits the input.
		dmax := (inputLength - 1) / (length - 1)
		if dmax > 1 {
			u := rng.Float64() * math.Log2(float64(dmax))
			dilation = int(math.Exp2(u))
			if dilation > dmax {
				dilation = dmax
			}
		}
	}

	padding := rng.Float64() < cfg.paddingProb

	return Kernel{
		Weights:  weights,
		Bias:     bias,
		Length:   length,
		Dilation: dilation,
		Padding:  padding,
	}
}
