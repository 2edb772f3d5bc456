// Package kernel generates populations of random 1-D convolution kernels
// for time-series feature extraction.
//
// Each kernel carries a short tap vector drawn from a standard normal
// distribution and mean-centered to zero net gain, a uniform bias, a
// dilation factor, and a padding flag. A [Population] bundles a fixed
// number of such kernels together with the series length they were
// generated for, and is applied to data by the transform package.
//
// # Usage
//
// Generate a population for series of length 150:
//
//	pop, err := kernel.Generate(150, 10000, kernel.WithSeed(42))
//
// The same population must be used for both training and test feature
// extraction; persist it between the two with [Population.MarshalBinary]
// and [Population.UnmarshalBinary].
//
// Custom kernels (for testing or hand-tuned filters) can be assembled
// directly:
//
//	pop, err := kernel.NewPopulation(8, []kernel.Kernel{
//		{Weights: []float64{1, -1}, Dilation: 1},
//	})
//
// # Determinism
//
// With [WithSeed] or [WithRNG], generation is fully deterministic: the
// same seed and arguments produce a bit-identical population. Without
// either option the generator is seeded from process entropy and the
// population is NOT reproducible across runs.
//
// # Dilation distribution
//
// Dilation is drawn as floor(2^u) with u uniform on [0, log2(dmax)],
// where dmax is the largest dilation whose receptive field still fits
// the input length. This biases the population toward small dilations
// while still reaching dmax. The shape of this distribution is a
// heuristic from the reference algorithm; only its bounds and its bias
// toward 1 are contractual.
package kernel
