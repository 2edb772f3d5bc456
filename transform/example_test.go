package transform_test

import (
	"fmt"

	"github.com/cwbudde/algo-rocket/kernel"
	"github.com/cwbudde/algo-rocket/series"
	"github.com/cwbudde/algo-rocket/transform"
)

func ExampleApply() {
	// A hand-built population keeps the output deterministic: one
	// first-difference kernel applied to a rising series.
	pop, err := kernel.NewPopulation(8, []kernel.Kernel{
		{Weights: []float64{1, -1}},
	})
	if err != nil {
		panic(err)
	}

	batch, err := series.FromRows([][]float64{
		{1, 2, 3, 4, 5, 6, 7, 8},
	})
	if err != nil {
		panic(err)
	}

	features, err := transform.Apply(batch, pop)
	if err != nil {
		panic(err)
	}

	// Every difference is -1, so the max is -1 and no output is positive.
	fmt.Printf("Shape: %d x %d\n", features.NumRows(), features.NumCols())
	fmt.Printf("max: %g, ppv: %g\n", features.Max(0, 0), features.PPV(0, 0))

	// Output:
	// Shape: 1 x 2
	// max: -1, ppv: 0
}

func ExampleTransformer() {
	// Train and test splits must share one population; a Transformer
	// validates it once and extracts from both.
	pop, err := kernel.Generate(16, 100, kernel.WithSeed(42))
	if err != nil {
		panic(err)
	}

	tr, err := transform.New(pop, transform.WithWorkers(4))
	if err != nil {
		panic(err)
	}

	train := make([][]float64, 6)
	test := make([][]float64, 2)
	for i := range train {
		train[i] = make([]float64, 16)
	}
	for i := range test {
		test[i] = make([]float64, 16)
	}

	trainBatch, _ := series.FromRows(train)
	testBatch, _ := series.FromRows(test)

	trainFeatures, err := tr.Process(trainBatch)
	if err != nil {
		panic(err)
	}
	testFeatures, err := tr.Process(testBatch)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Train: %d x %d\n", trainFeatures.NumRows(), trainFeatures.NumCols())
	fmt.Printf("Test:  %d x %d\n", testFeatures.NumRows(), testFeatures.NumCols())

	// Output:
	// Train: 6 x 200
	// Test:  2 x 200
}
