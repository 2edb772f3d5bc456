package transform

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-rocket/kernel"
	"github.com/cwbudde/algo-rocket/series"
)

func benchBatch(b *testing.B, numSeries, length int) *series.Batch {
	b.Helper()
	data := make([]float64, numSeries*length)
	for i := range data {
		data[i] = math.Sin(float64(i) * 0.17)
	}
	batch, err := series.NewBatch(data, numSeries, length)
	if err != nil {
		b.Fatal(err)
	}
	return batch
}

func BenchmarkApply(b *testing.B) {
	sizes := []struct {
		numSeries int
		length    int
		kernels   int
	}{
		{16, 150, 1000},
		{16, 150, 10000},
		{128, 150, 1000},
		{16, 1000, 1000},
	}

	for _, size := range sizes {
		pop, err := kernel.Generate(size.length, size.kernels, kernel.WithSeed(42))
		if err != nil {
			b.Fatal(err)
		}
		batch := benchBatch(b, size.numSeries, size.length)

		b.Run(fmt.Sprintf("series=%d_len=%d_kernels=%d", size.numSeries, size.length, size.kernels), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Apply(batch, pop); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkApplySerial(b *testing.B) {
	pop, err := kernel.Generate(150, 1000, kernel.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	batch := benchBatch(b, 16, 150)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Apply(batch, pop, WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}
