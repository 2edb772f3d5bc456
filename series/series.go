package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by batch construction.
var (
	ErrBadShape      = errors.New("series: data length does not match dimensions")
	ErrInvalidLength = errors.New("series: series length must be >= 1")
	ErrRaggedRows    = errors.New("series: rows have different lengths")
)

// Batch is a fixed-shape collection of equal-length series, stored
// row-major in one contiguous slice.
type Batch struct {
	data      []float64
	numSeries int
	length    int
}

// NewBatch wraps data as a batch of numSeries rows of the given length,
// without copying. Mutations to data remain visible through the batch.
func NewBatch(data []float64, numSeries, length int) (*Batch, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if numSeries < 0 {
		return nil, fmt.Errorf("%w: negative series count %d", ErrBadShape, numSeries)
	}
	if len(data) != numSeries*length {
		return nil, fmt.Errorf("%w: %d values for %d x %d", ErrBadShape, len(data), numSeries, length)
	}
	return &Batch{data: data, numSeries: numSeries, length: length}, nil
}

// FromRows copies rows into a new contiguous batch. All rows must share
// the same nonzero length. An empty rows slice yields an empty batch of
// length 0, valid only for zero-row extraction.
func FromRows(rows [][]float64) (*Batch, error) {
	if len(rows) == 0 {
		return &Batch{}, nil
	}

	length := len(rows[0])
	if length < 1 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrInvalidLength)
	}

	data := make([]float64, 0, len(rows)*length)
	for i, row := range rows {
		if len(row) != length {
			return nil, fmt.Errorf("%w: row %d has length %d, row 0 has %d", ErrRaggedRows, i, len(row), length)
		}
		data = append(data, row...)
	}

	return &Batch{data: data, numSeries: len(rows), length: length}, nil
}

// NumSeries returns the number of series in the batch.
func (b *Batch) NumSeries() int {
	return b.numSeries
}

// Length returns the per-series sample count.
func (b *Batch) Length() int {
	return b.length
}

// Row returns the i-th series as a view into the batch storage.
func (b *Batch) Row(i int) []float64 {
	return b.data[i*b.length : (i+1)*b.length]
}

// Data returns the backing row-major slice.
func (b *Batch) Data() []float64 {
	return b.data
}

// NormalizeRows z-normalizes every series in place: zero mean, unit
// standard deviation (population convention). Constant series become
// all-zero rather than dividing by zero.
func (b *Batch) NormalizeRows() {
	for i := 0; i < b.numSeries; i++ {
		normalize(b.Row(i))
	}
}

// normalize z-normalizes one series in place.
func normalize(x []float64) {
	n := float64(len(x))
	mean := vecmath.Sum(x) / n

	var sumSq float64
	for _, v := range x {
		d := v - mean
		sumSq += d * d
	}

	std := math.Sqrt(sumSq / n)
	if std == 0 {
		for i := range x {
			x[i] = 0
		}
		return
	}

	inv := 1 / std
	for i := range x {
		x[i] = (x[i] - mean) * inv
	}
}
