package transform

// FeaturesPerKernel is the number of feature columns each kernel
// produces: max and ppv.
const FeaturesPerKernel = 2

// Features is the dense per-series, per-kernel feature matrix.
// Rows correspond to input series, columns to kernel statistics:
// column 2k is kernel k's max feature, column 2k+1 its ppv feature.
type Features struct {
	data []float64
	rows int
	cols int
}

// NumRows returns the number of series the features were extracted from.
func (f *Features) NumRows() int {
	return f.rows
}

// NumCols returns the feature count per series, always twice the kernel
// population size.
func (f *Features) NumCols() int {
	return f.cols
}

// Row returns the feature vector of the i-th series as a view into the
// matrix storage.
func (f *Features) Row(i int) []float64 {
	return f.data[i*f.cols : (i+1)*f.cols]
}

// At returns the feature at the given row and column.
func (f *Features) At(row, col int) float64 {
	return f.data[row*f.cols+col]
}

// Max returns the max feature of kernel k for the i-th series.
func (f *Features) Max(i, k int) float64 {
	return f.data[i*f.cols+FeaturesPerKernel*k]
}

// PPV returns the ppv feature of kernel k for the i-th series.
func (f *Features) PPV(i, k int) float64 {
	return f.data[i*f.cols+FeaturesPerKernel*k+1]
}

// Data returns the backing row-major slice, suitable for handing to a
// classifier that wants a flat matrix. The slice is shared with the
// Features value.
func (f *Features) Data() []float64 {
	return f.data
}
