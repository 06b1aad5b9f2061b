package causal

// CoeffSource1 supplies filter coefficients indexed in 1 dimension.
// Coefficients may vary with sample index and are fetched through
// this interface for every output sample computed. Get must fill a,
// whose length equals the number of lags; a[0] must be non-zero
// wherever an inverse operator is applied.
type CoeffSource1 interface {
	Get(i1 int, a []float64)
}

// CoeffSource2 supplies filter coefficients indexed in 2 dimensions.
type CoeffSource2 interface {
	Get(i1, i2 int, a []float64)
}

// CoeffSource3 supplies filter coefficients indexed in 3 dimensions.
type CoeffSource3 interface {
	Get(i1, i2, i3 int, a []float64)
}

// ConstCoeffs1 adapts a fixed coefficient slice to [CoeffSource1],
// which makes a [LocalFilter] behave like a [Filter] with those
// coefficients.
type ConstCoeffs1 []float64

// Get fills a with the fixed coefficients.
func (c ConstCoeffs1) Get(i1 int, a []float64) { copy(a, c) }

// ConstCoeffs2 adapts a fixed coefficient slice to [CoeffSource2].
type ConstCoeffs2 []float64

// Get fills a with the fixed coefficients.
func (c ConstCoeffs2) Get(i1, i2 int, a []float64) { copy(a, c) }

// ConstCoeffs3 adapts a fixed coefficient slice to [CoeffSource3].
type ConstCoeffs3 []float64

// Get fills a with the fixed coefficients.
func (c ConstCoeffs3) Get(i1, i2, i3 int, a []float64) { copy(a, c) }

// LocalFilter is a causal filter whose coefficients vary from sample
// to sample. It carries only the lag tuples; the coefficients come
// from a coefficient source passed to each operator.
//
// All operators except the inverse transpose may be applied in-place.
// The inverse transpose scatters updates ahead of the sample being
// solved, so its input and output must be distinct arrays.
type LocalFilter struct {
	m                int
	lag1, lag2, lag3 []int
	min1, max1       int
	min2, max2       int
	min3, max3       int
}

// NewLocal1 constructs a 1-D local causal filter for the specified
// lags. The lag constraints match [New1].
func NewLocal1(lag1 []int) (*LocalFilter, error) {
	if err := checkLags1(lag1, len(lag1)); err != nil {
		return nil, err
	}
	f := &LocalFilter{m: len(lag1)}
	f.lag1 = copyInts(lag1)
	f.lag2 = make([]int, f.m)
	f.lag3 = make([]int, f.m)
	f.min1, f.max1 = minMax(lag1)
	return f, nil
}

// NewLocal2 constructs a 2-D local causal filter for the specified
// lags. The lag constraints match [New2].
func NewLocal2(lag1, lag2 []int) (*LocalFilter, error) {
	if err := checkLags2(lag1, lag2, len(lag1)); err != nil {
		return nil, err
	}
	f := &LocalFilter{m: len(lag1)}
	f.lag1 = copyInts(lag1)
	f.lag2 = copyInts(lag2)
	f.lag3 = make([]int, f.m)
	f.min1, f.max1 = minMax(lag1)
	f.min2, f.max2 = minMax(lag2)
	return f, nil
}

// NewLocal3 constructs a 3-D local causal filter for the specified
// lags. The lag constraints match [New3].
func NewLocal3(lag1, lag2, lag3 []int) (*LocalFilter, error) {
	if err := checkLags3(lag1, lag2, lag3, len(lag1)); err != nil {
		return nil, err
	}
	f := &LocalFilter{m: len(lag1)}
	f.lag1 = copyInts(lag1)
	f.lag2 = copyInts(lag2)
	f.lag3 = copyInts(lag3)
	f.min1, f.max1 = minMax(lag1)
	f.min2, f.max2 = minMax(lag2)
	f.min3, f.max3 = minMax(lag3)
	return f, nil
}

// Lag1 returns a copy of the lags in the 1st dimension.
func (f *LocalFilter) Lag1() []int { return copyInts(f.lag1) }

// Lag2 returns a copy of the lags in the 2nd dimension.
func (f *LocalFilter) Lag2() []int { return copyInts(f.lag2) }

// Lag3 returns a copy of the lags in the 3rd dimension.
func (f *LocalFilter) Lag3() []int { return copyInts(f.lag3) }

func checkNotAliased1(x, y []float64) {
	if len(x) > 0 && len(y) > 0 && &x[0] == &y[0] {
		panic("causal: inverse transpose cannot be applied in-place")
	}
}

func checkNotAliased2(x, y [][]float64) {
	if len(x) > 0 && len(y) > 0 {
		checkNotAliased1(x[0], y[0])
	}
}

func checkNotAliased3(x, y [][][]float64) {
	if len(x) > 0 && len(y) > 0 {
		checkNotAliased2(x[0], y[0])
	}
}
