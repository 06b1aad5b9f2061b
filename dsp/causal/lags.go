package causal

import (
	"errors"
	"fmt"
)

// Errors returned by constructors and factorization.
var (
	// ErrBadLagTable reports lag arrays that violate the causality
	// constraint or disagree in length.
	ErrBadLagTable = errors.New("causal: bad lag table")

	// ErrEvenExtent reports an autocorrelation whose extent is even in
	// some dimension; the zero-lag must be a middle sample.
	ErrEvenExtent = errors.New("causal: autocorrelation extent must be odd")

	// ErrNotConverged reports Wilson-Burg iterations exhausted before
	// all coefficients settled within tolerance.
	ErrNotConverged = errors.New("causal: Wilson-Burg iterations did not converge")

	// ErrDegenerate reports a vanished zero-lag coefficient, which
	// makes the filter non-invertible.
	ErrDegenerate = errors.New("causal: zero-lag coefficient is zero")
)

// Filter is a causal filter with one coefficient per lag.
//
// The lag tuples and their count are fixed at construction; the
// coefficients are replaced by Wilson-Burg factorization. A filter
// constructed for one dimensionality also applies in higher
// dimensions, with the unspecified lags treated as zero.
type Filter struct {
	m                int // number of lags and coefficients
	lag1, lag2, lag3 []int
	a                []float64
	a0, a0i          float64 // a[0] and 1/a[0]
	min1, max1       int
	min2, max2       int
	min3, max3       int
}

// New1 constructs a 1-D unit-impulse filter for the specified lags.
//
// lag1[0] must be zero, and all other lags must be positive. The
// coefficients are initialized to a unit impulse: a[0]=1, rest 0.
func New1(lag1 []int) (*Filter, error) {
	return New1Coeffs(lag1, impulse(len(lag1)))
}

// New1Coeffs constructs a 1-D causal filter with the specified lags
// and coefficients.
func New1Coeffs(lag1 []int, a []float64) (*Filter, error) {
	f := &Filter{}
	if err := f.initLags1(lag1, len(a)); err != nil {
		return nil, err
	}
	f.initCoeffs(a)
	return f, nil
}

// New2 constructs a 2-D unit-impulse filter for the specified lags.
//
// For j=0 only, lag1[j] and lag2[j] are zero. All lag2[j] must be
// non-negative, and if lag2[j] is zero then lag1[j] must be positive.
func New2(lag1, lag2 []int) (*Filter, error) {
	return New2Coeffs(lag1, lag2, impulse(len(lag1)))
}

// New2Coeffs constructs a 2-D causal filter with the specified lags
// and coefficients.
func New2Coeffs(lag1, lag2 []int, a []float64) (*Filter, error) {
	f := &Filter{}
	if err := f.initLags2(lag1, lag2, len(a)); err != nil {
		return nil, err
	}
	f.initCoeffs(a)
	return f, nil
}

// New3 constructs a 3-D unit-impulse filter for the specified lags.
//
// For j=0 only, all three lags are zero. All lag3[j] must be
// non-negative. If lag3[j] is zero then lag2[j] must be non-negative,
// and if both are zero then lag1[j] must be positive.
func New3(lag1, lag2, lag3 []int) (*Filter, error) {
	return New3Coeffs(lag1, lag2, lag3, impulse(len(lag1)))
}

// New3Coeffs constructs a 3-D causal filter with the specified lags
// and coefficients.
func New3Coeffs(lag1, lag2, lag3 []int, a []float64) (*Filter, error) {
	f := &Filter{}
	if err := f.initLags3(lag1, lag2, lag3, len(a)); err != nil {
		return nil, err
	}
	f.initCoeffs(a)
	return f, nil
}

// Lag1 returns a copy of the lags in the 1st dimension.
func (f *Filter) Lag1() []int { return copyInts(f.lag1) }

// Lag2 returns a copy of the lags in the 2nd dimension.
func (f *Filter) Lag2() []int { return copyInts(f.lag2) }

// Lag3 returns a copy of the lags in the 3rd dimension.
func (f *Filter) Lag3() []int { return copyInts(f.lag3) }

// Coeffs returns a copy of the filter coefficients.
func (f *Filter) Coeffs() []float64 {
	a := make([]float64, len(f.a))
	copy(a, f.a)
	return a
}

func (f *Filter) initLags1(lag1 []int, na int) error {
	if err := checkLags1(lag1, na); err != nil {
		return err
	}
	m := len(lag1)
	f.m = m
	f.lag1 = copyInts(lag1)
	f.lag2 = make([]int, m)
	f.lag3 = make([]int, m)
	f.min1, f.max1 = minMax(lag1)
	return nil
}

func (f *Filter) initLags2(lag1, lag2 []int, na int) error {
	if err := checkLags2(lag1, lag2, na); err != nil {
		return err
	}
	m := len(lag1)
	f.m = m
	f.lag1 = copyInts(lag1)
	f.lag2 = copyInts(lag2)
	f.lag3 = make([]int, m)
	f.min1, f.max1 = minMax(lag1)
	f.min2, f.max2 = minMax(lag2)
	return nil
}

func (f *Filter) initLags3(lag1, lag2, lag3 []int, na int) error {
	if err := checkLags3(lag1, lag2, lag3, na); err != nil {
		return err
	}
	m := len(lag1)
	f.m = m
	f.lag1 = copyInts(lag1)
	f.lag2 = copyInts(lag2)
	f.lag3 = copyInts(lag3)
	f.min1, f.max1 = minMax(lag1)
	f.min2, f.max2 = minMax(lag2)
	f.min3, f.max3 = minMax(lag3)
	return nil
}

func (f *Filter) initCoeffs(a []float64) {
	f.a = make([]float64, len(a))
	copy(f.a, a)
	f.a0 = a[0]
	f.a0i = 1.0 / a[0]
}

func checkLags1(lag1 []int, na int) error {
	if len(lag1) == 0 {
		return fmt.Errorf("%w: no lags", ErrBadLagTable)
	}
	if len(lag1) != na {
		return fmt.Errorf("%w: %d lags but %d coefficients", ErrBadLagTable, len(lag1), na)
	}
	if lag1[0] != 0 {
		return fmt.Errorf("%w: lag1[0] must be 0", ErrBadLagTable)
	}
	for j := 1; j < len(lag1); j++ {
		if lag1[j] <= 0 {
			return fmt.Errorf("%w: lag1[%d] must be > 0", ErrBadLagTable, j)
		}
	}
	return nil
}

func checkLags2(lag1, lag2 []int, na int) error {
	if len(lag1) == 0 {
		return fmt.Errorf("%w: no lags", ErrBadLagTable)
	}
	if len(lag1) != na || len(lag2) != na {
		return fmt.Errorf("%w: lag and coefficient lengths disagree", ErrBadLagTable)
	}
	if lag1[0] != 0 || lag2[0] != 0 {
		return fmt.Errorf("%w: lags at j=0 must be 0", ErrBadLagTable)
	}
	for j := 1; j < na; j++ {
		if lag2[j] < 0 {
			return fmt.Errorf("%w: lag2[%d] must be >= 0", ErrBadLagTable, j)
		}
		if lag2[j] == 0 && lag1[j] <= 0 {
			return fmt.Errorf("%w: lag1[%d] must be > 0 when lag2[%d] is 0", ErrBadLagTable, j, j)
		}
	}
	return nil
}

func checkLags3(lag1, lag2, lag3 []int, na int) error {
	if len(lag1) == 0 {
		return fmt.Errorf("%w: no lags", ErrBadLagTable)
	}
	if len(lag1) != na || len(lag2) != na || len(lag3) != na {
		return fmt.Errorf("%w: lag and coefficient lengths disagree", ErrBadLagTable)
	}
	if lag1[0] != 0 || lag2[0] != 0 || lag3[0] != 0 {
		return fmt.Errorf("%w: lags at j=0 must be 0", ErrBadLagTable)
	}
	for j := 1; j < na; j++ {
		if lag3[j] < 0 {
			return fmt.Errorf("%w: lag3[%d] must be >= 0", ErrBadLagTable, j)
		}
		if lag3[j] == 0 {
			if lag2[j] < 0 {
				return fmt.Errorf("%w: lag2[%d] must be >= 0 when lag3[%d] is 0", ErrBadLagTable, j, j)
			}
			if lag2[j] == 0 && lag1[j] <= 0 {
				return fmt.Errorf("%w: lag1[%d] must be > 0 when lag2[%d] and lag3[%d] are 0",
					ErrBadLagTable, j, j, j)
			}
		}
	}
	return nil
}

func impulse(n int) []float64 {
	a := make([]float64, n)
	if n > 0 {
		a[0] = 1
	}
	return a
}

func copyInts(x []int) []int {
	y := make([]int, len(x))
	copy(y, x)
	return y
}

func minMax(x []int) (lo, hi int) {
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func checkSameLen1(x, y []float64) {
	if len(x) != len(y) {
		panic("causal: source and destination lengths differ")
	}
}

func checkSameLen2(x, y [][]float64) {
	if len(x) != len(y) || len(x) > 0 && len(x[0]) != len(y[0]) {
		panic("causal: source and destination extents differ")
	}
}

func checkSameLen3(x, y [][][]float64) {
	if len(x) != len(y) {
		panic("causal: source and destination extents differ")
	}
	if len(x) > 0 {
		checkSameLen2(x[0], y[0])
	}
}
