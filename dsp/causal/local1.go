package causal

import "github.com/cwbudde/algo-causal/dsp/grid"

// The local transpose operators scatter rather than gather: each
// input sample is scaled by the coefficients at its own index and
// accumulated into earlier output samples. That keeps the transpose
// consistent with the forward operator when coefficients vary from
// sample to sample.

// Apply1 applies this filter to a 1-D array with coefficients from c.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *LocalFilter) Apply1(c CoeffSource1, x, y []float64) {
	checkSameLen1(x, y)
	a := make([]float64, f.m)
	n1 := len(x)
	i1lo := min(f.max1, n1)
	for i1 := n1 - 1; i1 >= i1lo; i1-- {
		c.Get(i1, a)
		yi := a[0] * x[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			yi += a[j] * x[k1]
		}
		y[i1] = yi
	}
	for i1 := i1lo - 1; i1 >= 0; i1-- {
		c.Get(i1, a)
		yi := a[0] * x[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			if 0 <= k1 {
				yi += a[j] * x[k1]
			}
		}
		y[i1] = yi
	}
}

// ApplyTranspose1 applies the transpose of this filter to a 1-D array
// with coefficients from c.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *LocalFilter) ApplyTranspose1(c CoeffSource1, x, y []float64) {
	checkSameLen1(x, y)
	a := make([]float64, f.m)
	n1 := len(x)
	i1lo := min(f.max1, n1)
	for i1 := 0; i1 < i1lo; i1++ {
		c.Get(i1, a)
		xi := x[i1]
		y[i1] = a[0] * xi
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			if 0 <= k1 {
				y[k1] += a[j] * xi
			}
		}
	}
	for i1 := i1lo; i1 < n1; i1++ {
		c.Get(i1, a)
		xi := x[i1]
		y[i1] = a[0] * xi
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			y[k1] += a[j] * xi
		}
	}
}

// ApplyInverse1 applies the inverse of this filter to a 1-D array
// with coefficients from c.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// May be applied in-place; y and x may be the same array.
func (f *LocalFilter) ApplyInverse1(c CoeffSource1, y, x []float64) {
	checkSameLen1(y, x)
	a := make([]float64, f.m)
	n1 := len(y)
	i1lo := min(f.max1, n1)
	for i1 := 0; i1 < i1lo; i1++ {
		c.Get(i1, a)
		xi := 0.0
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			if 0 <= k1 {
				xi += a[j] * x[k1]
			}
		}
		x[i1] = (y[i1] - xi) / a[0]
	}
	for i1 := i1lo; i1 < n1; i1++ {
		c.Get(i1, a)
		xi := 0.0
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			xi += a[j] * x[k1]
		}
		x[i1] = (y[i1] - xi) / a[0]
	}
}

// ApplyInverseTranspose1 applies the inverse transpose of this filter
// to a 1-D array with coefficients from c.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// Cannot be applied in-place; y and x must be distinct arrays.
func (f *LocalFilter) ApplyInverseTranspose1(c CoeffSource1, y, x []float64) {
	checkSameLen1(y, x)
	checkNotAliased1(y, x)
	grid.Zero1(x)
	a := make([]float64, f.m)
	n1 := len(y)
	i1lo := min(f.max1, n1)
	for i1 := n1 - 1; i1 >= i1lo; i1-- {
		c.Get(i1, a)
		xi := (y[i1] - x[i1]) / a[0]
		x[i1] = xi
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			x[k1] += a[j] * xi
		}
	}
	for i1 := i1lo - 1; i1 >= 0; i1-- {
		c.Get(i1, a)
		xi := (y[i1] - x[i1]) / a[0]
		x[i1] = xi
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			if 0 <= k1 {
				x[k1] += a[j] * xi
			}
		}
	}
}
