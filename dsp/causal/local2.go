package causal

import "github.com/cwbudde/algo-causal/dsp/grid"

// Apply2 applies this filter to a 2-D array with coefficients from c.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *LocalFilter) Apply2(c CoeffSource2, x, y [][]float64) {
	checkSameLen2(x, y)
	a := make([]float64, f.m)
	n1 := len(x[0])
	n2 := len(x)
	i1lo := max(0, f.max1)
	i1hi := min(n1, n1+f.min1)
	i2lo := n2
	if i1lo <= i1hi {
		i2lo = min(f.max2, n2)
	}
	for i2 := n2 - 1; i2 >= i2lo; i2-- {
		for i1 := n1 - 1; i1 >= i1hi; i1-- {
			c.Get(i1, i2, a)
			yi := a[0] * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if k1 < n1 {
					yi += a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
		for i1 := i1hi - 1; i1 >= i1lo; i1-- {
			c.Get(i1, i2, a)
			yi := a[0] * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				yi += a[j] * x[k2][k1]
			}
			y[i2][i1] = yi
		}
		for i1 := i1lo - 1; i1 >= 0; i1-- {
			c.Get(i1, i2, a)
			yi := a[0] * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 {
					yi += a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
	}
	for i2 := i2lo - 1; i2 >= 0; i2-- {
		for i1 := n1 - 1; i1 >= 0; i1-- {
			c.Get(i1, i2, a)
			yi := a[0] * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 && k1 < n1 && 0 <= k2 {
					yi += a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
	}
}

// ApplyTranspose2 applies the transpose of this filter to a 2-D array
// with coefficients from c.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *LocalFilter) ApplyTranspose2(c CoeffSource2, x, y [][]float64) {
	checkSameLen2(x, y)
	a := make([]float64, f.m)
	n1 := len(x[0])
	n2 := len(x)
	i1lo := max(0, f.max1)
	i1hi := min(n1, n1+f.min1)
	i2lo := n2
	if i1lo <= i1hi {
		i2lo = min(f.max2, n2)
	}
	for i2 := 0; i2 < i2lo; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			c.Get(i1, i2, a)
			xi := x[i2][i1]
			y[i2][i1] = a[0] * xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 && k1 < n1 && 0 <= k2 {
					y[k2][k1] += a[j] * xi
				}
			}
		}
	}
	for i2 := i2lo; i2 < n2; i2++ {
		for i1 := 0; i1 < i1lo; i1++ {
			c.Get(i1, i2, a)
			xi := x[i2][i1]
			y[i2][i1] = a[0] * xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 {
					y[k2][k1] += a[j] * xi
				}
			}
		}
		for i1 := i1lo; i1 < i1hi; i1++ {
			c.Get(i1, i2, a)
			xi := x[i2][i1]
			y[i2][i1] = a[0] * xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				y[k2][k1] += a[j] * xi
			}
		}
		for i1 := i1hi; i1 < n1; i1++ {
			c.Get(i1, i2, a)
			xi := x[i2][i1]
			y[i2][i1] = a[0] * xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if k1 < n1 {
					y[k2][k1] += a[j] * xi
				}
			}
		}
	}
}

// ApplyInverse2 applies the inverse of this filter to a 2-D array
// with coefficients from c.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// May be applied in-place; y and x may be the same array.
func (f *LocalFilter) ApplyInverse2(c CoeffSource2, y, x [][]float64) {
	checkSameLen2(y, x)
	a := make([]float64, f.m)
	n1 := len(y[0])
	n2 := len(y)
	i1lo := min(f.max1, n1)
	i1hi := min(n1, n1+f.min1)
	i2lo := n2
	if i1lo <= i1hi {
		i2lo = min(f.max2, n2)
	}
	for i2 := 0; i2 < i2lo; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			c.Get(i1, i2, a)
			xi := 0.0
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 && k1 < n1 && 0 <= k2 {
					xi += a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = (y[i2][i1] - xi) / a[0]
		}
	}
	for i2 := i2lo; i2 < n2; i2++ {
		for i1 := 0; i1 < i1lo; i1++ {
			c.Get(i1, i2, a)
			xi := 0.0
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 {
					xi += a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = (y[i2][i1] - xi) / a[0]
		}
		for i1 := i1lo; i1 < i1hi; i1++ {
			c.Get(i1, i2, a)
			xi := 0.0
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				xi += a[j] * x[k2][k1]
			}
			x[i2][i1] = (y[i2][i1] - xi) / a[0]
		}
		for i1 := i1hi; i1 < n1; i1++ {
			c.Get(i1, i2, a)
			xi := 0.0
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if k1 < n1 {
					xi += a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = (y[i2][i1] - xi) / a[0]
		}
	}
}

// ApplyInverseTranspose2 applies the inverse transpose of this filter
// to a 2-D array with coefficients from c.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// Cannot be applied in-place; y and x must be distinct arrays.
func (f *LocalFilter) ApplyInverseTranspose2(c CoeffSource2, y, x [][]float64) {
	checkSameLen2(y, x)
	checkNotAliased2(y, x)
	grid.Zero2(x)
	a := make([]float64, f.m)
	n1 := len(y[0])
	n2 := len(y)
	i1lo := min(f.max1, n1)
	i1hi := min(n1, n1+f.min1)
	i2lo := n2
	if i1lo <= i1hi {
		i2lo = min(f.max2, n2)
	}
	for i2 := n2 - 1; i2 >= i2lo; i2-- {
		for i1 := n1 - 1; i1 >= i1hi; i1-- {
			c.Get(i1, i2, a)
			xi := (y[i2][i1] - x[i2][i1]) / a[0]
			x[i2][i1] = xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if k1 < n1 {
					x[k2][k1] += a[j] * xi
				}
			}
		}
		for i1 := i1hi - 1; i1 >= i1lo; i1-- {
			c.Get(i1, i2, a)
			xi := (y[i2][i1] - x[i2][i1]) / a[0]
			x[i2][i1] = xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				x[k2][k1] += a[j] * xi
			}
		}
		for i1 := i1lo - 1; i1 >= 0; i1-- {
			c.Get(i1, i2, a)
			xi := (y[i2][i1] - x[i2][i1]) / a[0]
			x[i2][i1] = xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 {
					x[k2][k1] += a[j] * xi
				}
			}
		}
	}
	for i2 := i2lo - 1; i2 >= 0; i2-- {
		for i1 := n1 - 1; i1 >= 0; i1-- {
			c.Get(i1, i2, a)
			xi := (y[i2][i1] - x[i2][i1]) / a[0]
			x[i2][i1] = xi
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 && k1 < n1 && 0 <= k2 {
					x[k2][k1] += a[j] * xi
				}
			}
		}
	}
}
