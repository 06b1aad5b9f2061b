package causal

import "github.com/cwbudde/algo-causal/dsp/grid"

// Apply3 applies this filter to a 3-D array with coefficients from c.
// Uses lag1, lag2, and lag3.
//
// May be applied in-place; x and y may be the same array.
func (f *LocalFilter) Apply3(c CoeffSource3, x, y [][][]float64) {
	checkSameLen3(x, y)
	a := make([]float64, f.m)
	n1 := len(x[0][0])
	n2 := len(x[0])
	n3 := len(x)
	i1lo := max(0, f.max1)
	i1hi := min(n1, n1+f.min1)
	i2lo := max(0, f.max2)
	i2hi := min(n2, n2+f.min2)
	i3lo := n3
	if i1lo <= i1hi && i2lo <= i2hi {
		i3lo = min(f.max3, n3)
	}
	for i3 := n3 - 1; i3 >= i3lo; i3-- {
		for i2 := n2 - 1; i2 >= i2hi; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				yi := a[0] * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						yi += a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
		for i2 := i2hi - 1; i2 >= i2lo; i2-- {
			for i1 := n1 - 1; i1 >= i1hi; i1-- {
				c.Get(i1, i2, i3, a)
				yi := a[0] * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if k1 < n1 {
						yi += a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
			for i1 := i1hi - 1; i1 >= i1lo; i1-- {
				c.Get(i1, i2, i3, a)
				yi := a[0] * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					yi += a[j] * x[k3][k2][k1]
				}
				y[i3][i2][i1] = yi
			}
			for i1 := i1lo - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				yi := a[0] * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 {
						yi += a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
		for i2 := i2lo - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				yi := a[0] * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						yi += a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
	}
	for i3 := i3lo - 1; i3 >= 0; i3-- {
		for i2 := n2 - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				yi := a[0] * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && 0 <= k3 {
						yi += a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
	}
}

// ApplyTranspose3 applies the transpose of this filter to a 3-D array
// with coefficients from c.
// Uses lag1, lag2, and lag3.
//
// May be applied in-place; x and y may be the same array.
func (f *LocalFilter) ApplyTranspose3(c CoeffSource3, x, y [][][]float64) {
	checkSameLen3(x, y)
	a := make([]float64, f.m)
	n1 := len(x[0][0])
	n2 := len(x[0])
	n3 := len(x)
	i1lo := max(0, f.max1)
	i1hi := min(n1, n1+f.min1)
	i2lo := max(0, f.max2)
	i2hi := min(n2, n2+f.min2)
	i3lo := n3
	if i1lo <= i1hi && i2lo <= i2hi {
		i3lo = min(f.max3, n3)
	}
	for i3 := 0; i3 < i3lo; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := x[i3][i2][i1]
				y[i3][i2][i1] = a[0] * xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && 0 <= k3 {
						y[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
	}
	for i3 := i3lo; i3 < n3; i3++ {
		for i2 := 0; i2 < i2lo; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := x[i3][i2][i1]
				y[i3][i2][i1] = a[0] * xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						y[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
		for i2 := i2lo; i2 < i2hi; i2++ {
			for i1 := 0; i1 < i1lo; i1++ {
				c.Get(i1, i2, i3, a)
				xi := x[i3][i2][i1]
				y[i3][i2][i1] = a[0] * xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 {
						y[k3][k2][k1] += a[j] * xi
					}
				}
			}
			for i1 := i1lo; i1 < i1hi; i1++ {
				c.Get(i1, i2, i3, a)
				xi := x[i3][i2][i1]
				y[i3][i2][i1] = a[0] * xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					y[k3][k2][k1] += a[j] * xi
				}
			}
			for i1 := i1hi; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := x[i3][i2][i1]
				y[i3][i2][i1] = a[0] * xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if k1 < n1 {
						y[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
		for i2 := i2hi; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := x[i3][i2][i1]
				y[i3][i2][i1] = a[0] * xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						y[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
	}
}

// ApplyInverse3 applies the inverse of this filter to a 3-D array
// with coefficients from c.
// Uses lag1, lag2, and lag3.
//
// May be applied in-place; y and x may be the same array.
func (f *LocalFilter) ApplyInverse3(c CoeffSource3, y, x [][][]float64) {
	checkSameLen3(y, x)
	a := make([]float64, f.m)
	n1 := len(y[0][0])
	n2 := len(y[0])
	n3 := len(y)
	i1lo := max(0, f.max1)
	i1hi := min(n1, n1+f.min1)
	i2lo := max(0, f.max2)
	i2hi := min(n2, n2+f.min2)
	i3lo := n3
	if i1lo <= i1hi && i2lo <= i2hi {
		i3lo = min(f.max3, n3)
	}
	for i3 := 0; i3 < i3lo; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := 0.0
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && 0 <= k3 {
						xi += a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = (y[i3][i2][i1] - xi) / a[0]
			}
		}
	}
	for i3 := i3lo; i3 < n3; i3++ {
		for i2 := 0; i2 < i2lo; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := 0.0
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						xi += a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = (y[i3][i2][i1] - xi) / a[0]
			}
		}
		for i2 := i2lo; i2 < i2hi; i2++ {
			for i1 := 0; i1 < i1lo; i1++ {
				c.Get(i1, i2, i3, a)
				xi := 0.0
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 {
						xi += a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = (y[i3][i2][i1] - xi) / a[0]
			}
			for i1 := i1lo; i1 < i1hi; i1++ {
				c.Get(i1, i2, i3, a)
				xi := 0.0
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					xi += a[j] * x[k3][k2][k1]
				}
				x[i3][i2][i1] = (y[i3][i2][i1] - xi) / a[0]
			}
			for i1 := i1hi; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := 0.0
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if k1 < n1 {
						xi += a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = (y[i3][i2][i1] - xi) / a[0]
			}
		}
		for i2 := i2hi; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				c.Get(i1, i2, i3, a)
				xi := 0.0
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						xi += a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = (y[i3][i2][i1] - xi) / a[0]
			}
		}
	}
}

// ApplyInverseTranspose3 applies the inverse transpose of this filter
// to a 3-D array with coefficients from c.
// Uses lag1, lag2, and lag3.
//
// Cannot be applied in-place; y and x must be distinct arrays.
func (f *LocalFilter) ApplyInverseTranspose3(c CoeffSource3, y, x [][][]float64) {
	checkSameLen3(y, x)
	checkNotAliased3(y, x)
	grid.Zero3(x)
	a := make([]float64, f.m)
	n1 := len(y[0][0])
	n2 := len(y[0])
	n3 := len(y)
	i1lo := max(0, f.max1)
	i1hi := min(n1, n1+f.min1)
	i2lo := max(0, f.max2)
	i2hi := min(n2, n2+f.min2)
	i3lo := n3
	if i1lo <= i1hi && i2lo <= i2hi {
		i3lo = min(f.max3, n3)
	}
	for i3 := n3 - 1; i3 >= i3lo; i3-- {
		for i2 := n2 - 1; i2 >= i2hi; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				xi := (y[i3][i2][i1] - x[i3][i2][i1]) / a[0]
				x[i3][i2][i1] = xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						x[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
		for i2 := i2hi - 1; i2 >= i2lo; i2-- {
			for i1 := n1 - 1; i1 >= i1hi; i1-- {
				c.Get(i1, i2, i3, a)
				xi := (y[i3][i2][i1] - x[i3][i2][i1]) / a[0]
				x[i3][i2][i1] = xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if k1 < n1 {
						x[k3][k2][k1] += a[j] * xi
					}
				}
			}
			for i1 := i1hi - 1; i1 >= i1lo; i1-- {
				c.Get(i1, i2, i3, a)
				xi := (y[i3][i2][i1] - x[i3][i2][i1]) / a[0]
				x[i3][i2][i1] = xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					x[k3][k2][k1] += a[j] * xi
				}
			}
			for i1 := i1lo - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				xi := (y[i3][i2][i1] - x[i3][i2][i1]) / a[0]
				x[i3][i2][i1] = xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 {
						x[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
		for i2 := i2lo - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				xi := (y[i3][i2][i1] - x[i3][i2][i1]) / a[0]
				x[i3][i2][i1] = xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						x[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
	}
	for i3 := i3lo - 1; i3 >= 0; i3-- {
		for i2 := n2 - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				c.Get(i1, i2, i3, a)
				xi := (y[i3][i2][i1] - x[i3][i2][i1]) / a[0]
				x[i3][i2][i1] = xi
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && 0 <= k3 {
						x[k3][k2][k1] += a[j] * xi
					}
				}
			}
		}
	}
}
