package causal

// Apply2 applies this filter to a 2-D array.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *Filter) Apply2(x, y [][]float64) {
	checkSameLen2(x, y)
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
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if k1 < n1 {
					yi += f.a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
		for i1 := i1hi - 1; i1 >= i1lo; i1-- {
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				yi += f.a[j] * x[k2][k1]
			}
			y[i2][i1] = yi
		}
		for i1 := i1lo - 1; i1 >= 0; i1-- {
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 {
					yi += f.a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
	}
	for i2 := i2lo - 1; i2 >= 0; i2-- {
		for i1 := n1 - 1; i1 >= 0; i1-- {
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 && k1 < n1 && 0 <= k2 {
					yi += f.a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
	}
}

// ApplyTranspose2 applies the transpose of this filter to a 2-D array.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *Filter) ApplyTranspose2(x, y [][]float64) {
	checkSameLen2(x, y)
	n1 := len(x[0])
	n2 := len(x)
	i1lo := max(0, -f.min1)
	i1hi := min(n1, n1-f.max1)
	i2hi := 0
	if i1lo <= i1hi {
		i2hi = max(n2-f.max2, 0)
	}
	for i2 := 0; i2 < i2hi; i2++ {
		for i1 := 0; i1 < i1lo; i1++ {
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				if 0 <= k1 {
					yi += f.a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
		for i1 := i1lo; i1 < i1hi; i1++ {
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				yi += f.a[j] * x[k2][k1]
			}
			y[i2][i1] = yi
		}
		for i1 := i1hi; i1 < n1; i1++ {
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				if k1 < n1 {
					yi += f.a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
	}
	for i2 := i2hi; i2 < n2; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			yi := f.a0 * x[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				if 0 <= k1 && k1 < n1 && k2 < n2 {
					yi += f.a[j] * x[k2][k1]
				}
			}
			y[i2][i1] = yi
		}
	}
}

// ApplyInverse2 applies the inverse of this filter to a 2-D array.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// May be applied in-place; y and x may be the same array.
func (f *Filter) ApplyInverse2(y, x [][]float64) {
	checkSameLen2(y, x)
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
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 && k1 < n1 && 0 <= k2 {
					xi -= f.a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = xi * f.a0i
		}
	}
	for i2 := i2lo; i2 < n2; i2++ {
		for i1 := 0; i1 < i1lo; i1++ {
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if 0 <= k1 {
					xi -= f.a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = xi * f.a0i
		}
		for i1 := i1lo; i1 < i1hi; i1++ {
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				xi -= f.a[j] * x[k2][k1]
			}
			x[i2][i1] = xi * f.a0i
		}
		for i1 := i1hi; i1 < n1; i1++ {
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 - f.lag1[j]
				k2 := i2 - f.lag2[j]
				if k1 < n1 {
					xi -= f.a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = xi * f.a0i
		}
	}
}

// ApplyInverseTranspose2 applies the inverse transpose of this filter
// to a 2-D array.
// Uses lag1 and lag2; ignores lag3, if specified.
//
// May be applied in-place; y and x may be the same array.
func (f *Filter) ApplyInverseTranspose2(y, x [][]float64) {
	checkSameLen2(y, x)
	n1 := len(y[0])
	n2 := len(y)
	i1lo := max(0, -f.min1)
	i1hi := min(n1, n1-f.max1)
	i2hi := 0
	if i1lo <= i1hi {
		i2hi = max(n2-f.max2, 0)
	}
	for i2 := n2 - 1; i2 >= i2hi; i2-- {
		for i1 := n1 - 1; i1 >= 0; i1-- {
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				if 0 <= k1 && k1 < n1 && k2 < n2 {
					xi -= f.a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = xi * f.a0i
		}
	}
	for i2 := i2hi - 1; i2 >= 0; i2-- {
		for i1 := n1 - 1; i1 >= i1hi; i1-- {
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				if k1 < n1 {
					xi -= f.a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = xi * f.a0i
		}
		for i1 := i1hi - 1; i1 >= i1lo; i1-- {
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				xi -= f.a[j] * x[k2][k1]
			}
			x[i2][i1] = xi * f.a0i
		}
		for i1 := i1lo - 1; i1 >= 0; i1-- {
			xi := y[i2][i1]
			for j := 1; j < f.m; j++ {
				k1 := i1 + f.lag1[j]
				k2 := i2 + f.lag2[j]
				if 0 <= k1 {
					xi -= f.a[j] * x[k2][k1]
				}
			}
			x[i2][i1] = xi * f.a0i
		}
	}
}
