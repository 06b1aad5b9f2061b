package causal

// The kernels below split their loops into interior and edge sections
// so that the inner stencil sums need no per-tap bounds tests where
// every tap is known to be in range. The split bounds come from the
// per-dimension min/max lags. Out-of-range taps read as zero.
//
// Traversal order makes in-place application safe: the forward filter
// writes from the end of the array backward, so a tap at i-lag reads
// a sample that has not yet been overwritten; the transpose runs the
// opposite way. The inverse recursions run opposite to the operator
// they invert (the inverse from the start forward, the inverse
// transpose from the end backward) and read their own output, which
// resolves the recursion's data dependence in the same pass.

// Apply1 applies this filter to a 1-D array.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *Filter) Apply1(x, y []float64) {
	checkSameLen1(x, y)
	n1 := len(x)
	i1lo := min(f.max1, n1)
	for i1 := n1 - 1; i1 >= i1lo; i1-- {
		yi := f.a0 * x[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			yi += f.a[j] * x[k1]
		}
		y[i1] = yi
	}
	for i1 := i1lo - 1; i1 >= 0; i1-- {
		yi := f.a0 * x[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			if 0 <= k1 {
				yi += f.a[j] * x[k1]
			}
		}
		y[i1] = yi
	}
}

// ApplyTranspose1 applies the transpose of this filter to a 1-D array.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// May be applied in-place; x and y may be the same array.
func (f *Filter) ApplyTranspose1(x, y []float64) {
	checkSameLen1(x, y)
	n1 := len(x)
	i1hi := max(n1-f.max1, 0)
	for i1 := 0; i1 < i1hi; i1++ {
		yi := f.a0 * x[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 + f.lag1[j]
			yi += f.a[j] * x[k1]
		}
		y[i1] = yi
	}
	for i1 := i1hi; i1 < n1; i1++ {
		yi := f.a0 * x[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 + f.lag1[j]
			if k1 < n1 {
				yi += f.a[j] * x[k1]
			}
		}
		y[i1] = yi
	}
}

// ApplyInverse1 applies the inverse of this filter to a 1-D array.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// May be applied in-place; y and x may be the same array.
func (f *Filter) ApplyInverse1(y, x []float64) {
	checkSameLen1(y, x)
	n1 := len(y)
	i1lo := min(f.max1, n1)
	for i1 := 0; i1 < i1lo; i1++ {
		xi := y[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			if 0 <= k1 {
				xi -= f.a[j] * x[k1]
			}
		}
		x[i1] = xi * f.a0i
	}
	for i1 := i1lo; i1 < n1; i1++ {
		xi := y[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 - f.lag1[j]
			xi -= f.a[j] * x[k1]
		}
		x[i1] = xi * f.a0i
	}
}

// ApplyInverseTranspose1 applies the inverse transpose of this filter
// to a 1-D array.
// Uses lag1; ignores lag2 and lag3, if specified.
//
// May be applied in-place; y and x may be the same array.
func (f *Filter) ApplyInverseTranspose1(y, x []float64) {
	checkSameLen1(y, x)
	n1 := len(y)
	i1hi := max(n1-f.max1, 0)
	for i1 := n1 - 1; i1 >= i1hi; i1-- {
		xi := y[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 + f.lag1[j]
			if k1 < n1 {
				xi -= f.a[j] * x[k1]
			}
		}
		x[i1] = xi * f.a0i
	}
	for i1 := i1hi - 1; i1 >= 0; i1-- {
		xi := y[i1]
		for j := 1; j < f.m; j++ {
			k1 := i1 + f.lag1[j]
			xi -= f.a[j] * x[k1]
		}
		x[i1] = xi * f.a0i
	}
}
