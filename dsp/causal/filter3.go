package causal

// Apply3 applies this filter to a 3-D array.
// Uses lag1, lag2, and lag3.
//
// May be applied in-place; x and y may be the same array.
func (f *Filter) Apply3(x, y [][][]float64) {
	checkSameLen3(x, y)
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
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
		for i2 := i2hi - 1; i2 >= i2lo; i2-- {
			for i1 := n1 - 1; i1 >= i1hi; i1-- {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if k1 < n1 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
			for i1 := i1hi - 1; i1 >= i1lo; i1-- {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					yi += f.a[j] * x[k3][k2][k1]
				}
				y[i3][i2][i1] = yi
			}
			for i1 := i1lo - 1; i1 >= 0; i1-- {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
		for i2 := i2lo - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
	}
	for i3 := i3lo - 1; i3 >= 0; i3-- {
		for i2 := n2 - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && 0 <= k3 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
	}
}

// ApplyTranspose3 applies the transpose of this filter to a 3-D array.
// Uses lag1, lag2, and lag3.
//
// May be applied in-place; x and y may be the same array.
func (f *Filter) ApplyTranspose3(x, y [][][]float64) {
	checkSameLen3(x, y)
	n1 := len(x[0][0])
	n2 := len(x[0])
	n3 := len(x)
	i1lo := max(0, -f.min1)
	i1hi := min(n1, n1-f.max1)
	i2lo := max(0, -f.min2)
	i2hi := min(n2, n2-f.max2)
	i3hi := 0
	if i1lo <= i1hi && i2lo <= i2hi {
		i3hi = max(n3-f.max3, 0)
	}
	for i3 := 0; i3 < i3hi; i3++ {
		for i2 := 0; i2 < i2lo; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
		for i2 := i2lo; i2 < i2hi; i2++ {
			for i1 := 0; i1 < i1lo; i1++ {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
			for i1 := i1lo; i1 < i1hi; i1++ {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					yi += f.a[j] * x[k3][k2][k1]
				}
				y[i3][i2][i1] = yi
			}
			for i1 := i1hi; i1 < n1; i1++ {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if k1 < n1 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
		for i2 := i2hi; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
	}
	for i3 := i3hi; i3 < n3; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				yi := f.a0 * x[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && k3 < n3 {
						yi += f.a[j] * x[k3][k2][k1]
					}
				}
				y[i3][i2][i1] = yi
			}
		}
	}
}

// ApplyInverse3 applies the inverse of this filter to a 3-D array.
// Uses lag1, lag2, and lag3.
//
// May be applied in-place; y and x may be the same array.
func (f *Filter) ApplyInverse3(y, x [][][]float64) {
	checkSameLen3(y, x)
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
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && 0 <= k3 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
	}
	for i3 := i3lo; i3 < n3; i3++ {
		for i2 := 0; i2 < i2lo; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
		for i2 := i2lo; i2 < i2hi; i2++ {
			for i1 := 0; i1 < i1lo; i1++ {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
			for i1 := i1lo; i1 < i1hi; i1++ {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					xi -= f.a[j] * x[k3][k2][k1]
				}
				x[i3][i2][i1] = xi * f.a0i
			}
			for i1 := i1hi; i1 < n1; i1++ {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if k1 < n1 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
		for i2 := i2hi; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 - f.lag1[j]
					k2 := i2 - f.lag2[j]
					k3 := i3 - f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
	}
}

// ApplyInverseTranspose3 applies the inverse transpose of this filter
// to a 3-D array.
// Uses lag1, lag2, and lag3.
//
// May be applied in-place; y and x may be the same array.
func (f *Filter) ApplyInverseTranspose3(y, x [][][]float64) {
	checkSameLen3(y, x)
	n1 := len(y[0][0])
	n2 := len(y[0])
	n3 := len(y)
	i1lo := max(0, -f.min1)
	i1hi := min(n1, n1-f.max1)
	i2lo := max(0, -f.min2)
	i2hi := min(n2, n2-f.max2)
	i3hi := 0
	if i1lo <= i1hi && i2lo <= i2hi {
		i3hi = max(n3-f.max3, 0)
	}
	for i3 := n3 - 1; i3 >= i3hi; i3-- {
		for i2 := n2 - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 && k2 < n2 && k3 < n3 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
	}
	for i3 := i3hi - 1; i3 >= 0; i3-- {
		for i2 := n2 - 1; i2 >= i2hi; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 && k1 < n1 && k2 < n2 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
		for i2 := i2hi - 1; i2 >= i2lo; i2-- {
			for i1 := n1 - 1; i1 >= i1hi; i1-- {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if k1 < n1 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
			for i1 := i1hi - 1; i1 >= i1lo; i1-- {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					xi -= f.a[j] * x[k3][k2][k1]
				}
				x[i3][i2][i1] = xi * f.a0i
			}
			for i1 := i1lo - 1; i1 >= 0; i1-- {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
		for i2 := i2lo - 1; i2 >= 0; i2-- {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				xi := y[i3][i2][i1]
				for j := 1; j < f.m; j++ {
					k1 := i1 + f.lag1[j]
					k2 := i2 + f.lag2[j]
					k3 := i3 + f.lag3[j]
					if 0 <= k1 && k1 < n1 && 0 <= k2 {
						xi -= f.a[j] * x[k3][k2][k1]
					}
				}
				x[i3][i2][i1] = xi * f.a0i
			}
		}
	}
}
