package causal

import (
	"math"

	"github.com/cwbudde/algo-causal/dsp/grid"
)

// The Wilson-Burg iteration solves A(z)*A(1/z) = R(z) for the
// minimum-phase factor A on the filter's lag support. Each iteration
// computes U from R/(A*A'), keeps the causal half of U(z)+U(1/z),
// and multiplies it back onto A. Halving the zero-lag of U keeps that
// causal half scaled so the fixed point is stable.
//
// The inverse operators have infinite impulse response, so R is
// copied into a workspace padded with ten filter lengths of zeros per
// dimension to keep the truncation error small. On failure the filter
// keeps the coefficients of the last iteration.

// FactorWilsonBurg1 factors the specified 1-D autocorrelation,
// replacing this filter's coefficients. If the iteration converges,
// the impulse response of this filter cascaded with its transpose
// approximates the autocorrelation.
//
// maxiter bounds the number of iterations. Iterations have converged
// when the squared change in every coefficient is at most epsilon
// times the zero-lag of the autocorrelation. r must have odd length,
// with the zero-lag in the middle and the remaining samples symmetric
// about it.
//
// Returns [ErrEvenExtent], [ErrNotConverged], or [ErrDegenerate].
func (f *Filter) FactorWilsonBurg1(maxiter int, epsilon float64, r []float64) error {
	if len(r)%2 != 1 {
		return ErrEvenExtent
	}

	// Maximum length of this filter's impulse response.
	m1 := f.max1 - f.min1

	// Padded length, and indices of the zero lag before and after
	// padding.
	n1 := len(r) + 10*m1
	l1 := (len(r) - 1) / 2
	k1 := n1 - 1 - f.max1

	s := make([]float64, n1)
	t := make([]float64, n1)
	u := make([]float64, n1)

	// S is R padded with zeros to reduce truncation of R/(AA').
	grid.CopyAt1(l1+1+l1, r, 0, s, k1-l1)

	// Initial factor is minimum-phase and matches lag zero of R.
	grid.Zero1(f.a)
	f.a[0] = math.Sqrt(s[k1])
	f.a0 = f.a[0]
	if f.a0 == 0 {
		return ErrDegenerate
	}
	f.a0i = 1.0 / f.a[0]

	converged := false
	eemax := s[k1] * epsilon
	for niter := 0; niter < maxiter && !converged; niter++ {
		// U(z) + U(1/z) = 1 + S(z)/(A(z)*A(1/z))
		f.ApplyInverseTranspose1(s, t)
		f.ApplyInverse1(t, u)
		u[k1] += 1.0

		// U(z) is the causal part we want; zero the anti-causal part.
		u[k1] *= 0.5
		grid.Zero1(u[:k1])

		// The new A(z) is T(z) = U(z)*A(z).
		f.Apply1(u, t)
		converged = true
		for j := 0; j < f.m; j++ {
			j1 := k1 + f.lag1[j]
			if 0 <= j1 && j1 < n1 {
				aj := t[j1]
				if converged {
					e := f.a[j] - aj
					converged = e*e <= eemax
				}
				f.a[j] = aj
			}
		}
		f.a0 = f.a[0]
		if f.a0 == 0 {
			return ErrDegenerate
		}
		f.a0i = 1.0 / f.a[0]
	}
	if !converged {
		return ErrNotConverged
	}
	return nil
}

// FactorWilsonBurg2 factors the specified 2-D autocorrelation,
// replacing this filter's coefficients. If the iteration converges,
// the impulse response of this filter cascaded with its transpose
// approximates the autocorrelation.
//
// r must have odd extents, with the zero-lag in the middle and the
// remaining samples symmetric about it. See [Filter.FactorWilsonBurg1]
// for the remaining parameters and errors.
func (f *Filter) FactorWilsonBurg2(maxiter int, epsilon float64, r [][]float64) error {
	if len(r)%2 != 1 || len(r[0])%2 != 1 {
		return ErrEvenExtent
	}

	m1 := f.max1 - f.min1
	m2 := f.max2 - f.min2

	n1 := len(r[0]) + 10*m1
	n2 := len(r) + 10*m2
	l1 := (len(r[0]) - 1) / 2
	l2 := (len(r) - 1) / 2
	k1 := n1 - 1 - f.max1
	k2 := n2 - 1 - f.max2

	s := grid.New2(n1, n2)
	t := grid.New2(n1, n2)
	u := grid.New2(n1, n2)

	grid.CopyAt2(l1+1+l1, l2+1+l2, r, 0, 0, s, k1-l1, k2-l2)

	grid.Zero1(f.a)
	f.a[0] = math.Sqrt(s[k2][k1])
	f.a0 = f.a[0]
	if f.a0 == 0 {
		return ErrDegenerate
	}
	f.a0i = 1.0 / f.a[0]

	converged := false
	eemax := s[k2][k1] * epsilon
	for niter := 0; niter < maxiter && !converged; niter++ {
		// U(z) + U(1/z) = 1 + S(z)/(A(z)*A(1/z))
		f.ApplyInverseTranspose2(s, t)
		f.ApplyInverse2(t, u)
		u[k2][k1] += 1.0

		// U(z) is the causal part we want; zero the anti-causal part.
		u[k2][k1] *= 0.5
		grid.Zero2(u[:k2])
		grid.Zero1(u[k2][:k1])

		// The new A(z) is T(z) = U(z)*A(z).
		f.Apply2(u, t)
		converged = true
		for j := 0; j < f.m; j++ {
			j1 := k1 + f.lag1[j]
			j2 := k2 + f.lag2[j]
			if 0 <= j1 && j1 < n1 && 0 <= j2 && j2 < n2 {
				aj := t[j2][j1]
				if converged {
					e := f.a[j] - aj
					converged = e*e <= eemax
				}
				f.a[j] = aj
			}
		}
		f.a0 = f.a[0]
		if f.a0 == 0 {
			return ErrDegenerate
		}
		f.a0i = 1.0 / f.a[0]
	}
	if !converged {
		return ErrNotConverged
	}
	return nil
}

// FactorWilsonBurg3 factors the specified 3-D autocorrelation,
// replacing this filter's coefficients. If the iteration converges,
// the impulse response of this filter cascaded with its transpose
// approximates the autocorrelation.
//
// r must have odd extents, with the zero-lag in the middle and the
// remaining samples symmetric about it. See [Filter.FactorWilsonBurg1]
// for the remaining parameters and errors.
func (f *Filter) FactorWilsonBurg3(maxiter int, epsilon float64, r [][][]float64) error {
	if len(r)%2 != 1 || len(r[0])%2 != 1 || len(r[0][0])%2 != 1 {
		return ErrEvenExtent
	}

	m1 := f.max1 - f.min1
	m2 := f.max2 - f.min2
	m3 := f.max3 - f.min3

	n1 := len(r[0][0]) + 10*m1
	n2 := len(r[0]) + 10*m2
	n3 := len(r) + 10*m3
	l1 := (len(r[0][0]) - 1) / 2
	l2 := (len(r[0]) - 1) / 2
	l3 := (len(r) - 1) / 2
	k1 := n1 - 1 - f.max1
	k2 := n2 - 1 - f.max2
	k3 := n3 - 1 - f.max3

	s := grid.New3(n1, n2, n3)
	t := grid.New3(n1, n2, n3)
	u := grid.New3(n1, n2, n3)

	grid.CopyAt3(l1+1+l1, l2+1+l2, l3+1+l3, r, 0, 0, 0, s, k1-l1, k2-l2, k3-l3)

	grid.Zero1(f.a)
	f.a[0] = math.Sqrt(s[k3][k2][k1])
	f.a0 = f.a[0]
	if f.a0 == 0 {
		return ErrDegenerate
	}
	f.a0i = 1.0 / f.a[0]

	converged := false
	eemax := s[k3][k2][k1] * epsilon
	for niter := 0; niter < maxiter && !converged; niter++ {
		// U(z) + U(1/z) = 1 + S(z)/(A(z)*A(1/z))
		f.ApplyInverseTranspose3(s, t)
		f.ApplyInverse3(t, u)
		u[k3][k2][k1] += 1.0

		// U(z) is the causal part we want; zero the anti-causal part.
		u[k3][k2][k1] *= 0.5
		grid.Zero3(u[:k3])
		grid.Zero2(u[k3][:k2])
		grid.Zero1(u[k3][k2][:k1])

		// The new A(z) is T(z) = U(z)*A(z).
		f.Apply3(u, t)
		converged = true
		for j := 0; j < f.m; j++ {
			j1 := k1 + f.lag1[j]
			j2 := k2 + f.lag2[j]
			j3 := k3 + f.lag3[j]
			if 0 <= j1 && j1 < n1 && 0 <= j2 && j2 < n2 && 0 <= j3 && j3 < n3 {
				aj := t[j3][j2][j1]
				if converged {
					e := f.a[j] - aj
					converged = e*e <= eemax
				}
				f.a[j] = aj
			}
		}
		f.a0 = f.a[0]
		if f.a0 == 0 {
			return ErrDegenerate
		}
		f.a0i = 1.0 / f.a[0]
	}
	if !converged {
		return ErrNotConverged
	}
	return nil
}
