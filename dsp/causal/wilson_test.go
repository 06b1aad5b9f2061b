package causal

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-causal/dsp/grid"
)

func TestFactorWilsonBurg1TwoTap(t *testing.T) {
	// R = 1.25 - 0.5(z + 1/z) factors as (1 - 0.5z)(1 - 0.5/z).
	r := []float64{-0.5, 1.25, -0.5}
	f, err := New1([]int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.FactorWilsonBurg1(50, 1e-8, r); err != nil {
		t.Fatal(err)
	}
	a := f.Coeffs()
	if !almostEqual(a[0], 1.0, 1e-6) || !almostEqual(a[1], -0.5, 1e-6) {
		t.Errorf("coefficients: got %v, want [1, -0.5]", a)
	}

	// Cascading the factor with its transpose reproduces R.
	n := 21
	k := (n - 1) / 2
	s := make([]float64, n)
	u := make([]float64, n)
	s[k] = 1
	f.Apply1(s, u)
	f.ApplyTranspose1(u, s)
	for h := -1; h <= 1; h++ {
		if !almostEqual(s[k+h], r[1+h], 1e-7) {
			t.Errorf("cascade at lag %d: got %v, want %v", h, s[k+h], r[1+h])
		}
	}
	for i := 0; i < n; i++ {
		if i < k-1 || i > k+1 {
			if !almostEqual(s[i], 0, 1e-7) {
				t.Errorf("cascade leaked at %d: %v", i, s[i])
			}
		}
	}
}

func TestFactorWilsonBurg1Fomel(t *testing.T) {
	// Example from Fomel, Sava, Rickett, and Claerbout: the
	// autocorrelation of (1+z)(2+z)(3+z)(4+z) = 24+26z+9z^2+z^3.
	r := []float64{24, 242, 867, 1334, 867, 242, 24}
	f, err := New1([]int{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.FactorWilsonBurg1(100, 1e-12, r); err != nil {
		t.Fatal(err)
	}
	a := f.Coeffs()
	want := []float64{24, 26, 9, 1}
	for j := range want {
		if !almostEqual(a[j], want[j], 1e-6) {
			t.Errorf("a[%d]: got %v, want %v", j, a[j], want[j])
		}
	}
}

func TestFactorWilsonBurg1FromSignal(t *testing.T) {
	// The autocorrelation of a minimum-phase sequence factors back
	// into that sequence.
	r := grid.Autocorrelate1([]float64{1, -0.5}, 1)
	f, err := New1([]int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.FactorWilsonBurg1(100, 1e-12, r); err != nil {
		t.Fatal(err)
	}
	a := f.Coeffs()
	if !almostEqual(a[0], 1.0, 1e-8) || !almostEqual(a[1], -0.5, 1e-8) {
		t.Errorf("coefficients: got %v, want [1, -0.5]", a)
	}
}

func TestFactorWilsonBurg2Laplacian(t *testing.T) {
	r := [][]float64{
		{0.000, -0.999, 0.000},
		{-0.999, 4.000, -0.999},
		{0.000, -0.999, 0.000},
	}
	lag1 := []int{
		0, 1, 2, 3, 4,
		-4, -3, -2, -1, 0,
	}
	lag2 := []int{
		0, 0, 0, 0, 0,
		1, 1, 1, 1, 1,
	}
	f, err := New2(lag1, lag2)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.FactorWilsonBurg2(100, 1e-9, r); err != nil {
		t.Fatal(err)
	}

	// Impulse response of A A' must reproduce R near the center.
	s := grid.New2(3, 3)
	u := grid.New2(3, 3)
	s[1][1] = 1
	f.Apply2(s, u)
	f.ApplyTranspose2(u, s)
	emax := 0.01 * r[1][1]
	for i2 := 0; i2 < 3; i2++ {
		for i1 := 0; i1 < 3; i1++ {
			if !almostEqual(s[i2][i1], r[i2][i1], emax) {
				t.Errorf("cascade at (%d,%d): got %v, want %v",
					i1, i2, s[i2][i1], r[i2][i1])
			}
		}
	}
}

func TestFactorWilsonBurg3Laplacian(t *testing.T) {
	r := grid.New3(3, 3, 3)
	r[1][1][1] = 6.000
	r[1][1][0], r[1][1][2] = -0.999, -0.999
	r[1][0][1], r[1][2][1] = -0.999, -0.999
	r[0][1][1], r[2][1][1] = -0.999, -0.999
	lag1 := []int{
		0, 1, 2,
		-2, -1, 0, 1, 2,
		-2, -1, 0, 1, 2,
		-2, -1, 0,
	}
	lag2 := []int{
		0, 0, 0,
		1, 1, 1, 1, 1,
		-1, -1, -1, -1, -1,
		0, 0, 0,
	}
	lag3 := []int{
		0, 0, 0,
		0, 0, 0, 0, 0,
		1, 1, 1, 1, 1,
		1, 1, 1,
	}
	f, err := New3(lag1, lag2, lag3)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.FactorWilsonBurg3(100, 1e-9, r); err != nil {
		t.Fatal(err)
	}

	s := grid.New3(3, 3, 3)
	u := grid.New3(3, 3, 3)
	s[1][1][1] = 1
	f.Apply3(s, u)
	f.ApplyTranspose3(u, s)
	emax := 0.01 * r[1][1][1]
	for i3 := 0; i3 < 3; i3++ {
		for i2 := 0; i2 < 3; i2++ {
			for i1 := 0; i1 < 3; i1++ {
				if !almostEqual(s[i3][i2][i1], r[i3][i2][i1], emax) {
					t.Errorf("cascade at (%d,%d,%d): got %v, want %v",
						i1, i2, i3, s[i3][i2][i1], r[i3][i2][i1])
				}
			}
		}
	}
}

func TestFactorEvenExtent(t *testing.T) {
	f, err := New1([]int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.FactorWilsonBurg1(10, 1e-8, []float64{1, 2}); !errors.Is(err, ErrEvenExtent) {
		t.Errorf("got %v, want ErrEvenExtent", err)
	}
	f2, err := New2([]int{0, 1}, []int{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	r2 := grid.New2(3, 2)
	if err := f2.FactorWilsonBurg2(10, 1e-8, r2); !errors.Is(err, ErrEvenExtent) {
		t.Errorf("got %v, want ErrEvenExtent", err)
	}
}

func TestFactorNotConverged(t *testing.T) {
	r := []float64{-0.5, 1.25, -0.5}
	f, err := New1([]int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	// A single iteration cannot settle within a near-zero tolerance.
	if err := f.FactorWilsonBurg1(1, 1e-300, r); !errors.Is(err, ErrNotConverged) {
		t.Errorf("got %v, want ErrNotConverged", err)
	}
	// The last in-progress coefficients remain on the filter.
	a := f.Coeffs()
	if a[0] == 0 {
		t.Error("coefficients were not left at the last iterate")
	}
}

func TestFactorDegenerate(t *testing.T) {
	// A zero zero-lag sample makes the initial factor non-invertible.
	r := []float64{0, 0, 0}
	f, err := New1([]int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.FactorWilsonBurg1(10, 1e-8, r); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got %v, want ErrDegenerate", err)
	}
}
