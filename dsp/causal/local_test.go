package causal

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-causal/dsp/grid"
)

// rampCoeffs2 varies a base coefficient set smoothly over a 2-D grid.
type rampCoeffs2 struct {
	base []float64
}

func (c rampCoeffs2) Get(i1, i2 int, a []float64) {
	s := 1 + 0.1*math.Sin(float64(i1)+0.7*float64(i2))
	a[0] = c.base[0]
	for j := 1; j < len(c.base); j++ {
		a[j] = s * c.base[j]
	}
}

// rampCoeffs1 varies a base coefficient set over a 1-D grid.
type rampCoeffs1 struct {
	base []float64
}

func (c rampCoeffs1) Get(i1 int, a []float64) {
	s := 1 + 0.1*math.Sin(float64(i1))
	a[0] = c.base[0]
	for j := 1; j < len(c.base); j++ {
		a[j] = s * c.base[j]
	}
}

func TestLocalMatchesFixed1(t *testing.T) {
	lags := []int{0, 1, 2}
	a := []float64{1, -1.8, 0.81}
	fixed, err := New1Coeffs(lags, a)
	if err != nil {
		t.Fatal(err)
	}
	local, err := NewLocal1(lags)
	if err != nil {
		t.Fatal(err)
	}
	c := ConstCoeffs1(a)
	rng := rand.New(rand.NewPCG(11, 0))
	x := rands1(rng, 60)
	n := len(x)
	tol := float64(n) * 10 * eps

	yf := make([]float64, n)
	yl := make([]float64, n)

	fixed.Apply1(x, yf)
	local.Apply1(c, x, yl)
	if d := grid.MaxAbsDiff1(yf, yl); d != 0 {
		t.Errorf("Apply1 differs, max diff %v", d)
	}

	fixed.ApplyInverse1(x, yf)
	local.ApplyInverse1(c, x, yl)
	if d := grid.MaxAbsDiff1(yf, yl); d > tol {
		t.Errorf("ApplyInverse1 differs, max diff %v", d)
	}

	// The local transpose accumulates in scatter order, so allow
	// rounding-level differences.
	fixed.ApplyTranspose1(x, yf)
	local.ApplyTranspose1(c, x, yl)
	if d := grid.MaxAbsDiff1(yf, yl); d > tol {
		t.Errorf("ApplyTranspose1 differs, max diff %v", d)
	}

	fixed.ApplyInverseTranspose1(x, yf)
	local.ApplyInverseTranspose1(c, x, yl)
	if d := grid.MaxAbsDiff1(yf, yl); d > tol {
		t.Errorf("ApplyInverseTranspose1 differs, max diff %v", d)
	}
}

func TestLocalMatchesFixed2(t *testing.T) {
	lag1 := []int{0, 1, -1, 0}
	lag2 := []int{0, 0, 1, 1}
	a := []float64{1, -0.4, 0.2, -0.3}
	fixed, err := New2Coeffs(lag1, lag2, a)
	if err != nil {
		t.Fatal(err)
	}
	local, err := NewLocal2(lag1, lag2)
	if err != nil {
		t.Fatal(err)
	}
	c := ConstCoeffs2(a)
	rng := rand.New(rand.NewPCG(12, 0))
	n1, n2 := 13, 11
	x := rands2(rng, n1, n2)
	tol := float64(n1*n2) * 10 * eps

	yf := grid.New2(n1, n2)
	yl := grid.New2(n1, n2)

	fixed.Apply2(x, yf)
	local.Apply2(c, x, yl)
	if d := grid.MaxAbsDiff2(yf, yl); d != 0 {
		t.Errorf("Apply2 differs, max diff %v", d)
	}

	fixed.ApplyInverse2(x, yf)
	local.ApplyInverse2(c, x, yl)
	if d := grid.MaxAbsDiff2(yf, yl); d > tol {
		t.Errorf("ApplyInverse2 differs, max diff %v", d)
	}

	fixed.ApplyTranspose2(x, yf)
	local.ApplyTranspose2(c, x, yl)
	if d := grid.MaxAbsDiff2(yf, yl); d > tol {
		t.Errorf("ApplyTranspose2 differs, max diff %v", d)
	}

	fixed.ApplyInverseTranspose2(x, yf)
	local.ApplyInverseTranspose2(c, x, yl)
	if d := grid.MaxAbsDiff2(yf, yl); d > tol {
		t.Errorf("ApplyInverseTranspose2 differs, max diff %v", d)
	}
}

func TestLocalMatchesFixed3(t *testing.T) {
	lag1 := []int{0, 1, -1, 0}
	lag2 := []int{0, 0, 1, 0}
	lag3 := []int{0, 0, 0, 1}
	a := []float64{1, -0.4, 0.2, -0.3}
	fixed, err := New3Coeffs(lag1, lag2, lag3, a)
	if err != nil {
		t.Fatal(err)
	}
	local, err := NewLocal3(lag1, lag2, lag3)
	if err != nil {
		t.Fatal(err)
	}
	c := ConstCoeffs3(a)
	rng := rand.New(rand.NewPCG(13, 0))
	n1, n2, n3 := 9, 8, 7
	x := rands3(rng, n1, n2, n3)
	tol := float64(n1*n2*n3) * 10 * eps

	yf := grid.New3(n1, n2, n3)
	yl := grid.New3(n1, n2, n3)

	fixed.Apply3(x, yf)
	local.Apply3(c, x, yl)
	if d := grid.MaxAbsDiff3(yf, yl); d != 0 {
		t.Errorf("Apply3 differs, max diff %v", d)
	}

	fixed.ApplyInverse3(x, yf)
	local.ApplyInverse3(c, x, yl)
	if d := grid.MaxAbsDiff3(yf, yl); d > tol {
		t.Errorf("ApplyInverse3 differs, max diff %v", d)
	}

	fixed.ApplyTranspose3(x, yf)
	local.ApplyTranspose3(c, x, yl)
	if d := grid.MaxAbsDiff3(yf, yl); d > tol {
		t.Errorf("ApplyTranspose3 differs, max diff %v", d)
	}

	fixed.ApplyInverseTranspose3(x, yf)
	local.ApplyInverseTranspose3(c, x, yl)
	if d := grid.MaxAbsDiff3(yf, yl); d > tol {
		t.Errorf("ApplyInverseTranspose3 differs, max diff %v", d)
	}
}

func TestLocalRoundTrip1(t *testing.T) {
	local, err := NewLocal1([]int{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	c := rampCoeffs1{base: []float64{2, -0.5, 0.2}}
	rng := rand.New(rand.NewPCG(14, 0))
	x := rands1(rng, 80)
	n := len(x)
	tol := float64(n) * 10 * eps

	// Inverse undoes the forward operator even when coefficients vary.
	y := make([]float64, n)
	z := make([]float64, n)
	local.Apply1(c, x, y)
	local.ApplyInverse1(c, y, z)
	if d := grid.MaxAbsDiff1(x, z); d > tol {
		t.Errorf("forward-inverse round trip, max diff %v", d)
	}

	// Transpose followed by inverse transpose.
	local.ApplyTranspose1(c, x, y)
	local.ApplyInverseTranspose1(c, y, z)
	if d := grid.MaxAbsDiff1(x, z); d > tol {
		t.Errorf("transpose round trip, max diff %v", d)
	}
}

func TestLocalRoundTrip2(t *testing.T) {
	local, err := NewLocal2([]int{0, 1, -1, 0}, []int{0, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	c := rampCoeffs2{base: []float64{2, -0.4, 0.2, -0.3}}
	rng := rand.New(rand.NewPCG(15, 0))
	n1, n2 := 14, 12
	x := rands2(rng, n1, n2)
	tol := float64(n1*n2) * 10 * eps

	y := grid.New2(n1, n2)
	z := grid.New2(n1, n2)
	local.Apply2(c, x, y)
	local.ApplyInverse2(c, y, z)
	if d := grid.MaxAbsDiff2(x, z); d > tol {
		t.Errorf("forward-inverse round trip, max diff %v", d)
	}

	local.ApplyTranspose2(c, x, y)
	local.ApplyInverseTranspose2(c, y, z)
	if d := grid.MaxAbsDiff2(x, z); d > tol {
		t.Errorf("transpose round trip, max diff %v", d)
	}
}

func TestLocalAdjointIdentity2(t *testing.T) {
	local, err := NewLocal2([]int{0, 1, -1, 0}, []int{0, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	c := rampCoeffs2{base: []float64{2, -0.4, 0.2, -0.3}}
	rng := rand.New(rand.NewPCG(16, 0))
	n1, n2 := 10, 9
	x := rands2(rng, n1, n2)
	y := rands2(rng, n1, n2)
	tol := float64(n1*n2) * 10 * eps

	ax := grid.New2(n1, n2)
	ay := grid.New2(n1, n2)
	local.Apply2(c, x, ax)
	local.ApplyTranspose2(c, y, ay)
	dyx := grid.Dot2(y, ax)
	dxy := grid.Dot2(x, ay)
	if !almostEqual(dyx, dxy, tol) {
		t.Errorf("adjoint identity: %v != %v", dyx, dxy)
	}
}

func TestLocalInverseTransposeAliasPanics(t *testing.T) {
	local, err := NewLocal1([]int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	x := make([]float64, 8)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for in-place inverse transpose")
		}
	}()
	local.ApplyInverseTranspose1(ConstCoeffs1{1, -0.5}, x, x)
}
