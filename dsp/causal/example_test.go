package causal_test

import (
	"fmt"

	"github.com/cwbudde/algo-causal/dsp/causal"
)

func ExampleFilter_Apply1() {
	// Two-tap causal filter 1 - 0.5z applied to a unit impulse.
	f, _ := causal.New1Coeffs([]int{0, 1}, []float64{1, -0.5})

	x := []float64{1, 0, 0, 0}
	y := make([]float64, len(x))
	f.Apply1(x, y)
	fmt.Println(y)
	// Output:
	// [1 -0.5 0 0]
}

func ExampleFilter_ApplyInverse1() {
	// The causal inverse of 1 - 0.5z is the recursive expansion
	// 1 + 0.5z + 0.25z^2 + ...
	f, _ := causal.New1Coeffs([]int{0, 1}, []float64{1, -0.5})

	y := []float64{1, 0, 0, 0}
	x := make([]float64, len(y))
	f.ApplyInverse1(y, x)
	fmt.Println(x)
	// Output:
	// [1 0.5 0.25 0.125]
}

func ExampleFilter_FactorWilsonBurg1() {
	// Factor the autocorrelation 1.25 - 0.5(z + 1/z) into its
	// minimum-phase causal filter 1 - 0.5z.
	f, _ := causal.New1([]int{0, 1})

	r := []float64{-0.5, 1.25, -0.5}
	if err := f.FactorWilsonBurg1(100, 1e-12, r); err != nil {
		fmt.Println(err)
		return
	}
	for j, a := range f.Coeffs() {
		fmt.Printf("a[%d] = %.4f\n", j, a)
	}
	// Output:
	// a[0] = 1.0000
	// a[1] = -0.5000
}
