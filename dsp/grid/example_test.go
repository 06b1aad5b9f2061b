package grid_test

import (
	"fmt"

	"github.com/cwbudde/algo-causal/dsp/grid"
)

func ExampleAutocorrelate1() {
	// Autocorrelation of the minimum-phase sequence 1 - 0.5z for
	// lags -1, 0, +1.
	r := grid.Autocorrelate1([]float64{1, -0.5}, 1)
	for i, v := range r {
		fmt.Printf("r[%d] = %.2f\n", i-1, v)
	}
	// Output:
	// r[-1] = -0.50
	// r[0] = 1.25
	// r[1] = -0.50
}

func ExampleNew2() {
	x := grid.New2(3, 2)
	x[1][2] = 7
	fmt.Println(len(x), len(x[0]), x[1][2])
	// Output:
	// 2 3 7
}
