package grid

// Autocorrelate1 returns the sampled autocorrelation of x for lags
// -maxLag through +maxLag, as an odd-length array of 2*maxLag+1
// samples with the zero-lag in the middle. Samples outside x read as
// zero, so the result is the biased estimate
//
//	r[maxLag+h] = sum_i x[i]*x[i+h]
//
// The result is symmetric about its middle sample, which makes it a
// valid input for Wilson-Burg factorization.
func Autocorrelate1(x []float64, maxLag int) []float64 {
	if maxLag < 0 {
		maxLag = 0
	}
	r := make([]float64, 2*maxLag+1)
	n := len(x)
	for h := 0; h <= maxLag; h++ {
		var s float64
		for i := 0; i+h < n; i++ {
			s += x[i] * x[i+h]
		}
		r[maxLag+h] = s
		r[maxLag-h] = s
	}
	return r
}
