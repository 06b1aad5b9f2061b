// Package conv computes finite linear convolution and cross-correlation
// of sequences with explicit sample origins.
//
// Sequences are stored in zero-based arrays, but an array index need
// not equal its sample index. For each sequence the caller specifies
// the sample index of the first array element; e.g. kx is the sample
// index of x[0]. Samples outside the stored extent read as zero.
//
// Convolution of sequences x and y is
//
//	z[i] = sum_j x[j]*y[i-j]
//
// and cross-correlation is
//
//	z[i] = sum_j x[j]*y[i+j]
//
// where i and j are sample (not array) indices. Cross-correlation is
// not commutative: Xcor1(x, y) generally differs from Xcor1(y, x).
//
// For example, a five-sample centered moving average of y is
//
//	x := []float64{0.2, 0.2, 0.2, 0.2, 0.2}
//	conv.Conv1(x, -2, y, 0, z, 0)
//
// where the origin kx = -2 makes x symmetric about sample zero.
package conv
