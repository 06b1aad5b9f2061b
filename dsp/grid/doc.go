// Package grid provides dense 1-D, 2-D, and 3-D real array utilities
// used throughout the library: allocation with contiguous backing
// storage, zeroing, copying with offsets, inner products, and a
// sampled autocorrelation helper.
//
// Multidimensional arrays follow the [i3][i2][i1] convention: the
// first (fastest-varying) dimension is the innermost slice index.
// A 2-D array of extents n1 by n2 is a [][]float64 of length n2 whose
// rows have length n1.
package grid
