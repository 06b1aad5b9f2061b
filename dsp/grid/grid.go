package grid

import "math"

// New2 returns a zero-filled 2-D array with extents n1 (inner) and n2
// (outer). Rows share one contiguous backing slice.
func New2(n1, n2 int) [][]float64 {
	if n1 < 0 {
		n1 = 0
	}
	if n2 < 0 {
		n2 = 0
	}
	backing := make([]float64, n1*n2)
	x := make([][]float64, n2)
	for i2 := range x {
		x[i2] = backing[i2*n1 : (i2+1)*n1 : (i2+1)*n1]
	}
	return x
}

// New3 returns a zero-filled 3-D array with extents n1 (inner), n2,
// and n3 (outer). Planes and rows share one contiguous backing slice.
func New3(n1, n2, n3 int) [][][]float64 {
	if n1 < 0 {
		n1 = 0
	}
	if n2 < 0 {
		n2 = 0
	}
	if n3 < 0 {
		n3 = 0
	}
	backing := make([]float64, n1*n2*n3)
	x := make([][][]float64, n3)
	for i3 := range x {
		plane := make([][]float64, n2)
		for i2 := range plane {
			off := (i3*n2 + i2) * n1
			plane[i2] = backing[off : off+n1 : off+n1]
		}
		x[i3] = plane
	}
	return x
}

// Zero1 sets all samples of x to 0.
func Zero1(x []float64) {
	for i := range x {
		x[i] = 0
	}
}

// Zero2 sets all samples of x to 0.
func Zero2(x [][]float64) {
	for _, row := range x {
		Zero1(row)
	}
}

// Zero3 sets all samples of x to 0.
func Zero3(x [][][]float64) {
	for _, plane := range x {
		Zero2(plane)
	}
}

// Fill1 sets all samples of x to v.
func Fill1(v float64, x []float64) {
	for i := range x {
		x[i] = v
	}
}

// Copy1 returns a deep copy of x.
func Copy1(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	return y
}

// Copy2 returns a deep copy of x.
func Copy2(x [][]float64) [][]float64 {
	n2 := len(x)
	n1 := 0
	if n2 > 0 {
		n1 = len(x[0])
	}
	y := New2(n1, n2)
	for i2, row := range x {
		copy(y[i2], row)
	}
	return y
}

// Copy3 returns a deep copy of x.
func Copy3(x [][][]float64) [][][]float64 {
	n3 := len(x)
	n2, n1 := 0, 0
	if n3 > 0 {
		n2 = len(x[0])
		if n2 > 0 {
			n1 = len(x[0][0])
		}
	}
	y := New3(n1, n2, n3)
	for i3, plane := range x {
		for i2, row := range plane {
			copy(y[i3][i2], row)
		}
	}
	return y
}

// CopyAt1 copies n samples from src starting at soff into dst
// starting at doff.
func CopyAt1(n int, src []float64, soff int, dst []float64, doff int) {
	copy(dst[doff:doff+n], src[soff:soff+n])
}

// CopyAt2 copies an m1-by-m2 block from src starting at (s1,s2) into
// dst starting at (d1,d2).
func CopyAt2(m1, m2 int, src [][]float64, s1, s2 int, dst [][]float64, d1, d2 int) {
	for i2 := 0; i2 < m2; i2++ {
		CopyAt1(m1, src[s2+i2], s1, dst[d2+i2], d1)
	}
}

// CopyAt3 copies an m1-by-m2-by-m3 block from src starting at
// (s1,s2,s3) into dst starting at (d1,d2,d3).
func CopyAt3(m1, m2, m3 int, src [][][]float64, s1, s2, s3 int, dst [][][]float64, d1, d2, d3 int) {
	for i3 := 0; i3 < m3; i3++ {
		CopyAt2(m1, m2, src[s3+i3], s1, s2, dst[d3+i3], d1, d2)
	}
}

// Dot1 returns the inner product of x and y.
func Dot1(x, y []float64) float64 {
	var d float64
	for i := range x {
		d += x[i] * y[i]
	}
	return d
}

// Dot2 returns the inner product of x and y.
func Dot2(x, y [][]float64) float64 {
	var d float64
	for i2 := range x {
		d += Dot1(x[i2], y[i2])
	}
	return d
}

// Dot3 returns the inner product of x and y.
func Dot3(x, y [][][]float64) float64 {
	var d float64
	for i3 := range x {
		d += Dot2(x[i3], y[i3])
	}
	return d
}

// MaxAbsDiff1 returns the largest absolute element-wise difference
// between x and y.
func MaxAbsDiff1(x, y []float64) float64 {
	var m float64
	for i := range x {
		if d := math.Abs(x[i] - y[i]); d > m {
			m = d
		}
	}
	return m
}

// MaxAbsDiff2 returns the largest absolute element-wise difference
// between x and y.
func MaxAbsDiff2(x, y [][]float64) float64 {
	var m float64
	for i2 := range x {
		if d := MaxAbsDiff1(x[i2], y[i2]); d > m {
			m = d
		}
	}
	return m
}

// MaxAbsDiff3 returns the largest absolute element-wise difference
// between x and y.
func MaxAbsDiff3(x, y [][][]float64) float64 {
	var m float64
	for i3 := range x {
		if d := MaxAbsDiff2(x[i3], y[i3]); d > m {
			m = d
		}
	}
	return m
}
