package conv

import "errors"

// Errors returned by convolution and correlation functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// rect2 reports whether every row of x has length n1.
func rect2(x [][]float64, n1 int) bool {
	for _, row := range x {
		if len(row) != n1 {
			return false
		}
	}
	return true
}

// rect3 reports whether every plane of x is n1 by n2.
func rect3(x [][][]float64, n1, n2 int) bool {
	for _, plane := range x {
		if len(plane) != n2 || !rect2(plane, n1) {
			return false
		}
	}
	return true
}

// Conv1 computes the 1-D convolution of x and y into z.
// kx, ky, and kz are the sample indices of x[0], y[0], and z[0].
// Every element of z is overwritten.
func Conv1(x []float64, kx int, y []float64, ky int, z []float64, kz int) error {
	if len(x) == 0 || len(y) == 0 || len(z) == 0 {
		return ErrEmptyInput
	}
	lx, ly, lz := len(x), len(y), len(z)
	k := kz - kx - ky
	for iz := 0; iz < lz; iz++ {
		i := iz + k
		jlo := max(0, i-ly+1)
		jhi := min(lx-1, i)
		var s float64
		for j := jlo; j <= jhi; j++ {
			s += x[j] * y[i-j]
		}
		z[iz] = s
	}
	return nil
}

// Conv2 computes the 2-D convolution of x and y into z.
// (kx1,kx2), (ky1,ky2), and (kz1,kz2) are the sample indices of
// x[0][0], y[0][0], and z[0][0]. Every element of z is overwritten.
func Conv2(
	x [][]float64, kx1, kx2 int,
	y [][]float64, ky1, ky2 int,
	z [][]float64, kz1, kz2 int,
) error {
	if len(x) == 0 || len(y) == 0 || len(z) == 0 ||
		len(x[0]) == 0 || len(y[0]) == 0 || len(z[0]) == 0 {
		return ErrEmptyInput
	}
	lx1, lx2 := len(x[0]), len(x)
	ly1, ly2 := len(y[0]), len(y)
	lz1, lz2 := len(z[0]), len(z)
	if !rect2(x, lx1) || !rect2(y, ly1) || !rect2(z, lz1) {
		return ErrLengthMismatch
	}
	k1 := kz1 - kx1 - ky1
	k2 := kz2 - kx2 - ky2
	for iz2 := 0; iz2 < lz2; iz2++ {
		i2 := iz2 + k2
		j2lo := max(0, i2-ly2+1)
		j2hi := min(lx2-1, i2)
		for iz1 := 0; iz1 < lz1; iz1++ {
			i1 := iz1 + k1
			j1lo := max(0, i1-ly1+1)
			j1hi := min(lx1-1, i1)
			var s float64
			for j2 := j2lo; j2 <= j2hi; j2++ {
				xj2 := x[j2]
				yi2 := y[i2-j2]
				for j1 := j1lo; j1 <= j1hi; j1++ {
					s += xj2[j1] * yi2[i1-j1]
				}
			}
			z[iz2][iz1] = s
		}
	}
	return nil
}

// Conv3 computes the 3-D convolution of x and y into z.
// (kx1,kx2,kx3), (ky1,ky2,ky3), and (kz1,kz2,kz3) are the sample
// indices of x[0][0][0], y[0][0][0], and z[0][0][0]. Every element of
// z is overwritten.
func Conv3(
	x [][][]float64, kx1, kx2, kx3 int,
	y [][][]float64, ky1, ky2, ky3 int,
	z [][][]float64, kz1, kz2, kz3 int,
) error {
	if len(x) == 0 || len(y) == 0 || len(z) == 0 ||
		len(x[0]) == 0 || len(y[0]) == 0 || len(z[0]) == 0 {
		return ErrEmptyInput
	}
	lx1, lx2, lx3 := len(x[0][0]), len(x[0]), len(x)
	ly1, ly2, ly3 := len(y[0][0]), len(y[0]), len(y)
	lz1, lz2, lz3 := len(z[0][0]), len(z[0]), len(z)
	if lx1 == 0 || ly1 == 0 || lz1 == 0 {
		return ErrEmptyInput
	}
	if !rect3(x, lx1, lx2) || !rect3(y, ly1, ly2) || !rect3(z, lz1, lz2) {
		return ErrLengthMismatch
	}
	k1 := kz1 - kx1 - ky1
	k2 := kz2 - kx2 - ky2
	k3 := kz3 - kx3 - ky3
	for iz3 := 0; iz3 < lz3; iz3++ {
		i3 := iz3 + k3
		j3lo := max(0, i3-ly3+1)
		j3hi := min(lx3-1, i3)
		for iz2 := 0; iz2 < lz2; iz2++ {
			i2 := iz2 + k2
			j2lo := max(0, i2-ly2+1)
			j2hi := min(lx2-1, i2)
			for iz1 := 0; iz1 < lz1; iz1++ {
				i1 := iz1 + k1
				j1lo := max(0, i1-ly1+1)
				j1hi := min(lx1-1, i1)
				var s float64
				for j3 := j3lo; j3 <= j3hi; j3++ {
					for j2 := j2lo; j2 <= j2hi; j2++ {
						xj := x[j3][j2]
						yi := y[i3-j3][i2-j2]
						for j1 := j1lo; j1 <= j1hi; j1++ {
							s += xj[j1] * yi[i1-j1]
						}
					}
				}
				z[iz3][iz2][iz1] = s
			}
		}
	}
	return nil
}

// Xcor1 computes the 1-D cross-correlation of x and y into z.
// It equals the convolution of x-reversed with y; the origins follow
// the same conventions as [Conv1].
func Xcor1(x []float64, kx int, y []float64, ky int, z []float64, kz int) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	rx := reverse1(x)
	return Conv1(rx, 1-kx-len(x), y, ky, z, kz)
}

// Xcor2 computes the 2-D cross-correlation of x and y into z.
func Xcor2(
	x [][]float64, kx1, kx2 int,
	y [][]float64, ky1, ky2 int,
	z [][]float64, kz1, kz2 int,
) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return ErrEmptyInput
	}
	rx := reverse2(x)
	return Conv2(rx, 1-kx1-len(x[0]), 1-kx2-len(x), y, ky1, ky2, z, kz1, kz2)
}

// Xcor3 computes the 3-D cross-correlation of x and y into z.
func Xcor3(
	x [][][]float64, kx1, kx2, kx3 int,
	y [][][]float64, ky1, ky2, ky3 int,
	z [][][]float64, kz1, kz2, kz3 int,
) error {
	if len(x) == 0 || len(x[0]) == 0 || len(x[0][0]) == 0 {
		return ErrEmptyInput
	}
	rx := reverse3(x)
	return Conv3(rx,
		1-kx1-len(x[0][0]), 1-kx2-len(x[0]), 1-kx3-len(x),
		y, ky1, ky2, ky3, z, kz1, kz2, kz3)
}

func reverse1(x []float64) []float64 {
	n := len(x)
	r := make([]float64, n)
	for i := range r {
		r[i] = x[n-1-i]
	}
	return r
}

func reverse2(x [][]float64) [][]float64 {
	n2 := len(x)
	r := make([][]float64, n2)
	for i2 := range r {
		r[i2] = reverse1(x[n2-1-i2])
	}
	return r
}

func reverse3(x [][][]float64) [][][]float64 {
	n3 := len(x)
	r := make([][][]float64, n3)
	for i3 := range r {
		r[i3] = reverse2(x[n3-1-i3])
	}
	return r
}
