package grid

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestNew2Shape(t *testing.T) {
	x := New2(3, 5)
	if len(x) != 5 {
		t.Fatalf("outer length: got %d, want 5", len(x))
	}
	for i2, row := range x {
		if len(row) != 3 {
			t.Fatalf("row %d length: got %d, want 3", i2, len(row))
		}
		for i1, v := range row {
			if v != 0 {
				t.Errorf("x[%d][%d]: got %v, want 0", i2, i1, v)
			}
		}
	}
}

func TestNew2Contiguous(t *testing.T) {
	x := New2(4, 3)
	// Rows must not alias each other through spare capacity.
	x[0] = append(x[0], 99)
	if x[1][0] != 0 {
		t.Error("append to row 0 overwrote row 1")
	}
}

func TestNew3Shape(t *testing.T) {
	x := New3(2, 3, 4)
	if len(x) != 4 || len(x[0]) != 3 || len(x[0][0]) != 2 {
		t.Fatalf("shape: got [%d][%d][%d], want [4][3][2]", len(x), len(x[0]), len(x[0][0]))
	}
}

func TestZeroAndCopy(t *testing.T) {
	x := []float64{1, 2, 3}
	y := Copy1(x)
	y[0] = 9
	if x[0] != 1 {
		t.Error("Copy1 did not copy")
	}
	Zero1(x)
	for i, v := range x {
		if v != 0 {
			t.Errorf("x[%d]: got %v, want 0", i, v)
		}
	}
}

func TestFill1(t *testing.T) {
	x := make([]float64, 4)
	Fill1(2.5, x)
	for i, v := range x {
		if v != 2.5 {
			t.Errorf("x[%d]: got %v, want 2.5", i, v)
		}
	}
}

func TestCopyAt1(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5}
	dst := make([]float64, 7)
	CopyAt1(3, src, 1, dst, 2)
	want := []float64{0, 0, 2, 3, 4, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestCopyAt2(t *testing.T) {
	src := New2(3, 3)
	for i2 := range src {
		for i1 := range src[i2] {
			src[i2][i1] = float64(10*i2 + i1)
		}
	}
	dst := New2(5, 5)
	CopyAt2(2, 2, src, 1, 1, dst, 2, 3)
	if dst[3][2] != 11 || dst[3][3] != 12 || dst[4][2] != 21 || dst[4][3] != 22 {
		t.Errorf("block copy wrong: got %v %v %v %v",
			dst[3][2], dst[3][3], dst[4][2], dst[4][3])
	}
	if dst[0][0] != 0 || dst[2][2] != 0 {
		t.Error("copy touched samples outside the block")
	}
}

func TestCopyAt3(t *testing.T) {
	src := New3(2, 2, 2)
	src[1][1][1] = 7
	dst := New3(4, 4, 4)
	CopyAt3(2, 2, 2, src, 0, 0, 0, dst, 1, 1, 1)
	if dst[2][2][2] != 7 {
		t.Errorf("dst[2][2][2]: got %v, want 7", dst[2][2][2])
	}
}

func TestDot(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	if d := Dot1(x, y); d != 32 {
		t.Errorf("Dot1: got %v, want 32", d)
	}
	x2 := [][]float64{{1, 2}, {3, 4}}
	y2 := [][]float64{{1, 1}, {1, 1}}
	if d := Dot2(x2, y2); d != 10 {
		t.Errorf("Dot2: got %v, want 10", d)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 2.5, 3}
	if d := MaxAbsDiff1(x, y); math.Abs(d-0.5) > eps {
		t.Errorf("MaxAbsDiff1: got %v, want 0.5", d)
	}
}

func TestAutocorrelate1(t *testing.T) {
	// Autocorrelation of the two-sample sequence [1, -0.5]:
	// lag 0: 1 + 0.25 = 1.25, lag 1: -0.5.
	r := Autocorrelate1([]float64{1, -0.5}, 1)
	want := []float64{-0.5, 1.25, -0.5}
	if len(r) != len(want) {
		t.Fatalf("length: got %d, want %d", len(r), len(want))
	}
	for i := range want {
		if math.Abs(r[i]-want[i]) > eps {
			t.Errorf("r[%d]: got %v, want %v", i, r[i], want[i])
		}
	}
}

func TestAutocorrelate1Symmetric(t *testing.T) {
	x := []float64{0.3, -1.2, 0.7, 2.1, -0.4}
	r := Autocorrelate1(x, 3)
	n := len(r)
	for h := 0; h < n/2; h++ {
		if r[h] != r[n-1-h] {
			t.Errorf("asymmetric at %d: %v != %v", h, r[h], r[n-1-h])
		}
	}
}
