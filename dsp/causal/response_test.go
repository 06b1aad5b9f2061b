package causal

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestImpulseResponse1(t *testing.T) {
	f, err := New1Coeffs([]int{0, 2, 5}, []float64{1, -0.3, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	h := f.ImpulseResponse1(8)
	want := []float64{1, 0, -0.3, 0, 0, 0.1, 0, 0}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("h[%d]: got %v, want %v", i, h[i], want[i])
		}
	}
	// Lags beyond the requested length are dropped.
	h = f.ImpulseResponse1(4)
	if len(h) != 4 || h[2] != -0.3 {
		t.Errorf("truncated response wrong: %v", h)
	}
}

func TestResponseAt(t *testing.T) {
	f, err := New1Coeffs([]int{0, 1}, []float64{1, -0.5})
	if err != nil {
		t.Fatal(err)
	}
	// At DC: 1 - 0.5 = 0.5. At Nyquist: 1 + 0.5 = 1.5.
	if m := cmplx.Abs(f.ResponseAt(0, 48000)); !almostEqual(m, 0.5, eps) {
		t.Errorf("DC magnitude: got %v, want 0.5", m)
	}
	if m := cmplx.Abs(f.ResponseAt(24000, 48000)); !almostEqual(m, 1.5, eps) {
		t.Errorf("Nyquist magnitude: got %v, want 1.5", m)
	}
}

func TestResponse1UnitImpulse(t *testing.T) {
	f, err := New1([]int{0})
	if err != nil {
		t.Fatal(err)
	}
	amp, err := f.Response1(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(amp) != 9 {
		t.Fatalf("bin count: got %d, want 9", len(amp))
	}
	for i, v := range amp {
		if !almostEqual(v, 1, 1e-9) {
			t.Errorf("bin %d: got %v, want 1", i, v)
		}
	}
}

func TestResponse1MatchesDirect(t *testing.T) {
	f, err := New1Coeffs([]int{0, 1, 3}, []float64{1, -0.6, 0.2})
	if err != nil {
		t.Fatal(err)
	}
	const nfft = 32
	amp, err := f.Response1(nfft)
	if err != nil {
		t.Fatal(err)
	}
	// Bin k corresponds to normalized frequency k/nfft.
	sr := 1.0
	for k := range amp {
		freq := float64(k) / nfft * sr
		want := cmplx.Abs(f.ResponseAt(freq, sr))
		if math.Abs(amp[k]-want) > 1e-9 {
			t.Errorf("bin %d: got %v, want %v", k, amp[k], want)
		}
	}
}
