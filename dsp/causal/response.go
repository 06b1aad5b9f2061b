package causal

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ImpulseResponse1 returns the filter's 1-D impulse response as an
// array of length n. Lags at or beyond n are dropped.
func (f *Filter) ImpulseResponse1(n int) []float64 {
	h := make([]float64, n)
	for j := 0; j < f.m; j++ {
		if l := f.lag1[j]; l < n {
			h[l] += f.a[j]
		}
	}
	return h
}

// ResponseAt returns the complex frequency response A(e^{-jw}) of the
// 1-D filter at the given frequency (Hz) and sample rate (Hz).
func (f *Filter) ResponseAt(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for j := 0; j < f.m; j++ {
		h += complex(f.a[j], 0) * cmplx.Exp(complex(0, -w*float64(f.lag1[j])))
	}
	return h
}

// Response1 computes the one-sided amplitude response of the 1-D
// filter on an FFT grid. nfft is raised to cover the filter's longest
// lag if it is shorter, then rounded up to a power of two; the result
// has nfft/2+1 bins (of that rounded nfft) from DC through Nyquist.
func (f *Filter) Response1(nfft int) ([]float64, error) {
	if nfft < f.max1+1 {
		nfft = f.max1 + 1
	}
	n := nextPow2(nfft)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("causal: failed to create FFT plan: %w", err)
	}

	h := f.ImpulseResponse1(n)
	in := make([]complex128, n)
	for i, v := range h {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("causal: forward FFT failed: %w", err)
	}

	nb := n/2 + 1
	re := make([]float64, nb)
	im := make([]float64, nb)
	for i := 0; i < nb; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	amp := make([]float64, nb)
	vecmath.Magnitude(amp, re, im)
	return amp, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
