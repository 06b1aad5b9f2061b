// Command wbfactor computes the minimum-phase causal factor of a 1-D
// autocorrelation using Wilson-Burg iterations.
//
// Usage:
//
//	wbfactor [flags] r0 r1 r2 ...
//
// The arguments are the one-sided autocorrelation samples from the
// zero lag outward; the full symmetric autocorrelation is formed by
// mirroring. By default the filter has one lag per sample given.
//
// Examples:
//
//	wbfactor 1.25 -0.5
//	wbfactor -lags 0,1,2,3 1334 867 242 24
//	wbfactor -maxiter 200 -eps 1e-12 -response 16 1.25 -0.5
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-causal/dsp/causal"
)

var (
	flagLags     = flag.String("lags", "", "comma-separated filter lags (default 0..len(r)-1)")
	flagMaxiter  = flag.Int("maxiter", 100, "maximum Wilson-Burg iterations")
	flagEps      = flag.Float64("eps", 1e-12, "relative convergence tolerance")
	flagResponse = flag.Int("response", 0, "if > 0, also print the amplitude response on an n-point FFT grid (rounded up to a power of two)")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	half, err := parseFloats(flag.Args())
	if err != nil {
		fatalf("bad autocorrelation sample: %v", err)
	}

	// Mirror the one-sided samples into the full odd-length
	// autocorrelation with the zero lag in the middle.
	nl := len(half) - 1
	r := make([]float64, 2*nl+1)
	for h := 0; h <= nl; h++ {
		r[nl+h] = half[h]
		r[nl-h] = half[h]
	}

	lags, err := parseLags(*flagLags, len(half))
	if err != nil {
		fatalf("bad -lags: %v", err)
	}

	f, err := causal.New1(lags)
	if err != nil {
		fatalf("%v", err)
	}
	if err := f.FactorWilsonBurg1(*flagMaxiter, *flagEps, r); err != nil {
		fatalf("%v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAG\tCOEFF")
	a := f.Coeffs()
	for j, l := range f.Lag1() {
		fmt.Fprintf(w, "%d\t%.8g\n", l, a[j])
	}
	w.Flush()

	if *flagResponse > 0 {
		amp, err := f.Response1(*flagResponse)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "BIN\tAMPLITUDE")
		for i, v := range amp {
			fmt.Fprintf(w, "%d\t%.6g\n", i, v)
		}
		w.Flush()
	}
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, 0, len(args))
	for _, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseLags(s string, n int) ([]int, error) {
	if s == "" {
		lags := make([]int, n)
		for i := range lags {
			lags[i] = i
		}
		return lags, nil
	}
	parts := strings.Split(s, ",")
	lags := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		lags = append(lags, v)
	}
	return lags, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wbfactor [flags] r0 r1 r2 ...")
	fmt.Fprintln(os.Stderr, "Factors a symmetric autocorrelation into its minimum-phase causal filter.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "wbfactor: "+format+"\n", args...)
	os.Exit(1)
}
