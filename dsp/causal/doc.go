// Package causal implements multidimensional causal filters that are
// linear and shift-invariant, together with Wilson-Burg spectral
// factorization.
//
// The output samples of a causal filter depend only on present and
// past input samples. In two dimensions causal filters are also
// called non-symmetric half-plane (NSHP) filters, and this notion of
// causal extends to higher dimensions.
//
// A causal filter is a linear operator with a corresponding
// anti-causal transpose (adjoint) operator. A causal filter may have
// a causal inverse, and its transpose may have an anti-causal
// inverse. The filter is a stable all-zero filter that may or may not
// be minimum-phase, that is, may or may not have a causal stable
// inverse. That inverse is a recursive all-pole filter, as described
// by Claerbout, J., 1998, Multidimensional recursive filters via a
// helix: Geophysics, v. 63, n. 5, p. 1532-1541.
//
// The filter and its transpose, inverse, and inverse-transpose may
// all be applied in-place: the input and output arrays may be the
// same array.
//
// [Filter] carries one fixed coefficient per lag. [LocalFilter]
// applies the same four operators with coefficients that vary from
// sample to sample, fetched through a coefficient source callback.
//
// Wilson-Burg factorization ([Filter.FactorWilsonBurg1] and its 2-D
// and 3-D forms) computes the minimum-phase causal filter whose
// cascade with its transpose approximates a given sampled
// autocorrelation.
package causal
