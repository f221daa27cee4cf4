// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// QuantileCIResult is the confidence interval for a quantile.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval. This
	// is simply a copy of the argument to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of this interval.
	// This will be >= the requested confidence.
	Confidence float64

	// LoOrder and HiOrder are the order statistics that bound the
	// confidence interval. By convention, these are 1-based, so
	// given an ordered slice of samples Xs, the CI is
	// Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// These may be outside the range of the sample, which
	// indicates that corresponding bound is negative or positive
	// infinity.
	LoOrder, HiOrder int

	// Ambiguous indicates that the interval LoOrder+1 to
	// HiOrder+1 has equivalent confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from a sample. It returns negative or positive infinity for a bound
// that lies outside the sample.
//
// s must be unweighted and have q.N points.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if s.Weights != nil {
		panic("cannot compute quantile CI on a weighted sample")
	}
	if len(s.Xs) != q.N {
		panic("sample size differs from computed quantile CI")
	}

	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if q.LoOrder < 1 {
		lo = math.Inf(-1)
	} else {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder-1 >= len(s.Xs) {
		hi = math.Inf(1)
	} else {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which QuantileCI
// uses a normal approximation. This is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n.
//
// The number of sample points below the population quantile is
// binomially distributed, so the interval is the narrowest run of
// order statistics whose binomial mass reaches confidence. Where two
// runs tie, the result is biased left and marked Ambiguous.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{Quantile: q, N: n}

	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder = 0
		res.HiOrder = n + 1
		return res
	}
	confidence = math.Max(0, confidence)

	// PMF(k) is the probability that the population quantile
	// falls between order statistics k and k+1.
	samp := BinomialDist{N: n, P: q}

	var l, r int
	if samp.N <= quantileCIApproxThreshold {
		// Grow outward from the (lower) mode, taking the larger
		// neighbor each time. Probabilities decrease
		// monotonically away from the mode.
		x := int(math.Ceil(float64(samp.N+1)*samp.P) - 1)
		if samp.P == 0 {
			x = 0
		}
		accum := samp.PMF(float64(x))

		// [l, r) is the summed interval.
		l, r = x, x+1
		lp, rp := samp.PMF(float64(l-1)), samp.PMF(float64(r))
		res.Ambiguous = rp == accum

		// Stop if there's nothing left to accumulate, in case
		// rounding keeps accum below confidence.
		for accum < confidence && (lp > 0 || rp > 0) {
			res.Ambiguous = lp == rp
			if lp >= rp {
				accum += lp
				l--
				lp = samp.PMF(float64(l - 1))
			} else {
				accum += rp
				r++
				rp = samp.PMF(float64(r))
			}
		}
		res.Confidence = accum
	} else {
		norm := samp.NormalApprox()
		alpha := (1 - confidence) / 2

		// Central confidence band of the approximation.
		l1 := norm.Quantile(alpha)
		r1 := 2*norm.Mu - l1

		// With the continuity correction, binomial point k is
		// normal band [k-0.5, k+0.5]. Round [l1, r1] out to
		// those boundaries and recover k.
		floorInt := func(x float64) int {
			return int(math.Floor(x))
		}
		l = floorInt(math.Floor(l1-0.5)+0.5) + 1
		r = floorInt(math.Ceil(r1-0.5)+0.5) + 1

		// Pr[l <= X < r] under the continuity correction.
		cdf := func(l, r int) float64 {
			return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
		}
		res.Confidence = cdf(l, r)
		// The band is symmetric. Take the left-biased band if
		// it still reaches confidence.
		rBiased := r - 1
		if aBiased := cdf(l, rBiased); aBiased >= confidence && aBiased < res.Confidence {
			res.Confidence, res.Ambiguous = aBiased, true
			r = rBiased
		}
		if l <= 0 && r >= n+1 {
			// The normal tails never quite sum to 1, but the
			// full range certainly holds the quantile.
			res.Confidence = 1
			res.Ambiguous = false
		}
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}
