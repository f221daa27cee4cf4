// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution.  Unlike many techniques, kernel density estimation is
// non-parametric: in general, it doesn't assume any particular true
// distribution (note, however, that the resulting distribution
// depends deeply on the selected bandwidth, and many bandwidth
// estimation techniques assume normal reference rules).
//
// The kernel is Gaussian. To construct a kernel density estimate,
// create an instance of KDE and then use the From method to provide
// data.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax] specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf. The density is reflected at finite
	// bounds, so no mass leaks outside the support.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(s Sample) float64 {
	return 1.06 * s.StdDev() * math.Pow(s.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	hScale := 1.06 * math.Pow(s.Weight(), -1.0/5)
	stdDev := s.StdDev()
	// IQR/1.349 is a robust estimator of the standard deviation
	// of a Gaussian distribution.
	if robust := s.IQR() / 1.349; robust > 0 && robust < stdDev {
		return hScale * robust
	}
	return hScale * stdDev
}

// From returns the kernel density estimate for the sample s.
//
// From panics if s is empty or its weights do not match its values.
func (k KDE) From(s Sample) Dist {
	if len(s.Xs) == 0 {
		panic("stats: KDE of empty sample")
	}
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) {
		// All points are equal. Any positive bandwidth is as
		// good as another.
		h = 1
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}

	kernels := make([]distuv.Normal, len(s.Xs))
	for i, x := range s.Xs {
		kernels[i] = distuv.Normal{Mu: x, Sigma: h}
	}
	return &kdeDist{kernels, s.Weights, s.Weight(), h, min, max}
}

type kdeDist struct {
	kernels  []distuv.Normal
	weights  []float64
	total    float64
	h        float64
	min, max float64 // Support bounds
}

// each returns the weighted mean of f over the kernels.
func (kde *kdeDist) each(f func(k distuv.Normal) float64) float64 {
	var sum float64
	for i, k := range kde.kernels {
		w := 1.0
		if kde.weights != nil {
			w = kde.weights[i]
		}
		sum += w * f(k)
	}
	return sum / kde.total
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x > kde.max {
		return 0
	}
	y := func(x float64) float64 {
		return kde.each(func(k distuv.Normal) float64 { return k.Prob(x) })
	}
	p := y(x)
	// Reflect the mass that fell outside each finite bound.
	if !math.IsInf(kde.min, -1) {
		p += y(2*kde.min - x)
	}
	if !math.IsInf(kde.max, 1) {
		p += y(2*kde.max - x)
	}
	return p
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}
	y := func(x float64) float64 {
		return kde.each(func(k distuv.Normal) float64 { return k.CDF(x) })
	}
	c := y(x)
	if !math.IsInf(kde.min, -1) {
		// Mass below the minimum is reflected back over it.
		c -= y(2*kde.min - x)
	}
	if !math.IsInf(kde.max, 1) {
		// Likewise above the maximum, counting only what lands
		// in [min, x].
		far := 1.0
		if !math.IsInf(kde.min, -1) {
			far = y(2*kde.max - kde.min)
		}
		c += far - y(2*kde.max-x)
	}
	return math.Max(0, math.Min(c, 1))
}

// Bounds returns the range of the data widened by three bandwidths,
// limited to the support.
func (kde *kdeDist) Bounds() (low float64, high float64) {
	low, high = math.Inf(1), math.Inf(-1)
	for i, k := range kde.kernels {
		if kde.weights != nil && kde.weights[i] == 0 {
			continue
		}
		low, high = math.Min(low, k.Mu), math.Max(high, k.Mu)
	}
	low, high = low-3*kde.h, high+3*kde.h
	return math.Max(low, kde.min), math.Min(high, kde.max)
}
