// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i].  If Weights is
	// nil, all Xs have weight 1.  Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Mean returns the arithmetic mean of the Sample, or NaN if the
// Sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(s.Xs, s.Weights)
}

// Variance returns the sample variance of xs, with Bessel's
// correction. It is NaN for fewer than two points.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return math.NaN()
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// MeanCI returns the mean and the bounds of its confidence interval
// at the given confidence level, assuming the xs are independent
// draws from a normal population. The interval follows Student's t
// distribution with len(xs)-1 degrees of freedom.
//
// With a single point, or at confidence 1, the interval is
// unbounded. If xs is empty, all three results are NaN.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	mean = stat.Mean(xs, nil)
	if confidence <= 0 {
		return mean, mean, mean
	}
	if confidence >= 1 || len(xs) < 2 {
		return mean, math.Inf(-1), math.Inf(1)
	}
	n := float64(len(xs))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}.Quantile((1 + confidence) / 2)
	d := t * stat.StdDev(xs, nil) / math.Sqrt(n)
	return mean, mean - d, mean + d
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is weighted, this ignores samples with zero weight.
//
// This is constant time if s.Sorted and there are no weights.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return math.NaN(), math.NaN()
	}
	if s.Weights == nil {
		if s.Sorted {
			return s.Xs[0], s.Xs[len(s.Xs)-1]
		}
		return floats.Min(s.Xs), floats.Max(s.Xs)
	}

	min, max = math.Inf(1), math.Inf(-1)
	for i, x := range s.Xs {
		if s.Weights[i] != 0 {
			min, max = math.Min(min, x), math.Max(max, x)
		}
	}
	if math.IsInf(min, 1) {
		return math.NaN(), math.NaN()
	}
	return
}

// Quantile returns the pth quantile of the Sample, linearly
// interpolating between data points. p is clamped to [0, 1]; a NaN
// p yields NaN.
//
// This is constant time if s.Sorted and s.Weights == nil.
func (s Sample) Quantile(p float64) float64 {
	if len(s.Xs) == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	p = math.Max(0, math.Min(1, p))
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return stat.Quantile(p, stat.LinInterp, s.Xs, s.Weights)
}

// IQR returns the interquartile range of the Sample.
func (s Sample) IQR() float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Quantile(0.75) - s.Quantile(0.25)
}

type sampleSorter struct {
	xs      []float64
	weights []float64
}

func (p *sampleSorter) Len() int {
	return len(p.xs)
}

func (p *sampleSorter) Less(i, j int) bool {
	return p.xs[i] < p.xs[j]
}

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Sort(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	weights := []float64(nil)
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}
