// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"reflect"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 17.5,
		.40: 20,
		.50: 27.5,
		.95: 47.5,
		1:   50,
		2:   50,
	})

	// Unsorted input is not modified.
	u := Sample{Xs: []float64{50, 15, 40, 20, 35}}
	if got := u.Quantile(.5); got != 27.5 {
		t.Errorf("unsorted median = %v; want 27.5", got)
	}
	if u.Xs[0] != 50 {
		t.Errorf("Quantile sorted its receiver: %v", u.Xs)
	}

	if q := (Sample{}).Quantile(.5); !math.IsNaN(q) {
		t.Errorf("empty Quantile = %v; want NaN", q)
	}
	if q := s.Quantile(math.NaN()); !math.IsNaN(q) {
		t.Errorf("Quantile(NaN) = %v; want NaN", q)
	}
}

func TestMeanCI(t *testing.T) {
	var xs []float64
	inf := math.Inf(1)
	naneq := func(a, b float64) bool {
		return a == b || aeq(a, b) || (math.IsNaN(a) && math.IsNaN(b))
	}
	check := func(conf, wmean, wlo, whi float64) {
		t.Helper()
		mean, lo, hi := MeanCI(xs, conf)
		if !(naneq(mean, wmean) && naneq(lo, wlo) && naneq(hi, whi)) {
			t.Errorf("for %v, want %v@[%v,%v], got %v@[%v,%v]", xs, wmean, wlo, whi, mean, lo, hi)
		}
	}

	xs = []float64{-8, 2, 3, 4, 5, 6}
	check(0, 2, 2, 2)
	check(0.95, 2, -3.351092806089359, 7.351092806089359)
	check(0.99, 2, -6.39357495385287, 10.39357495385287)
	check(1, 2, -inf, inf)

	xs = []float64{1}
	check(0, 1, 1, 1)
	check(0.95, 1, -inf, inf)
	check(1, 1, -inf, inf)

	xs = nil
	check(0, math.NaN(), math.NaN(), math.NaN())
	check(0.95, math.NaN(), math.NaN(), math.NaN())
	check(1, math.NaN(), math.NaN(), math.NaN())
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if got := s.Sum(); got != 40 {
		t.Errorf("Sum() = %v; want 40", got)
	}
	if got := s.Weight(); got != 8 {
		t.Errorf("Weight() = %v; want 8", got)
	}
	if got := s.Mean(); got != 5 {
		t.Errorf("Mean() = %v; want 5", got)
	}
	if got := s.Variance(); !aeq(32.0/7, got) {
		t.Errorf("Variance() = %v; want 32/7", got)
	}
	if got := s.StdDev(); !aeq(math.Sqrt(32.0/7), got) {
		t.Errorf("StdDev() = %v; want √(32/7)", got)
	}

	w := Sample{Xs: []float64{1, 2, 3}, Weights: []float64{1, 1, 2}}
	if got := w.Sum(); got != 9 {
		t.Errorf("weighted Sum() = %v; want 9", got)
	}
	if got := w.Weight(); got != 4 {
		t.Errorf("weighted Weight() = %v; want 4", got)
	}
	if got := w.Mean(); got != 2.25 {
		t.Errorf("weighted Mean() = %v; want 2.25", got)
	}

	one := Sample{Xs: []float64{1}}
	if !math.IsNaN(one.Variance()) || !math.IsNaN((Sample{}).Mean()) {
		t.Errorf("degenerate samples should have NaN moments")
	}
}

func TestSampleBounds(t *testing.T) {
	check := func(s Sample, wlo, whi float64) {
		t.Helper()
		lo, hi := s.Bounds()
		if lo != wlo || hi != whi {
			t.Errorf("%+v.Bounds() = %v, %v; want %v, %v", s, lo, hi, wlo, whi)
		}
	}
	check(Sample{Xs: []float64{3, -1, 7, 2}}, -1, 7)
	check(Sample{Xs: []float64{-1, 2, 3, 7}, Sorted: true}, -1, 7)
	check(Sample{Xs: []float64{3, -1, 7, 2}, Weights: []float64{1, 0, 0, 1}}, 2, 3)

	lo, hi := Sample{Xs: []float64{1}, Weights: []float64{0}}.Bounds()
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("zero-weight Bounds() = %v, %v; want NaN", lo, hi)
	}
}

func TestSampleSortCopy(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}, Weights: []float64{30, 10, 20}}
	c := s.Copy()
	c.Sort()
	if !c.Sorted {
		t.Error("Sort did not set Sorted")
	}
	if want := []float64{1, 2, 3}; !reflect.DeepEqual(c.Xs, want) {
		t.Errorf("sorted Xs = %v; want %v", c.Xs, want)
	}
	if want := []float64{10, 20, 30}; !reflect.DeepEqual(c.Weights, want) {
		t.Errorf("sorted Weights = %v; want %v", c.Weights, want)
	}
	if s.Xs[0] != 3 || s.Weights[0] != 30 {
		t.Errorf("sorting a copy changed the original: %+v", s)
	}
	if got := c.IQR(); got <= 0 {
		t.Errorf("IQR() = %v; want > 0", got)
	}
}
