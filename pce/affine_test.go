// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-chaos/orthopoly"
)

var allMeasures = []orthopoly.Measure{
	{Kind: orthopoly.Gaussian},
	{Kind: orthopoly.Uniform},
	{Kind: orthopoly.Beta, Alpha: 2, Beta: 5},
	{Kind: orthopoly.Beta, Alpha: 0.5, Beta: 0.5},
	{Kind: orthopoly.Logistic},
}

func newBasis(t testing.TB, m orthopoly.Measure, degree int) *orthopoly.Basis {
	t.Helper()
	b, err := orthopoly.New(m, degree)
	require.NoError(t, err)
	return b
}

func TestAffineGaussianExact(t *testing.T) {
	b := newBasis(t, orthopoly.Measure{Kind: orthopoly.Gaussian}, 6)

	c, err := Affine(2.0, 0.2, b, MeanStd)
	require.NoError(t, err)
	require.Equal(t, []float64{2.0, 0.2}, c)

	mean, err := Mean(c, b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mean)

	std, err := StdDev(c, b)
	require.NoError(t, err)
	assert.Equal(t, 0.2, std)
}

func TestAffineMeanStdRoundTrip(t *testing.T) {
	for _, m := range allMeasures {
		b := newBasis(t, m, 4)
		for _, ms := range [][2]float64{{0, 1}, {2, 0.2}, {-15, 3.5}, {1e3, 1e-3}} {
			c, err := AffineMeanStd(ms[0], ms[1], b)
			require.NoError(t, err, "%v", m)

			mean, err := Mean(c, b)
			require.NoError(t, err)
			assert.Equal(t, ms[0], mean, "%v mean", m)

			std, err := StdDev(c, b)
			require.NoError(t, err)
			assert.InEpsilon(t, ms[1], std, 1e-12, "%v std", m)
		}
	}
}

func TestAffineMeanStdZero(t *testing.T) {
	for _, m := range allMeasures {
		b := newBasis(t, m, 3)
		c, err := AffineMeanStd(7.25, 0, b)
		require.NoError(t, err)
		assert.Equal(t, []float64{7.25, 0}, c)

		std, err := StdDev(c, b)
		require.NoError(t, err)
		assert.Zero(t, std)
		mean, _ := Mean(c, b)
		assert.Equal(t, 7.25, mean)
	}
}

func TestAffineNative(t *testing.T) {
	type test struct {
		m         orthopoly.Measure
		p1, p2    float64
		want      []float64
		mean, std float64
	}
	tests := []test{
		{orthopoly.Measure{Kind: orthopoly.Gaussian}, 2, 0.2, []float64{2, 0.2}, 2, 0.2},
		{orthopoly.Measure{Kind: orthopoly.Uniform}, -1, 3, []float64{1, 4}, 1, 4 / math.Sqrt(12)},
		{
			orthopoly.Measure{Kind: orthopoly.Beta, Alpha: 2, Beta: 5}, 1, 3,
			[]float64{1 + 4.0/7, 2},
			1 + 4.0/7, 2 * math.Sqrt(10.0/(49*8)),
		},
		{orthopoly.Measure{Kind: orthopoly.Logistic}, 1, 2, []float64{1, 2}, 1, 2 * math.Pi / math.Sqrt(3)},
	}
	for _, test := range tests {
		t.Run(test.m.String(), func(t *testing.T) {
			b := newBasis(t, test.m, 2)
			c, err := Affine(test.p1, test.p2, b, Native)
			require.NoError(t, err)
			assert.InDeltaSlice(t, test.want, c, 1e-14)

			mean, err := Mean(c, b)
			require.NoError(t, err)
			assert.InDelta(t, test.mean, mean, 1e-14)
			std, err := StdDev(c, b)
			require.NoError(t, err)
			assert.InEpsilon(t, test.std, std, 1e-12)
		})
	}
}

func TestAffineErrors(t *testing.T) {
	gauss := newBasis(t, orthopoly.Measure{Kind: orthopoly.Gaussian}, 3)
	unif := newBasis(t, orthopoly.Measure{Kind: orthopoly.Uniform}, 3)
	logis := newBasis(t, orthopoly.Measure{Kind: orthopoly.Logistic}, 3)
	beta := newBasis(t, orthopoly.Measure{Kind: orthopoly.Beta, Alpha: 2, Beta: 2}, 3)
	deg0 := newBasis(t, orthopoly.Measure{Kind: orthopoly.Gaussian}, 0)

	type test struct {
		name   string
		p1, p2 float64
		b      *orthopoly.Basis
		kind   Param
		want   error
	}
	tests := []test{
		{"zero sigma", 0, 0, gauss, Native, orthopoly.ErrInvalidParameter},
		{"negative sigma", 0, -1, gauss, Native, orthopoly.ErrInvalidParameter},
		{"zero scale", 0, 0, logis, Native, orthopoly.ErrInvalidParameter},
		{"empty interval", 1, 1, unif, Native, orthopoly.ErrInvalidParameter},
		{"reversed interval", 3, 1, beta, Native, orthopoly.ErrInvalidParameter},
		{"NaN", math.NaN(), 1, gauss, Native, orthopoly.ErrInvalidParameter},
		{"infinite std", 0, math.Inf(1), gauss, MeanStd, orthopoly.ErrInvalidParameter},
		{"negative std", 0, -0.5, unif, MeanStd, orthopoly.ErrInvalidParameter},
		{"degree 0 native", 0, 1, deg0, Native, orthopoly.ErrDegreeOutOfRange},
		{"degree 0 meanstd", 0, 1, deg0, MeanStd, orthopoly.ErrDegreeOutOfRange},
		{"unknown param", 0, 1, gauss, Param(9), orthopoly.ErrInvalidParameter},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := Affine(test.p1, test.p2, test.b, test.kind)
			assert.ErrorIs(t, err, test.want)
			assert.Nil(t, c)
		})
	}
}

func TestMomentErrors(t *testing.T) {
	b := newBasis(t, orthopoly.Measure{Kind: orthopoly.Uniform}, 2)

	_, err := Mean(nil, b)
	assert.ErrorIs(t, err, orthopoly.ErrInvalidParameter)
	_, err = StdDev([]float64{}, b)
	assert.ErrorIs(t, err, orthopoly.ErrInvalidParameter)
	_, err = Variance([]float64{1, 2, 3, 4}, b)
	assert.ErrorIs(t, err, orthopoly.ErrDegreeOutOfRange)

	// Fewer coefficients than the basis holds is fine.
	v, err := Variance([]float64{5}, b)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestVarianceHigherOrder(t *testing.T) {
	// X = ξ² - 1 for standard normal ξ is χ²₁ shifted to zero
	// mean, with variance 2.
	b := newBasis(t, orthopoly.Measure{Kind: orthopoly.Gaussian}, 4)
	v, err := Variance([]float64{0, 0, 1}, b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestParseParam(t *testing.T) {
	for in, want := range map[string]Param{
		"native":   Native,
		"meanstd":  MeanStd,
		"Mean-Std": MeanStd,
		" NATIVE ": Native,
	} {
		got, err := ParseParam(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseParam("moments")
	assert.ErrorIs(t, err, orthopoly.ErrInvalidParameter)

	assert.Equal(t, "MeanStd", MeanStd.String())
}
