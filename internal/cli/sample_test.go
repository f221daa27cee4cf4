// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleText(t *testing.T) {
	out, _, err := execute(t, "sample", "-d", "6", "--n", "100000", "--seed", "3", "2.0", "0.2")
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Exact sampling")
	assert.Contains(t, s, "N 100,000  mean ")
	for _, label := range []string{"min", "1%ile", "25%ile", "median", "99%ile", "max"} {
		assert.Contains(t, s, label)
	}
	assert.Contains(t, s, "95% CI of mean [")
	assert.Contains(t, s, "CI lo")
	assert.NotContains(t, s, "pdf")

	out, _, err = execute(t, "sample", "-m", "uniform", "-p", "native", "--density", "--points", "5", "0", "1")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "pdf")
	assert.Contains(t, out.String(), "scott bandwidth")
}

func TestSampleJSON(t *testing.T) {
	for _, method := range []string{"exact", "quadrature"} {
		t.Run(method, func(t *testing.T) {
			out, _, err := execute(t, "--format", "json", "sample", "-d", "6", "--n", "100000",
				"--method", method, "--density", "--points", "11", "2.0", "0.2")
			require.NoError(t, err)

			var res SampleResult
			resp := decode(t, out, &res)
			require.Equal(t, "ok", resp.Status)
			assert.Equal(t, 100000, res.N)
			assert.InDelta(t, 2.0, res.Mean, 0.01)
			assert.InDelta(t, 0.2, res.StdDev, 0.01)

			// t quantile ≈ 1.96 at this N.
			assert.Equal(t, defaultConfidence, res.Confidence)
			assert.InDelta(t, 2*1.96*res.StdDev/math.Sqrt(100000), res.MeanHi-res.MeanLo, 1e-4)
			assert.InDelta(t, res.Mean, (res.MeanLo+res.MeanHi)/2, 1e-12)

			require.Len(t, res.Quantiles, len(quantiles))
			for i, q := range res.Quantiles {
				assert.LessOrEqual(t, q.Lo, q.X, "quantile %v", q.P)
				assert.LessOrEqual(t, q.X, q.Hi, "quantile %v", q.P)
				if i > 0 {
					assert.LessOrEqual(t, res.Quantiles[i-1].X, q.X)
				}
			}
			// Intervals at the extremes are clamped to the sample.
			first, last := res.Quantiles[0], res.Quantiles[len(quantiles)-1]
			assert.Equal(t, first.X, first.Lo)
			assert.Equal(t, first.X, first.Hi)
			assert.Equal(t, last.X, last.Lo)
			assert.Equal(t, last.X, last.Hi)

			require.Len(t, res.Density, 11)
			for i, d := range res.Density {
				assert.GreaterOrEqual(t, d.PDF, 0.0)
				if i > 0 {
					assert.GreaterOrEqual(t, d.CDF, res.Density[i-1].CDF)
				}
			}
			assert.Less(t, res.Density[0].CDF, 0.01)
			assert.Greater(t, res.Density[10].CDF, 0.99)
		})
	}
}

func TestSampleBandwidth(t *testing.T) {
	// Logistic samples have IQR/1.349 below their standard
	// deviation, so Scott's rule picks a narrower kernel than
	// Silverman's and the density grid starts closer to the data.
	run := func(rule string) SampleResult {
		t.Helper()
		out, _, err := execute(t, "--format", "json", "sample", "-m", "logistic", "-d", "2", "--n", "20000",
			"--density", "--bandwidth", rule, "0", "1")
		require.NoError(t, err)
		var res SampleResult
		decode(t, out, &res)
		require.NotEmpty(t, res.Density)
		return res
	}
	scott, silverman := run("scott"), run("Silverman")
	assert.Equal(t, "scott", scott.Bandwidth)
	assert.Equal(t, "silverman", silverman.Bandwidth)
	assert.Equal(t, scott.Quantiles, silverman.Quantiles)
	assert.Greater(t, scott.Density[0].X, silverman.Density[0].X)
	assert.Less(t, scott.Density[len(scott.Density)-1].X, silverman.Density[len(silverman.Density)-1].X)
}

func TestSampleConfidence(t *testing.T) {
	narrow, _, err := execute(t, "--format", "json", "sample", "--n", "1000", "--confidence", "0.5", "0", "1")
	require.NoError(t, err)
	wide, _, err := execute(t, "--format", "json", "sample", "--n", "1000", "--confidence", "0.99", "0", "1")
	require.NoError(t, err)

	var n, w SampleResult
	decode(t, narrow, &n)
	decode(t, wide, &w)
	assert.Equal(t, n.Mean, w.Mean)
	assert.Less(t, n.MeanHi-n.MeanLo, w.MeanHi-w.MeanLo)
	med := len(quantiles) / 2
	assert.LessOrEqual(t, n.Quantiles[med].Hi-n.Quantiles[med].Lo, w.Quantiles[med].Hi-w.Quantiles[med].Lo)
}

func TestSampleSeeded(t *testing.T) {
	args := []string{"--format", "json", "sample", "-m", "logistic", "-d", "2", "--n", "50", "--seed", "7", "0", "1"}
	a, _, err := execute(t, args...)
	require.NoError(t, err)
	b, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestSampleErrors(t *testing.T) {
	out, _, err := execute(t, "sample", "--method", "mcmc", "0", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out.String(), ErrCodeInvalidParameter)

	out, _, err = execute(t, "sample", "--n", "1", "0", "1")
	require.Error(t, err)
	assert.Contains(t, out.String(), "at least 2 realizations")

	for _, conf := range []string{"0", "1", "1.5", "NaN"} {
		out, _, err = execute(t, "sample", "--confidence", conf, "0", "1")
		require.Error(t, err, conf)
		assert.Contains(t, out.String(), "confidence must be in (0, 1)")
	}

	out, _, err = execute(t, "sample", "--density", "--bandwidth", "wide", "0", "1")
	require.Error(t, err)
	assert.Contains(t, out.String(), ErrCodeInvalidParameter)
	assert.Contains(t, out.String(), `unknown bandwidth rule "wide"`)
}
