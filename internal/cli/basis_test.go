// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasisText(t *testing.T) {
	out, _, err := execute(t, "basis", "--measure", "gaussian", "--degree", "3")
	require.NoError(t, err)
	assertGolden(t, "basis_gaussian3", out.Bytes())
}

func TestBasisJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "basis", "-m", "beta", "--alpha", "2", "--beta", "5", "-d", "4")
	require.NoError(t, err)

	var res BasisResult
	resp := decode(t, out, &res)
	require.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Beta(2, 5)", res.Measure)
	assert.Equal(t, 4, res.Degree)
	assert.Len(t, res.Alpha, 5)
	assert.Len(t, res.Norms, 5)
	require.Len(t, res.Nodes, 5)

	var sum float64
	for i, x := range res.Nodes {
		assert.True(t, x > 0 && x < 1, "node %v outside (0, 1)", x)
		sum += res.Weights[i]
	}
	assert.InDelta(t, 1, sum, 1e-13)
	assert.InDelta(t, 2.0/7, res.Alpha[0], 1e-15)
}

func TestBasisCommandStandalone(t *testing.T) {
	// Subcommands work without the root's setup, as in tests of
	// individual commands.
	buf := &bytes.Buffer{}
	cmd := NewBasisCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"-m", "logistic", "-d", "2"})
	require.NoError(t, cmd.Execute())

	var res BasisResult
	decode(t, buf, &res)
	assert.Equal(t, "Logistic", res.Measure)
	assert.InDelta(t, math.Pi*math.Pi/3, res.Norms[1], 1e-12)
}

func TestBasisErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
		exit int
	}{
		{"unknown measure", []string{"-m", "cauchy"}, ErrCodeInvalidParameter, ExitCommandError},
		{"missing beta shapes", []string{"-m", "beta"}, ErrCodeInvalidParameter, ExitCommandError},
		{"negative degree", []string{"-d", "-1"}, ErrCodeInvalidDegree, ExitCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"basis"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.exit, GetExitCode(err))
			assert.Contains(t, out.String(), "Error ["+tt.code+"]")

			out, _, err = execute(t, append([]string{"--format", "json", "basis"}, tt.args...)...)
			require.Error(t, err)
			resp := decode(t, out, nil)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
