// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pce

import (
	"fmt"
	"strings"

	"github.com/aclements/go-chaos/orthopoly"
)

// Param selects how the two parameters passed to Affine are
// interpreted.
type Param int

//go:generate stringer -type=Param

const (
	// Native parameters are the measure's own: mean and standard
	// deviation for Gaussian, location and scale for Logistic,
	// and the bounds a < b of the support for Uniform and Beta.
	Native Param = iota

	// MeanStd parameters are a target mean and standard
	// deviation, whatever the measure.
	MeanStd
)

// ParseParam returns the Param named by s: "native" or "meanstd"
// (case-insensitive).
func ParseParam(s string) (Param, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native":
		return Native, nil
	case "meanstd", "mean-std":
		return MeanStd, nil
	}
	return 0, fmt.Errorf("%w: unknown parameterization %q", orthopoly.ErrInvalidParameter, s)
}
