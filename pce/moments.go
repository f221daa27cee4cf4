// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pce

import (
	"fmt"
	"math"

	"github.com/aclements/go-chaos/orthopoly"
)

// checkCoeffs verifies that coeffs is a non-empty coefficient vector
// that fits in b.
func checkCoeffs(coeffs []float64, b *orthopoly.Basis) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("%w: empty coefficient vector", orthopoly.ErrInvalidParameter)
	}
	if len(coeffs)-1 > b.Degree() {
		return fmt.Errorf("%w: %d coefficients for a basis of degree %d", orthopoly.ErrDegreeOutOfRange, len(coeffs), b.Degree())
	}
	return nil
}

// Mean returns the mean of the random variable with coefficients
// coeffs in b, which is coeffs[0].
func Mean(coeffs []float64, b *orthopoly.Basis) (float64, error) {
	if err := checkCoeffs(coeffs, b); err != nil {
		return 0, err
	}
	return coeffs[0], nil
}

// Variance returns the variance Σ_{i≥1} coeffs[i]²‖φᵢ‖² of the random
// variable with coefficients coeffs in b.
func Variance(coeffs []float64, b *orthopoly.Basis) (float64, error) {
	if err := checkCoeffs(coeffs, b); err != nil {
		return 0, err
	}
	var v float64
	for i := 1; i < len(coeffs); i++ {
		n, err := b.Norm2(i)
		if err != nil {
			return 0, err
		}
		v += coeffs[i] * coeffs[i] * n
	}
	return v, nil
}

// StdDev returns the standard deviation of the random variable with
// coefficients coeffs in b.
func StdDev(coeffs []float64, b *orthopoly.Basis) (float64, error) {
	v, err := Variance(coeffs, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
