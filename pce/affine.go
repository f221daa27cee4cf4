// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pce

import (
	"fmt"
	"math"

	"github.com/aclements/go-chaos/orthopoly"
)

// Affine returns the degree-0 and degree-1 coefficients of the
// random variable described by p1 and p2 in basis b. kind selects
// whether p1 and p2 are b's native parameters (see AffineNative) or a
// mean and standard deviation (see AffineMeanStd).
func Affine(p1, p2 float64, b *orthopoly.Basis, kind Param) ([]float64, error) {
	switch kind {
	case Native:
		return AffineNative(p1, p2, b)
	case MeanStd:
		return AffineMeanStd(p1, p2, b)
	}
	return nil, fmt.Errorf("%w: unknown parameterization %v", orthopoly.ErrInvalidParameter, kind)
}

// AffineNative returns the coefficients (x₀, x₁) for which x₀ + x₁φ₁(ξ)
// has the distribution named by b's measure with native parameters p1
// and p2:
//
//	Gaussian  N(μ=p1, σ=p2),          σ > 0
//	Logistic  location p1, scale p2,  scale > 0
//	Uniform   U(a=p1, b=p2),          a < b
//	Beta      Beta(α, β) on [p1, p2], p1 < p2
//
// Since φ₁(ξ) = ξ - E[ξ], the linear map a + (b-a)ξ of a germ on
// [0, 1] has x₀ = a + (b-a)E[ξ] and x₁ = b - a, and the linear map
// μ + sξ of a standard germ on ℝ has x₀ = μ and x₁ = s.
func AffineNative(p1, p2 float64, b *orthopoly.Basis) ([]float64, error) {
	if err := checkAffine(p1, p2, b); err != nil {
		return nil, err
	}
	m := b.Measure()
	switch m.Kind {
	case orthopoly.Gaussian, orthopoly.Logistic:
		if !(p2 > 0) {
			return nil, fmt.Errorf("%w: %v scale %v must be positive", orthopoly.ErrInvalidParameter, m, p2)
		}
		return []float64{p1, p2}, nil
	case orthopoly.Uniform, orthopoly.Beta:
		if !(p1 < p2) {
			return nil, fmt.Errorf("%w: %v interval [%v, %v] is empty", orthopoly.ErrInvalidParameter, m, p1, p2)
		}
		w := p2 - p1
		return []float64{p1 + w*b.Mean(), w}, nil
	}
	return nil, fmt.Errorf("%w: unknown measure %v", orthopoly.ErrInvalidParameter, m)
}

// AffineMeanStd returns the coefficients (x₀, x₁) of a random variable
// with the given mean and standard deviation in basis b. x₀ is the
// mean and x₁ is std/‖φ₁‖, so the variable has the shape of b's
// measure, shifted and scaled.
//
// A zero std yields x₁ = 0, a deterministic variable.
func AffineMeanStd(mean, std float64, b *orthopoly.Basis) ([]float64, error) {
	if err := checkAffine(mean, std, b); err != nil {
		return nil, err
	}
	if std < 0 {
		return nil, fmt.Errorf("%w: standard deviation %v is negative", orthopoly.ErrInvalidParameter, std)
	}
	n1, err := b.Norm2(1)
	if err != nil {
		return nil, err
	}
	return []float64{mean, std / math.Sqrt(n1)}, nil
}

func checkAffine(p1, p2 float64, b *orthopoly.Basis) error {
	if math.IsNaN(p1) || math.IsInf(p1, 0) || math.IsNaN(p2) || math.IsInf(p2, 0) {
		return fmt.Errorf("%w: parameters (%v, %v) must be finite", orthopoly.ErrInvalidParameter, p1, p2)
	}
	if b.Degree() < 1 {
		return fmt.Errorf("%w: affine coefficients need a basis of degree ≥ 1, have %d", orthopoly.ErrDegreeOutOfRange, b.Degree())
	}
	return nil
}
