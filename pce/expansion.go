// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pce

import (
	"math"

	"github.com/aclements/go-chaos/orthopoly"
)

// An Expansion is a random variable represented by its coefficients
// in an orthogonal basis. It is immutable.
type Expansion struct {
	basis  *orthopoly.Basis
	coeffs []float64
}

// NewExpansion returns the expansion with the given coefficients in b.
// coeffs is copied.
func NewExpansion(b *orthopoly.Basis, coeffs []float64) (*Expansion, error) {
	if err := checkCoeffs(coeffs, b); err != nil {
		return nil, err
	}
	return &Expansion{b, append([]float64(nil), coeffs...)}, nil
}

// NewAffine returns the expansion of the random variable described by
// p1 and p2 under parameterization kind. See Affine.
func NewAffine(p1, p2 float64, b *orthopoly.Basis, kind Param) (*Expansion, error) {
	c, err := Affine(p1, p2, b, kind)
	if err != nil {
		return nil, err
	}
	return &Expansion{b, c}, nil
}

// Basis returns the basis e is expanded in.
func (e *Expansion) Basis() *orthopoly.Basis {
	return e.basis
}

// Coeffs returns a copy of e's coefficients.
func (e *Expansion) Coeffs() []float64 {
	return append([]float64(nil), e.coeffs...)
}

// Mean returns the mean of e, its zeroth coefficient.
func (e *Expansion) Mean() float64 {
	return e.coeffs[0]
}

// Variance returns the variance of e.
func (e *Expansion) Variance() float64 {
	v, err := Variance(e.coeffs, e.basis)
	if err != nil {
		// Coefficients were checked on construction.
		panic(err)
	}
	return v
}

// StdDev returns the standard deviation of e.
func (e *Expansion) StdDev() float64 {
	return math.Sqrt(e.Variance())
}

// Eval returns the values of e at germ values xs.
func (e *Expansion) Eval(xs []float64) []float64 {
	ys, err := Eval(e.coeffs, xs, e.basis)
	if err != nil {
		panic(err)
	}
	return ys
}

// Sample returns n realizations of e drawn by s.
func (e *Expansion) Sample(n int, s Sampler) ([]float64, error) {
	return s.Sample(n, e.coeffs, e.basis)
}
