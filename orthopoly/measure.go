// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthopoly

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies one of the canonical measures.
type Kind int

//go:generate stringer -type=Kind

const (
	// Gaussian is the standard normal distribution. Its
	// orthogonal polynomials are the probabilists' Hermite
	// polynomials.
	Gaussian Kind = iota

	// Beta is the Beta distribution on [0, 1] with shape
	// parameters Measure.Alpha and Measure.Beta. Its orthogonal
	// polynomials are Jacobi polynomials shifted to [0, 1].
	Beta

	// Uniform is the uniform distribution on [0, 1]. Its
	// orthogonal polynomials are the shifted Legendre
	// polynomials.
	Uniform

	// Logistic is the standard logistic distribution with
	// location 0 and scale 1.
	Logistic

	numKinds
)

var kindNames = map[string]Kind{
	"gaussian": Gaussian,
	"normal":   Gaussian,
	"beta":     Beta,
	"uniform":  Uniform,
	"logistic": Logistic,
}

// ParseKind returns the Kind named by s. Matching is case-insensitive
// and "normal" is accepted as a synonym for "gaussian".
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown measure %q", ErrInvalidParameter, s)
	}
	return k, nil
}

// A Measure is a probability measure from one of the canonical
// families, together with its shape parameters.
type Measure struct {
	Kind Kind

	// Alpha and Beta are the shape parameters of a Beta measure.
	// Both must be > 0. They are ignored for other kinds.
	Alpha, Beta float64
}

// Validate returns an error wrapping ErrInvalidParameter if m does
// not describe a probability measure.
func (m Measure) Validate() error {
	switch m.Kind {
	case Gaussian, Uniform, Logistic:
		return nil
	case Beta:
		if !(m.Alpha > 0) || !(m.Beta > 0) || math.IsInf(m.Alpha, 0) || math.IsInf(m.Beta, 0) {
			return fmt.Errorf("%w: beta shape (%v, %v) must be positive and finite", ErrInvalidParameter, m.Alpha, m.Beta)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown measure kind %d", ErrInvalidParameter, int(m.Kind))
}

// Bounded returns whether m has support [0, 1] rather than the whole
// real line.
func (m Measure) Bounded() bool {
	return m.Kind == Beta || m.Kind == Uniform
}

// key returns m with the shape parameters of kinds that have none
// cleared, so that equivalent measures compare equal.
func (m Measure) key() Measure {
	if m.Kind != Beta {
		return Measure{Kind: m.Kind}
	}
	return m
}

func (m Measure) String() string {
	if m.Kind == Beta {
		return fmt.Sprintf("%v(%g, %g)", m.Kind, m.Alpha, m.Beta)
	}
	return m.Kind.String()
}
