// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthopoly

import (
	"fmt"
	"math"
)

// Recurrence holds the coefficients of the monic three-term
// recurrence
//
//	φₖ₊₁(t) = (t - Alpha[k])φₖ(t) - Beta[k]φₖ₋₁(t)
//
// for k = 0..Degree(). Beta[0] multiplies φ₋₁ = 0 and so plays no
// part in the recurrence; by convention it holds the total mass of
// the measure, which is 1 for every measure in this package.
type Recurrence struct {
	Alpha, Beta []float64
}

// Degree returns the highest degree d for which r holds coefficients.
func (r Recurrence) Degree() int {
	return len(r.Alpha) - 1
}

// NewRecurrence returns the recurrence coefficients of the monic
// polynomials orthogonal with respect to m, up to and including
// degree.
func NewRecurrence(m Measure, degree int) (Recurrence, error) {
	if degree < 0 {
		return Recurrence{}, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	if err := m.Validate(); err != nil {
		return Recurrence{}, err
	}

	r := Recurrence{
		Alpha: make([]float64, degree+1),
		Beta:  make([]float64, degree+1),
	}
	r.Beta[0] = 1
	switch m.Kind {
	case Gaussian:
		// Probabilists' Hermite: αₖ = 0, βₖ = k.
		for k := 1; k <= degree; k++ {
			r.Beta[k] = float64(k)
		}
	case Uniform:
		// Legendre on [-1,1] has αₖ = 0, βₖ = k²/(4k²-1).
		// Shifting to [0,1] halves the nodes and quarters βₖ.
		for k := 0; k <= degree; k++ {
			r.Alpha[k] = 0.5
			if k > 0 {
				fk := float64(k)
				r.Beta[k] = fk * fk / (4 * (4*fk*fk - 1))
			}
		}
	case Beta:
		jacobiShifted(r, m.Beta-1, m.Alpha-1)
	case Logistic:
		// The logistic weight e⁻ᵗ/(1+e⁻ᵗ)² has αₖ = 0 and
		// βₖ = k⁴π²/(4k²-1).
		for k := 1; k <= degree; k++ {
			fk := float64(k)
			r.Beta[k] = fk * fk * fk * fk * math.Pi * math.Pi / (4*fk*fk - 1)
		}
	}

	for k := 1; k <= degree; k++ {
		if !(r.Beta[k] > 0) || math.IsInf(r.Beta[k], 0) || math.IsNaN(r.Alpha[k]) {
			return Recurrence{}, fmt.Errorf("%w: %v recurrence coefficient β[%d] = %v", ErrDegenerateQuadrature, m, k, r.Beta[k])
		}
	}
	return r, nil
}

// jacobiShifted fills r with the recurrence of the Jacobi weight
// (1-x)ᵃ(1+x)ᵇ on [-1,1], mapped onto [0,1] by t = (1+x)/2. Under
// that map the weight becomes tᵇ(1-t)ᵃ, so a Beta(α, β) density
// corresponds to a = β-1, b = α-1.
func jacobiShifted(r Recurrence, a, b float64) {
	ab := a + b
	for k := range r.Alpha {
		fk := float64(k)
		s := 2*fk + ab

		var alpha float64
		if k == 0 {
			// The general form is 0/0 when a+b = 0.
			alpha = (b - a) / (ab + 2)
		} else {
			alpha = (b*b - a*a) / (s * (s + 2))
		}
		r.Alpha[k] = (1 + alpha) / 2

		switch {
		case k == 0:
			// Total mass of the normalized density.
		case k == 1:
			// The general form is 0/0 when a+b = -1.
			beta := 4 * (1 + a) * (1 + b) / ((2 + ab) * (2 + ab) * (3 + ab))
			r.Beta[k] = beta / 4
		default:
			beta := 4 * fk * (fk + a) * (fk + b) * (fk + ab) / (s * s * (s + 1) * (s - 1))
			r.Beta[k] = beta / 4
		}
	}
}
