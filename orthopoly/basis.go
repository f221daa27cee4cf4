// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthopoly

import (
	"fmt"
	"math"
)

// normTol is the largest relative disagreement tolerated between
// the closed-form squared norm ∏βⱼ and the norm integrated by the
// quadrature rule.
const normTol = 1e-6

// A Basis is the family of monic polynomials φ₀..φ_d orthogonal with
// respect to a Measure, together with the Gauss quadrature rule and
// squared norms derived from it.
//
// A Basis is immutable once constructed and safe for concurrent use.
type Basis struct {
	measure Measure
	rec     Recurrence
	rule    Rule
	norms   []float64
}

// New constructs the degree-d basis for measure m.
//
// This computes the recurrence coefficients, factorizes the Jacobi
// matrix to obtain a (d+1)-point Gauss rule and computes the squared
// norms ⟨φₖ,φₖ⟩ for k = 0..d with that rule, which is exact for
// every product φᵢφⱼ with i+j ≤ 2d+1. The integrated norms are
// checked against the closed form ∏_{j≤k} βⱼ and the closed form is
// retained, since it is free of rounding in the quadrature sum.
func New(m Measure, degree int) (*Basis, error) {
	rec, err := NewRecurrence(m, degree)
	if err != nil {
		return nil, err
	}
	rule, err := Gauss(rec)
	if err != nil {
		return nil, fmt.Errorf("%v degree %d: %w", m, degree, err)
	}

	b := &Basis{measure: m.key(), rec: rec, rule: rule}

	// Evaluate every basis polynomial at every node once.
	phis := make([][]float64, rule.Len())
	for i, x := range rule.Nodes {
		phis[i] = b.EvalUpTo(x, nil)
	}

	b.norms = make([]float64, degree+1)
	closed := 1.0
	for k := range b.norms {
		closed *= rec.Beta[k]
		var quad float64
		for i, w := range rule.Weights {
			quad += w * phis[i][k] * phis[i][k]
		}
		if math.Abs(quad-closed) > normTol*closed {
			return nil, fmt.Errorf("%w: %v degree %d: ‖φ%d‖² is %v by quadrature, %v in closed form", ErrDegenerateQuadrature, m, degree, k, quad, closed)
		}
		b.norms[k] = closed
	}
	return b, nil
}

// Measure returns the measure b is orthogonal with respect to.
func (b *Basis) Measure() Measure {
	return b.measure
}

// Degree returns the highest polynomial degree in b.
func (b *Basis) Degree() int {
	return len(b.rec.Alpha) - 1
}

// Recurrence returns a copy of b's recurrence coefficients.
func (b *Basis) Recurrence() Recurrence {
	return Recurrence{
		Alpha: append([]float64(nil), b.rec.Alpha...),
		Beta:  append([]float64(nil), b.rec.Beta...),
	}
}

// Rule returns a copy of b's Gauss quadrature rule.
func (b *Basis) Rule() Rule {
	return Rule{
		Nodes:   append([]float64(nil), b.rule.Nodes...),
		Weights: append([]float64(nil), b.rule.Weights...),
	}
}

// Mean returns the mean of b's measure. Since φ₁(t) = t - α₀, this
// is α₀.
func (b *Basis) Mean() float64 {
	return b.rec.Alpha[0]
}

// Variance returns the variance of b's measure, which is ‖φ₁‖² = β₁.
// It returns NaN if b has degree 0 and hence carries no information
// about the variance.
func (b *Basis) Variance() float64 {
	if b.Degree() < 1 {
		return math.NaN()
	}
	return b.norms[1]
}

func (b *Basis) checkDegree(degree int) error {
	if degree < 0 || degree > b.Degree() {
		return fmt.Errorf("%w: degree %d not in [0, %d]", ErrDegreeOutOfRange, degree, b.Degree())
	}
	return nil
}

// Norm2 returns the squared norm ⟨φ_degree, φ_degree⟩ under b's
// measure.
func (b *Basis) Norm2(degree int) (float64, error) {
	if err := b.checkDegree(degree); err != nil {
		return 0, err
	}
	return b.norms[degree], nil
}

// Eval returns φ_degree(xs[i]) for each i.
func (b *Basis) Eval(degree int, xs []float64) ([]float64, error) {
	if err := b.checkDegree(degree); err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = b.eval(degree, x)
	}
	return ys, nil
}

// eval runs the recurrence forward from φ₀ to φ_degree at x.
func (b *Basis) eval(degree int, x float64) float64 {
	prev, cur := 0.0, 1.0
	for k := 0; k < degree; k++ {
		prev, cur = cur, (x-b.rec.Alpha[k])*cur-b.rec.Beta[k]*prev
	}
	return cur
}

// EvalUpTo stores φ₀(x)..φ_d(x) in dst and returns it. If dst is nil
// a new slice is allocated; otherwise it must have length
// b.Degree()+1.
func (b *Basis) EvalUpTo(x float64, dst []float64) []float64 {
	n := b.Degree() + 1
	if dst == nil {
		dst = make([]float64, n)
	} else if len(dst) != n {
		panic("orthopoly: EvalUpTo destination has wrong length")
	}
	dst[0] = 1
	prev := 0.0
	for k := 0; k+1 < n; k++ {
		dst[k+1] = (x-b.rec.Alpha[k])*dst[k] - b.rec.Beta[k]*prev
		prev = dst[k]
	}
	return dst
}
