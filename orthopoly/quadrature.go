// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthopoly

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// nodeTol is the relative distance below which two quadrature nodes
// are considered coincident.
const nodeTol = 1e-12

// A Rule is a Gauss quadrature rule: Nodes in strictly increasing
// order with positive Weights summing to the total mass of the
// measure.
//
// A rule with n nodes built from a recurrence integrates every
// polynomial of degree at most 2n-1 exactly under that measure.
type Rule struct {
	Nodes, Weights []float64
}

// Len returns the number of nodes in q.
func (q Rule) Len() int {
	return len(q.Nodes)
}

// Integrate returns the quadrature approximation Σ wᵢf(xᵢ) of the
// integral of f under the measure q was built for.
func (q Rule) Integrate(f func(x float64) float64) float64 {
	ys := make([]float64, len(q.Nodes))
	for i, x := range q.Nodes {
		ys[i] = f(x)
	}
	return floats.Dot(q.Weights, ys)
}

// Gauss returns the (r.Degree()+1)-point Gauss quadrature rule of the
// measure whose recurrence coefficients are r.
//
// The nodes are the eigenvalues of the symmetric tridiagonal Jacobi
// matrix
//
//	    ⎡ α₀  √β₁             ⎤
//	    ⎢ √β₁ α₁  √β₂         ⎥
//	J = ⎢     √β₂ α₂  ⋱       ⎥
//	    ⎢         ⋱   ⋱   √βₙ ⎥
//	    ⎣             √βₙ αₙ  ⎦
//
// and the weight of each node is β₀ times the square of the first
// component of its normalized eigenvector.
//
// Only the eigenvalues are taken from the factorization. The
// eigenvector for node x is (q₀(x), .., qₙ(x)) up to normalization,
// where qₖ are the orthonormal polynomials, so its first component is
// recovered as 1/√Σqₖ(x)². Computed this way, small weights in the
// tails keep their relative accuracy, which the components of a
// numerically computed eigenvector do not.
func Gauss(r Recurrence) (Rule, error) {
	n := len(r.Alpha)
	if n == 0 || len(r.Beta) != n {
		return Rule{}, fmt.Errorf("%w: recurrence has %d α and %d β coefficients", ErrDegenerateQuadrature, len(r.Alpha), len(r.Beta))
	}
	if !(r.Beta[0] > 0) {
		return Rule{}, fmt.Errorf("%w: total mass β[0] = %v", ErrDegenerateQuadrature, r.Beta[0])
	}

	if n == 1 {
		// The 1-point rule sits at the mean.
		return Rule{Nodes: []float64{r.Alpha[0]}, Weights: []float64{r.Beta[0]}}, nil
	}

	jac := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		jac.SetSym(i, i, r.Alpha[i])
		if i > 0 {
			if !(r.Beta[i] > 0) {
				return Rule{}, fmt.Errorf("%w: β[%d] = %v", ErrDegenerateQuadrature, i, r.Beta[i])
			}
			jac.SetSym(i-1, i, math.Sqrt(r.Beta[i]))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(jac, false) {
		return Rule{}, fmt.Errorf("%w: eigen-decomposition of %d×%d Jacobi matrix failed", ErrDegenerateQuadrature, n, n)
	}
	nodes := eig.Values(nil)

	weights := make([]float64, n)
	for i, x := range nodes {
		v0 := firstComponent(r, x)
		weights[i] = r.Beta[0] * v0 * v0
	}

	q := Rule{Nodes: nodes, Weights: weights}
	if err := q.check(); err != nil {
		return Rule{}, err
	}
	return q, nil
}

// firstComponent returns the first component of the normalized
// eigenvector of the Jacobi matrix of r for eigenvalue x.
func firstComponent(r Recurrence, x float64) float64 {
	// Orthonormal recurrence:
	// √βₖ₊₁ qₖ₊₁ = (x - αₖ)qₖ - √βₖ qₖ₋₁, with q₀ = 1.
	prev, cur := 0.0, 1.0
	sum := 1.0
	sqb := 0.0
	for k := 0; k+1 < len(r.Alpha); k++ {
		next := math.Sqrt(r.Beta[k+1])
		prev, cur = cur, ((x-r.Alpha[k])*cur-sqb*prev)/next
		sqb = next
		sum += cur * cur
	}
	return 1 / math.Sqrt(sum)
}

// check verifies that q has positive weights and distinct,
// increasing nodes.
func (q Rule) check() error {
	for i, w := range q.Weights {
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight %d = %v at node %v", ErrDegenerateQuadrature, i, w, q.Nodes[i])
		}
	}
	for i := 1; i < len(q.Nodes); i++ {
		lo, hi := q.Nodes[i-1], q.Nodes[i]
		scale := math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))
		if !(hi-lo > nodeTol*scale) {
			return fmt.Errorf("%w: nodes %d and %d coincide (%v, %v)", ErrDegenerateQuadrature, i-1, i, lo, hi)
		}
	}
	return nil
}
