// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orthopoly constructs bases of polynomials orthogonal with
// respect to a handful of canonical probability measures.
//
// A basis is built in three steps. The measure determines the
// coefficients (αₖ, βₖ) of the monic three-term recurrence
//
//	φ₋₁(t) = 0
//	φ₀(t)  = 1
//	φₖ₊₁(t) = (t - αₖ)φₖ(t) - βₖφₖ₋₁(t)
//
// those coefficients determine a Gauss quadrature rule through the
// eigen-decomposition of the Jacobi matrix (Golub, G. H. and Welsch,
// J. H. (1969). "Calculation of Gauss Quadrature Rules". Mathematics
// of Computation 23 (106): 221–230), and the rule in turn yields the
// squared norms ⟨φₖ,φₖ⟩. All of this happens once in New; the
// resulting Basis is immutable and may be shared between goroutines.
package orthopoly // import "github.com/aclements/go-chaos/orthopoly"

// MaxStableDegree is the largest degree for which the recurrences
// and quadrature rules in this package are known to be accurate to
// near machine precision. Larger degrees are accepted, but the
// conditioning of the Jacobi matrix and the dynamic range of the
// weights degrade, and New may eventually report
// ErrDegenerateQuadrature.
const MaxStableDegree = 30
