// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pce represents random variables as polynomial chaos
// expansions
//
//	X = Σᵢ xᵢφᵢ(ξ)
//
// in the orthogonal basis φᵢ of a germ ξ with a known measure (see
// package orthopoly). A coefficient vector x₀..x_L is meaningful only
// together with the basis it was computed for, and L may not exceed
// the degree of that basis.
//
// Because φ₀ = 1 and every other φᵢ has mean zero, the mean of X is
// x₀; by orthogonality its variance is Σ_{i≥1} xᵢ²‖φᵢ‖². Neither
// requires sampling.
package pce // import "github.com/aclements/go-chaos/pce"
