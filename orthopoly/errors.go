// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthopoly

import "errors"

var (
	// ErrInvalidParameter is returned when a shape parameter lies
	// outside the domain of its measure, such as a non-positive
	// Beta shape, or when a conversion receives parameters that
	// describe no random variable (σ ≤ 0, a ≥ b, ...).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidDegree is returned when a basis is requested with
	// a negative degree.
	ErrInvalidDegree = errors.New("invalid degree")

	// ErrDegreeOutOfRange is returned when an operation asks for a
	// polynomial beyond the degree the basis was built with.
	ErrDegreeOutOfRange = errors.New("degree out of range")

	// ErrDegenerateQuadrature is returned when the recurrence or
	// the quadrature rule derived from it is numerically invalid:
	// a non-positive βₖ, a non-positive weight, or coincident
	// nodes.
	ErrDegenerateQuadrature = errors.New("degenerate quadrature rule")
)
