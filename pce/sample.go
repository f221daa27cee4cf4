// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pce

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-chaos/orthopoly"
)

// Method is a way of drawing germ samples from a measure.
type Method int

//go:generate stringer -type=Method

const (
	// Exact draws from the measure itself, by inverse CDF or
	// another closed-form generator.
	Exact Method = iota

	// Quadrature draws the nodes of the basis' Gauss rule with
	// probabilities given by their weights. The resulting
	// discrete distribution matches the measure's moments up to
	// degree 2d+1.
	Quadrature
)

// ParseMethod returns the Method named by s: "exact" or "quadrature"
// (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact, nil
	case "quadrature":
		return Quadrature, nil
	}
	return 0, fmt.Errorf("%w: unknown sampling method %q", orthopoly.ErrInvalidParameter, s)
}

// A Sampler draws realizations of germs and expansions.
//
// The zero value draws exact samples from the global source in
// golang.org/x/exp/rand.
type Sampler struct {
	// Src is the source of randomness. If nil, the global source
	// is used. Src is advanced by every draw, so a Sampler with a
	// non-nil Src is only safe for concurrent use if Src is.
	Src rand.Source

	// Method selects how germ samples are drawn.
	Method Method
}

type rander interface {
	Rand() float64
}

// logisticRand draws from a standard logistic by inverting its CDF.
type logisticRand struct {
	u distuv.Uniform
	l distuv.Logistic
}

func (r logisticRand) Rand() float64 {
	p := r.u.Rand()
	for p == 0 {
		// The quantile at 0 is -∞.
		p = r.u.Rand()
	}
	return r.l.Quantile(p)
}

// nodeRand draws quadrature nodes with probability proportional to
// their weight.
type nodeRand struct {
	nodes []float64
	cat   distuv.Categorical
}

func (r nodeRand) Rand() float64 {
	return r.nodes[int(r.cat.Rand())]
}

func (s Sampler) germ(b *orthopoly.Basis) (rander, error) {
	if s.Method == Quadrature {
		q := b.Rule()
		return nodeRand{q.Nodes, distuv.NewCategorical(q.Weights, s.Src)}, nil
	}
	if s.Method != Exact {
		return nil, fmt.Errorf("%w: unknown sampling method %v", orthopoly.ErrInvalidParameter, s.Method)
	}

	m := b.Measure()
	switch m.Kind {
	case orthopoly.Gaussian:
		return distuv.Normal{Mu: 0, Sigma: 1, Src: s.Src}, nil
	case orthopoly.Uniform:
		return distuv.Uniform{Min: 0, Max: 1, Src: s.Src}, nil
	case orthopoly.Beta:
		return distuv.Beta{Alpha: m.Alpha, Beta: m.Beta, Src: s.Src}, nil
	case orthopoly.Logistic:
		return logisticRand{distuv.Uniform{Min: 0, Max: 1, Src: s.Src}, distuv.Logistic{Mu: 0, S: 1}}, nil
	}
	return nil, fmt.Errorf("%w: no sampler for %v", orthopoly.ErrInvalidParameter, m)
}

// Measure returns n independent draws of the germ of basis b.
func (s Sampler) Measure(n int, b *orthopoly.Basis) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", orthopoly.ErrInvalidParameter, n)
	}
	r, err := s.germ(b)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Rand()
	}
	return xs, nil
}

// Sample returns n independent realizations of the random variable
// with coefficients coeffs in b.
func (s Sampler) Sample(n int, coeffs []float64, b *orthopoly.Basis) ([]float64, error) {
	if err := checkCoeffs(coeffs, b); err != nil {
		return nil, err
	}
	xis, err := s.Measure(n, b)
	if err != nil {
		return nil, err
	}
	return Eval(coeffs, xis, b)
}

// SampleMeasure returns n exact draws of the germ of b using the
// global source.
func SampleMeasure(n int, b *orthopoly.Basis) ([]float64, error) {
	return Sampler{}.Measure(n, b)
}

// Sample returns n realizations of the random variable with
// coefficients coeffs in b, drawing exact germ samples from the
// global source.
func Sample(n int, coeffs []float64, b *orthopoly.Basis) ([]float64, error) {
	return Sampler{}.Sample(n, coeffs, b)
}

// Eval returns Σᵢ coeffs[i]φᵢ(points[j]) for each j: the values the
// random variable takes when its germ takes the given values.
func Eval(coeffs, points []float64, b *orthopoly.Basis) ([]float64, error) {
	if err := checkCoeffs(coeffs, b); err != nil {
		return nil, err
	}
	phis := make([]float64, b.Degree()+1)
	ys := make([]float64, len(points))
	for j, x := range points {
		b.EvalUpTo(x, phis)
		ys[j] = floats.Dot(coeffs, phis[:len(coeffs)])
	}
	return ys, nil
}
