// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthopoly

import "math"

// aeq reports whether got is within tol of expect, relative to the
// magnitude of expect once that exceeds 1.
func aeq(expect, got, tol float64) bool {
	return math.Abs(expect-got) <= tol*math.Max(1, math.Abs(expect))
}

// testMeasures covers every kind, including Beta shapes that take the
// special-case branches of the Jacobi recurrence.
var testMeasures = []Measure{
	{Kind: Gaussian},
	{Kind: Uniform},
	{Kind: Logistic},
	{Kind: Beta, Alpha: 2, Beta: 5},
	{Kind: Beta, Alpha: 1, Beta: 1},
	{Kind: Beta, Alpha: 0.5, Beta: 0.5},
	{Kind: Beta, Alpha: 0.3, Beta: 4},
}

func mustNew(t interface{ Fatal(...any) }, m Measure, degree int) *Basis {
	b, err := New(m, degree)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
