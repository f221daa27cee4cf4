// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats summarizes samples drawn from expansions: weighted
// sample moments and quantiles with their confidence intervals, and
// kernel density estimates.
package stats // import "github.com/aclements/go-chaos/stats"
