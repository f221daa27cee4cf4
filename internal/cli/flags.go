// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aclements/go-chaos/orthopoly"
	"github.com/aclements/go-chaos/pce"
)

// basisFlags selects a measure and degree.
type basisFlags struct {
	measure     string
	degree      int
	alpha, beta float64
}

func (f *basisFlags) register(cmd *cobra.Command, degree int) {
	cmd.Flags().StringVarP(&f.measure, "measure", "m", "gaussian", "measure (gaussian|beta|uniform|logistic)")
	cmd.Flags().IntVarP(&f.degree, "degree", "d", degree, "maximum polynomial degree")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "Beta shape α")
	cmd.Flags().Float64Var(&f.beta, "beta", 0, "Beta shape β")
}

func (f *basisFlags) build(cache *orthopoly.Cache) (*orthopoly.Basis, error) {
	k, err := orthopoly.ParseKind(f.measure)
	if err != nil {
		return nil, err
	}
	return cache.Get(orthopoly.Measure{Kind: k, Alpha: f.alpha, Beta: f.beta}, f.degree)
}

// paramFlags selects how two positional parameters describe a
// random variable.
type paramFlags struct {
	param string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.param, "param", "p", "meanstd", "parameterization of P1 P2 (native|meanstd)")
}

// parse returns the parameterization and the two parameters in args.
func (f *paramFlags) parse(args []string) (pce.Param, float64, float64, error) {
	kind, err := pce.ParseParam(f.param)
	if err != nil {
		return 0, 0, 0, err
	}
	var ps [2]float64
	for i, a := range args {
		ps[i], err = strconv.ParseFloat(a, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: parameter %q is not a number", orthopoly.ErrInvalidParameter, a)
		}
	}
	return kind, ps[0], ps[1], nil
}
