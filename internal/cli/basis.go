// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aclements/go-chaos/orthopoly"
)

// BasisResult describes a constructed basis.
type BasisResult struct {
	Measure string    `json:"measure"`
	Degree  int       `json:"degree"`
	Alpha   []float64 `json:"alpha"`
	Beta    []float64 `json:"beta"`
	Norms   []float64 `json:"norms"`
	Nodes   []float64 `json:"nodes"`
	Weights []float64 `json:"weights"`
}

// NewBasisCommand creates the basis command.
func NewBasisCommand(rootOpts *RootOptions) *cobra.Command {
	var bf basisFlags
	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Print a basis' recurrence, quadrature rule and norms",
		Long: `Construct the monic orthogonal polynomial basis of the given measure
and degree, and print its three-term recurrence coefficients, the
squared norms of its polynomials, and its Gauss quadrature rule.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBasis(rootOpts, &bf, cmd)
		},
	}
	bf.register(cmd, 3)
	return cmd
}

func runBasis(opts *RootOptions, bf *basisFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := opts.log(cmd)

	b, err := bf.build(&opts.bases)
	if err != nil {
		return formatter.Fail(err)
	}
	log.Debug("basis built", "measure", b.Measure(), "degree", b.Degree())

	res := basisResult(b)
	if formatter.JSON() {
		return formatter.Success(res)
	}
	return printBasis(formatter.Writer, res)
}

func basisResult(b *orthopoly.Basis) BasisResult {
	rec, rule := b.Recurrence(), b.Rule()
	res := BasisResult{
		Measure: b.Measure().String(),
		Degree:  b.Degree(),
		Alpha:   rec.Alpha,
		Beta:    rec.Beta,
		Nodes:   rule.Nodes,
		Weights: rule.Weights,
	}
	for k := 0; k <= b.Degree(); k++ {
		n, _ := b.Norm2(k)
		res.Norms = append(res.Norms, n)
	}
	return res
}

func printBasis(w io.Writer, res BasisResult) error {
	fmt.Fprintf(w, "%s, degree %d\n\n", res.Measure, res.Degree)
	fmt.Fprintf(w, "%4s %12s %12s %12s\n", "k", "alpha", "beta", "norm2")
	for k := range res.Alpha {
		fmt.Fprintf(w, "%4d %12.6g %12.6g %12.6g\n", k, res.Alpha[k], res.Beta[k], res.Norms[k])
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%4s %12s %12s\n", "i", "node", "weight")
	for i := range res.Nodes {
		if _, err := fmt.Fprintf(w, "%4d %12.6g %12.6g\n", i, res.Nodes[i], res.Weights[i]); err != nil {
			return err
		}
	}
	return nil
}
