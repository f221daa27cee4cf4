// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aclements/go-chaos/pce"
)

// CoeffsResult holds the affine coefficients of a random variable
// and the moments they imply.
type CoeffsResult struct {
	Measure  string    `json:"measure"`
	Degree   int       `json:"degree"`
	Param    string    `json:"param"`
	Coeffs   []float64 `json:"coeffs"`
	Mean     float64   `json:"mean"`
	StdDev   float64   `json:"stddev"`
	Variance float64   `json:"variance"`
}

// NewCoeffsCommand creates the coeffs command.
func NewCoeffsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		bf basisFlags
		pf paramFlags
	)
	cmd := &cobra.Command{
		Use:   "coeffs P1 P2",
		Short: "Compute affine expansion coefficients",
		Long: `Compute the degree-0 and degree-1 expansion coefficients of a random
variable and report its mean and standard deviation.

With --param meanstd, P1 and P2 are the mean and standard deviation.
With --param native, they are the measure's own parameters: mean and
standard deviation (gaussian), location and scale (logistic), or the
interval [P1, P2] (uniform, beta). Use -- before negative values.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoeffs(rootOpts, &bf, &pf, args, cmd)
		},
	}
	bf.register(cmd, 6)
	pf.register(cmd)
	return cmd
}

func runCoeffs(opts *RootOptions, bf *basisFlags, pf *paramFlags, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	kind, p1, p2, err := pf.parse(args)
	if err != nil {
		return formatter.Fail(err)
	}
	b, err := bf.build(&opts.bases)
	if err != nil {
		return formatter.Fail(err)
	}
	e, err := pce.NewAffine(p1, p2, b, kind)
	if err != nil {
		return formatter.Fail(err)
	}
	opts.log(cmd).Debug("coefficients", "param", kind, "p1", p1, "p2", p2, "coeffs", e.Coeffs())

	res := CoeffsResult{
		Measure:  b.Measure().String(),
		Degree:   b.Degree(),
		Param:    kind.String(),
		Coeffs:   e.Coeffs(),
		Mean:     e.Mean(),
		StdDev:   e.StdDev(),
		Variance: e.Variance(),
	}
	if formatter.JSON() {
		return formatter.Success(res)
	}
	return printCoeffs(formatter.Writer, res)
}

func printCoeffs(w io.Writer, res CoeffsResult) error {
	fmt.Fprintf(w, "%-9s %s, degree %d\n", "basis", res.Measure, res.Degree)
	fmt.Fprintf(w, "%-9s", "coeffs")
	for _, c := range res.Coeffs {
		fmt.Fprintf(w, " %.6g", c)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-9s %.6g\n", "mean", res.Mean)
	fmt.Fprintf(w, "%-9s %.6g\n", "std dev", res.StdDev)
	_, err := fmt.Fprintf(w, "%-9s %.6g\n", "variance", res.Variance)
	return err
}
