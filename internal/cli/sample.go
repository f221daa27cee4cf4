// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aclements/go-chaos/orthopoly"
	"github.com/aclements/go-chaos/pce"
	"github.com/aclements/go-chaos/stats"
)

// quantiles are the levels reported by the sample command, in percent.
var quantiles = []int{0, 1, 5, 25, 50, 75, 95, 99, 100}

const defaultConfidence = 0.95

// bandwidths are the KDE bandwidth rules selectable by --bandwidth.
var bandwidths = map[string]func(stats.Sample) float64{
	"scott":     stats.BandwidthScott,
	"silverman": stats.BandwidthSilverman,
}

// SampleResult summarizes realizations of a random variable.
type SampleResult struct {
	Measure    string          `json:"measure"`
	Coeffs     []float64       `json:"coeffs"`
	Method     string          `json:"method"`
	N          int             `json:"n"`
	Confidence float64         `json:"confidence"`
	Mean       float64         `json:"mean"`
	MeanLo     float64         `json:"mean_lo"`
	MeanHi     float64         `json:"mean_hi"`
	StdDev     float64         `json:"stddev"`
	Quantiles  []QuantilePoint `json:"quantiles"`
	Bandwidth  string          `json:"bandwidth,omitempty"`
	Density    []DensityPoint  `json:"density,omitempty"`
}

// A QuantilePoint is the sample quantile X at level P, with a
// distribution-free confidence interval [Lo, Hi]. A bound that lies
// beyond the sample is reported as the sample's extreme value.
type QuantilePoint struct {
	P  float64 `json:"p"`
	X  float64 `json:"x"`
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// A DensityPoint is the kernel density estimate at X.
type DensityPoint struct {
	X   float64 `json:"x"`
	PDF float64 `json:"pdf"`
	CDF float64 `json:"cdf"`
}

type sampleFlags struct {
	n          int
	seed       uint64
	method     string
	confidence float64
	density    bool
	bandwidth  string
	points     int
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		bf basisFlags
		pf paramFlags
		sf sampleFlags
	)
	cmd := &cobra.Command{
		Use:   "sample P1 P2",
		Short: "Sample a random variable and describe its distribution",
		Long: `Draw realizations of the random variable described by P1 and P2
(see coeffs) and print their moments and quantiles, and optionally
a kernel density estimate of their distribution.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(rootOpts, &bf, &pf, &sf, args, cmd)
		},
	}
	bf.register(cmd, 6)
	pf.register(cmd)
	cmd.Flags().IntVarP(&sf.n, "n", "n", 10000, "number of realizations")
	cmd.Flags().Uint64Var(&sf.seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&sf.method, "method", "exact", "germ sampling method (exact|quadrature)")
	cmd.Flags().Float64Var(&sf.confidence, "confidence", defaultConfidence, "confidence level of the mean and quantile intervals")
	cmd.Flags().BoolVar(&sf.density, "density", false, "print a kernel density estimate")
	cmd.Flags().StringVar(&sf.bandwidth, "bandwidth", "scott", "KDE bandwidth rule (scott|silverman)")
	cmd.Flags().IntVar(&sf.points, "points", 21, "number of density points")
	return cmd
}

func runSample(opts *RootOptions, bf *basisFlags, pf *paramFlags, sf *sampleFlags, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := opts.log(cmd)

	kind, p1, p2, err := pf.parse(args)
	if err != nil {
		return formatter.Fail(err)
	}
	if sf.n < 2 {
		return formatter.Fail(fmt.Errorf("%w: need at least 2 realizations, have %d", orthopoly.ErrInvalidParameter, sf.n))
	}
	if !(sf.confidence > 0 && sf.confidence < 1) {
		return formatter.Fail(fmt.Errorf("%w: confidence must be in (0, 1), have %v", orthopoly.ErrInvalidParameter, sf.confidence))
	}
	bw, ok := bandwidths[strings.ToLower(sf.bandwidth)]
	if !ok {
		return formatter.Fail(fmt.Errorf("%w: unknown bandwidth rule %q", orthopoly.ErrInvalidParameter, sf.bandwidth))
	}
	method, err := pce.ParseMethod(sf.method)
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

	sampler := pce.Sampler{Src: rand.NewSource(sf.seed), Method: method}
	xs, err := e.Sample(sf.n, sampler)
	if err != nil {
		return formatter.Fail(err)
	}
	log.Debug("sampled", "n", sf.n, "method", method, "seed", sf.seed)

	res := summarize(xs, sf.confidence)
	res.Measure = b.Measure().String()
	res.Coeffs = e.Coeffs()
	res.Method = method.String()
	if sf.density {
		res.Bandwidth = strings.ToLower(sf.bandwidth)
		res.Density = density(xs, sf.points, bw)
	}

	if formatter.JSON() {
		return formatter.Success(res)
	}
	return printSample(formatter.Writer, res)
}

// summarize computes the moments and quantiles of xs and their
// confidence intervals at level conf. xs must have at least two
// points and conf must be in (0, 1), so the mean interval is finite.
func summarize(xs []float64, conf float64) SampleResult {
	s := stats.Sample{Xs: xs}
	s.Sort()
	mean, mlo, mhi := stats.MeanCI(xs, conf)
	res := SampleResult{
		N:          len(xs),
		Confidence: conf,
		Mean:       mean,
		MeanLo:     mlo,
		MeanHi:     mhi,
		StdDev:     s.StdDev(),
	}
	smin, smax := s.Bounds()
	for _, p := range quantiles {
		q := float64(p) / 100
		lo, hi := stats.QuantileCI(len(xs), q, conf).FromSample(s)
		res.Quantiles = append(res.Quantiles, QuantilePoint{
			P:  q,
			X:  s.Quantile(q),
			Lo: math.Max(lo, smin),
			Hi: math.Min(hi, smax),
		})
	}
	return res
}

// density evaluates a kernel density estimate of xs, with bandwidth
// chosen by rule, at n evenly spaced points across its bounds.
func density(xs []float64, n int, rule func(stats.Sample) float64) []DensityPoint {
	s := stats.Sample{Xs: xs}
	d := stats.KDE{Bandwidth: rule(s)}.From(s)
	lo, hi := d.Bounds()
	if n < 2 {
		n = 2
	}
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	pdf, cdf := stats.PDFEach(d, grid), stats.CDFEach(d, grid)
	pts := make([]DensityPoint, n)
	for i, x := range grid {
		pts[i] = DensityPoint{x, pdf[i], cdf[i]}
	}
	return pts
}

func printSample(w io.Writer, res SampleResult) error {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s, coeffs %v, %s sampling\n", res.Measure, res.Coeffs, res.Method)
	p.Fprintf(w, "N %d  mean %.6g  std dev %.6g\n", res.N, res.Mean, res.StdDev)
	fmt.Fprintf(w, "%.0f%% CI of mean [%.6g, %.6g]\n", res.Confidence*100, res.MeanLo, res.MeanHi)
	fmt.Fprintln(w)

	labels := map[float64]string{0: "min", 0.5: "median", 1: "max"}
	fmt.Fprintf(w, "%8s %12s %12s %12s\n", "", "value", "CI lo", "CI hi")
	for _, q := range res.Quantiles {
		label, ok := labels[q.P]
		if !ok {
			label = fmt.Sprintf("%.0f%%ile", q.P*100)
		}
		fmt.Fprintf(w, "%8s %12.6g %12.6g %12.6g\n", label, q.X, q.Lo, q.Hi)
	}

	if len(res.Density) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s bandwidth\n", res.Bandwidth)
		fmt.Fprintf(w, "%12s %12s %12s\n", "x", "pdf", "cdf")
		for _, d := range res.Density {
			fmt.Fprintf(w, "%12.6g %12.6g %12.6g\n", d.X, d.PDF, d.CDF)
		}
	}
	return nil
}
