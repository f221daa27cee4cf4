// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aclements/go-chaos/orthopoly"
	"github.com/aclements/go-chaos/pce"
	"github.com/aclements/go-chaos/stats"
)

// RunResult holds the expansion of every variable in a scenario.
type RunResult struct {
	Scenario    string           `json:"scenario"`
	Variables   []VariableResult `json:"variables"`
	BasesBuilt  int              `json:"bases_built"`
	BasesReused int              `json:"bases_reused"`
}

// VariableResult is the expansion of one scenario variable.
type VariableResult struct {
	Name    string    `json:"name"`
	Measure string    `json:"measure"`
	Degree  int       `json:"degree"`
	Coeffs  []float64 `json:"coeffs"`
	Mean    float64   `json:"mean"`
	StdDev  float64   `json:"stddev"`

	// Sampled moments, present if the scenario draws samples.
	Sampled *SampledMoments `json:"sampled,omitempty"`
}

// SampledMoments are the moments of a variable's realizations, with
// a confidence interval for the mean.
type SampledMoments struct {
	N          int     `json:"n"`
	Mean       float64 `json:"mean"`
	MeanLo     float64 `json:"mean_lo"`
	MeanHi     float64 `json:"mean_hi"`
	Confidence float64 `json:"confidence"`
	StdDev     float64 `json:"stddev"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Expand the random variables of a scenario file",
		Long: `Load a YAML scenario listing named random variables, expand each in
the basis of its measure, and report exact and optionally sampled
moments. Variables with the same measure and degree share a basis.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runScenario(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := opts.log(cmd)

	sc, err := LoadScenario(path)
	if err != nil {
		return formatter.Fail(err)
	}
	log.Debug("scenario loaded", "name", sc.Name, "variables", len(sc.Variables))

	res, err := expandScenario(sc, &opts.bases, log.Debug)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON() {
		return formatter.Success(res)
	}
	return printRun(formatter.Writer, res)
}

// expandScenario expands every variable in sc, taking bases from
// cache. debug receives one message per variable.
func expandScenario(sc *Scenario, cache *orthopoly.Cache, debug func(msg string, args ...any)) (*RunResult, error) {
	method := pce.Exact
	if sc.Method != "" {
		var err error
		if method, err = pce.ParseMethod(sc.Method); err != nil {
			return nil, err
		}
	}
	conf := sc.Confidence
	if conf == 0 {
		conf = defaultConfidence
	}
	hits0, misses0 := cache.Stats()

	res := &RunResult{Scenario: sc.Name}
	for i, v := range sc.Variables {
		vr, err := expandVariable(v, cache)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if sc.Samples > 0 {
			s := pce.Sampler{Src: rand.NewSource(sc.Seed + uint64(i)), Method: method}
			xs, err := vr.expansion.Sample(sc.Samples, s)
			if err != nil {
				return nil, fmt.Errorf("variable %q: %w", v.Name, err)
			}
			mean, lo, hi := stats.MeanCI(xs, conf)
			vr.Sampled = &SampledMoments{
				N: len(xs), Mean: mean, MeanLo: lo, MeanHi: hi,
				Confidence: conf, StdDev: stats.Sample{Xs: xs}.StdDev(),
			}
		}
		debug("variable expanded", "name", v.Name, "measure", vr.Measure, "coeffs", vr.Coeffs)
		res.Variables = append(res.Variables, vr.VariableResult)
	}

	hits, misses := cache.Stats()
	res.BasesBuilt = misses - misses0
	res.BasesReused = hits - hits0
	return res, nil
}

type expandedVariable struct {
	VariableResult
	expansion *pce.Expansion
}

func expandVariable(v Variable, cache *orthopoly.Cache) (expandedVariable, error) {
	k, err := orthopoly.ParseKind(v.Measure)
	if err != nil {
		return expandedVariable{}, err
	}
	param := pce.MeanStd
	if v.Param != "" {
		if param, err = pce.ParseParam(v.Param); err != nil {
			return expandedVariable{}, err
		}
	}

	b, err := cache.Get(orthopoly.Measure{Kind: k, Alpha: v.Alpha, Beta: v.Beta}, v.Degree)
	if err != nil {
		return expandedVariable{}, err
	}
	e, err := pce.NewAffine(v.P1, v.P2, b, param)
	if err != nil {
		return expandedVariable{}, err
	}
	return expandedVariable{
		VariableResult: VariableResult{
			Name:    v.Name,
			Measure: b.Measure().String(),
			Degree:  b.Degree(),
			Coeffs:  e.Coeffs(),
			Mean:    e.Mean(),
			StdDev:  e.StdDev(),
		},
		expansion: e,
	}, nil
}

func printRun(w io.Writer, res *RunResult) error {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "scenario %s\n\n", res.Scenario)
	fmt.Fprintf(w, "%-8s %-12s %6s %12s %12s\n", "variable", "measure", "degree", "mean", "std dev")
	for _, v := range res.Variables {
		fmt.Fprintf(w, "%-8s %-12s %6d %12.6g %12.6g\n", v.Name, v.Measure, v.Degree, v.Mean, v.StdDev)
		if s := v.Sampled; s != nil {
			p.Fprintf(w, "%-8s sampled N %d: mean %.6g [%.6g, %.6g]@%.0f%%  std dev %.6g\n",
				"", s.N, s.Mean, s.MeanLo, s.MeanHi, s.Confidence*100, s.StdDev)
		}
	}
	fmt.Fprintln(w)
	_, err := fmt.Fprintf(w, "bases: %d built, %d reused\n", res.BasesBuilt, res.BasesReused)
	return err
}
