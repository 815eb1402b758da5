package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/viant/coverdesign/cover"
	"github.com/viant/coverdesign/internal/config"
	"github.com/viant/coverdesign/runstore"
)

type generateOutput struct {
	Run          string  `json:"run,omitempty" yaml:"run,omitempty"`
	Samples      []int   `json:"samples" yaml:"samples"`
	Complete     bool    `json:"complete" yaml:"complete"`
	Combinations [][]int `json:"combinations" yaml:"combinations"`
	Uncovered    [][]int `json:"uncovered,omitempty" yaml:"uncovered,omitempty"`
	Candidates   int     `json:"candidates" yaml:"candidates"`
	Targets      int     `json:"targets" yaml:"targets"`
	Edges        int     `json:"edges" yaml:"edges"`
}

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Select k-combinations covering every j-subset of the samples",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	config.AddGenerateFlags(cmd.Flags())
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	cfg, err := config.FromViper(e.v)
	if err != nil {
		return err
	}
	p := cfg.Params

	samples := cfg.Samples
	if len(samples) == 0 {
		if samples, err = newSampler(cfg.Seed).Draw(p.M, p.N); err != nil {
			return err
		}
		e.logger.Info("samples drawn", zap.Ints("samples", samples))
	}

	res, err := cover.Generate(samples, p.K, p.J, p.S,
		cover.WithIndexKind(cfg.Index),
		cover.WithBuildParallelism(cfg.Parallel),
		cover.WithMaxPairs(cfg.MaxPairs),
		cover.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}
	if !res.Complete {
		e.logger.Warn("not every subset could be covered",
			zap.Int("uncovered", len(res.Uncovered)),
			zap.Int("k", p.K), zap.Int("j", p.J), zap.Int("s", p.S),
		)
	}

	out := generateOutput{
		Samples:      samples,
		Complete:     res.Complete,
		Combinations: res.Combinations,
		Uncovered:    res.Uncovered,
		Candidates:   res.Candidates,
		Targets:      res.Targets,
		Edges:        res.Edges,
	}
	if !cfg.NoSave {
		store, err := runstore.NewSQLiteStore(cfg.DBDir, runstore.WithLogger(e.logger))
		if err != nil {
			return err
		}
		id, err := store.Save(cmd.Context(), runstore.Record{
			Params:       p,
			Samples:      samples,
			Combinations: res.Combinations,
			Uncovered:    len(res.Uncovered),
			Complete:     res.Complete,
		})
		if err != nil {
			return err
		}
		out.Run = id.String()
	}

	return render(e.out, e.format, out, func(tw *tabwriter.Writer) {
		if out.Run != "" {
			fmt.Fprintf(tw, "run\t%s\n", out.Run)
		}
		fmt.Fprintf(tw, "samples\t%s\n", joinInts(samples))
		fmt.Fprintf(tw, "candidates\t%s\n", count(res.Candidates))
		fmt.Fprintf(tw, "targets\t%s\n", count(res.Targets))
		fmt.Fprintf(tw, "selected\t%s\n", count(len(res.Combinations)))
		fmt.Fprintf(tw, "complete\t%t\n", res.Complete)
		fmt.Fprintln(tw)
		for i, c := range res.Combinations {
			fmt.Fprintf(tw, "%d\t%s\n", i+1, joinInts(c))
		}
	})
}
