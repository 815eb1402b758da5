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

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			store, err := e.store()
			if err != nil {
				return err
			}
			ids, err := store.List(cmd.Context(), config.Filter(e.v))
			if err != nil {
				return err
			}
			if ids == nil {
				ids = []runstore.RunID{}
			}
			return render(e.out, e.format, ids, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "RUN\tM\tN\tK\tJ\tS\t#\tCOMBINATIONS")
				for _, id := range ids {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
						id, id.M, id.N, id.K, id.J, id.S, id.Run, count(id.Count))
				}
			})
		},
	}
	config.AddFilterFlags(cmd.Flags())
	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN",
		Short: "Print a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			run, err := loadRun(cmd, e, args[0])
			if err != nil {
				return err
			}
			return render(e.out, e.format, run, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "run\t%s\n", run.ID)
				if run.Legacy {
					fmt.Fprintln(tw, "legacy\ttrue")
				} else {
					fmt.Fprintf(tw, "samples\t%s\n", joinInts(run.Samples))
					fmt.Fprintf(tw, "complete\t%t\n", run.Complete)
					fmt.Fprintf(tw, "created\t%s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
				}
				fmt.Fprintln(tw)
				for i, c := range run.Combinations {
					fmt.Fprintf(tw, "%d\t%s\n", i+1, joinInts(c))
				}
			})
		},
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete RUN...",
		Short: "Delete stored runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			store, err := e.store()
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := runstore.ParseRunID(arg)
				if err != nil {
					return err
				}
				if err := store.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(e.out, "deleted %s\n", id)
			}
			return nil
		},
	}
}

func newCoveringCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covering RUN",
		Short: "Print the stored combinations that cover a subset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			id, err := runstore.ParseRunID(args[0])
			if err != nil {
				return err
			}
			subset, err := config.ParseSamples(e.v.GetString("subset"))
			if err != nil {
				return err
			}
			s := id.S
			if e.v.IsSet(config.SKey) {
				s = e.v.GetInt(config.SKey)
			}
			store, err := e.store()
			if err != nil {
				return err
			}
			combos, err := store.Covering(cmd.Context(), id, subset, s)
			if err != nil {
				return err
			}
			if combos == nil {
				combos = [][]int{}
			}
			return render(e.out, e.format, combos, func(tw *tabwriter.Writer) {
				for i, c := range combos {
					fmt.Fprintf(tw, "%d\t%s\n", i+1, joinInts(c))
				}
			})
		},
	}
	cmd.Flags().String("subset", "", "Comma separated subset to look up")
	cmd.Flags().Int(config.SKey, 0, "Minimum shared values (unset uses the run's s)")
	return cmd
}

func newSimilarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar RUN",
		Short: "Rank stored combinations by similarity to a probe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			id, err := runstore.ParseRunID(args[0])
			if err != nil {
				return err
			}
			probe, err := config.ParseSamples(e.v.GetString("probe"))
			if err != nil {
				return err
			}
			store, err := e.store()
			if err != nil {
				return err
			}
			matches, err := store.Similar(cmd.Context(), id, probe, e.v.GetInt("limit"))
			if err != nil {
				return err
			}
			if matches == nil {
				matches = []runstore.Match{}
			}
			return render(e.out, e.format, matches, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ROW\tSCORE\tCOMBINATION")
				for _, m := range matches {
					fmt.Fprintf(tw, "%d\t%.4f\t%s\n", m.Row, m.Score, joinInts(m.Combination))
				}
			})
		},
	}
	cmd.Flags().String("probe", "", "Comma separated probe values")
	cmd.Flags().Int("limit", 5, "Maximum number of matches (0 = all)")
	return cmd
}

type verifyOutput struct {
	Run       string  `json:"run" yaml:"run"`
	Complete  bool    `json:"complete" yaml:"complete"`
	Uncovered [][]int `json:"uncovered" yaml:"uncovered"`
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify RUN",
		Short: "Recheck that a stored run covers every j-subset of its samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			run, err := loadRun(cmd, e, args[0])
			if err != nil {
				return err
			}
			if run.Legacy {
				return fmt.Errorf("run %s has no stored samples", run.ID)
			}
			uncovered := cover.Verify(run.Samples, run.ID.J, run.ID.S, run.Combinations)
			out := verifyOutput{Run: run.ID.String(), Complete: len(uncovered) == 0, Uncovered: uncovered}
			if out.Complete != run.Complete {
				e.logger.Warn("stored completeness differs from verification",
					zap.Stringer("run", run.ID), zap.Bool("stored", run.Complete), zap.Bool("verified", out.Complete))
			}
			return render(e.out, e.format, out, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "run\t%s\n", out.Run)
				fmt.Fprintf(tw, "complete\t%t\n", out.Complete)
				fmt.Fprintf(tw, "uncovered\t%s\n", count(len(uncovered)))
			})
		},
	}
}

func loadRun(cmd *cobra.Command, e *env, name string) (*runstore.Run, error) {
	id, err := runstore.ParseRunID(name)
	if err != nil {
		return nil, err
	}
	store, err := e.store()
	if err != nil {
		return nil, err
	}
	return store.Load(cmd.Context(), id)
}
