package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/viant/coverdesign/internal/config"
	"github.com/viant/coverdesign/sample"
)

func newSampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw n distinct values from [1, m]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			values, err := newSampler(e.v.GetUint64(config.SeedKey)).Draw(e.v.GetInt(config.MKey), e.v.GetInt(config.NKey))
			if err != nil {
				return err
			}
			return render(e.out, e.format, values, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, joinInts(values))
			})
		},
	}
	fs := cmd.Flags()
	fs.Int(config.MKey, 45, "Size of the value range [1, m]")
	fs.Int(config.NKey, 7, "Number of samples")
	fs.Uint64(config.SeedKey, 0, "Seed (0 = non-deterministic)")
	return cmd
}

func newSampler(seed uint64) *sample.Sampler {
	if seed == 0 {
		return sample.New()
	}
	return sample.New(sample.WithSeed(seed))
}
