package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		src sourceFlags
		mf  modelFlags
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Train a model from a corpus and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mf.resolve(cmd, a.config.Generation)
			model, err := a.train(cmd, a.generator(0), src, mf)
			if err != nil {
				return err
			}
			stats := model.Stats()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(tw, "order\t%d\n", stats.Order)
			_, _ = fmt.Fprintf(tw, "contexts\t%s\n", humanize.Comma(int64(stats.Contexts)))
			_, _ = fmt.Fprintf(tw, "links\t%s\n", humanize.Comma(int64(stats.Links)))
			_, _ = fmt.Fprintf(tw, "transitions\t%s\n", humanize.Comma(int64(stats.Transitions)))
			_, _ = fmt.Fprintf(tw, "characters\t%s\n", humanize.Comma(int64(stats.Characters)))
			_, _ = fmt.Fprintf(tw, "dead ends\t%s\n", humanize.Comma(int64(stats.DeadEnds)))
			return tw.Flush()
		},
	}
	src.register(cmd)
	mf.register(cmd)
	return cmd
}
