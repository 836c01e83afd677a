package main

import (
	"bufio"

	"github.com/spf13/cobra"
)

func newCleanCmd(a *app) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Print a corpus as the model sees it after alphabet filtering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stream, err := a.stream(cmd.Context(), cmd, src)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for r := range a.alphabet().Clean(stream) {
				if _, err = w.WriteRune(r); err != nil {
					return err
				}
			}
			if err = w.WriteByte('\n'); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	src.register(cmd)
	return cmd
}
