package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCorpusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage corpora stored in the database",
	}
	cmd.AddCommand(
		newCorpusAddCmd(a),
		newCorpusListCmd(a),
		newCorpusRemoveCmd(a),
	)
	return cmd
}

func newCorpusAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <file>",
		Short: "Store a text file as a named corpus, replacing any existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer func(f *os.File) {
				_ = f.Close()
			}(f)

			store, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			info, err := store.AddCorpus(cmd.Context(), name, f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored %s (%s characters)\n", info.Name, humanize.Comma(int64(info.Characters)))
			return err
		},
	}
}

func newCorpusListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored corpora",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			infos, err := store.GetCorpusInfos(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to retrieve corpora: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tCHARACTERS\tSIZE\tADDED")
			for _, info := range infos {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					info.Name,
					humanize.Comma(int64(info.Characters)),
					humanize.Bytes(uint64(info.Bytes)),
					info.AddedAt.Format("2006-01-02 15:04:05"),
				)
			}
			return tw.Flush()
		},
	}
}

func newCorpusRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Delete a stored corpus",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			if err = store.RemoveCorpus(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("corpus '%s' not found", args[0])
				}
				return err
			}
			return nil
		},
	}
}
