package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/CTAG07/markovtext/pkg/corpus"
	"github.com/CTAG07/markovtext/pkg/markov"
)

// sourceFlags selects where raw corpus text comes from: a file, standard
// input ("-"), or a corpus stored in the database.
type sourceFlags struct {
	file   string
	corpus string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "read the corpus from a text file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&s.corpus, "corpus", "c", "", "read a corpus stored with 'corpus add'")
	cmd.MarkFlagsMutuallyExclusive("file", "corpus")
	cmd.MarkFlagsOneRequired("file", "corpus")
}

// stream returns the raw, uncleaned character stream named by s.
func (a *app) stream(ctx context.Context, cmd *cobra.Command, s sourceFlags) (iter.Seq[rune], error) {
	switch {
	case s.file == "-":
		return readStream(cmd.InOrStdin(), "stdin")
	case s.file != "":
		return corpus.ReadFile(s.file)
	default:
		store, closeStore, err := a.openStore()
		if err != nil {
			return nil, err
		}
		defer closeStore()
		stream, err := store.Stream(ctx, s.corpus)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("corpus '%s' not found", s.corpus)
		}
		return stream, err
	}
}

func readStream(r io.Reader, name string) (iter.Seq[rune], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not valid UTF-8", name)
	}
	return markov.Runes(string(data)), nil
}
