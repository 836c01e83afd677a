package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/CTAG07/markovtext/pkg/markov"
)

// modelFlags are the training parameters shared by generate and stats.
type modelFlags struct {
	order        int
	minFrequency int
}

func (m *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&m.order, "order", "k", 0, "number of preceding characters used as context (default from config)")
	cmd.Flags().IntVar(&m.minFrequency, "min-frequency", 0, "drop links seen this many times or fewer (default from config)")
}

// resolve fills unset flags from the config.
func (m *modelFlags) resolve(cmd *cobra.Command, cfg *GenerationConfig) {
	if !cmd.Flags().Changed("order") {
		m.order = cfg.Order
	}
	if !cmd.Flags().Changed("min-frequency") {
		m.minFrequency = cfg.MinFrequency
	}
}

// train cleans the selected source and builds a model from it.
func (a *app) train(cmd *cobra.Command, g *markov.Generator, src sourceFlags, mf modelFlags) (*markov.Model, error) {
	stream, err := a.stream(cmd.Context(), cmd, src)
	if err != nil {
		return nil, err
	}
	model, err := g.Train(a.alphabet().Clean(stream), mf.order)
	if err != nil {
		return nil, err
	}
	if mf.minFrequency > 0 {
		model = g.Prune(model, mf.minFrequency)
	}
	return model, nil
}

func newSeededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		src         sourceFlags
		mf          modelFlags
		length      int
		temperature float64
		topK        int
		prefix      string
		seed        uint64
		outPath     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Train a model from a corpus and generate text from it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.config.Generation
			mf.resolve(cmd, cfg)
			if !cmd.Flags().Changed("length") {
				length = cfg.Length
			}
			if !cmd.Flags().Changed("temperature") {
				temperature = cfg.Temperature
			}
			if !cmd.Flags().Changed("top-k") {
				topK = cfg.TopK
			}

			g := a.generator(seed)
			model, err := a.train(cmd, g, src, mf)
			if err != nil {
				return err
			}

			text, err := g.GenerateFrom(model, a.alphabet().CleanString(prefix), length,
				markov.WithTemperature(temperature),
				markov.WithTopK(topK),
			)
			if err != nil {
				return err
			}
			if n := utf8.RuneCountInString(text); n < length {
				a.logger.Info("Generation stopped at a context with no successors",
					slog.Int("generated_length", n),
					slog.Int("target_length", length),
				)
			}

			if outPath != "" {
				if err = atomic.WriteFile(outPath, strings.NewReader(text+"\n")); err != nil {
					return fmt.Errorf("failed to write output file: %w", err)
				}
				a.logger.Info("Generated text written", slog.String("path", outPath))
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	src.register(cmd)
	mf.register(cmd)
	cmd.Flags().IntVarP(&length, "length", "n", 0, "target number of characters (default from config)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 1.0, "sampling temperature; 0 or less always picks the most frequent character")
	cmd.Flags().IntVar(&topK, "top-k", 0, "sample only from the k most frequent candidates (0 disables)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "start the text with this prefix instead of a random context")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible output (0 picks a random seed)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the text to this file instead of stdout")
	return cmd
}
