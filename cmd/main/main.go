package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CTAG07/markovtext/pkg/corpus"
	"github.com/CTAG07/markovtext/pkg/markov"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by every subcommand once the config is loaded.
type app struct {
	configPath string
	config     *Config
	logger     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "markovtext",
		Short:        "Character-level Markov chain text generator",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "./config.json", "path to the JSON config file")

	root.AddCommand(
		newCleanCmd(a),
		newGenerateCmd(a),
		newStatsCmd(a),
		newCorpusCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	// The level is unknown until the config is read.
	config, err := LoadConfig(a.configPath, newLogger(cmd.ErrOrStderr(), "warn"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.config = config
	a.logger = newLogger(cmd.ErrOrStderr(), config.LogLevel)
	return nil
}

func (a *app) alphabet() *markov.Alphabet {
	return markov.NewAlphabet(a.config.Alphabet)
}

func (a *app) generator(seed uint64) *markov.Generator {
	var g *markov.Generator
	if seed != 0 {
		g = markov.NewGenerator(newSeededSource(seed))
	} else {
		g = markov.NewGenerator(nil)
	}
	g.SetLogger(a.logger)
	return g
}

// dataSourceName appends the driver's default pragmas to a database path that
// carries no query parameters of its own.
func dataSourceName(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?" + defaultDSNParams
}

// openStore opens the corpus database, creating its directory and schema as
// needed. The returned function releases both the store and the connection.
func (a *app) openStore() (*corpus.Store, func(), error) {
	path, _, _ := strings.Cut(a.config.DatabasePath, "?")
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := openDB(dataSourceName(a.config.DatabasePath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup corpus schema: %w", err)
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("error creating corpus store: %w", err)
	}
	store.SetLogger(a.logger)

	return store, func() {
		store.Close()
		if err := db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
		}
	}, nil
}
