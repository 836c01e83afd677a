package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const dna = "ATGCGCATGCGTGCATGTATATACACACGTGTACGCGCGTACGCACATGTGCGTATGTGCGCACACGTACACGCGTATGT"

// setupTestConfig writes a config into a temporary directory that keeps the
// database there too, and returns the config path.
func setupTestConfig(t *testing.T, mutate func(*Config)) string {
	dir := t.TempDir()
	config := DefaultConfig()
	config.LogLevel = "error"
	config.DatabasePath = filepath.Join(dir, "data", "corpora.db")
	if mutate != nil {
		mutate(config)
	}
	data, err := json.Marshal(config)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// writeCorpus writes text into a file in a temporary directory.
func writeCorpus(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

// runCmd executes the root command and returns what it wrote to stdout.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}
