package markov

import (
	"go/build"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// dna is a short four-letter corpus with hand-checked n-gram counts.
const dna = "ATGCGCATGCGTGCATGTATATACACACGTGTACGCGCGTACGCACATGTGCGTATGTGCGCACACGTACACGCGTATGT"

// mustBuild trains a model from s and fails the test on error.
func mustBuild(t testing.TB, s string, order int) *Model {
	t.Helper()
	m, err := Build(Runes(s), order)
	if err != nil {
		t.Fatalf("Build(%q, %d) error = %v", s, order, err)
	}
	return m
}

// untouchable is a stream that fails the test if anything reads from it.
func untouchable(t *testing.T) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		t.Error("stream was consumed")
	}
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = strings.Repeat("this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. ", 50)
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = DefaultAlphabet().CleanString(sb.String())
	})
	return benchmarkCorpus
}
