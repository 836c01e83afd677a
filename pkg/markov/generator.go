package markov

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// Generator is the main entry point for training and sampling models. It holds
// the random source used for weighted choices and a logger.
//
// A Generator created with a nil source draws from the global math/rand/v2
// functions and may be shared between goroutines. A Generator with its own
// source must not be used concurrently.
type Generator struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates a Generator. Passing a non-nil src makes generation
// reproducible for a fixed model and sequence of calls.
func NewGenerator(src rand.Source) *Generator {
	g := &Generator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if src != nil {
		g.rng = rand.New(src)
	}
	return g
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

func (g *Generator) randIntN(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (g *Generator) randFloat64() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}
