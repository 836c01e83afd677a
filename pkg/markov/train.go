package markov

import (
	"fmt"
	"iter"
	"log/slog"
)

// Build trains a model of the given order from stream in a single pass.
//
// With order 0 the model has one context, the empty string, counting every
// character. With order k > 0 each character is recorded as a successor of the
// k characters before it, so the first k characters are never successors and a
// stream shorter than k+1 characters yields an empty model. The result depends
// only on (stream, order).
func Build(stream iter.Seq[rune], order int) (*Model, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: order must be non-negative, got %d", ErrContractViolation, order)
	}

	chains := make(map[string]Distribution)
	win := newWindow(order)
	for c := range stream {
		if win.full() {
			key := win.String()
			d, ok := chains[key]
			if !ok {
				d = make(Distribution)
				chains[key] = d
			}
			d[c]++
		}
		win.push(c)
	}
	return newModel(order, chains), nil
}

// Train is Build with logging.
func (g *Generator) Train(stream iter.Seq[rune], order int) (*Model, error) {
	m, err := Build(stream, order)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Training completed",
		slog.Int("order", m.Order()),
		slog.Int("contexts", m.Len()),
		slog.Int("transitions", m.Total()),
	)
	return m, nil
}
