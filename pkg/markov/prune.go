package markov

import (
	"log/slog"
)

// Prune returns a new model without the links of m whose count is less than or
// equal to minFreq. Contexts left with no successors are dropped. This is
// useful for removing rare, and often noisy, transitions. m is not modified.
func (m *Model) Prune(minFreq int) *Model {
	chains := make(map[string]Distribution, len(m.chains))
	for ctx, d := range m.chains {
		kept := make(Distribution, len(d))
		for r, n := range d {
			if n > minFreq {
				kept[r] = n
			}
		}
		if len(kept) > 0 {
			chains[ctx] = kept
		}
	}
	return newModel(m.order, chains)
}

// Prune is Model.Prune with logging.
func (g *Generator) Prune(m *Model, minFreq int) *Model {
	pruned := m.Prune(minFreq)
	g.logger.Info("Model pruned",
		slog.Int("order", m.Order()),
		slog.Int("min_frequency", minFreq),
		slog.Int("contexts_removed", m.Len()-pruned.Len()),
		slog.Int("transitions_removed", m.Total()-pruned.Total()),
	)
	return pruned
}
