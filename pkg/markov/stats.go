package markov

// ModelStats holds aggregated statistics for a single Markov model.
type ModelStats struct {
	Order       int // The number of preceding characters in each context.
	Contexts    int // The number of distinct contexts with recorded successors.
	Links       int // The number of unique context->next_character links.
	Transitions int // The sum of all counts; the total number of trained transitions.
	Characters  int // The number of distinct characters seen as successors.
	DeadEnds    int // The number of distinct contexts reached by some link that have no successors.
}

// Stats returns a snapshot of statistics for m.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{
		Order:       m.order,
		Contexts:    len(m.chains),
		Transitions: m.total,
	}
	chars := make(map[rune]struct{})
	deadEnds := make(map[string]struct{})
	next := newWindow(m.order)
	for ctx, d := range m.chains {
		stats.Links += len(d)
		for r := range d {
			chars[r] = struct{}{}
			next.reset(ctx)
			next.push(r)
			if target := next.String(); !m.Has(target) {
				deadEnds[target] = struct{}{}
			}
		}
	}
	stats.Characters = len(chars)
	stats.DeadEnds = len(deadEnds)
	return stats
}
