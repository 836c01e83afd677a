package markov

import (
	"errors"
	"maps"
	"slices"
	"unicode/utf8"
)

var (
	// ErrContractViolation is returned when a caller passes arguments outside
	// an operation's domain, such as a negative order or a target length
	// shorter than the model's order. It is never retryable.
	ErrContractViolation = errors.New("markov: contract violation")
	// ErrEmptyModel is returned when generation or order inference is attempted
	// against a model with no contexts.
	ErrEmptyModel = errors.New("markov: model has no contexts")
)

// Distribution maps a successor character to the number of times it was
// observed after a context. Counts are always positive; unseen successors are
// absent rather than zero.
type Distribution map[rune]int

// Total returns the sum of all counts in d.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Successors returns the distribution's characters in code point order.
func (d Distribution) Successors() []rune {
	return slices.Sorted(maps.Keys(d))
}

// Model is a trained, immutable character n-gram table. Every context key is
// exactly Order runes long. Models are built by Build and are safe for
// concurrent reads.
type Model struct {
	order    int
	chains   map[string]Distribution
	contexts []string // sorted keys of chains
	total    int
}

// Order returns the number of preceding characters used as context.
func (m *Model) Order() int {
	return m.order
}

// Len returns the number of distinct contexts.
func (m *Model) Len() int {
	return len(m.chains)
}

// Empty reports whether the model has no contexts.
func (m *Model) Empty() bool {
	return len(m.chains) == 0
}

// Total returns the number of transitions observed while training.
func (m *Model) Total() int {
	return m.total
}

// Contexts returns every context in lexical order.
func (m *Model) Contexts() []string {
	return slices.Clone(m.contexts)
}

// Has reports whether context has recorded successors.
func (m *Model) Has(context string) bool {
	_, ok := m.chains[context]
	return ok
}

// Distribution returns a copy of the successor counts for context, or nil if
// the context was never seen.
func (m *Model) Distribution(context string) Distribution {
	d, ok := m.chains[context]
	if !ok {
		return nil
	}
	return maps.Clone(d)
}

// Chains returns a deep copy of the whole table, keyed by context.
func (m *Model) Chains() map[string]Distribution {
	out := make(map[string]Distribution, len(m.chains))
	for ctx, d := range m.chains {
		out[ctx] = maps.Clone(d)
	}
	return out
}

// InferOrder derives the order of a context table from the rune length of one
// of its keys. It is meant for tables that did not come from Build; a Model
// carries its order explicitly.
func InferOrder(chains map[string]Distribution) (int, error) {
	for ctx := range chains {
		return utf8.RuneCountInString(ctx), nil
	}
	return 0, ErrEmptyModel
}

func newModel(order int, chains map[string]Distribution) *Model {
	total := 0
	for _, d := range chains {
		total += d.Total()
	}
	return &Model{
		order:    order,
		chains:   chains,
		contexts: slices.Sorted(maps.Keys(chains)),
		total:    total,
	}
}
