package markov

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	temperature float64
	topK        int
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in Generate and GenerateFrom.
type GenerateOption func(*generateOptions)

// WithTemperature adjusts the randomness of each weighted choice.
// A value of 1.0 is standard selection proportional to observed counts.
// Values > 1.0 flatten the distribution, values < 1.0 sharpen it.
// A value of 0 or less always picks the most frequent candidate, breaking ties
// by lowest character (or context) order.
func WithTemperature(t float64) GenerateOption {
	return func(o *generateOptions) { o.temperature = t }
}

// WithTopK restricts each choice to the `k` most frequent candidates.
// A value of 0 disables Top-K sampling.
func WithTopK(k int) GenerateOption {
	return func(o *generateOptions) { o.topK = k }
}

func buildOptions(opts []GenerateOption) (*generateOptions, error) {
	options := &generateOptions{
		temperature: 1.0,
		topK:        0,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.topK < 0 {
		return nil, fmt.Errorf("%w: top-k must be non-negative, got %d", ErrContractViolation, options.topK)
	}
	if math.IsNaN(options.temperature) || math.IsInf(options.temperature, 0) {
		return nil, fmt.Errorf("%w: temperature must be finite", ErrContractViolation)
	}
	return options, nil
}

// candidate is one weighted option in a choice: a context at the start of a
// walk, or a successor character at every later step.
type candidate[T any] struct {
	value  T
	weight int
}

// Generate performs a weighted random walk over m and returns at most length
// characters.
//
// The first context is chosen with probability proportional to its share of
// all transitions and is copied verbatim into the output. Each following
// character is drawn from the current context's own distribution, and the
// context slides forward by one. The walk stops when the output reaches length
// or when the current context has no recorded successors; the latter yields a
// shorter string and is not an error.
//
// It returns ErrContractViolation if length is less than the model's order and
// ErrEmptyModel if the model has no contexts.
func (g *Generator) Generate(m *Model, length int, opts ...GenerateOption) (string, error) {
	if m == nil {
		return "", ErrEmptyModel
	}
	if length < m.order {
		return "", fmt.Errorf("%w: length %d is less than model order %d", ErrContractViolation, length, m.order)
	}
	options, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if m.Empty() {
		return "", ErrEmptyModel
	}

	starts := make([]candidate[string], len(m.contexts))
	for i, ctx := range m.contexts {
		starts[i] = candidate[string]{value: ctx, weight: m.chains[ctx].Total()}
	}
	start := choose(g, starts, m.total, options)

	return g.walk(m, start, length, options), nil
}

// GenerateFrom continues a walk from seed instead of a randomly chosen context.
// The seed is copied into the output (truncated to length characters) and its
// last Order characters form the first context. An empty seed behaves like
// Generate.
//
// It returns ErrContractViolation if the seed is shorter than the model's order
// or length is less than the order, and ErrEmptyModel if the model has no
// contexts.
func (g *Generator) GenerateFrom(m *Model, seed string, length int, opts ...GenerateOption) (string, error) {
	if seed == "" {
		return g.Generate(m, length, opts...)
	}
	if m == nil {
		return "", ErrEmptyModel
	}
	if length < m.order {
		return "", fmt.Errorf("%w: length %d is less than model order %d", ErrContractViolation, length, m.order)
	}
	if n := utf8.RuneCountInString(seed); n < m.order {
		return "", fmt.Errorf("%w: seed has %d characters, model order is %d", ErrContractViolation, n, m.order)
	}
	options, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if m.Empty() {
		return "", ErrEmptyModel
	}

	if runes := []rune(seed); len(runes) > length {
		seed = string(runes[:length])
	}
	return g.walk(m, seed, length, options), nil
}

// walk contains the main loop for extending prefix into a generated string.
func (g *Generator) walk(m *Model, prefix string, length int, options *generateOptions) string {
	var builder strings.Builder
	builder.WriteString(prefix)
	generated := utf8.RuneCountInString(prefix)

	current := newWindow(m.order)
	current.reset(prefix)
	context := current.String()

	var successors []candidate[rune]
	for generated < length {
		d, ok := m.chains[context]
		if !ok {
			g.logger.Debug("Generation terminated due to dead-end",
				slog.Int("order", m.order),
				slog.String("last_context", context),
				slog.Int("generated_length", generated),
				slog.Int("target_length", length),
			)
			return builder.String()
		}

		successors = successors[:0]
		for _, r := range d.Successors() {
			successors = append(successors, candidate[rune]{value: r, weight: d[r]})
		}
		next := choose(g, successors, d.Total(), options)

		builder.WriteRune(next)
		generated++
		current.push(next)
		context = current.String()
	}

	g.logger.Debug("Generation terminated by reaching target length",
		slog.Int("order", m.order),
		slog.Int("target_length", length),
	)
	return builder.String()
}

// choose picks one candidate. total must be the sum of all candidate weights.
// Candidates are expected in a stable order so that seeded generators are
// reproducible.
func choose[T any](g *Generator, choices []candidate[T], total int, options *generateOptions) T {
	// topK filtering
	if options.topK > 0 && options.topK < len(choices) {
		choices = slices.Clone(choices)
		slices.SortStableFunc(choices, func(a, b candidate[T]) int {
			return b.weight - a.weight
		})
		choices = choices[:options.topK]
		total = weightSum(choices)
	}

	switch {
	case options.temperature <= 0: // Deterministic
		best := choices[0]
		for _, c := range choices[1:] {
			if c.weight > best.weight {
				best = c
			}
		}
		return best.value

	case options.temperature == 1.0: // Standard weighted random
		pick := g.randIntN(total)
		for _, c := range choices {
			pick -= c.weight
			if pick < 0 {
				return c.value
			}
		}

	default: // Temperature-based sampling
		// Exponents are relative to the largest count: at most zero, and
		// exactly zero for the most frequent candidate at any temperature.
		maxLog := math.Log(float64(slices.MaxFunc(choices, func(a, b candidate[T]) int {
			return a.weight - b.weight
		}).weight))
		var totalWeight float64
		weights := make([]float64, len(choices))
		for i, c := range choices {
			weights[i] = math.Exp((math.Log(float64(c.weight)) - maxLog) / options.temperature)
			totalWeight += weights[i]
		}
		pick := g.randFloat64() * totalWeight
		for i, c := range choices {
			pick -= weights[i]
			if pick < 0 {
				return c.value
			}
		}
	}
	// Rounding can leave pick just above zero after the last candidate.
	return choices[len(choices)-1].value
}

func weightSum[T any](choices []candidate[T]) int {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	return total
}
