package markov

import (
	"errors"
	"reflect"
	"testing"
)

func TestModelAccessorsReturnCopies(t *testing.T) {
	m := mustBuild(t, dna, 1)

	d := m.Distribution("A")
	d['A'] = 100
	delete(d, 'C')
	if got := m.Distribution("A"); !reflect.DeepEqual(got, Distribution{'C': 10, 'T': 8}) {
		t.Errorf("model changed through Distribution(): %v", got)
	}

	chains := m.Chains()
	chains["Z"] = Distribution{'Z': 1}
	if m.Has("Z") {
		t.Error("model changed through Chains()")
	}

	contexts := m.Contexts()
	contexts[0] = "Z"
	if !reflect.DeepEqual(m.Contexts(), []string{"A", "C", "G", "T"}) {
		t.Errorf("Contexts() = %v", m.Contexts())
	}

	if m.Distribution("Q") != nil {
		t.Error("expected nil distribution for an unseen context")
	}
}

func TestDistribution(t *testing.T) {
	d := Distribution{'b': 2, 'a': 3, 'c': 1}
	if d.Total() != 6 {
		t.Errorf("Total() = %d, want 6", d.Total())
	}
	if got := d.Successors(); !reflect.DeepEqual(got, []rune{'a', 'b', 'c'}) {
		t.Errorf("Successors() = %q", got)
	}
	if (Distribution{}).Total() != 0 {
		t.Error("empty distribution should total 0")
	}
}

func TestInferOrder(t *testing.T) {
	order, err := InferOrder(mustBuild(t, dna, 3).Chains())
	if err != nil || order != 3 {
		t.Errorf("InferOrder() = %d, %v; want 3", order, err)
	}

	order, err = InferOrder(map[string]Distribution{"": {'a': 1}})
	if err != nil || order != 0 {
		t.Errorf("InferOrder() = %d, %v; want 0", order, err)
	}

	order, err = InferOrder(map[string]Distribution{"áé": {'a': 1}})
	if err != nil || order != 2 {
		t.Errorf("InferOrder() counts bytes instead of characters: %d, %v", order, err)
	}

	if _, err = InferOrder(mustBuild(t, "ab", 2).Chains()); !errors.Is(err, ErrEmptyModel) {
		t.Errorf("expected ErrEmptyModel, got %v", err)
	}
}

func TestStats(t *testing.T) {
	testCases := []struct {
		name   string
		corpus string
		order  int
		want   ModelStats
	}{
		{
			name:   "Dead end at the last context",
			corpus: "abc",
			order:  1,
			want:   ModelStats{Order: 1, Contexts: 2, Links: 2, Transitions: 2, Characters: 2, DeadEnds: 1},
		},
		{
			name:   "Cycle has no dead ends",
			corpus: "abcabc",
			order:  2,
			want:   ModelStats{Order: 2, Contexts: 3, Links: 3, Transitions: 4, Characters: 3, DeadEnds: 0},
		},
		{
			name:   "Order zero",
			corpus: dna,
			order:  0,
			want:   ModelStats{Order: 0, Contexts: 1, Links: 4, Transitions: 80, Characters: 4, DeadEnds: 0},
		},
		{
			name:   "Empty",
			corpus: "a",
			order:  3,
			want:   ModelStats{Order: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustBuild(t, tc.corpus, tc.order).Stats(); got != tc.want {
				t.Errorf("Stats() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestStatsCountsDeadEndContextsOnce(t *testing.T) {
	// Both "x" and "y" lead to "z", which has no successors.
	m := newModel(1, map[string]Distribution{
		"x": {'z': 2},
		"y": {'z': 1, 'x': 1},
	})
	want := ModelStats{Order: 1, Contexts: 2, Links: 3, Transitions: 4, Characters: 2, DeadEnds: 1}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestPrune(t *testing.T) {
	m := mustBuild(t, dna, 1)
	pruned := NewGenerator(nil).Prune(m, 9)

	want := map[string]Distribution{
		"A": {'C': 10},
		"C": {'G': 12},
		"G": {'C': 11, 'T': 11},
		"T": {'G': 10},
	}
	if got := pruned.Chains(); !reflect.DeepEqual(got, want) {
		t.Errorf("Prune(9) = %v, want %v", got, want)
	}
	if pruned.Total() != 54 {
		t.Errorf("pruned Total() = %d, want 54", pruned.Total())
	}
	if m.Total() != 79 {
		t.Errorf("Prune changed the original model: Total() = %d", m.Total())
	}

	if all := m.Prune(100); !all.Empty() || all.Order() != 1 {
		t.Errorf("pruning every link should leave an empty order 1 model, got %v", all.Chains())
	}
	if none := m.Prune(0); !reflect.DeepEqual(none.Chains(), m.Chains()) {
		t.Error("Prune(0) should keep every link")
	}
}
