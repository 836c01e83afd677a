package markov

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	alpha := DefaultAlphabet()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Newline and space runs", input: "Emma\n by Jane         Austen", want: "Emma by Jane Austen"},
		{name: "Leading run kept, trailing dropped", input: "      Hi, this    \n is a    doctest.     ", want: " Hi, this is a doctest."},
		{name: "Empty input", input: "", want: ""},
		{name: "Only whitespace", input: " \t\n ", want: ""},
		{name: "Only disallowed", input: "#$%&123", want: ""},
		{name: "Disallowed between letters", input: "a#b", want: "ab"},
		{name: "Disallowed inside whitespace run", input: "a \x01\n b", want: "a b"},
		{name: "Disallowed then whitespace at end", input: "a # ", want: "a"},
		{name: "Leading whitespace before disallowed only", input: "   ###", want: ""},
		{name: "Accented vowels kept", input: "¿Qué  más?", want: "¿Qué más?"},
		{name: "Other scripts dropped", input: "мир peace", want: " peace"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := alpha.CleanString(tc.input); got != tc.want {
				t.Errorf("CleanString(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	alpha := DefaultAlphabet()
	inputs := []string{
		"Emma\n by Jane         Austen",
		"      Hi, this    \n is a    doctest.     ",
		"\t\tIn a village of La Mancha,\r\n the name of which I have no desire to call to mind...",
		"a # b\x00c  ",
	}
	for _, in := range inputs {
		once := alpha.CleanString(in)
		twice := alpha.CleanString(once)
		if once != twice {
			t.Errorf("clean not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCleanIsRestartable(t *testing.T) {
	alpha := NewAlphabet("ab")
	stream := alpha.Clean(Runes("a  b c a"))

	var first, second strings.Builder
	for r := range stream {
		first.WriteRune(r)
	}
	for r := range stream {
		second.WriteRune(r)
	}
	if first.String() != "a b a" || first.String() != second.String() {
		t.Errorf("got %q then %q, want \"a b a\" twice", first.String(), second.String())
	}
}

func TestCleanStopsEarly(t *testing.T) {
	var got []rune
	for r := range DefaultAlphabet().Clean(Runes("ab  cd")) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	if string(got) != "ab " {
		t.Errorf("got %q, want \"ab \"", string(got))
	}
}

func TestAlphabet(t *testing.T) {
	alpha := NewAlphabet("cabba")
	if alpha.Len() != 3 {
		t.Errorf("Len() = %d, want 3", alpha.Len())
	}
	if alpha.String() != "abc" {
		t.Errorf("String() = %q, want \"abc\"", alpha.String())
	}
	if !alpha.Contains('b') || alpha.Contains('d') {
		t.Error("Contains() gave the wrong answer")
	}

	def := DefaultAlphabet()
	for _, r := range "zZ¡¿úó ;" {
		if !def.Contains(r) {
			t.Errorf("default alphabet is missing %q", r)
		}
	}
	for _, r := range "0_\"ñ" {
		if def.Contains(r) {
			t.Errorf("default alphabet should not contain %q", r)
		}
	}
}
