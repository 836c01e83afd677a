package markov

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

// DefaultAlphabetChars lists the characters retained by DefaultAlphabet:
// ASCII letters, common Latin punctuation (including the inverted Spanish marks),
// the acute-accented lowercase vowels, and space.
const DefaultAlphabetChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"¡! ,().:;?¿áéíóú"

// Alphabet is the set of characters the filter keeps. Whitespace is never
// looked up in the set; it is always collapsed into a single space.
type Alphabet struct {
	allowed map[rune]struct{}
}

// NewAlphabet builds an Alphabet from every rune in chars. Duplicates are ignored.
func NewAlphabet(chars string) *Alphabet {
	a := &Alphabet{allowed: make(map[rune]struct{}, len(chars))}
	for _, r := range chars {
		a.allowed[r] = struct{}{}
	}
	return a
}

// DefaultAlphabet returns an Alphabet built from DefaultAlphabetChars.
func DefaultAlphabet() *Alphabet {
	return NewAlphabet(DefaultAlphabetChars)
}

// Contains reports whether r is retained by the filter.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.allowed[r]
	return ok
}

// Len returns the number of distinct characters in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.allowed)
}

// String returns the alphabet's characters in code point order.
func (a *Alphabet) String() string {
	runes := make([]rune, 0, len(a.allowed))
	for r := range a.allowed {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return string(runes)
}

// Clean returns a lazy stream restricted to the alphabet plus space.
//
// A run of whitespace becomes one space, written only once the next retained
// character arrives, so trailing whitespace produces nothing. Characters that
// are neither whitespace nor in the alphabet are dropped and leave any pending
// space untouched. The returned sequence re-reads stream on every iteration.
func (a *Alphabet) Clean(stream iter.Seq[rune]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		pendingSpace := false
		for r := range stream {
			if unicode.IsSpace(r) {
				pendingSpace = true
				continue
			}
			if !a.Contains(r) {
				continue
			}
			if pendingSpace {
				pendingSpace = false
				if !yield(' ') {
					return
				}
			}
			if !yield(r) {
				return
			}
		}
	}
}

// CleanString is Clean for an in-memory string.
func (a *Alphabet) CleanString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for r := range a.Clean(Runes(s)) {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Runes returns a restartable stream over the runes of s.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
