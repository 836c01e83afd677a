package corpus

import (
	"fmt"
	"iter"
	"os"
	"unicode/utf8"

	"github.com/CTAG07/markovtext/pkg/markov"
)

// ReadFile reads a UTF-8 text file and returns a restartable character stream
// over its contents.
func ReadFile(path string) (iter.Seq[rune], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not valid UTF-8", path)
	}
	return markov.Runes(string(data)), nil
}
