/*
Package markov builds fixed-order, character-level Markov chain models from
text and generates synthetic text by a weighted random walk over them.

The pipeline is: an Alphabet cleans a character stream, Build counts which
character follows each context of Order characters, and a Generator samples a
new string from the resulting Model. Models are immutable once built.

	alpha := markov.DefaultAlphabet()
	model, err := markov.Build(alpha.Clean(markov.Runes(text)), 3)
	if err != nil {
		return err
	}
	out, err := markov.NewGenerator(nil).Generate(model, 200)

A walk that reaches a context with no recorded successors stops early; the
shorter string is returned without an error.
*/
package markov
