/*
Package corpus stores named raw text corpora in a SQLite database and hands
them out as character streams for the markov package.

Only source text is stored. Models are always rebuilt from a corpus, so the
store never needs to know about orders or counts.
*/
package corpus
