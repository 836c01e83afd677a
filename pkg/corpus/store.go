package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/CTAG07/markovtext/pkg/markov"
)

// CorpusInfo holds the metadata for a stored corpus.
type CorpusInfo struct {
	Id         int
	Name       string
	Characters int       // The number of characters in the raw text.
	Bytes      int       // The size of the raw text in bytes.
	AddedAt    time.Time // When the text was last written.
}

// SetupSchema initializes the corpus table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaCorpora = `
CREATE TABLE IF NOT EXISTS corpora (
    corpus_id INTEGER PRIMARY KEY,
    corpus_name TEXT NOT NULL UNIQUE,
    corpus_text TEXT NOT NULL,
    char_count INTEGER NOT NULL,
    byte_count INTEGER NOT NULL,
    added_at INTEGER NOT NULL
);
`
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaCorpora); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store is a library of named corpora backed by a database connection and a
// set of prepared statements.
type Store struct {
	db           *sql.DB
	stmtUpsert   *sql.Stmt
	stmtGetInfo  *sql.Stmt
	stmtGetInfos *sql.Stmt
	stmtGetText  *sql.Stmt
	stmtRemove   *sql.Stmt
	logger       *slog.Logger
	now          func() time.Time
}

// NewStore creates a Store on db, which must already have the schema from
// SetupSchema. It returns an error if any statement fails to prepare; the
// statements prepared before it are closed.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	statements := []struct {
		stmt  **sql.Stmt
		query string
	}{
		{&s.stmtGetInfo, `SELECT corpus_id, char_count, byte_count, added_at FROM corpora WHERE corpus_name = ?;`},
		{&s.stmtGetInfos, `SELECT corpus_id, corpus_name, char_count, byte_count, added_at FROM corpora ORDER BY corpus_name;`},
		{&s.stmtRemove, `DELETE FROM corpora WHERE corpus_name = ?;`},
		{&s.stmtGetText, `SELECT corpus_text FROM corpora WHERE corpus_name = ?;`},
		{&s.stmtUpsert, `
INSERT INTO corpora (corpus_name, corpus_text, char_count, byte_count, added_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(corpus_name) DO UPDATE SET
    corpus_text = excluded.corpus_text,
    char_count = excluded.char_count,
    byte_count = excluded.byte_count,
    added_at = excluded.added_at
RETURNING corpus_id;`},
	}
	for _, st := range statements {
		stmt, err := db.Prepare(st.query)
		if err != nil {
			s.Close()
			return nil, err
		}
		*st.stmt = stmt
	}
	return s, nil
}

// Close releases all prepared statements held by the Store.
func (s *Store) Close() {
	for _, stmt := range []*sql.Stmt{s.stmtUpsert, s.stmtGetInfo, s.stmtGetInfos, s.stmtGetText, s.stmtRemove} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// AddCorpus reads all of r and stores it under name, replacing any text
// already stored under that name. The text must be valid UTF-8.
func (s *Store) AddCorpus(ctx context.Context, name string, r io.Reader) (CorpusInfo, error) {
	if name == "" {
		return CorpusInfo{}, errors.New("corpus name must not be empty")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return CorpusInfo{}, fmt.Errorf("could not read corpus '%s': %w", name, err)
	}
	if !utf8.Valid(data) {
		return CorpusInfo{}, fmt.Errorf("corpus '%s' is not valid UTF-8", name)
	}

	info := CorpusInfo{
		Name:       name,
		Characters: utf8.RuneCount(data),
		Bytes:      len(data),
		AddedAt:    s.now().UTC().Truncate(time.Second),
	}
	err = s.stmtUpsert.QueryRowContext(ctx, name, string(data), info.Characters, info.Bytes, info.AddedAt.Unix()).Scan(&info.Id)
	if err != nil {
		return CorpusInfo{}, fmt.Errorf("could not store corpus '%s': %w", name, err)
	}

	s.logger.InfoContext(ctx, "Corpus stored",
		slog.String("corpus_name", name),
		slog.Int("corpus_id", info.Id),
		slog.Int("characters", info.Characters),
	)
	return info, nil
}

// GetCorpusInfo retrieves the metadata for a single corpus. It returns
// sql.ErrNoRows if no corpus has that name.
func (s *Store) GetCorpusInfo(ctx context.Context, name string) (CorpusInfo, error) {
	info := CorpusInfo{Name: name}
	var addedAt int64
	err := s.stmtGetInfo.QueryRowContext(ctx, name).Scan(&info.Id, &info.Characters, &info.Bytes, &addedAt)
	if err != nil {
		return CorpusInfo{}, err
	}
	info.AddedAt = time.Unix(addedAt, 0).UTC()
	return info, nil
}

// GetCorpusInfos retrieves metadata for every stored corpus, ordered by name.
func (s *Store) GetCorpusInfos(ctx context.Context) ([]CorpusInfo, error) {
	rows, err := s.stmtGetInfos.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	infos := make([]CorpusInfo, 0)
	for rows.Next() {
		var info CorpusInfo
		var addedAt int64
		if err = rows.Scan(&info.Id, &info.Name, &info.Characters, &info.Bytes, &addedAt); err != nil {
			return nil, err
		}
		info.AddedAt = time.Unix(addedAt, 0).UTC()
		infos = append(infos, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// RemoveCorpus deletes a corpus. It returns sql.ErrNoRows if no corpus has
// that name.
func (s *Store) RemoveCorpus(ctx context.Context, name string) error {
	res, err := s.stmtRemove.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to remove corpus '%s': %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	s.logger.InfoContext(ctx, "Corpus removed successfully",
		slog.String("corpus_name", name),
	)
	return nil
}

// Text returns the raw text of a corpus. It returns sql.ErrNoRows if no corpus
// has that name.
func (s *Store) Text(ctx context.Context, name string) (string, error) {
	var text string
	if err := s.stmtGetText.QueryRowContext(ctx, name).Scan(&text); err != nil {
		return "", err
	}
	return text, nil
}

// Stream loads a corpus once and returns a restartable character stream over
// its raw text.
func (s *Store) Stream(ctx context.Context, name string) (iter.Seq[rune], error) {
	text, err := s.Text(ctx, name)
	if err != nil {
		return nil, err
	}
	return markov.Runes(text), nil
}
