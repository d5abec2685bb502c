package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type LexiconStore struct {
	pool *sqlitex.Pool
}

var _ storage.SenseRepository = (*LexiconStore)(nil)

func NewLexiconStore(pool *sqlitex.Pool) *LexiconStore {
	return &LexiconStore{pool: pool}
}

func (s *LexiconStore) Senses(ctx context.Context, word string) ([]sense.Sense, error) {
	return s.SensesPOS(ctx, word, "")
}

func (s *LexiconStore) SensesPOS(ctx context.Context, word string, pos sent.Category) ([]sense.Sense, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	key := sense.Key(word)
	senses := []sense.Sense{}
	byID := map[string]int{}

	err = sqlitex.Execute(conn, `SELECT id, pos, gloss FROM senses
		WHERE word = ? AND (? = '' OR pos = ?) ORDER BY position`, &sqlitex.ExecOptions{
		Args: []any{key, string(pos), string(pos)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			byID[stmt.ColumnText(0)] = len(senses)
			senses = append(senses, sense.Sense{
				ID:       stmt.ColumnText(0),
				Word:     key,
				Pos:      sent.Category(stmt.ColumnText(1)),
				Gloss:    stmt.ColumnText(2),
				Examples: []string{},
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read senses of %q: %w", key, err)
	}

	if len(senses) == 0 {
		return senses, nil
	}

	err = sqlitex.Execute(conn, `SELECT e.sense_id, e.text FROM examples e
		JOIN senses s ON s.id = e.sense_id
		WHERE s.word = ? ORDER BY s.position, e.position`, &sqlitex.ExecOptions{
		Args: []any{key},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			i, ok := byID[stmt.ColumnText(0)]
			if !ok {
				// filtered out by pos
				return nil
			}
			senses[i].Examples = append(senses[i].Examples, stmt.ColumnText(1))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read examples of %q: %w", key, err)
	}

	return senses, nil
}

func (s *LexiconStore) Words(ctx context.Context) ([]string, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	words := []string{}
	err = sqlitex.Execute(conn, "SELECT DISTINCT word FROM senses ORDER BY word", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			words = append(words, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return words, nil
}

// Write appends entries in a single transaction. Senses of a word already
// stored are placed after the existing ones.
func (s *LexiconStore) Write(ctx context.Context, entries []sense.Entry) (err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	for _, entry := range entries {
		if err = writeEntry(conn, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeEntry(conn *sqlite.Conn, entry sense.Entry) error {
	word := sense.Key(entry.Word)

	offset := 0
	err := sqlitex.Execute(conn, "SELECT COUNT(*) FROM senses WHERE word = ?", &sqlitex.ExecOptions{
		Args: []any{word},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			offset = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return err
	}

	entry, err = entry.NormalizeFrom(offset)
	if err != nil {
		return err
	}

	for i, sn := range entry.Senses {
		err = sqlitex.Execute(conn, "INSERT INTO senses (id, word, pos, gloss, position) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{sn.ID, entry.Word, string(sn.Pos), sn.Gloss, offset + i},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sense %s: %w", sn.ID, err)
		}

		for j, ex := range sn.Examples {
			err = sqlitex.Execute(conn, "INSERT INTO examples (sense_id, position, text) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
				Args: []any{sn.ID, j, ex},
			})
			if err != nil {
				return fmt.Errorf("failed to insert example of %s: %w", sn.ID, err)
			}
		}
	}

	return nil
}
