package postgres

import (
	"context"
	"fmt"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
)

const (
	sensesQuery = `SELECT id, pos, gloss, examples FROM senses
WHERE word = $1 AND ($2 = '' OR pos = $2)
ORDER BY position`

	wordsQuery = `SELECT DISTINCT word FROM senses ORDER BY word`

	countQuery = `SELECT COUNT(*) FROM senses WHERE word = $1`

	insertQuery = `INSERT INTO senses (id, word, pos, gloss, examples, position)
VALUES ($1, $2, $3, $4, $5, $6)`
)

type LexiconStore struct {
	q Querier
}

var _ storage.SenseRepository = (*LexiconStore)(nil)

func NewLexiconStore(q Querier) *LexiconStore {
	return &LexiconStore{q: q}
}

func (s *LexiconStore) Senses(ctx context.Context, word string) ([]sense.Sense, error) {
	return s.SensesPOS(ctx, word, "")
}

func (s *LexiconStore) SensesPOS(ctx context.Context, word string, pos sent.Category) ([]sense.Sense, error) {
	key := sense.Key(word)

	rows, err := s.q.Query(ctx, sensesQuery, key, string(pos))
	if err != nil {
		return nil, fmt.Errorf("query senses of %q: %w", key, err)
	}
	defer rows.Close()

	senses := []sense.Sense{}
	for rows.Next() {
		var (
			sn       sense.Sense
			category string
		)
		if err := rows.Scan(&sn.ID, &category, &sn.Gloss, &sn.Examples); err != nil {
			return nil, fmt.Errorf("scan sense: %w", err)
		}
		sn.Word = key
		sn.Pos = sent.Category(category)
		if sn.Examples == nil {
			sn.Examples = []string{}
		}
		senses = append(senses, sn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query senses of %q: %w", key, err)
	}

	return senses, nil
}

func (s *LexiconStore) Words(ctx context.Context) ([]string, error) {
	rows, err := s.q.Query(ctx, wordsQuery)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// Write appends entries in a single transaction. Senses of a word already
// stored are placed after the existing ones.
func (s *LexiconStore) Write(ctx context.Context, entries []sense.Entry) (err error) {
	tx, err := s.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, entry := range entries {
		word := sense.Key(entry.Word)

		var offset int
		if err = tx.QueryRow(ctx, countQuery, word).Scan(&offset); err != nil {
			return fmt.Errorf("count senses of %q: %w", word, err)
		}

		var normalized sense.Entry
		normalized, err = entry.NormalizeFrom(offset)
		if err != nil {
			return err
		}

		for i, sn := range normalized.Senses {
			_, err = tx.Exec(ctx, insertQuery, sn.ID, normalized.Word, string(sn.Pos), sn.Gloss, sn.Examples, offset+i)
			if err != nil {
				return fmt.Errorf("insert sense %s: %w", sn.ID, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
