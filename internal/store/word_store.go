package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/sketchspy/internal/game"
)

// WordStore is the Postgres word supplier.
type WordStore struct {
	db *pgxpool.Pool
}

func NewWordStore(db *pgxpool.Pool) *WordStore {
	return &WordStore{db: db}
}

func (s *WordStore) RandomWord(ctx context.Context, category string) (string, error) {
	var w string
	err := s.db.QueryRow(ctx,
		`SELECT word FROM words
		 WHERE category = $1
		 ORDER BY random() LIMIT 1`,
		strings.ToLower(category),
	).Scan(&w)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", game.ErrUnknownCategory, category)
	}
	if err != nil {
		return "", fmt.Errorf("select word: %w", err)
	}
	return w, nil
}

func (s *WordStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT category FROM words ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return names, nil
}

// Seed inserts every word of words, skipping those already present.
func (s *WordStore) Seed(ctx context.Context, words map[string][]string) error {
	b := &pgx.Batch{}
	for category, list := range words {
		for _, w := range list {
			b.Queue(
				`INSERT INTO words (category, word) VALUES ($1, $2)
				 ON CONFLICT DO NOTHING`,
				category, w,
			)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	if err := s.db.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("seed words: %w", err)
	}
	return nil
}
