//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/sketchspy/internal/game"
	"example.com/sketchspy/internal/migrate"
)

func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set")
	}
	require.NoError(t, migrate.Up(dsn, "", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	t.Cleanup(pool.Close)
	return pool
}

func TestWordStore_SeedAndDraw(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	_, err := pool.Exec(ctx, `DELETE FROM words`)
	require.NoError(t, err)

	s := NewWordStore(pool)
	seed := map[string][]string{
		"colors": {"red", "green", "blue"},
		"shapes": {"circle"},
	}
	require.NoError(t, s.Seed(ctx, seed))
	require.NoError(t, s.Seed(ctx, seed))

	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"colors", "shapes"}, cats)

	w, err := s.RandomWord(ctx, "Colors")
	require.NoError(t, err)
	assert.Contains(t, seed["colors"], w)

	w, err = s.RandomWord(ctx, "shapes")
	require.NoError(t, err)
	assert.Equal(t, "circle", w)

	_, err = s.RandomWord(ctx, "dinosaurs")
	require.ErrorIs(t, err, game.ErrUnknownCategory)
}
