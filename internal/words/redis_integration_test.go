//go:build integration

package words

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/sketchspy/internal/game"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, rdb.Ping(ctx).Err(), "redis is not reachable")
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisBank_SeedAndDraw(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)
	require.NoError(t, rdb.FlushDB(ctx).Err())

	bank := NewRedisBank(rdb)
	require.NoError(t, bank.Seed(ctx))
	// seeding twice keeps the sets intact
	require.NoError(t, bank.Seed(ctx))

	cats, err := bank.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, Categories(), cats)

	w, err := bank.RandomWord(ctx, "animals")
	require.NoError(t, err)
	list, _ := NewBank(nil).Words("animals")
	assert.Contains(t, list, w)

	_, err = bank.RandomWord(ctx, "dinosaurs")
	require.ErrorIs(t, err, game.ErrUnknownCategory)
}
