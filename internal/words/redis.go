package words

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"example.com/sketchspy/internal/game"
)

const categoriesKey = "words:categories"

// RedisBank draws words from one Redis SET per category.
type RedisBank struct {
	rdb *redis.Client
}

func NewRedisBank(rdb *redis.Client) *RedisBank {
	return &RedisBank{rdb: rdb}
}

func (s *RedisBank) key(category string) string {
	return fmt.Sprintf("words:%s", strings.ToLower(category))
}

func (s *RedisBank) RandomWord(ctx context.Context, category string) (string, error) {
	w, err := s.rdb.SRandMember(ctx, s.key(category)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %q", game.ErrUnknownCategory, category)
	}
	if err != nil {
		return "", fmt.Errorf("redis srandmember: %w", err)
	}
	return w, nil
}

func (s *RedisBank) Categories(ctx context.Context) ([]string, error) {
	names, err := s.rdb.SMembers(ctx, categoriesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// Seed loads the built-in categories. Existing members are kept.
func (s *RedisBank) Seed(ctx context.Context) error {
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for name, list := range builtin {
			members := make([]any, len(list))
			for i, w := range list {
				members[i] = w
			}
			p.SAdd(ctx, s.key(name), members...)
			p.SAdd(ctx, categoriesKey, name)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed words: %w", err)
	}
	return nil
}
