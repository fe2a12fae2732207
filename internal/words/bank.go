package words

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"example.com/sketchspy/internal/game"
)

// Bank is the in-memory word supplier. Safe for concurrent use.
type Bank struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	words map[string][]string
}

// NewBank returns a Bank over the built-in categories. A nil rnd uses a
// randomly seeded source.
func NewBank(rnd *rand.Rand) *Bank {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bank{rnd: rnd, words: builtin}
}

func (b *Bank) RandomWord(_ context.Context, category string) (string, error) {
	list, ok := b.words[strings.ToLower(category)]
	if !ok || len(list) == 0 {
		return "", fmt.Errorf("%w: %q", game.ErrUnknownCategory, category)
	}
	b.mu.Lock()
	i := b.rnd.IntN(len(list))
	b.mu.Unlock()
	return list[i], nil
}

// Categories lists category names sorted.
func (b *Bank) Categories(context.Context) ([]string, error) {
	return Categories(), nil
}

// Words returns a copy of one built-in category.
func (b *Bank) Words(category string) ([]string, bool) {
	list, ok := b.words[category]
	return slices.Clone(list), ok
}

// Categories lists the built-in category names sorted.
func Categories() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Builtin returns a copy of the built-in word lists.
func Builtin() map[string][]string {
	out := make(map[string][]string, len(builtin))
	for name, list := range builtin {
		out[name] = slices.Clone(list)
	}
	return out
}
