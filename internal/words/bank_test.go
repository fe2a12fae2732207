package words

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/sketchspy/internal/game"
)

func TestBank_RandomWord(t *testing.T) {
	b := NewBank(rand.New(rand.NewPCG(1, 2)))
	ctx := context.Background()

	for _, cat := range Categories() {
		t.Run(cat, func(t *testing.T) {
			w, err := b.RandomWord(ctx, cat)
			require.NoError(t, err)
			list, ok := b.Words(cat)
			require.True(t, ok)
			assert.Contains(t, list, w)
		})
	}
}

func TestBank_CategoryIsCaseInsensitive(t *testing.T) {
	b := NewBank(nil)
	_, err := b.RandomWord(context.Background(), "Animals")
	require.NoError(t, err)
}

func TestBank_UnknownCategory(t *testing.T) {
	b := NewBank(nil)
	_, err := b.RandomWord(context.Background(), "dinosaurs")
	require.ErrorIs(t, err, game.ErrUnknownCategory)
	assert.Equal(t, "unknown_category", game.CodeOf(err))
}

func TestCategories(t *testing.T) {
	got := Categories()
	assert.Len(t, got, 13)
	assert.IsIncreasing(t, got)
	assert.Contains(t, got, "random")
	assert.Contains(t, got, "movies & tv")

	for _, c := range got {
		list, _ := NewBank(nil).Words(c)
		assert.NotEmpty(t, list, c)
	}
}

func TestBank_WordsReturnsCopy(t *testing.T) {
	b := NewBank(nil)
	list, _ := b.Words("food")
	list[0] = "changed"
	again, _ := b.Words("food")
	assert.NotEqual(t, "changed", again[0])
}
