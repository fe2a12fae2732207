package game

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%d", i+1)
	}
	return out
}

func TestTurnSequencer_OrderIsPermutation(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		roster := ids(int(seed%6) + 3)
		ts := NewTurnSequencer(roster, 2, testRand(seed))

		got := ts.Order()
		sort.Strings(got)
		want := append([]string(nil), roster...)
		sort.Strings(want)
		require.Equal(t, want, got, "seed %d", seed)
	}
}

func TestTurnSequencer_DoesNotAliasInput(t *testing.T) {
	roster := ids(4)
	ts := NewTurnSequencer(roster, 1, testRand(1))
	roster[0] = "changed"
	assert.NotContains(t, ts.Order(), "changed")
}

func TestTurnSequencer_CompletesAfterNTimesR(t *testing.T) {
	for n := 3; n <= 8; n++ {
		for r := 1; r <= 3; r++ {
			t.Run(fmt.Sprintf("n=%d,r=%d", n, r), func(t *testing.T) {
				ts := NewTurnSequencer(ids(n), r, testRand(uint64(n*10+r)))
				for i := 0; i < n*r; i++ {
					require.False(t, ts.Complete(), "complete after %d advances", i)
					ts.Advance()
				}
				assert.True(t, ts.Complete())
			})
		}
	}
}

func TestTurnSequencer_SameOrderEveryRound(t *testing.T) {
	ts := NewTurnSequencer(ids(4), 2, testRand(7))
	order := ts.Order()

	for round := 1; round <= 2; round++ {
		for i, want := range order {
			assert.Equal(t, round, ts.Round())
			assert.Equal(t, i, ts.Index())
			assert.Equal(t, want, ts.CurrentPlayerID())
			ts.Advance()
		}
	}
}

func TestTurnSequencer_DefaultRounds(t *testing.T) {
	ts := NewTurnSequencer(ids(3), 0, testRand(1))
	assert.Equal(t, DefaultRounds, ts.TotalRounds())
}

func TestTurnSequencer_Remove(t *testing.T) {
	cases := []struct {
		name      string
		advances  int
		removeAt  int // index into the order
		wantIndex int
		wantRound int
		wantNext  int // index into the order before removal
	}{
		{name: "before current", advances: 2, removeAt: 0, wantIndex: 1, wantRound: 1, wantNext: 2},
		{name: "current passes turn", advances: 1, removeAt: 1, wantIndex: 1, wantRound: 1, wantNext: 2},
		{name: "after current", advances: 1, removeAt: 3, wantIndex: 1, wantRound: 1, wantNext: 1},
		{name: "current and last wraps", advances: 3, removeAt: 3, wantIndex: 0, wantRound: 2, wantNext: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := NewTurnSequencer(ids(4), 2, testRand(3))
			order := ts.Order()
			for i := 0; i < tc.advances; i++ {
				ts.Advance()
			}

			require.True(t, ts.Remove(order[tc.removeAt]))
			assert.Len(t, ts.Order(), 3)
			assert.Equal(t, tc.wantIndex, ts.Index())
			assert.Equal(t, tc.wantRound, ts.Round())
			assert.Equal(t, order[tc.wantNext], ts.CurrentPlayerID())
		})
	}

	ts := NewTurnSequencer(ids(3), 1, testRand(3))
	assert.False(t, ts.Remove("nobody"))
}
