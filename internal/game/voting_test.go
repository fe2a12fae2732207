package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteCollector_Cast(t *testing.T) {
	cases := []struct {
		name          string
		voter, target string
		wantErr       error
	}{
		{name: "valid", voter: "p1", target: "p2"},
		{name: "unknown voter", voter: "x", target: "p2", wantErr: ErrUnknownVoter},
		{name: "unknown target", voter: "p1", target: "x", wantErr: ErrUnknownTarget},
		{name: "self vote", voter: "p1", target: "p1", wantErr: ErrSelfVote},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vc := NewVoteCollector(ids(4), "p2")
			err := vc.Cast(tc.voter, tc.target)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, 0, vc.Count())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, vc.Count())
		})
	}
}

func TestVoteCollector_DuplicateLeavesCountUnchanged(t *testing.T) {
	vc := NewVoteCollector(ids(3), "p2")
	require.NoError(t, vc.Cast("p1", "p2"))

	require.ErrorIs(t, vc.Cast("p1", "p3"), ErrDuplicateVote)
	require.ErrorIs(t, vc.Cast("p1", "p1"), ErrSelfVote)
	assert.Equal(t, 1, vc.Count())
	assert.Equal(t, "p2", vc.Result().Votes["p1"])
}

func TestVoteCollector_CompleteAfterEveryVote(t *testing.T) {
	for n := 3; n <= 8; n++ {
		roster := ids(n)
		vc := NewVoteCollector(roster, roster[0])
		for i, voter := range roster {
			require.False(t, vc.Complete())
			require.NoError(t, vc.Cast(voter, roster[(i+1)%n]))
		}
		assert.True(t, vc.Complete())
	}
}

func TestVoteCollector_Result(t *testing.T) {
	t.Run("plurality", func(t *testing.T) {
		vc := NewVoteCollector(ids(4), "p2")
		require.NoError(t, vc.Cast("p1", "p2"))
		require.NoError(t, vc.Cast("p3", "p2"))
		require.NoError(t, vc.Cast("p4", "p1"))

		res := vc.Result()
		require.NotNil(t, res.CaughtPlayerID)
		assert.Equal(t, "p2", *res.CaughtPlayerID)
		assert.False(t, res.IsTie)
		assert.True(t, vc.CaughtImposter())
	})

	t.Run("2-2 tie catches nobody", func(t *testing.T) {
		vc := NewVoteCollector(ids(4), "p2")
		require.NoError(t, vc.Cast("p1", "p2"))
		require.NoError(t, vc.Cast("p2", "p1"))
		require.NoError(t, vc.Cast("p3", "p1"))
		require.NoError(t, vc.Cast("p4", "p2"))

		res := vc.Result()
		assert.Nil(t, res.CaughtPlayerID)
		assert.True(t, res.IsTie)
		assert.False(t, vc.CaughtImposter())
	})

	t.Run("wrong player caught", func(t *testing.T) {
		vc := NewVoteCollector(ids(3), "p2")
		require.NoError(t, vc.Cast("p1", "p3"))
		require.NoError(t, vc.Cast("p2", "p3"))

		res := vc.Result()
		require.NotNil(t, res.CaughtPlayerID)
		assert.Equal(t, "p3", *res.CaughtPlayerID)
		assert.False(t, vc.CaughtImposter())
	})

	t.Run("no votes", func(t *testing.T) {
		vc := NewVoteCollector(ids(3), "p2")
		res := vc.Result()
		assert.Nil(t, res.CaughtPlayerID)
		assert.False(t, res.IsTie)
		assert.Empty(t, res.Votes)
	})
}

func TestVoteCollector_Remove(t *testing.T) {
	vc := NewVoteCollector(ids(4), "p2")
	require.NoError(t, vc.Cast("p1", "p4"))
	require.NoError(t, vc.Cast("p4", "p2"))
	require.NoError(t, vc.Cast("p3", "p2"))

	assert.Equal(t, []string{"p1"}, vc.Remove("p4"))

	assert.Equal(t, 1, vc.Count())
	assert.False(t, vc.HasVoted("p1"))
	assert.True(t, vc.HasVoted("p3"))
	require.ErrorIs(t, vc.Cast("p1", "p4"), ErrUnknownTarget)
	require.NoError(t, vc.Cast("p1", "p2"))
	require.NoError(t, vc.Cast("p2", "p1"))
	assert.True(t, vc.Complete())
}
