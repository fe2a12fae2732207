package game

import "slices"

// VoteCollector is one round of secret-ballot voting over a fixed roster.
type VoteCollector struct {
	players    map[string]struct{}
	imposterID string
	votes      map[string]string // voterId -> targetId
}

func NewVoteCollector(playerIDs []string, imposterID string) *VoteCollector {
	players := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		players[id] = struct{}{}
	}
	return &VoteCollector{
		players:    players,
		imposterID: imposterID,
		votes:      make(map[string]string, len(playerIDs)),
	}
}

func (v *VoteCollector) Cast(voterID, targetID string) error {
	if _, ok := v.players[voterID]; !ok {
		return ErrUnknownVoter
	}
	if _, ok := v.players[targetID]; !ok {
		return ErrUnknownTarget
	}
	if voterID == targetID {
		return ErrSelfVote
	}
	if _, ok := v.votes[voterID]; ok {
		return ErrDuplicateVote
	}
	v.votes[voterID] = targetID
	return nil
}

func (v *VoteCollector) Count() int { return len(v.votes) }

func (v *VoteCollector) HasVoted(playerID string) bool {
	_, ok := v.votes[playerID]
	return ok
}

func (v *VoteCollector) Complete() bool {
	return len(v.votes) == len(v.players)
}

// Result tallies the votes. A shared maximum is a tie and nobody is caught.
func (v *VoteCollector) Result() VoteResult {
	votes := make(map[string]string, len(v.votes))
	counts := make(map[string]int)
	for voter, target := range v.votes {
		votes[voter] = target
		counts[target]++
	}

	maxVotes := 0
	var leaders []string
	for id, n := range counts {
		switch {
		case n > maxVotes:
			maxVotes = n
			leaders = []string{id}
		case n == maxVotes:
			leaders = append(leaders, id)
		}
	}

	res := VoteResult{Votes: votes, IsTie: len(leaders) > 1}
	if len(leaders) == 1 {
		caught := leaders[0]
		res.CaughtPlayerID = &caught
	}
	return res
}

func (v *VoteCollector) CaughtImposter() bool {
	res := v.Result()
	if res.IsTie || res.CaughtPlayerID == nil {
		return false
	}
	return *res.CaughtPlayerID == v.imposterID
}

// Remove takes a departed player out of the ballot: their vote and the votes
// cast for them are discarded so those voters can vote again. It returns the
// voters whose ballot was discarded, sorted.
func (v *VoteCollector) Remove(playerID string) []string {
	delete(v.players, playerID)
	delete(v.votes, playerID)
	var reset []string
	for voter, target := range v.votes {
		if target == playerID {
			delete(v.votes, voter)
			reset = append(reset, voter)
		}
	}
	slices.Sort(reset)
	return reset
}
