package game

import "math/rand/v2"

const DefaultRounds = 2

// TurnSequencer owns the drawing order. The permutation is fixed for its
// lifetime and reused every round.
type TurnSequencer struct {
	order       []string
	round       int // 1-based
	index       int
	totalRounds int
}

func NewTurnSequencer(playerIDs []string, rounds int, rnd *rand.Rand) *TurnSequencer {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	order := append([]string(nil), playerIDs...)
	// Fisher-Yates
	for i := len(order) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return &TurnSequencer{
		order:       order,
		round:       1,
		totalRounds: rounds,
	}
}

func (t *TurnSequencer) Order() []string {
	return append([]string(nil), t.order...)
}

func (t *TurnSequencer) CurrentPlayerID() string {
	if len(t.order) == 0 {
		return ""
	}
	return t.order[t.index]
}

func (t *TurnSequencer) Round() int       { return t.round }
func (t *TurnSequencer) Index() int       { return t.index }
func (t *TurnSequencer) TotalRounds() int { return t.totalRounds }

func (t *TurnSequencer) Advance() {
	t.index++
	if t.index >= len(t.order) {
		t.index = 0
		t.round++
	}
}

func (t *TurnSequencer) Complete() bool {
	return t.round > t.totalRounds
}

// Remove drops a departed player from the order. The player currently up
// keeps the turn unless it is the one removed, in which case the next one in
// order takes over.
func (t *TurnSequencer) Remove(playerID string) bool {
	pos := -1
	for i, id := range t.order {
		if id == playerID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}
	t.order = append(t.order[:pos], t.order[pos+1:]...)
	if pos < t.index {
		t.index--
	}
	if t.index >= len(t.order) {
		t.index = 0
		t.round++
	}
	return true
}
