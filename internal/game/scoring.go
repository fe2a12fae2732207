package game

type ScoreInput struct {
	Votes                map[string]string // voterId -> targetId
	ImposterID           string
	ArtistIDs            []string
	ImposterCaught       bool
	ImposterGuessCorrect *bool // nil if not caught or no guess
}

// ScoreRound computes the points earned in one round:
//   - imposter escaped: imposter +2
//   - caught but guessed the word: imposter +1
//   - caught and missed the word: +1 to every artist who voted for the imposter
//
// Every id in the input is present in the result.
func ScoreRound(in ScoreInput) map[string]int {
	scores := make(map[string]int, len(in.ArtistIDs)+1)
	for _, id := range in.ArtistIDs {
		scores[id] = 0
	}
	scores[in.ImposterID] = 0

	switch {
	case !in.ImposterCaught:
		scores[in.ImposterID] += 2
	case in.ImposterGuessCorrect != nil && *in.ImposterGuessCorrect:
		scores[in.ImposterID] += 1
	default:
		for _, id := range in.ArtistIDs {
			if in.Votes[id] == in.ImposterID {
				scores[id]++
			}
		}
	}
	return scores
}
