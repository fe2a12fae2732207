package game

import (
	"fmt"
	"strings"
)

const (
	CanvasShared     = "shared"
	CanvasIndividual = "individual"

	maxRounds        = 10
	maxDrawTimeLimit = 300
	maxWinScore      = 100
)

// Settings are adopted at game start and can only change between games.
type Settings struct {
	Category      string `json:"category"`
	CustomWord    string `json:"customWord,omitempty"`
	DrawTimeLimit int    `json:"drawTimeLimit"` // seconds per turn
	Rounds        int    `json:"rounds"`        // times each player draws before voting
	CanvasMode    string `json:"canvasMode"`
	WinScore      int    `json:"winScore"`
}

func DefaultSettings() Settings {
	return Settings{
		Category:      "random",
		DrawTimeLimit: 20,
		Rounds:        2,
		CanvasMode:    CanvasShared,
		WinScore:      10,
	}
}

// Normalize fills zero fields with defaults and validates the rest.
func (s Settings) Normalize() (Settings, error) {
	def := DefaultSettings()

	s.Category = strings.TrimSpace(s.Category)
	if s.Category == "" {
		s.Category = def.Category
	}
	s.CustomWord = strings.TrimSpace(s.CustomWord)
	if s.DrawTimeLimit == 0 {
		s.DrawTimeLimit = def.DrawTimeLimit
	}
	if s.Rounds == 0 {
		s.Rounds = def.Rounds
	}
	if s.CanvasMode == "" {
		s.CanvasMode = def.CanvasMode
	}
	if s.WinScore == 0 {
		s.WinScore = def.WinScore
	}

	switch {
	case s.Rounds < 1 || s.Rounds > maxRounds:
		return Settings{}, fmt.Errorf("%w: rounds must be 1..%d", ErrInvalidSettings, maxRounds)
	case s.DrawTimeLimit < 0 || s.DrawTimeLimit > maxDrawTimeLimit:
		return Settings{}, fmt.Errorf("%w: drawTimeLimit must be 0..%d", ErrInvalidSettings, maxDrawTimeLimit)
	case s.WinScore < 1 || s.WinScore > maxWinScore:
		return Settings{}, fmt.Errorf("%w: winScore must be 1..%d", ErrInvalidSettings, maxWinScore)
	case s.CanvasMode != CanvasShared && s.CanvasMode != CanvasIndividual:
		return Settings{}, fmt.Errorf("%w: canvasMode must be shared|individual", ErrInvalidSettings)
	}
	return s, nil
}
