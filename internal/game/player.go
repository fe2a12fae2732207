package game

import "github.com/google/uuid"

var PlayerColors = []string{
	"#E74C3C", // red
	"#3498DB", // blue
	"#2ECC71", // green
	"#F39C12", // orange
	"#9B59B6", // purple
	"#1ABC9C", // teal
	"#E67E22", // dark orange
	"#34495E", // dark blue
}

type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	IsHost  bool   `json:"isHost"`
	IsReady bool   `json:"isReady"`
	Score   int    `json:"score"`
}

func newPlayer(name string, colorIndex int, isHost bool) *Player {
	n := len(PlayerColors)
	idx := ((colorIndex % n) + n) % n
	return &Player{
		ID:     uuid.NewString(),
		Name:   name,
		Color:  PlayerColors[idx],
		IsHost: isHost,
	}
}
