package game

type Phase string

const (
	PhaseLobby         Phase = "LOBBY"
	PhaseRoleReveal    Phase = "ROLE_REVEAL"
	PhaseDrawing       Phase = "DRAWING"
	PhaseVoting        Phase = "VOTING"
	PhaseImposterGuess Phase = "IMPOSTER_GUESS"
	PhaseScoreboard    Phase = "SCOREBOARD"
)

type Role string

const (
	RoleArtist   Role = "artist"
	RoleImposter Role = "imposter"
)

const (
	MinPlayers = 3
	MaxPlayers = 8
)

// RoleAssignment: artists share the same word, imposters get nil.
type RoleAssignment struct {
	PlayerID string  `json:"playerId"`
	Role     Role    `json:"role"`
	Word     *string `json:"word"`
}

// Point coordinates are normalized to [0,1].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Stroke struct {
	PlayerID  string  `json:"playerId"`
	Color     string  `json:"color"`
	Points    []Point `json:"points"`
	BrushSize float64 `json:"brushSize"`
	Timestamp int64   `json:"timestamp"`
}

type VoteResult struct {
	Votes          map[string]string `json:"votes"` // voterId -> targetId
	CaughtPlayerID *string           `json:"caughtPlayerId"`
	IsTie          bool              `json:"isTie"`
}

type RoundResult struct {
	Scores               map[string]int `json:"scores"`      // points earned this round
	TotalScores          map[string]int `json:"totalScores"` // cumulative
	ImposterID           string         `json:"imposterId"`
	ImposterIDs          []string       `json:"imposterIds"`
	ImposterCaught       bool           `json:"imposterCaught"`
	ImposterGuessCorrect *bool          `json:"imposterGuessCorrect"` // nil unless caught
	SecretWord           string         `json:"secretWord"`
}

// GameState is the public snapshot of a room. It never carries the secret word or roles.
type GameState struct {
	RoomCode         string   `json:"roomCode"`
	Phase            Phase    `json:"phase"`
	Players          []Player `json:"players"`
	Settings         Settings `json:"settings"`
	CurrentRound     int      `json:"currentRound"`
	CurrentTurnIndex int      `json:"currentTurnIndex"`
	TurnOrder        []string `json:"turnOrder"`
	ActivePlayerID   *string  `json:"activePlayerId"`
	Strokes          []Stroke `json:"strokes"`
	BreakRequests    []string `json:"breakRequests"`
}
