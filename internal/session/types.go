package session

import (
	"encoding/json"

	"example.com/sketchspy/internal/game"
)

// Envelope WS envelope: {"type":"...","payload":{...}}
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// client -> server
const (
	MsgCreateRoom   = "create_room"
	MsgJoinRoom     = "join_room"
	MsgToggleReady  = "toggle_ready"
	MsgStartGame    = "start_game"
	MsgSubmitStroke = "submit_stroke"
	MsgSubmitVote   = "submit_vote"
	MsgSubmitGuess  = "submit_guess"
	MsgRequestBreak = "request_break"
	MsgCancelBreak  = "cancel_break"
	MsgNextRound    = "next_round"
	MsgPlayAgain    = "play_again"
)

// server -> client
const (
	EvtRoomCreated        = "room_created"
	EvtRoomJoined         = "room_joined"
	EvtPlayerJoined       = "player_joined"
	EvtPlayerLeft         = "player_left"
	EvtReadyChanged       = "ready_changed"
	EvtGameStarting       = "game_starting"
	EvtTurnStarted        = "turn_started"
	EvtTurnTimeout        = "turn_timeout"
	EvtStroke             = "stroke"
	EvtVotingStarted      = "voting_started"
	EvtVoteCast           = "vote_cast"
	EvtVoteReset          = "vote_reset"
	EvtVoteResult         = "vote_result"
	EvtImposterGuessPhase = "imposter_guess_phase"
	EvtRoundResult        = "round_result"
	EvtReturnToLobby      = "return_to_lobby"
	EvtBreakUpdate        = "break_update"
	EvtError              = "error"
)

// входящие

type CreateRoomPayload struct {
	Name string `json:"name"`
}

type JoinRoomPayload struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type StartGamePayload struct {
	Settings *game.Settings `json:"settings,omitempty"`
}

type SubmitStrokePayload struct {
	Stroke game.Stroke `json:"stroke"`
}

type SubmitVotePayload struct {
	TargetID string `json:"targetId"`
}

type SubmitGuessPayload struct {
	Word string `json:"word"`
}

// исходящие

type RoomJoinedPayload struct {
	Code         string        `json:"code"`
	Player       game.Player   `json:"player"`
	Players      []game.Player `json:"players"`
	SessionToken string        `json:"sessionToken,omitempty"`
}

type PlayerJoinedPayload struct {
	Player  game.Player   `json:"player"`
	Players []game.Player `json:"players"`
}

type PlayerLeftPayload struct {
	PlayerID string        `json:"playerId"`
	Players  []game.Player `json:"players"`
	HostID   string        `json:"hostId,omitempty"`
}

type ReadyChangedPayload struct {
	PlayerID string        `json:"playerId"`
	IsReady  bool          `json:"isReady"`
	Players  []game.Player `json:"players"`
}

type GameStartingPayload struct {
	Role      game.Role     `json:"role"`
	Word      *string       `json:"word"`
	TurnOrder []string      `json:"turnOrder"`
	Players   []game.Player `json:"players"`
	Settings  game.Settings `json:"settings"`
	Round     int           `json:"round"`
}

type TurnStartedPayload struct {
	ActivePlayerID string `json:"activePlayerId"`
	Round          int    `json:"round"`
	TimeLimit      int    `json:"timeLimit"`
	DeadlineMs     int64  `json:"deadlineMs"`
}

type TurnTimeoutPayload struct {
	PlayerID string `json:"playerId"`
}

type StrokePayload struct {
	Stroke game.Stroke `json:"stroke"`
}

type VotingStartedPayload struct {
	Players    []game.Player `json:"players"`
	DeadlineMs int64         `json:"deadlineMs"`
}

type VoteCastPayload struct {
	VoterID string `json:"voterId"`
}

// VoteResetPayload tells a voter that the player they voted for left and
// their ballot must be cast again.
type VoteResetPayload struct {
	DepartedID string        `json:"departedId"`
	Players    []game.Player `json:"players"`
}

type ImposterGuessPhasePayload struct {
	ImposterID string `json:"imposterId"`
	DeadlineMs int64  `json:"deadlineMs"`
}

type RoundResultPayload struct {
	Result    game.RoundResult `json:"result"`
	GameOver  bool             `json:"gameOver"`
	WinnerIDs []string         `json:"winnerIds"`
}

type ReturnToLobbyPayload struct {
	Players []game.Player `json:"players"`
}

type BreakUpdatePayload struct {
	PlayerIDs []string `json:"playerIds"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
