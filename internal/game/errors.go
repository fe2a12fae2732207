package game

import "errors"

// Error is a rule violation attributable to a single client action.
// Code is sent on the wire, Message is for humans.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// preconditions
	ErrNotInLobby       = &Error{Code: "not_in_lobby", Message: "can only join during lobby"}
	ErrRoomFull         = &Error{Code: "room_full", Message: "room is full"}
	ErrNotEnoughPlayers = &Error{Code: "not_enough_players", Message: "need at least 3 players to start"}
	ErrNotAllReady      = &Error{Code: "not_all_ready", Message: "all players must be ready to start"}
	ErrInvalidPhase     = &Error{Code: "invalid_phase", Message: "action not allowed in current phase"}
	ErrNotHost          = &Error{Code: "not_host", Message: "only the host can do that"}
	ErrGameOver         = &Error{Code: "game_over", Message: "game is over, use play again to return to lobby"}
	ErrInvalidSettings  = &Error{Code: "invalid_settings", Message: "invalid game settings"}
	ErrInvalidStroke    = &Error{Code: "invalid_stroke", Message: "invalid stroke"}
	ErrInvalidName      = &Error{Code: "invalid_name", Message: "name must be 1-24 characters"}

	// turn order
	ErrNotYourTurn = &Error{Code: "not_your_turn", Message: "not your turn"}

	// voting
	ErrVotingNotStarted = &Error{Code: "voting_not_started", Message: "voting has not started"}
	ErrUnknownVoter     = &Error{Code: "unknown_voter", Message: "voter is not a valid player"}
	ErrUnknownTarget    = &Error{Code: "unknown_target", Message: "voted-for player is not valid"}
	ErrSelfVote         = &Error{Code: "self_vote", Message: "cannot vote for self"}
	ErrDuplicateVote    = &Error{Code: "duplicate_vote", Message: "player has already voted"}
	ErrNotImposter      = &Error{Code: "not_imposter", Message: "only the imposter can guess the word"}

	// lookups
	ErrRoomNotFound     = &Error{Code: "room_not_found", Message: "room not found"}
	ErrUnknownPlayer    = &Error{Code: "unknown_player", Message: "player not found"}
	ErrUnknownCategory  = &Error{Code: "unknown_category", Message: "category not found"}
	ErrNoRoleAssignment = &Error{Code: "no_role_assignment", Message: "no role assignment found for player"}
	ErrNoSecretWord     = &Error{Code: "no_secret_word", Message: "no secret word set"}
)

// CodeOf returns the wire code for err, or "internal" if err is not a game error.
func CodeOf(err error) string {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return "internal"
}
