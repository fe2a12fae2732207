package session

import (
	"errors"

	"example.com/sketchspy/internal/game"
)

var (
	ErrAlreadyInRoom = &game.Error{Code: "already_in_room", Message: "connection already joined a room"}
	ErrNotInRoom     = &game.Error{Code: "not_in_room", Message: "create or join a room first"}
	ErrTooManyRooms  = &game.Error{Code: "too_many_rooms", Message: "server is at room capacity"}
	ErrRateLimited   = &game.Error{Code: "rate_limited", Message: "too many messages"}
	ErrBadJSON       = &game.Error{Code: "bad_json", Message: "invalid json"}
	ErrBadPayload    = &game.Error{Code: "bad_input", Message: "invalid payload"}
	ErrUnknownType   = &game.Error{Code: "unknown_type", Message: "unknown message type"}
)

// errorEnvelope hides the text of errors that are not game errors.
func errorEnvelope(err error) Envelope {
	p := ErrorPayload{Code: game.CodeOf(err), Message: "internal error"}
	var ge *game.Error
	if errors.As(err, &ge) {
		p.Message = err.Error()
	}
	return Envelope{Type: EvtError, Payload: mustJSON(p)}
}
