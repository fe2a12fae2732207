package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"example.com/sketchspy/internal/game"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, errCode, msg string) {
	writeJSON(w, code, ErrorResponse{Code: errCode, Message: msg})
}

// writeGameError maps game errors to a status; anything else is a 500.
func writeGameError(w http.ResponseWriter, err error) {
	var ge *game.Error
	if !errors.As(err, &ge) {
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	status := http.StatusConflict
	switch ge {
	case game.ErrRoomNotFound, game.ErrUnknownPlayer, game.ErrUnknownCategory:
		status = http.StatusNotFound
	}
	writeError(w, status, ge.Code, ge.Message)
}
