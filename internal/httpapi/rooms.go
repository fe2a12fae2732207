package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"example.com/sketchspy/internal/game"
)

type RoomReader interface {
	Snapshot(ctx context.Context, code string) (game.GameState, error)
}

type CategoryLister interface {
	Categories(ctx context.Context) ([]string, error)
}

type RoomsHandler struct {
	Rooms      RoomReader
	Categories CategoryLister
	Log        *slog.Logger
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// Room serves GET /api/rooms/{code} to a member of that room.
func (h *RoomsHandler) Room(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}
	code := strings.ToUpper(r.PathValue("code"))
	if !game.ValidRoomCode(code) {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid room code")
		return
	}
	if claims.RoomCode != code {
		writeError(w, http.StatusForbidden, "forbidden", "session is for another room")
		return
	}

	st, err := h.Rooms.Snapshot(r.Context(), code)
	if err != nil {
		h.logErr("room snapshot", err)
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ListCategories serves GET /api/categories.
func (h *RoomsHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	names, err := h.Categories.Categories(r.Context())
	if err != nil {
		h.logErr("list categories", err)
		writeGameError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: names})
}

func (h *RoomsHandler) logErr(msg string, err error) {
	if h.Log != nil && game.CodeOf(err) == "internal" {
		h.Log.Error(msg, "err", err)
	}
}
