package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/sketchspy/internal/auth"
	"example.com/sketchspy/internal/game"
)

var testSecret = []byte("test-secret")

type fakeRooms map[string]game.GameState

func (f fakeRooms) Snapshot(_ context.Context, code string) (game.GameState, error) {
	st, ok := f[code]
	if !ok {
		return game.GameState{}, game.ErrRoomNotFound
	}
	return st, nil
}

type fakeCategories struct {
	names []string
	err   error
}

func (f fakeCategories) Categories(context.Context) ([]string, error) { return f.names, f.err }

func newMux(h *RoomsHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /api/rooms/{code}", SessionMiddleware(testSecret)(http.HandlerFunc(h.Room)))
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	return mux
}

func token(t *testing.T, room string) string {
	t.Helper()
	tok, err := auth.Sign(testSecret, "p1", room, time.Minute)
	require.NoError(t, err)
	return tok
}

func TestRoomsHandler_Room(t *testing.T) {
	h := &RoomsHandler{Rooms: fakeRooms{
		"ABCD": {RoomCode: "ABCD", Phase: game.PhaseLobby},
	}}
	mux := newMux(h)

	cases := []struct {
		name   string
		path   string
		auth   string
		status int
		code   string
	}{
		{name: "ok", path: "/api/rooms/ABCD", auth: "Bearer " + token(t, "ABCD"), status: http.StatusOK},
		{name: "lowercase path", path: "/api/rooms/abcd", auth: "Bearer " + token(t, "ABCD"), status: http.StatusOK},
		{name: "missing token", path: "/api/rooms/ABCD", status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "bad token", path: "/api/rooms/ABCD", auth: "Bearer nope", status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "other room", path: "/api/rooms/ABCD", auth: "Bearer " + token(t, "WXYZ"), status: http.StatusForbidden, code: "forbidden"},
		{name: "bad code", path: "/api/rooms/AB1", auth: "Bearer " + token(t, "ABCD"), status: http.StatusBadRequest, code: "bad_request"},
		{name: "gone", path: "/api/rooms/QQQQ", auth: "Bearer " + token(t, "QQQQ"), status: http.StatusNotFound, code: "room_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.code != "" {
				var er ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
				assert.Equal(t, tc.code, er.Code)
				return
			}
			var st game.GameState
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
			assert.Equal(t, "ABCD", st.RoomCode)
			assert.Equal(t, game.PhaseLobby, st.Phase)
		})
	}
}

func TestRoomsHandler_ListCategories(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		mux := newMux(&RoomsHandler{Categories: fakeCategories{names: []string{"animals", "food"}}})
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CategoriesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"animals", "food"}, resp.Categories)
	})

	t.Run("backend failure", func(t *testing.T) {
		mux := newMux(&RoomsHandler{Categories: fakeCategories{err: errors.New("redis down")}})
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "redis down")
	})
}
