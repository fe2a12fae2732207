package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"example.com/sketchspy/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // MVP
}

var clientMessages = map[string]bool{
	MsgCreateRoom:   true,
	MsgJoinRoom:     true,
	MsgToggleReady:  true,
	MsgStartGame:    true,
	MsgSubmitStroke: true,
	MsgSubmitVote:   true,
	MsgSubmitGuess:  true,
	MsgRequestBreak: true,
	MsgCancelBreak:  true,
	MsgNextRound:    true,
	MsgPlayAgain:    true,
}

// Server is the websocket front of a Hub.
type Server struct {
	hub *Hub
	log *slog.Logger
}

func NewServer(hub *Hub) *Server {
	return &Server{hub: hub, log: hub.log}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws", s.handleWS)
}

func (s *Server) newLimiter() *rate.Limiter {
	cfg := s.hub.cfg
	if cfg.InboundRate <= 0 {
		return nil
	}
	burst := cfg.InboundBurst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.InboundRate), burst)
}

// handleWS serves one connection as one player. The first message must be
// create_room or join_room.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	ws.SetReadLimit(maxMsgSize)

	cc := newClientConn(ws, s.newLimiter())
	go cc.writeLoop()

	var member *Member
	defer func() {
		if member != nil {
			member.Leave()
		}
		cc.Close()
	}()

	// reader loop
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}
		if !cc.allow() {
			cc.SendError(ErrRateLimited)
			continue
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			cc.SendError(ErrBadJSON)
			continue
		}
		if !clientMessages[env.Type] {
			cc.SendError(ErrUnknownType)
			continue
		}

		switch {
		case env.Type == MsgCreateRoom || env.Type == MsgJoinRoom:
			if member != nil {
				cc.SendError(ErrAlreadyInRoom)
				continue
			}
			m, err := s.enter(r.Context(), cc, env)
			if err != nil {
				if game.CodeOf(err) == "internal" {
					s.log.Error("enter room", "type", env.Type, "err", err)
				}
				cc.SendError(err)
				continue
			}
			member = m

		case member == nil:
			cc.SendError(ErrNotInRoom)

		default:
			if err := member.Dispatch(env); err != nil {
				cc.SendError(err)
				member = nil
			}
		}
	}
}

func (s *Server) enter(ctx context.Context, cc *ClientConn, env Envelope) (*Member, error) {
	if env.Type == MsgCreateRoom {
		var p CreateRoomPayload
		if err := decode(env, &p); err != nil {
			return nil, err
		}
		return s.hub.CreateRoom(ctx, p.Name, cc)
	}

	var p JoinRoomPayload
	if err := decode(env, &p); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(p.Code))
	if !game.ValidRoomCode(code) {
		return nil, game.ErrRoomNotFound
	}
	return s.hub.JoinRoom(ctx, code, p.Name, cc)
}
