package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"example.com/sketchspy/internal/game"
)

type Config struct {
	RoleRevealDelay time.Duration
	VotingDuration  time.Duration // 0 => client-advisory only
	GuessDuration   time.Duration // 0 => client-advisory only

	// TurnTimeoutEnforced skips a drawer after settings.DrawTimeLimit seconds.
	TurnTimeoutEnforced bool

	MaxRooms int // 0 => unlimited

	SessionSecret []byte
	SessionTTL    time.Duration

	InboundRate  float64 // messages per second per connection, 0 => unlimited
	InboundBurst int
}

func DefaultConfig() Config {
	return Config{
		RoleRevealDelay: 5 * time.Second,
		VotingDuration:  30 * time.Second,
		GuessDuration:   20 * time.Second,
		SessionTTL:      12 * time.Hour,
		InboundRate:     30,
		InboundBurst:    60,
	}
}

// Hub is the room registry. It owns room creation and lookup; everything
// inside a room runs on that room's actor goroutine.
type Hub struct {
	cfg   Config
	log   *slog.Logger
	words game.WordSupplier

	mu    sync.Mutex
	rooms map[string]*roomActor
	rnd   *rand.Rand

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHub builds a Hub. A nil rnd uses a randomly seeded source; each room
// gets its own source derived from it.
func NewHub(cfg Config, words game.WordSupplier, log *slog.Logger, rnd *rand.Rand) *Hub {
	if log == nil {
		log = slog.Default()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		cfg:    cfg,
		log:    log,
		words:  words,
		rooms:  make(map[string]*roomActor),
		rnd:    rnd,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Member binds one connection to its player in a room.
type Member struct {
	room     *roomActor
	playerID string
}

func (m *Member) PlayerID() string { return m.playerID }
func (m *Member) RoomCode() string { return m.room.code }

// Dispatch hands a client message to the room actor. It fails only when
// the room is gone.
func (m *Member) Dispatch(env Envelope) error {
	if !m.room.post(func() { m.room.handle(m.playerID, env) }) {
		return game.ErrRoomNotFound
	}
	return nil
}

// Leave removes the player; the room is torn down when it empties.
func (m *Member) Leave() {
	m.room.post(func() { m.room.leave(m.playerID) })
}

// CreateRoom allocates an unused code and starts its actor with the caller
// as host.
func (h *Hub) CreateRoom(ctx context.Context, name string, cc *ClientConn) (*Member, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ctx.Err(); err != nil {
		return nil, fmt.Errorf("hub closed: %w", err)
	}
	if h.cfg.MaxRooms > 0 && len(h.rooms) >= h.cfg.MaxRooms {
		return nil, ErrTooManyRooms
	}

	code := game.NewRoomCode(h.rnd)
	for h.rooms[code] != nil {
		code = game.NewRoomCode(h.rnd)
	}

	roomRnd := rand.New(rand.NewPCG(h.rnd.Uint64(), h.rnd.Uint64()))
	a := newRoomActor(h, game.NewRoom(code, h.words, roomRnd))

	p, err := a.room.AddPlayer(name, true)
	if err != nil {
		return nil, err
	}
	a.conns[p.ID] = cc
	a.sendJoined(EvtRoomCreated, p)

	h.rooms[code] = a
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		a.run()
	}()

	h.log.Info("room created", "room", code, "player", p.ID)
	return &Member{room: a, playerID: p.ID}, nil
}

func (h *Hub) JoinRoom(ctx context.Context, code, name string, cc *ClientConn) (*Member, error) {
	a, ok := h.lookup(code)
	if !ok {
		return nil, game.ErrRoomNotFound
	}

	type result struct {
		id  string
		err error
	}
	reply := make(chan result, 1)
	posted := a.post(func() {
		p, err := a.room.AddPlayer(name, false)
		if err != nil {
			reply <- result{err: err}
			return
		}
		a.conns[p.ID] = cc
		a.sendJoined(EvtRoomJoined, p)
		a.broadcastExcept(p.ID, Envelope{
			Type:    EvtPlayerJoined,
			Payload: mustJSON(PlayerJoinedPayload{Player: p, Players: a.room.Players()}),
		})
		a.log.Info("player joined", "player", p.ID)
		reply <- result{id: p.ID}
	})
	if !posted {
		return nil, game.ErrRoomNotFound
	}

	select {
	case res := <-reply:
		if res.err != nil {
			return nil, res.err
		}
		return &Member{room: a, playerID: res.id}, nil
	case <-a.done:
		return nil, game.ErrRoomNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Snapshot returns the room's current GameState.
func (h *Hub) Snapshot(ctx context.Context, code string) (game.GameState, error) {
	a, ok := h.lookup(code)
	if !ok {
		return game.GameState{}, game.ErrRoomNotFound
	}
	reply := make(chan game.GameState, 1)
	if !a.post(func() { reply <- a.room.State() }) {
		return game.GameState{}, game.ErrRoomNotFound
	}
	select {
	case st := <-reply:
		return st, nil
	case <-a.done:
		return game.GameState{}, game.ErrRoomNotFound
	case <-ctx.Done():
		return game.GameState{}, ctx.Err()
	}
}

// RoomCount is the number of live rooms.
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

// Close stops every room actor and waits for them to exit.
func (h *Hub) Close() {
	h.cancel()
	h.mu.Lock()
	actors := make([]*roomActor, 0, len(h.rooms))
	for _, a := range h.rooms {
		actors = append(actors, a)
	}
	h.mu.Unlock()

	for _, a := range actors {
		a.post(a.teardown)
	}
	h.wg.Wait()
}

func (h *Hub) lookup(code string) (*roomActor, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	a, ok := h.rooms[code]
	return a, ok
}

// remove drops code only if it still maps to a.
func (h *Hub) remove(code string, a *roomActor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[code] == a {
		delete(h.rooms, code)
	}
}
