package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"example.com/sketchspy/internal/auth"
	"example.com/sketchspy/internal/game"
)

const (
	inboxSize   = 128
	wordTimeout = 3 * time.Second
)

// roomActor owns one game.Room. Every read or write of the room, its
// connections and its timer happens on the goroutine running run.
type roomActor struct {
	hub  *Hub
	code string
	room *game.Room
	log  *slog.Logger

	inbox chan func()
	done  chan struct{}

	conns map[string]*ClientConn
	round int // game rounds played since the lobby

	timer    *time.Timer
	timerSeq uint64
	closed   bool
}

func newRoomActor(h *Hub, room *game.Room) *roomActor {
	return &roomActor{
		hub:   h,
		code:  room.Code(),
		room:  room,
		log:   h.log.With("room", room.Code()),
		inbox: make(chan func(), inboxSize),
		done:  make(chan struct{}),
		conns: make(map[string]*ClientConn),
	}
}

func (a *roomActor) run() {
	for {
		select {
		case fn := <-a.inbox:
			fn()
		case <-a.done:
			return
		}
	}
}

// post queues fn for the actor; false once the room is gone.
func (a *roomActor) post(fn func()) bool {
	select {
	case <-a.done:
		return false
	default:
	}
	select {
	case a.inbox <- fn:
		return true
	case <-a.done:
		return false
	}
}

func (a *roomActor) teardown() {
	if a.closed {
		return
	}
	a.closed = true
	a.cancelTimer()
	a.hub.remove(a.code, a)
	close(a.done)
	a.log.Info("room closed")
}

// schedule replaces the pending timer. fn runs on the actor unless the
// timer was cancelled or replaced in the meantime.
func (a *roomActor) schedule(d time.Duration, fn func()) {
	a.cancelTimer()
	seq := a.timerSeq
	a.timer = time.AfterFunc(d, func() {
		a.post(func() {
			if seq != a.timerSeq {
				return // старый таймер
			}
			a.timer = nil
			fn()
		})
	})
}

func (a *roomActor) cancelTimer() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.timerSeq++
}

func deadlineMs(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return time.Now().Add(d).UnixMilli()
}

// handle runs one client message and reports any failure to its sender only.
func (a *roomActor) handle(playerID string, env Envelope) {
	err := a.dispatch(playerID, env)
	if err == nil {
		return
	}
	if game.CodeOf(err) == "internal" {
		a.log.Error("action failed", "player", playerID, "type", env.Type, "err", err)
	}
	a.sendTo(playerID, errorEnvelope(err))
}

func (a *roomActor) dispatch(playerID string, env Envelope) error {
	if _, ok := a.room.Player(playerID); !ok {
		return game.ErrUnknownPlayer
	}

	switch env.Type {
	case MsgToggleReady:
		return a.toggleReady(playerID)

	case MsgStartGame:
		var p StartGamePayload
		if err := decode(env, &p); err != nil {
			return err
		}
		return a.startGame(playerID, p.Settings)

	case MsgSubmitStroke:
		var p SubmitStrokePayload
		if err := decode(env, &p); err != nil {
			return err
		}
		return a.submitStroke(playerID, p.Stroke)

	case MsgSubmitVote:
		var p SubmitVotePayload
		if err := decode(env, &p); err != nil {
			return err
		}
		return a.submitVote(playerID, p.TargetID)

	case MsgSubmitGuess:
		var p SubmitGuessPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		return a.submitGuess(playerID, p.Word)

	case MsgRequestBreak:
		a.broadcastBreaks(a.room.RequestBreak(playerID))
		return nil

	case MsgCancelBreak:
		a.broadcastBreaks(a.room.CancelBreak(playerID))
		return nil

	case MsgNextRound:
		return a.nextRound(playerID)

	case MsgPlayAgain:
		return a.playAgain(playerID)

	case MsgCreateRoom, MsgJoinRoom:
		return ErrAlreadyInRoom

	default:
		return ErrUnknownType
	}
}

func decode(env Envelope, v any) error {
	if len(env.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return ErrBadPayload
	}
	return nil
}

func (a *roomActor) toggleReady(playerID string) error {
	if a.room.Phase() != game.PhaseLobby {
		return game.ErrInvalidPhase
	}
	p, _ := a.room.ToggleReady(playerID)
	a.broadcast(Envelope{
		Type:    EvtReadyChanged,
		Payload: mustJSON(ReadyChangedPayload{PlayerID: p.ID, IsReady: p.IsReady, Players: a.room.Players()}),
	})
	return nil
}

func (a *roomActor) startGame(playerID string, settings *game.Settings) error {
	if !a.room.IsHost(playerID) {
		return game.ErrNotHost
	}
	ctx, cancel := context.WithTimeout(a.hub.ctx, wordTimeout)
	defer cancel()
	if err := a.room.StartGame(ctx, settings); err != nil {
		return err
	}
	a.log.Info("game started", "players", a.room.Size())
	a.beginRound()
	return nil
}

func (a *roomActor) nextRound(playerID string) error {
	if !a.room.IsHost(playerID) {
		return game.ErrNotHost
	}
	if a.room.Phase() == game.PhaseScoreboard && len(a.room.Winners()) > 0 {
		return game.ErrGameOver
	}
	ctx, cancel := context.WithTimeout(a.hub.ctx, wordTimeout)
	defer cancel()
	if err := a.room.NextRound(ctx); err != nil {
		return err
	}
	a.beginRound()
	return nil
}

func (a *roomActor) playAgain(playerID string) error {
	if !a.room.IsHost(playerID) {
		return game.ErrNotHost
	}
	if a.room.Phase() != game.PhaseScoreboard {
		return game.ErrInvalidPhase
	}
	a.room.PlayAgain()
	a.returnToLobby()
	return nil
}

// beginRound sends each player their own role, then waits out the reveal.
func (a *roomActor) beginRound() {
	a.round++
	players := a.room.Players()
	order := a.room.TurnOrder()
	settings := a.room.Settings()

	for _, p := range players {
		ra, err := a.room.RoleFor(p.ID)
		if err != nil {
			a.log.Error("missing role", "player", p.ID, "err", err)
			continue
		}
		a.sendTo(p.ID, Envelope{
			Type: EvtGameStarting,
			Payload: mustJSON(GameStartingPayload{
				Role:      ra.Role,
				Word:      ra.Word,
				TurnOrder: order,
				Players:   players,
				Settings:  settings,
				Round:     a.round,
			}),
		})
	}

	a.schedule(a.hub.cfg.RoleRevealDelay, a.revealDone)
}

func (a *roomActor) revealDone() {
	if err := a.room.StartDrawing(); err != nil {
		return
	}
	a.announceTurn()
}

func (a *roomActor) announceTurn() {
	id := a.room.ActivePlayerID()
	if id == "" {
		return
	}

	limit := a.room.Settings().DrawTimeLimit
	var deadline int64
	if a.hub.cfg.TurnTimeoutEnforced && limit > 0 {
		d := time.Duration(limit) * time.Second
		deadline = deadlineMs(d)
		a.schedule(d, func() { a.turnTimedOut(id) })
	} else {
		a.cancelTimer()
	}

	a.broadcast(Envelope{
		Type: EvtTurnStarted,
		Payload: mustJSON(TurnStartedPayload{
			ActivePlayerID: id,
			Round:          a.room.CurrentRound(),
			TimeLimit:      limit,
			DeadlineMs:     deadline,
		}),
	})
}

func (a *roomActor) turnTimedOut(playerID string) {
	if err := a.room.SkipTurn(playerID); err != nil {
		return
	}
	a.broadcast(Envelope{Type: EvtTurnTimeout, Payload: mustJSON(TurnTimeoutPayload{PlayerID: playerID})})
	a.afterTurn()
}

func (a *roomActor) submitStroke(playerID string, s game.Stroke) error {
	stamped, err := a.room.SubmitStroke(playerID, s)
	if err != nil {
		return err
	}
	a.broadcast(Envelope{Type: EvtStroke, Payload: mustJSON(StrokePayload{Stroke: stamped})})
	a.afterTurn()
	return nil
}

func (a *roomActor) afterTurn() {
	if a.room.Phase() == game.PhaseVoting {
		a.beginVoting()
		return
	}
	a.announceTurn()
}

func (a *roomActor) beginVoting() {
	d := a.hub.cfg.VotingDuration
	if d > 0 {
		a.schedule(d, a.votingTimedOut)
	} else {
		a.cancelTimer()
	}
	a.broadcast(Envelope{
		Type:    EvtVotingStarted,
		Payload: mustJSON(VotingStartedPayload{Players: a.room.Players(), DeadlineMs: deadlineMs(d)}),
	})
}

func (a *roomActor) votingTimedOut() {
	if a.room.Phase() != game.PhaseVoting {
		return
	}
	a.log.Info("voting deadline reached")
	a.resolveVoting()
}

func (a *roomActor) submitVote(playerID, targetID string) error {
	if err := a.room.SubmitVote(playerID, targetID); err != nil {
		return err
	}
	a.broadcast(Envelope{Type: EvtVoteCast, Payload: mustJSON(VoteCastPayload{VoterID: playerID})})
	if a.room.AllVotesIn() {
		a.resolveVoting()
	}
	return nil
}

func (a *roomActor) resolveVoting() {
	a.cancelTimer()
	vr, err := a.room.ResolveVotes()
	if err != nil {
		a.log.Error("resolve votes", "err", err)
		return
	}
	a.broadcast(Envelope{Type: EvtVoteResult, Payload: mustJSON(vr)})

	if !a.room.ImposterCaught() {
		a.finishRound()
		return
	}
	if err := a.room.BeginImposterGuess(); err != nil {
		a.log.Error("begin imposter guess", "err", err)
		return
	}
	d := a.hub.cfg.GuessDuration
	if d > 0 {
		a.schedule(d, a.guessTimedOut)
	}
	a.broadcast(Envelope{
		Type:    EvtImposterGuessPhase,
		Payload: mustJSON(ImposterGuessPhasePayload{ImposterID: a.room.ImposterID(), DeadlineMs: deadlineMs(d)}),
	})
}

func (a *roomActor) guessTimedOut() {
	if a.room.Phase() != game.PhaseImposterGuess {
		return
	}
	a.finishRound()
}

func (a *roomActor) submitGuess(playerID, word string) error {
	if _, err := a.room.GuessWord(playerID, word); err != nil {
		return err
	}
	a.finishRound()
	return nil
}

func (a *roomActor) finishRound() {
	a.cancelTimer()
	res, err := a.room.FinishRound()
	if err != nil {
		a.log.Error("finish round", "err", err)
		return
	}
	winners := a.room.Winners()
	if winners == nil {
		winners = []string{}
	}
	a.broadcast(Envelope{
		Type:    EvtRoundResult,
		Payload: mustJSON(RoundResultPayload{Result: res, GameOver: len(winners) > 0, WinnerIDs: winners}),
	})
}

func (a *roomActor) returnToLobby() {
	a.cancelTimer()
	a.round = 0
	a.broadcast(Envelope{Type: EvtReturnToLobby, Payload: mustJSON(ReturnToLobbyPayload{Players: a.room.Players()})})
}

func (a *roomActor) broadcastBreaks(ids []string) {
	a.broadcast(Envelope{Type: EvtBreakUpdate, Payload: mustJSON(BreakUpdatePayload{PlayerIDs: ids})})
}

// leave removes a player and repairs whatever round was in progress.
func (a *roomActor) leave(playerID string) {
	delete(a.conns, playerID)
	d := a.room.RemovePlayer(playerID)
	if !d.Removed {
		return
	}
	a.log.Info("player left", "player", playerID)

	if a.room.Size() == 0 {
		a.teardown()
		return
	}

	a.broadcast(Envelope{
		Type:    EvtPlayerLeft,
		Payload: mustJSON(PlayerLeftPayload{PlayerID: playerID, Players: a.room.Players(), HostID: a.hostID()}),
	})
	for _, voter := range d.VotesReset {
		a.sendTo(voter, Envelope{
			Type:    EvtVoteReset,
			Payload: mustJSON(VoteResetPayload{DepartedID: playerID, Players: a.room.Players()}),
		})
	}

	switch {
	case d.ReturnedToLobby:
		a.returnToLobby()
	case d.VotingStarted:
		a.beginVoting()
	case d.TurnPassed:
		a.announceTurn()
	case a.room.Phase() == game.PhaseVoting && a.room.AllVotesIn():
		a.resolveVoting()
	}
}

func (a *roomActor) hostID() string {
	for _, p := range a.room.Players() {
		if p.IsHost {
			return p.ID
		}
	}
	return ""
}

func (a *roomActor) sendJoined(evt string, p game.Player) {
	a.sendTo(p.ID, Envelope{
		Type: evt,
		Payload: mustJSON(RoomJoinedPayload{
			Code:         a.code,
			Player:       p,
			Players:      a.room.Players(),
			SessionToken: a.sessionToken(p.ID),
		}),
	})
}

func (a *roomActor) sessionToken(playerID string) string {
	cfg := a.hub.cfg
	if len(cfg.SessionSecret) == 0 {
		return ""
	}
	tok, err := auth.Sign(cfg.SessionSecret, playerID, a.code, cfg.SessionTTL)
	if err != nil {
		a.log.Error("sign session token", "player", playerID, "err", err)
		return ""
	}
	return tok
}

func (a *roomActor) sendTo(playerID string, env Envelope) {
	cc := a.conns[playerID]
	if cc == nil {
		return
	}
	if !cc.Send(env) {
		a.log.Debug("message dropped", "player", playerID, "type", env.Type)
	}
}

func (a *roomActor) broadcast(env Envelope) {
	for id := range a.conns {
		a.sendTo(id, env)
	}
}

func (a *roomActor) broadcastExcept(skip string, env Envelope) {
	for id := range a.conns {
		if id != skip {
			a.sendTo(id, env)
		}
	}
}
