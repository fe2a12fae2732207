package game

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLen      = 24
	maxStrokePoints = 4096
	maxBrushSize    = 100
)

// Room is the per-room phase state machine. It is not safe for concurrent
// use: exactly one goroutine (the room actor) may own it.
type Room struct {
	code  string
	phase Phase

	players map[string]*Player
	order   []string // join order

	settings Settings
	strokes  []Stroke

	turns *TurnSequencer
	votes *VoteCollector
	tally *VoteResult // frozen once the room leaves VOTING
	roles []RoleAssignment

	secretWord    string
	guessCorrect  *bool
	breakRequests []string
	colorIndex    int

	words WordSupplier
	rnd   *rand.Rand
}

func NewRoom(code string, words WordSupplier, rnd *rand.Rand) *Room {
	return &Room{
		code:     code,
		phase:    PhaseLobby,
		players:  make(map[string]*Player),
		settings: DefaultSettings(),
		words:    words,
		rnd:      rnd,
	}
}

func (r *Room) Code() string       { return r.code }
func (r *Room) Phase() Phase       { return r.phase }
func (r *Room) Settings() Settings { return r.settings }
func (r *Room) Size() int          { return len(r.order) }
func (r *Room) SecretWord() string { return r.secretWord }

// Players returns copies in join order.
func (r *Room) Players() []Player {
	out := make([]Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.players[id])
	}
	return out
}

func (r *Room) PlayerIDs() []string {
	return append([]string(nil), r.order...)
}

func (r *Room) Player(id string) (Player, bool) {
	p, ok := r.players[id]
	if !ok {
		return Player{}, false
	}
	return *p, true
}

func (r *Room) IsHost(id string) bool {
	p, ok := r.players[id]
	return ok && p.IsHost
}

func (r *Room) Strokes() []Stroke {
	return append([]Stroke(nil), r.strokes...)
}

func (r *Room) TurnOrder() []string {
	if r.turns == nil {
		return nil
	}
	return r.turns.Order()
}

func (r *Room) CurrentRound() int {
	if r.turns == nil {
		return 0
	}
	return r.turns.Round()
}

// ActivePlayerID is the drawer whose turn it is; empty outside DRAWING.
func (r *Room) ActivePlayerID() string {
	if r.phase != PhaseDrawing || r.turns == nil || r.turns.Complete() {
		return ""
	}
	return r.turns.CurrentPlayerID()
}

func (r *Room) AddPlayer(name string, isHost bool) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return Player{}, ErrInvalidName
	}
	if r.phase != PhaseLobby {
		return Player{}, ErrNotInLobby
	}
	if len(r.order) >= MaxPlayers {
		return Player{}, ErrRoomFull
	}

	p := newPlayer(name, r.colorIndex, isHost)
	r.colorIndex++
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	return *p, nil
}

// Departure describes what a removal changed beyond the roster itself.
type Departure struct {
	Removed         bool
	NewHostID       string
	ReturnedToLobby bool
	TurnPassed      bool
	VotingStarted   bool
	// VotesReset lists voters whose ballot named the departed player and
	// was discarded; they may vote again.
	VotesReset []string
}

// RemovePlayer is allowed in any phase and is a no-op for unknown ids.
// The earliest-joined remaining player inherits the host flag. A round in
// progress is abandoned (back to LOBBY, scores kept) when the tracked
// imposter leaves or the roster drops below MinPlayers. Once voting has been
// resolved the tally no longer changes.
func (r *Room) RemovePlayer(id string) Departure {
	p, ok := r.players[id]
	if !ok {
		return Departure{}
	}
	d := Departure{Removed: true}
	trackedImposter := r.ImposterID()

	delete(r.players, id)
	r.order = removeID(r.order, id)
	r.breakRequests = removeID(r.breakRequests, id)

	if p.IsHost && len(r.order) > 0 {
		next := r.players[r.order[0]]
		next.IsHost = true
		d.NewHostID = next.ID
	}

	if !r.inRound() || len(r.order) == 0 {
		return d
	}
	if len(r.order) < MinPlayers || id == trackedImposter {
		r.abortRound()
		d.ReturnedToLobby = true
		return d
	}

	for i, ra := range r.roles {
		if ra.PlayerID == id {
			r.roles = append(r.roles[:i], r.roles[i+1:]...)
			break
		}
	}
	if r.phase == PhaseVoting && r.votes != nil {
		d.VotesReset = r.votes.Remove(id)
	}
	if r.turns != nil {
		wasActive := r.phase == PhaseDrawing && r.turns.CurrentPlayerID() == id
		r.turns.Remove(id)
		if r.phase == PhaseDrawing {
			if r.turns.Complete() {
				_ = r.StartVoting()
				d.VotingStarted = true
			} else if wasActive {
				d.TurnPassed = true
			}
		}
	}
	return d
}

func (r *Room) ToggleReady(id string) (Player, bool) {
	p, ok := r.players[id]
	if !ok {
		return Player{}, false
	}
	p.IsReady = !p.IsReady
	return *p, true
}

func (r *Room) AllPlayersReady() bool {
	if len(r.order) < MinPlayers {
		return false
	}
	for _, p := range r.players {
		if !p.IsReady {
			return false
		}
	}
	return true
}

// StartGame adopts settings (nil keeps the current ones), draws the secret
// word and moves to ROLE_REVEAL. On error nothing is changed.
func (r *Room) StartGame(ctx context.Context, settings *Settings) error {
	if r.phase != PhaseLobby {
		return ErrInvalidPhase
	}
	if len(r.order) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	for _, p := range r.players {
		if !p.IsReady {
			return ErrNotAllReady
		}
	}

	next := r.settings
	if settings != nil {
		s, err := settings.Normalize()
		if err != nil {
			return err
		}
		next = s
	}

	word, err := r.drawWord(ctx, next)
	if err != nil {
		return err
	}

	r.settings = next
	r.startRound(word)
	return nil
}

func (r *Room) drawWord(ctx context.Context, s Settings) (string, error) {
	if s.CustomWord != "" {
		return s.CustomWord, nil
	}
	word, err := r.words.RandomWord(ctx, s.Category)
	if err != nil {
		return "", fmt.Errorf("draw word: %w", err)
	}
	return word, nil
}

func (r *Room) startRound(word string) {
	r.secretWord = word
	r.turns = NewTurnSequencer(r.order, r.settings.Rounds, r.rnd)
	r.AssignRoles()
	r.strokes = nil
	r.votes = nil
	r.tally = nil
	r.guessCorrect = nil
	r.breakRequests = nil
	r.phase = PhaseRoleReveal
}

// AssignRoles picks 1 imposter (2 when the roster has 6 or more) uniformly
// at random. Artists get the secret word, imposters nil. Assignments are in
// join order and overwrite the previous ones.
func (r *Room) AssignRoles() []RoleAssignment {
	n := len(r.order)
	numImposters := 1
	if n >= 6 {
		numImposters = 2
	}

	imposters := make(map[string]bool, numImposters)
	for _, i := range r.rnd.Perm(n)[:min(numImposters, n)] {
		imposters[r.order[i]] = true
	}

	roles := make([]RoleAssignment, 0, n)
	for _, id := range r.order {
		if imposters[id] {
			roles = append(roles, RoleAssignment{PlayerID: id, Role: RoleImposter})
			continue
		}
		word := r.secretWord
		roles = append(roles, RoleAssignment{PlayerID: id, Role: RoleArtist, Word: &word})
	}
	r.roles = roles
	return r.Roles()
}

func (r *Room) Roles() []RoleAssignment {
	return append([]RoleAssignment(nil), r.roles...)
}

func (r *Room) RoleFor(id string) (RoleAssignment, error) {
	for _, ra := range r.roles {
		if ra.PlayerID == id {
			return ra, nil
		}
	}
	return RoleAssignment{}, fmt.Errorf("%w: %s", ErrNoRoleAssignment, id)
}

// ImposterID is the first imposter in join order: the one votes, the guess
// phase and scoring track.
func (r *Room) ImposterID() string {
	for _, ra := range r.roles {
		if ra.Role == RoleImposter {
			return ra.PlayerID
		}
	}
	return ""
}

func (r *Room) ImposterIDs() []string {
	var ids []string
	for _, ra := range r.roles {
		if ra.Role == RoleImposter {
			ids = append(ids, ra.PlayerID)
		}
	}
	return ids
}

func (r *Room) StartDrawing() error {
	if r.phase != PhaseRoleReveal {
		return ErrInvalidPhase
	}
	r.phase = PhaseDrawing
	return nil
}

// SubmitStroke appends the active drawer's stroke and advances the turn.
// The returned stroke carries the authoritative player id. When the last
// turn is taken the room moves to VOTING on its own.
func (r *Room) SubmitStroke(playerID string, s Stroke) (Stroke, error) {
	if r.phase != PhaseDrawing || r.turns == nil {
		return Stroke{}, ErrInvalidPhase
	}
	if r.turns.CurrentPlayerID() != playerID {
		return Stroke{}, ErrNotYourTurn
	}
	if err := validateStroke(s); err != nil {
		return Stroke{}, err
	}

	s.PlayerID = playerID
	if s.Color == "" {
		s.Color = r.players[playerID].Color
	}
	s.Points = append([]Point(nil), s.Points...)
	r.strokes = append(r.strokes, s)

	r.advanceTurn()
	return s, nil
}

// SkipTurn passes the drawer's turn without a stroke (turn timeout).
func (r *Room) SkipTurn(playerID string) error {
	if r.phase != PhaseDrawing || r.turns == nil {
		return ErrInvalidPhase
	}
	if r.turns.CurrentPlayerID() != playerID {
		return ErrNotYourTurn
	}
	r.advanceTurn()
	return nil
}

func (r *Room) advanceTurn() {
	r.turns.Advance()
	if r.turns.Complete() {
		// cannot fail: phase is DRAWING and roles are set
		_ = r.StartVoting()
	}
}

func validateStroke(s Stroke) error {
	if len(s.Points) == 0 || len(s.Points) > maxStrokePoints {
		return fmt.Errorf("%w: need 1..%d points", ErrInvalidStroke, maxStrokePoints)
	}
	if !(s.BrushSize > 0 && s.BrushSize <= maxBrushSize) {
		return fmt.Errorf("%w: brush size out of range", ErrInvalidStroke)
	}
	for _, pt := range s.Points {
		if !unit(pt.X) || !unit(pt.Y) {
			return fmt.Errorf("%w: points must be normalized", ErrInvalidStroke)
		}
	}
	return nil
}

func unit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func (r *Room) StartVoting() error {
	if r.phase != PhaseDrawing {
		return ErrInvalidPhase
	}
	imposterID := r.ImposterID()
	if imposterID == "" {
		return ErrNoRoleAssignment
	}
	r.votes = NewVoteCollector(r.order, imposterID)
	r.phase = PhaseVoting
	return nil
}

func (r *Room) SubmitVote(voterID, targetID string) error {
	if r.votes == nil {
		return ErrVotingNotStarted
	}
	if r.phase != PhaseVoting {
		return ErrInvalidPhase
	}
	return r.votes.Cast(voterID, targetID)
}

func (r *Room) AllVotesIn() bool {
	return r.votes != nil && r.votes.Complete()
}

func (r *Room) ResolveVotes() (VoteResult, error) {
	if r.tally != nil {
		return *r.tally, nil
	}
	if r.votes == nil {
		return VoteResult{}, ErrVotingNotStarted
	}
	return r.votes.Result(), nil
}

// ImposterCaught reports whether the vote singled out the tracked imposter.
func (r *Room) ImposterCaught() bool {
	vr, err := r.ResolveVotes()
	if err != nil {
		return false
	}
	return caughtBy(vr, r.ImposterID())
}

func caughtBy(vr VoteResult, imposterID string) bool {
	return vr.CaughtPlayerID != nil && !vr.IsTie && *vr.CaughtPlayerID == imposterID
}

// freezeTally pins the vote result as announced when voting closes.
func (r *Room) freezeTally() {
	if r.tally == nil && r.votes != nil {
		vr := r.votes.Result()
		r.tally = &vr
	}
}

// BeginImposterGuess gives a caught imposter the chance to name the word.
func (r *Room) BeginImposterGuess() error {
	if r.phase != PhaseVoting {
		return ErrInvalidPhase
	}
	if !r.ImposterCaught() {
		return ErrInvalidPhase
	}
	r.freezeTally()
	r.phase = PhaseImposterGuess
	return nil
}

// SubmitImposterGuess compares case-insensitively and records the outcome.
// The guess is taken as typed.
func (r *Room) SubmitImposterGuess(word string) (bool, error) {
	if r.secretWord == "" {
		return false, ErrNoSecretWord
	}
	correct := strings.EqualFold(word, r.secretWord)
	r.guessCorrect = &correct
	return correct, nil
}

// GuessWord is SubmitImposterGuess guarded by phase and by who is guessing.
func (r *Room) GuessWord(playerID, word string) (bool, error) {
	if r.phase != PhaseImposterGuess {
		return false, ErrInvalidPhase
	}
	if playerID != r.ImposterID() {
		return false, ErrNotImposter
	}
	return r.SubmitImposterGuess(word)
}

// CalculateScores applies this round's points to every player, working from
// the resolved vote.
func (r *Room) CalculateScores() (RoundResult, error) {
	vr, err := r.ResolveVotes()
	if err != nil {
		return RoundResult{}, err
	}
	imposterID := r.ImposterID()
	caught := caughtBy(vr, imposterID)

	var artistIDs []string
	for _, ra := range r.roles {
		if ra.Role == RoleArtist {
			artistIDs = append(artistIDs, ra.PlayerID)
		}
	}

	var guess *bool
	if caught && r.guessCorrect != nil {
		g := *r.guessCorrect
		guess = &g
	}

	points := ScoreRound(ScoreInput{
		Votes:                vr.Votes,
		ImposterID:           imposterID,
		ArtistIDs:            artistIDs,
		ImposterCaught:       caught,
		ImposterGuessCorrect: guess,
	})

	scores := make(map[string]int, len(r.order))
	totals := make(map[string]int, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		p.Score += points[id]
		scores[id] = points[id]
		totals[id] = p.Score
	}

	return RoundResult{
		Scores:               scores,
		TotalScores:          totals,
		ImposterID:           imposterID,
		ImposterIDs:          r.ImposterIDs(),
		ImposterCaught:       caught,
		ImposterGuessCorrect: guess,
		SecretWord:           r.secretWord,
	}, nil
}

// FinishRound scores the round once and moves to SCOREBOARD.
func (r *Room) FinishRound() (RoundResult, error) {
	if r.phase != PhaseVoting && r.phase != PhaseImposterGuess {
		return RoundResult{}, ErrInvalidPhase
	}
	r.freezeTally()
	res, err := r.CalculateScores()
	if err != nil {
		return RoundResult{}, err
	}
	r.phase = PhaseScoreboard
	return res, nil
}

// Winners are the players at or above the win score, in join order.
func (r *Room) Winners() []string {
	var ids []string
	for _, id := range r.order {
		if r.players[id].Score >= r.settings.WinScore {
			ids = append(ids, id)
		}
	}
	return ids
}

// NextRound starts another round keeping cumulative scores. Refusing to
// continue once someone has won is up to the caller.
func (r *Room) NextRound(ctx context.Context) error {
	if r.phase != PhaseScoreboard {
		return ErrInvalidPhase
	}
	if len(r.order) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	word, err := r.drawWord(ctx, r.settings)
	if err != nil {
		return err
	}
	r.startRound(word)
	return nil
}

// PlayAgain returns to LOBBY and zeroes every score and ready flag.
func (r *Room) PlayAgain() {
	r.abortRound()
	for _, p := range r.players {
		p.Score = 0
	}
}

// abortRound drops the round in progress and returns to LOBBY. Cumulative
// scores survive; ready flags are cleared.
func (r *Room) abortRound() {
	r.phase = PhaseLobby
	r.turns = nil
	r.votes = nil
	r.tally = nil
	r.roles = nil
	r.strokes = nil
	r.secretWord = ""
	r.guessCorrect = nil
	r.breakRequests = nil
	for _, p := range r.players {
		p.IsReady = false
	}
}

func (r *Room) RequestBreak(id string) []string {
	if _, ok := r.players[id]; ok && !containsID(r.breakRequests, id) {
		r.breakRequests = append(r.breakRequests, id)
	}
	return r.BreakRequests()
}

func (r *Room) CancelBreak(id string) []string {
	r.breakRequests = removeID(r.breakRequests, id)
	return r.BreakRequests()
}

func (r *Room) BreakRequests() []string {
	return append([]string{}, r.breakRequests...)
}

func (r *Room) State() GameState {
	st := GameState{
		RoomCode:      r.code,
		Phase:         r.phase,
		Players:       r.Players(),
		Settings:      r.settings,
		TurnOrder:     []string{},
		Strokes:       r.Strokes(),
		BreakRequests: r.BreakRequests(),
	}
	if st.Strokes == nil {
		st.Strokes = []Stroke{}
	}
	if r.turns != nil {
		st.CurrentRound = r.turns.Round()
		st.CurrentTurnIndex = r.turns.Index()
		st.TurnOrder = r.turns.Order()
	}
	if id := r.ActivePlayerID(); id != "" {
		st.ActivePlayerID = &id
	}
	return st
}

func (r *Room) inRound() bool {
	switch r.phase {
	case PhaseRoleReveal, PhaseDrawing, PhaseVoting, PhaseImposterGuess:
		return true
	}
	return false
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
