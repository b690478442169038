package server

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rowanmaher/klondike/game"
	"github.com/rowanmaher/klondike/protocol"
)

var (
	ErrGameExists    = errors.New("a game with that ID already exists")
	ErrUnknownIntent = errors.New("unknown intent")
	ErrBadIntent     = errors.New("malformed intent")
)

// GameStore holds the live game sessions
type GameStore interface {
	AddGame(id string, s *Session) error
	GetGame(id string) (*Session, bool)
}

type inMemoryGameStore struct {
	mu    sync.Mutex
	games map[string]*Session
}

// NewInMemoryGameStore constructs an empty process-local store.
// Sessions live only as long as the process; there is no persistence
func NewInMemoryGameStore() GameStore {
	return &inMemoryGameStore{games: map[string]*Session{}}
}

func (s *inMemoryGameStore) AddGame(id string, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; ok {
		return ErrGameExists
	}
	s.games[id] = sess
	return nil
}

func (s *inMemoryGameStore) GetGame(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.games[id]
	return sess, ok
}

// Session serializes access to one game and fans fresh state out to
// its websocket subscribers. All engine calls and all connection
// writes happen under mu, so one intent is processed to completion
// before the next is accepted
type Session struct {
	mu          sync.Mutex
	game        *game.Game
	subscribers map[*websocket.Conn]bool
}

// NewSession wraps a game for concurrent use by the server
func NewSession(g *game.Game) *Session {
	return &Session{game: g, subscribers: map[*websocket.Conn]bool{}}
}

// IntentResult is what one applied intent yields: the rendered state
// afterwards, an advisor message for hint intents, and whether the
// intent was rejected by the rules (a rejection leaves the state
// untouched and is not an error)
type IntentResult struct {
	State    protocol.StateMessage `json:"state"`
	Hint     string                `json:"hint,omitempty"`
	Rejected bool                  `json:"rejected,omitempty"`
}

// rejection errors are rule refusals, surfaced to the client as a
// rejected intent rather than a failed request
func isRejection(err error) bool {
	return errors.Is(err, game.ErrIllegalMove) ||
		errors.Is(err, game.ErrEmptyPile) ||
		errors.Is(err, game.ErrNothingToUndo) ||
		errors.Is(err, game.ErrNotApplicable) ||
		errors.Is(err, game.ErrNoSelection)
}

func applyIntent(g *game.Game, msg protocol.IntentMessage) (hint string, err error) {
	switch msg.Command {
	case protocol.Deal:
		g.Deal()
	case protocol.Draw:
		err = g.Draw()
	case protocol.Move:
		if msg.From == nil {
			return "", ErrBadIntent
		}
		sel, selErr := msg.From.Selection()
		if selErr != nil {
			return "", ErrBadIntent
		}
		to, toErr := protocol.ParsePileID(msg.To)
		if toErr != nil {
			return "", ErrBadIntent
		}
		err = g.AttemptMove(sel, to)
	case protocol.Flip:
		err = g.FlipTableauTop(msg.Column)
	case protocol.AutoMove:
		if msg.From == nil {
			return "", ErrBadIntent
		}
		sel, selErr := msg.From.Selection()
		if selErr != nil {
			return "", ErrBadIntent
		}
		_, err = g.AutoMoveToFoundation(sel)
	case protocol.Undo:
		err = g.Undo()
	case protocol.Hint:
		hint = g.Hint()
	default:
		return "", ErrUnknownIntent
	}
	return hint, err
}

// Apply runs one intent against the session's game. Accepted intents
// that change state are pushed to every subscriber. A malformed
// intent returns an error; a rule refusal returns Rejected
func (s *Session) Apply(msg protocol.IntentMessage) (IntentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hint, err := applyIntent(s.game, msg)
	if err != nil && !isRejection(err) {
		return IntentResult{}, err
	}

	res := IntentResult{
		State:    s.render(),
		Hint:     hint,
		Rejected: err != nil,
	}
	if err == nil && msg.Command != protocol.Hint {
		s.broadcast(res.State)
	}
	return res, nil
}

// Render returns the session's current rendered state
func (s *Session) Render() protocol.StateMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

func (s *Session) render() protocol.StateMessage {
	return protocol.RenderState(s.game.State(), s.game.CanUndo())
}

// Subscribe registers a websocket connection and immediately sends it
// the current state
func (s *Session) Subscribe(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[conn] = true
	state := s.render()
	return conn.WriteJSON(wsEnvelope{Type: "state", State: &state})
}

// Unsubscribe removes a websocket connection
func (s *Session) Unsubscribe(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, conn)
}

// Send writes an envelope to one connection under the session lock,
// keeping connection writes single-writer
func (s *Session) Send(conn *websocket.Conn, env wsEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return conn.WriteJSON(env)
}

// broadcast pushes state to every subscriber, dropping connections
// that fail. Callers must hold mu
func (s *Session) broadcast(state protocol.StateMessage) {
	for conn := range s.subscribers {
		if err := conn.WriteJSON(wsEnvelope{Type: "state", State: &state}); err != nil {
			conn.Close()
			delete(s.subscribers, conn)
		}
	}
}
