package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/rowanmaher/klondike/game"
	"github.com/rowanmaher/klondike/protocol"
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Seed int64 `json:"seed,omitempty"`
}

type NewGameRes struct {
	GameID string                `json:"game_id"`
	State  protocol.StateMessage `json:"state"`
}

// wsEnvelope frames every websocket message sent to a client
type wsEnvelope struct {
	Type  string                 `json:"type"` // state, hint, rejected or error
	State *protocol.StateMessage `json:"state,omitempty"`
	Hint  string                 `json:"hint,omitempty"`
	Error string                 `json:"error,omitempty"`
}

// GameServer exposes the engine to a presentation layer over HTTP and
// websockets. It owns no game logic: every intent is handed to a
// Session, which drives the engine
type GameServer struct {
	store  GameStore
	logger zerolog.Logger
	http.Server
}

// NewID returns a fresh session identifier
func NewID() string {
	return uuid.NewV4().String()
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer backed by the given store
func NewServer(store GameStore, logger zerolog.Logger) *GameServer {
	s := new(GameServer)
	s.store = store
	s.logger = logger

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.Handler = handlers.RecoveryHandler()(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

// HandleNewGame deals a fresh game and registers it in the store
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	if r.Body != nil {
		defer r.Body.Close()
		// an empty body means a random deal
		_ = json.NewDecoder(r.Body).Decode(&data)
	}

	gameID := NewID()
	sess := NewSession(game.New(game.GameOpts{Seed: data.Seed}))

	if err := g.store.AddGame(gameID, sess); err != nil {
		g.logger.Error().Err(err).Str("game_id", gameID).Msg("failed to store game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.logger.Info().Str("game_id", gameID).Msg("new game dealt")
	g.writeJSON(w, http.StatusCreated, NewGameRes{GameID: gameID, State: sess.Render()})
}

// HandleGame serves GET /game/{id} for the current state and
// POST /game/{id}/intent to apply one intent
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/game/")
	gameID, action, _ := strings.Cut(rest, "/")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	sess, ok := g.store.GetGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		g.writeJSON(w, http.StatusOK, sess.Render())
	case action == "intent" && r.Method == http.MethodPost:
		g.handleIntent(w, r, gameID, sess)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *GameServer) handleIntent(w http.ResponseWriter, r *http.Request, gameID string, sess *Session) {
	var msg protocol.IntentMessage
	err := json.NewDecoder(r.Body).Decode(&msg)
	defer r.Body.Close()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(fmt.Sprintf("malformed intent: %s", err.Error())))
		return
	}

	res, err := sess.Apply(msg)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	g.logger.Debug().
		Str("game_id", gameID).
		Stringer("command", msg.Command).
		Bool("rejected", res.Rejected).
		Msg("intent applied")
	g.writeJSON(w, http.StatusOK, res)
}

// HandleWS upgrades to a websocket, subscribes the client to state
// pushes for its game, and accepts intents over the same connection
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	sess, ok := g.store.GetGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	if err := sess.Subscribe(conn); err != nil {
		g.logger.Error().Err(err).Str("game_id", gameID).Msg("websocket send failed")
		conn.Close()
		return
	}
	defer func() {
		sess.Unsubscribe(conn)
		conn.Close()
	}()

	for {
		var msg protocol.IntentMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Debug().Err(err).Str("game_id", gameID).Msg("websocket closed")
			}
			return
		}

		res, err := sess.Apply(msg)
		if err != nil {
			sess.Send(conn, wsEnvelope{Type: "error", Error: err.Error()})
			continue
		}
		switch {
		case res.Rejected:
			sess.Send(conn, wsEnvelope{Type: "rejected", State: &res.State})
		case msg.Command == protocol.Hint:
			sess.Send(conn, wsEnvelope{Type: "hint", Hint: res.Hint})
		}
		// accepted state changes reach this client via the broadcast
	}
}
