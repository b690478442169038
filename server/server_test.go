package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	utils "github.com/rowanmaher/klondike/internal"
	"github.com/rowanmaher/klondike/protocol"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *GameServer {
	return NewServer(NewInMemoryGameStore(), zerolog.Nop())
}

func newGame(t *testing.T, srv *GameServer) NewGameRes {
	t.Helper()

	body := bytes.NewBufferString(`{"seed":42}`)
	req := httptest.NewRequest(http.MethodPost, "/new", body)
	res := httptest.NewRecorder()
	srv.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)

	var payload NewGameRes
	utils.AssertNoError(t, json.NewDecoder(res.Body).Decode(&payload))
	return payload
}

func postIntent(t *testing.T, srv *GameServer, gameID string, msg protocol.IntentMessage) (IntentResult, int) {
	t.Helper()

	body, err := json.Marshal(msg)
	utils.AssertNoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/game/"+gameID+"/intent", bytes.NewBuffer(body))
	res := httptest.NewRecorder()
	srv.ServeHTTP(res, req)

	var result IntentResult
	if res.Code == http.StatusOK {
		utils.AssertNoError(t, json.NewDecoder(res.Body).Decode(&result))
	}
	return result, res.Code
}

func TestHandleNewGame(t *testing.T) {
	srv := newTestServer()

	t.Run("deals and stores a fresh game", func(t *testing.T) {
		payload := newGame(t, srv)

		assert.NotEmpty(t, payload.GameID)
		utils.AssertEqual(t, payload.State.Stock, 24)
		assert.False(t, payload.State.Won)
	})

	t.Run("GET is not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/new", nil)
		res := httptest.NewRecorder()
		srv.ServeHTTP(res, req)

		utils.AssertEqual(t, res.Code, http.StatusNotFound)
	})
}

func TestHandleGame(t *testing.T) {
	srv := newTestServer()
	created := newGame(t, srv)

	t.Run("returns the current state", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/game/"+created.GameID, nil)
		res := httptest.NewRecorder()
		srv.ServeHTTP(res, req)

		utils.AssertEqual(t, res.Code, http.StatusOK)

		var state protocol.StateMessage
		utils.AssertNoError(t, json.NewDecoder(res.Body).Decode(&state))
		utils.AssertEqual(t, state.Stock, 24)
	})

	t.Run("unknown game ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/game/nope", nil)
		res := httptest.NewRecorder()
		srv.ServeHTTP(res, req)

		utils.AssertEqual(t, res.Code, http.StatusNotFound)
	})
}

func TestHandleIntent(t *testing.T) {
	srv := newTestServer()
	created := newGame(t, srv)

	t.Run("draw moves a card to the waste", func(t *testing.T) {
		result, code := postIntent(t, srv, created.GameID, protocol.IntentMessage{Command: protocol.Draw})

		utils.AssertEqual(t, code, http.StatusOK)
		assert.False(t, result.Rejected)
		utils.AssertEqual(t, result.State.Stock, 23)
		utils.AssertEqual(t, len(result.State.Waste), 1)
		assert.True(t, result.State.CanUndo)
	})

	t.Run("undo restores the deal", func(t *testing.T) {
		result, code := postIntent(t, srv, created.GameID, protocol.IntentMessage{Command: protocol.Undo})

		utils.AssertEqual(t, code, http.StatusOK)
		assert.False(t, result.Rejected)
		utils.AssertEqual(t, result.State.Stock, 24)
		assert.False(t, result.State.CanUndo)
	})

	t.Run("undo with no history is rejected, not an error", func(t *testing.T) {
		result, code := postIntent(t, srv, created.GameID, protocol.IntentMessage{Command: protocol.Undo})

		utils.AssertEqual(t, code, http.StatusOK)
		assert.True(t, result.Rejected)
	})

	t.Run("hint reports a suggestion without changing state", func(t *testing.T) {
		result, code := postIntent(t, srv, created.GameID, protocol.IntentMessage{Command: protocol.Hint})

		utils.AssertEqual(t, code, http.StatusOK)
		assert.NotEmpty(t, result.Hint)
		utils.AssertEqual(t, result.State.Stock, 24)
	})

	t.Run("malformed intent is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/game/"+created.GameID+"/intent",
			bytes.NewBufferString(`{"command":"shuffle"}`))
		res := httptest.NewRecorder()
		srv.ServeHTTP(res, req)

		utils.AssertEqual(t, res.Code, http.StatusBadRequest)
	})

	t.Run("move without a source is a bad request", func(t *testing.T) {
		_, code := postIntent(t, srv, created.GameID, protocol.IntentMessage{
			Command: protocol.Move,
			To:      "foundation-0",
		})
		utils.AssertEqual(t, code, http.StatusBadRequest)
	})
}

func TestHandleWS(t *testing.T) {
	srv := newTestServer()
	created := newGame(t, srv)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?game_id=" + created.GameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	t.Run("sends the current state on connect", func(t *testing.T) {
		var env wsEnvelope
		utils.AssertNoError(t, conn.ReadJSON(&env))
		utils.AssertEqual(t, env.Type, "state")
		utils.AssertEqual(t, env.State.Stock, 24)
	})

	t.Run("accepted intents push fresh state", func(t *testing.T) {
		utils.AssertNoError(t, conn.WriteJSON(protocol.IntentMessage{Command: protocol.Draw}))

		var env wsEnvelope
		utils.AssertNoError(t, conn.ReadJSON(&env))
		utils.AssertEqual(t, env.Type, "state")
		utils.AssertEqual(t, env.State.Stock, 23)
		utils.AssertEqual(t, len(env.State.Waste), 1)
	})

	t.Run("hints come back on the same connection", func(t *testing.T) {
		utils.AssertNoError(t, conn.WriteJSON(protocol.IntentMessage{Command: protocol.Hint}))

		var env wsEnvelope
		utils.AssertNoError(t, conn.ReadJSON(&env))
		utils.AssertEqual(t, env.Type, "hint")
		assert.NotEmpty(t, env.Hint)
	})

	t.Run("unknown game refuses the upgrade", func(t *testing.T) {
		_, res, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws?game_id=nope", nil)
		utils.AssertErrored(t, err)
		utils.AssertEqual(t, res.StatusCode, http.StatusNotFound)
	})
}
