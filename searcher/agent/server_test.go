package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nogo/game"

	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	a, err := New("name=server role=black search=MCTS simulation=20 seed=5")
	require.NoError(t, err)
	handler := Handler(a)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/takeaction", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("answering with a legal move", func(t *testing.T) {
		board := game.NewBoard()
		body, err := json.Marshal(map[string]game.Board{"board": board})
		require.NoError(t, err)

		rec := post(string(body))

		require.Equal(t, http.StatusOK, rec.Code)
		var got takeActionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.False(t, got.Pass)
		require.Equal(t, "black", got.Who)
		require.Equal(t, game.PositionName(got.Position), got.Action)
		require.Equal(t, game.Legal, board.Place(got.Position, game.Black))
	})

	t.Run("answering with a pass when there is no move", func(t *testing.T) {
		rec := post(`{"board":"O:` + strings.Repeat(".", game.Cells) + `"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var got takeActionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.True(t, got.Pass)
		require.Equal(t, "pass", got.Action)
		require.Equal(t, -1, got.Position)
	})

	t.Run("rejecting a malformed board", func(t *testing.T) {
		rec := post(`{"board":"X:..."}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejecting other methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/takeaction", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestRemotePlayer(t *testing.T) {
	served, err := New("name=served role=white search=MCTS simulation=10 seed=1")
	require.NoError(t, err)
	server := httptest.NewServer(Handler(served))
	defer server.Close()

	t.Run("playing through an agent server", func(t *testing.T) {
		a, err := New("name=proxy role=white remote=" + server.URL)
		require.NoError(t, err)
		require.IsType(t, &remotePlayer{}, a)
		state := game.NewBoard()
		require.Equal(t, game.Legal, state.Place(40, game.Black))

		move := a.TakeAction(state)

		require.Equal(t, game.White, move.Who)
		require.Equal(t, game.Legal, move.Apply(&state))
	})

	t.Run("passing when the server is unreachable", func(t *testing.T) {
		a, err := New("name=proxy role=white remote=http://127.0.0.1:1")
		require.NoError(t, err)

		require.True(t, a.TakeAction(game.NewBoard()).IsPass())
	})
}
