package agent

import (
	"encoding/json"
	"net/http"
	"sync"

	"nogo/game"

	"github.com/rs/zerolog/log"
)

type takeActionRequest struct {
	Board game.Board `json:"board"`
}

type takeActionResponse struct {
	Action   string `json:"action"`
	Position int    `json:"position"`
	Who      string `json:"who"`
	Pass     bool   `json:"pass"`
}

// Serve answers move requests for a on addr until the server fails.
func Serve(addr string, a Agent) error {
	log.Info().Msgf("starting agent server for %s (%s) on %s", a.Name(), a.Role(), addr)
	return http.ListenAndServe(addr, Handler(a))
}

// Handler exposes POST /takeaction. Requests are served one at a time since
// an agent keeps a single random engine.
func Handler(a Agent) http.Handler {
	var mu sync.Mutex
	mux := http.NewServeMux()
	mux.HandleFunc("/takeaction", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload takeActionRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			log.Warn().Err(err).Msg("rejected take action request")
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		mu.Lock()
		move := a.TakeAction(payload.Board)
		mu.Unlock()

		response := takeActionResponse{
			Action:   move.String(),
			Position: -1,
			Who:      a.Role().String(),
			Pass:     move.IsPass(),
		}
		if !move.IsPass() {
			response.Position = move.Position
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "failed to encode action: "+err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}
