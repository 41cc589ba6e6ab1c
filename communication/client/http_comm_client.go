// Package client talks to an agent served over HTTP.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nogo/game"
)

type ClientCommunicator struct {
	serverURL string
	http      *http.Client
}

// NewClientCommunicator initializes and returns a new ClientCommunicator.
func NewClientCommunicator(serverURL string) *ClientCommunicator {
	return &ClientCommunicator{
		serverURL: serverURL,
		http:      &http.Client{Timeout: time.Minute},
	}
}

type actionResponse struct {
	Position int    `json:"position"`
	Who      string `json:"who"`
	Pass     bool   `json:"pass"`
}

// TakeAction asks the remote agent for its move on state.
func (cc *ClientCommunicator) TakeAction(state game.Board) (game.Action, error) {
	data, err := json.Marshal(map[string]game.Board{"board": state})
	if err != nil {
		return game.Pass(), fmt.Errorf("failed to encode board: %w", err)
	}

	resp, err := cc.http.Post(cc.serverURL+"/takeaction", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return game.Pass(), fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return game.Pass(), fmt.Errorf("agent answered %s", resp.Status)
	}

	var action actionResponse
	if err := json.NewDecoder(resp.Body).Decode(&action); err != nil {
		return game.Pass(), fmt.Errorf("failed to decode action: %w", err)
	}
	if action.Pass {
		return game.Pass(), nil
	}
	who, ok := game.ParsePiece(action.Who)
	if !ok {
		return game.Pass(), fmt.Errorf("agent answered for unknown color %q", action.Who)
	}
	return game.Place(action.Position, who), nil
}
