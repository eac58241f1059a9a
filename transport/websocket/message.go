package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Game   *entity.Game      `json:"game,omitempty"`
	Action *tictactoe.Action `json:"action,omitempty"`
	Value  *int              `json:"value,omitempty"`
	Error  string            `json:"error,omitempty"`
}

type newGamePayload struct {
	Mark tictactoe.Mark `json:"mark"`
}

type gamePayload struct {
	Game struct {
		ID string `json:"id"`
	} `json:"game"`
}

type turnPayload struct {
	Game struct {
		ID string `json:"id"`
	} `json:"game"`
	Action tictactoe.Action `json:"action"`
	Cell   *int             `json:"cell,omitempty"`
}

func (that turnPayload) action() tictactoe.Action {
	if that.Cell != nil {
		return tictactoe.ActionFromIndex(*that.Cell)
	}

	return that.Action
}

type hintPayload struct {
	Board tictactoe.Board `json:"board"`
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
