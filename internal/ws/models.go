package ws

import (
	"encoding/json"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

// CreateGameData starts a game over the socket; same fields as the HTTP API.
type CreateGameData struct {
	Difficulty string `json:"difficulty"`
	HumanColor string `json:"human_color"`
}

// MoveData plays a human move in an existing game.
type MoveData struct {
	GameID string `json:"game_id"`
	Field  string `json:"field"`
}
