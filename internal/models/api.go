package models

// CreateGameRequest is the payload for starting a human-vs-bot game.
type CreateGameRequest struct {
	Difficulty string `json:"difficulty"`
	HumanColor string `json:"human_color"`
}

// MoveRequest is the payload for playing a human move.
type MoveRequest struct {
	Field string `json:"field"`
}

// GameStep is one half-move of a server reply. Field is null for a forced pass.
type GameStep struct {
	Color string  `json:"color"`
	Field *string `json:"field"`
}

// GameResponse is the API rendering of a game session.
type GameResponse struct {
	ID         string     `json:"id"`
	Board      string     `json:"board"`
	Turn       string     `json:"turn"`
	MoveCount  int        `json:"move_count"`
	Over       bool       `json:"over"`
	Result     string     `json:"result,omitempty"`
	LegalMoves []string   `json:"legal_moves,omitempty"`
	Steps      []GameStep `json:"steps,omitempty"`
}
