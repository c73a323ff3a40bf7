// Package player holds the two move providers a game can be driven by:
// an interactive human adapter and a strategy-backed bot.
package player

import "reversi/internal/models"

// Player produces the next move for one side of a game. The boolean is
// false when the player's color has no legal move and must pass. A non-nil
// error means the player cannot supply moves anymore and the game has to be
// abandoned.
type Player interface {
	GetMove(board models.Board) (models.Move, bool, error)
}
