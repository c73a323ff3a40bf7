package player

import (
	"math/rand"

	"reversi/internal/bot"
	"reversi/internal/models"
)

// Bot plays a fixed color with the strategy of its difficulty tier.
type Bot struct {
	color    models.Cell
	strategy bot.Strategy
}

// NewBot creates a bot player. The random source is used for the strategy's
// tie-breaking, so tests can seed it for deterministic games.
func NewBot(color models.Cell, difficulty bot.Difficulty, rng *rand.Rand) *Bot {
	return &Bot{
		color:    color,
		strategy: bot.NewStrategy(difficulty, rng),
	}
}

// Color returns the color this player plays.
func (b *Bot) Color() models.Cell {
	return b.color
}

// GetMove picks a move with the configured strategy, or passes when the
// color has no legal move.
func (b *Bot) GetMove(board models.Board) (models.Move, bool, error) {
	moves := board.LegalMoves(b.color)
	if len(moves) == 0 {
		return models.Move{}, false, nil
	}

	return b.strategy.Choose(board, b.color, moves), true, nil
}
