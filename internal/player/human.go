package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi/internal/models"
)

// ErrInputClosed is returned when the input stream ends while the player
// still owes a move. Without it an exhausted stream would look like an
// endless forced pass.
var ErrInputClosed = errors.New("input closed")

// Human reads moves interactively. It keeps prompting until the input is a
// legal move, so GetMove only signals a pass when the color truly has no
// move.
type Human struct {
	color models.Cell
	in    *bufio.Scanner
	out   io.Writer
}

// NewHuman creates a human player reading from the given scanner. The
// scanner is shared with the caller so that prompts stay interleaved with
// any surrounding menu input.
func NewHuman(color models.Cell, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{color: color, in: in, out: out}
}

// Color returns the color this player plays.
func (h *Human) Color() models.Cell {
	return h.color
}

// GetMove solicits a row and a column until they form a legal move. It
// returns ErrInputClosed when the stream ends mid-game.
func (h *Human) GetMove(board models.Board) (models.Move, bool, error) {
	if !board.HasMoves(h.color) {
		return models.Move{}, false, nil
	}

	for {
		row, err := h.promptInt(fmt.Sprintf("Please enter a row (0 - %d): ", models.BoardSize-1))
		if err != nil {
			return models.Move{}, false, err
		}

		col, err := h.promptInt(fmt.Sprintf("Please enter a col (0 - %d): ", models.BoardSize-1))
		if err != nil {
			return models.Move{}, false, err
		}

		if row < 0 || row >= models.BoardSize || col < 0 || col >= models.BoardSize {
			fmt.Fprintln(h.out, "Out of bounds. Try again.")
			continue
		}

		captures := board.CaptureSet(row, col, h.color)
		if len(captures) > 0 {
			return models.Move{Coord: models.Coord{Row: row, Col: col}, Captures: captures}, true, nil
		}

		fmt.Fprintln(h.out, "Please enter a valid empty cell")
	}
}

// promptInt re-prompts until the input parses as an integer. It fails only
// when the input stream is exhausted.
func (h *Human) promptInt(prompt string) (int, error) {
	for {
		fmt.Fprint(h.out, prompt)

		if !h.in.Scan() {
			return 0, ErrInputClosed
		}

		value, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil {
			fmt.Fprintln(h.out, "Please enter an integer only")
			continue
		}

		return value, nil
	}
}
