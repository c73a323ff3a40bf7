package models

import (
	"fmt"
)

// BoardSize is the side length of the board.
const BoardSize = 8

// Board is an 8x8 Othello board. It is a value type, so passing it around
// copies it and the capture engine never aliases a caller's board.
type Board [BoardSize][BoardSize]Cell

// NewBoardStart returns a board with the four canonical starting discs.
func NewBoardStart() Board {
	var b Board
	b[3][3] = Black
	b[3][4] = White
	b[4][3] = White
	b[4][4] = Black
	return b
}

// NewBoardFromString parses the 64-character serialization produced by
// String: rows from top to bottom, 'b', 'w' or '.' per square.
func NewBoardFromString(s string) (Board, error) {
	var b Board

	if len(s) != BoardSize*BoardSize {
		return b, fmt.Errorf("invalid board length: %d", len(s))
	}

	for i, char := range s {
		row := i / BoardSize
		col := i % BoardSize

		switch char {
		case 'b':
			b[row][col] = Black
		case 'w':
			b[row][col] = White
		case '.':
			b[row][col] = Empty
		default:
			return Board{}, fmt.Errorf("invalid board character: %q", char)
		}
	}

	return b, nil
}

// String serializes the board as 64 characters, rows from top to bottom.
func (b Board) String() string {
	chars := make([]byte, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				chars = append(chars, 'b')
			case White:
				chars = append(chars, 'w')
			default:
				chars = append(chars, '.')
			}
		}
	}
	return string(chars)
}

// At returns the contents of a square.
func (b Board) At(c Coord) Cell {
	return b[c.Row][c.Col]
}

// CaptureSet returns every opponent disc that the mover flips by playing
// on (row, col). The set is empty when the square is out of range, occupied,
// or flips nothing in any direction, all of which make the move illegal.
func (b Board) CaptureSet(row, col int, mover Cell) CaptureSet {
	captures := make(CaptureSet)

	if !inBounds(row, col) || b[row][col] != Empty {
		return captures
	}

	opponent := mover.Opponent()

	for _, dir := range directions {
		r, c := row+dir[0], col+dir[1]

		// The first step must land on an opponent disc.
		if !inBounds(r, c) || b[r][c] != opponent {
			continue
		}

		var run []Coord
		for inBounds(r, c) && b[r][c] == opponent {
			run = append(run, Coord{Row: r, Col: c})
			r += dir[0]
			c += dir[1]
		}

		// The run only flips when it is capped by one of the mover's own discs.
		if inBounds(r, c) && b[r][c] == mover {
			for _, coord := range run {
				captures[coord] = true
			}
		}
	}

	return captures
}

// LegalMoves maps every legal move for color to its capture set.
// An empty map means color has no move and must pass.
func (b Board) LegalMoves(color Cell) map[Coord]CaptureSet {
	moves := make(map[Coord]CaptureSet)

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] != Empty {
				continue
			}

			if captures := b.CaptureSet(row, col, color); len(captures) > 0 {
				moves[Coord{Row: row, Col: col}] = captures
			}
		}
	}

	return moves
}

// HasMoves returns whether color has at least one legal move.
func (b Board) HasMoves(color Cell) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] != Empty {
				continue
			}

			if len(b.CaptureSet(row, col, color)) > 0 {
				return true
			}
		}
	}
	return false
}

// Count returns the number of squares holding cell, which may be Empty.
func (b Board) Count(cell Cell) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// ASCIIArtLines returns the ascii art lines for the board, marking the
// legal moves of the color to move.
func (b Board) ASCIIArtLines(toMove Cell) []string {
	moves := b.LegalMoves(toMove)
	lines := make([]string, BoardSize+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := 0; row < BoardSize; row++ {
		line := fmt.Sprintf("%d ", row+1)

		for col := 0; col < BoardSize; col++ {
			switch {
			case b[row][col] == Black:
				line += "● "
			case b[row][col] == White:
				line += "○ "
			case len(moves[Coord{Row: row, Col: col}]) > 0:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}
	lines[BoardSize+1] = "+-----------------+"

	return lines
}
