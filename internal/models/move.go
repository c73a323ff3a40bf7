package models

import (
	"fmt"
	"strings"
)

// Coord addresses a board square. Row and Col are both in [0,8).
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Directions: horizontal, vertical, and both diagonals
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Field returns the coordinate in field notation, e.g. "a1" or "h8".
func (c Coord) Field() string {
	return fmt.Sprintf("%c%d", rune('a'+c.Col), c.Row+1)
}

// FieldToCoord converts field notation (e.g. "a1", "h8") to a coordinate.
func FieldToCoord(field string) (Coord, error) {
	if len(field) != 2 {
		return Coord{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Coord{}, fmt.Errorf("invalid field: %q", field)
	}

	return Coord{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}

// CaptureSet is the set of opponent discs a move flips.
type CaptureSet map[Coord]bool

// Move pairs a target square with the discs it captures. A move is legal
// iff its target square is empty and its capture set is non-empty.
type Move struct {
	Coord
	Captures CaptureSet
}
