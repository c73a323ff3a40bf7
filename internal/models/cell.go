package models

import "fmt"

// Cell is the contents of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the other color. Calling it on Empty is a programming error.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("cell %d has no opponent", c))
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParseColor converts "black" or "white" to the matching Cell.
func ParseColor(s string) (Cell, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return Empty, fmt.Errorf("invalid color: %q", s)
	}
}
