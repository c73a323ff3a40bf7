package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// colorSwap flips ownership of every disc on the board.
func colorSwap(b Board) Board {
	var swapped Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				swapped[row][col] = White
			case White:
				swapped[row][col] = Black
			}
		}
	}
	return swapped
}

func TestNewBoardStart(t *testing.T) {
	board := NewBoardStart()

	require.Equal(t, Black, board[3][3])
	require.Equal(t, White, board[3][4])
	require.Equal(t, White, board[4][3])
	require.Equal(t, Black, board[4][4])

	require.Equal(t, 2, board.Count(Black))
	require.Equal(t, 2, board.Count(White))
	require.Equal(t, 60, board.Count(Empty))

	require.True(t, board.HasMoves(Black))
	require.True(t, board.HasMoves(White))
}

func TestBoard_CaptureSet(t *testing.T) {
	board := NewBoardStart()

	tests := []struct {
		name         string
		row, col     int
		mover        Cell
		wantCaptures CaptureSet
	}{
		{
			name: "black opener e3",
			row:  2, col: 4,
			mover:        Black,
			wantCaptures: CaptureSet{{Row: 3, Col: 4}: true},
		},
		{
			name: "black opener f4",
			row:  3, col: 5,
			mover:        Black,
			wantCaptures: CaptureSet{{Row: 3, Col: 4}: true},
		},
		{
			name: "black opener c5",
			row:  4, col: 2,
			mover:        Black,
			wantCaptures: CaptureSet{{Row: 4, Col: 3}: true},
		},
		{
			name: "black opener d6",
			row:  5, col: 3,
			mover:        Black,
			wantCaptures: CaptureSet{{Row: 4, Col: 3}: true},
		},
		{
			name: "white opener d3",
			row:  2, col: 3,
			mover:        White,
			wantCaptures: CaptureSet{{Row: 3, Col: 3}: true},
		},
		{
			name: "no capture in any direction",
			row:  0, col: 0,
			mover:        Black,
			wantCaptures: CaptureSet{},
		},
		{
			name: "occupied square",
			row:  3, col: 3,
			mover:        Black,
			wantCaptures: CaptureSet{},
		},
		{
			// The diagonal run e4-d5 ends on an empty square, so f3
			// flips nothing.
			name: "adjacent to opponent but uncapped run",
			row:  2, col: 5,
			mover:        Black,
			wantCaptures: CaptureSet{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.wantCaptures, board.CaptureSet(test.row, test.col, test.mover))
		})
	}
}

func TestBoard_CaptureSet_OutOfRange(t *testing.T) {
	board := NewBoardStart()

	outOfRange := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-1, -1}, {8, 8}}
	for _, coords := range outOfRange {
		require.Empty(t, board.CaptureSet(coords[0], coords[1], Black))
		require.Empty(t, board.CaptureSet(coords[0], coords[1], White))
	}
}

func TestBoard_CaptureSet_LongRun(t *testing.T) {
	// A full row of opponent discs capped by the mover's own disc
	// flips the entire run.
	var board Board
	for col := 1; col <= 6; col++ {
		board[0][col] = White
	}
	board[0][7] = Black

	captures := board.CaptureSet(0, 0, Black)
	require.Len(t, captures, 6)
	for col := 1; col <= 6; col++ {
		require.True(t, captures[Coord{Row: 0, Col: col}])
	}
}

func TestBoard_CaptureSet_RunEndingAtBoardEdge(t *testing.T) {
	// An opponent run that exits the board without reaching the mover's
	// disc flips nothing.
	var board Board
	for col := 1; col <= 7; col++ {
		board[0][col] = White
	}

	require.Empty(t, board.CaptureSet(0, 0, Black))
}

func TestBoard_LegalMoves(t *testing.T) {
	board := NewBoardStart()

	blackMoves := board.LegalMoves(Black)
	wantBlack := []Coord{{Row: 2, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2}, {Row: 5, Col: 3}}
	require.Len(t, blackMoves, len(wantBlack))
	for _, coord := range wantBlack {
		require.Len(t, blackMoves[coord], 1, "opener %v should flip exactly one disc", coord)
	}

	whiteMoves := board.LegalMoves(White)
	wantWhite := []Coord{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}
	require.Len(t, whiteMoves, len(wantWhite))
	for _, coord := range wantWhite {
		require.Len(t, whiteMoves[coord], 1, "opener %v should flip exactly one disc", coord)
	}
}

func TestBoard_LegalMoves_NeverIncludesOccupiedSquares(t *testing.T) {
	// Play out a deterministic game and check the enumerator's keys are
	// empty squares at every position along the way.
	game := NewGame(Black)

	for !game.Over() {
		for _, color := range []Cell{Black, White} {
			for coord := range game.Board().LegalMoves(color) {
				require.Equal(t, Empty, game.Board().At(coord))
			}
		}

		moves := game.LegalMoves()
		if len(moves) == 0 {
			game.Pass()
			continue
		}

		game.Apply(firstMove(moves))
	}
}

func TestBoard_CaptureSet_ColorSymmetry(t *testing.T) {
	boards := []Board{NewBoardStart()}

	// Collect a few mid-game positions as well.
	game := NewGame(Black)
	for i := 0; i < 12; i++ {
		moves := game.LegalMoves()
		if len(moves) == 0 {
			game.Pass()
			continue
		}
		game.Apply(firstMove(moves))
		boards = append(boards, game.Board())
	}

	for _, board := range boards {
		swapped := colorSwap(board)
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				require.Equal(t,
					board.CaptureSet(row, col, Black),
					swapped.CaptureSet(row, col, White))
			}
		}
	}
}

func TestBoard_StringRoundTrip(t *testing.T) {
	board := NewBoardStart()

	parsed, err := NewBoardFromString(board.String())
	require.NoError(t, err)
	require.Equal(t, board, parsed)

	wantString := "........................" + // rows 1-3
		"...bw..." + // row 4
		"...wb..." + // row 5
		"........................" // rows 6-8
	require.Equal(t, wantString, board.String())
}

func TestNewBoardFromString_Invalid(t *testing.T) {
	_, err := NewBoardFromString("too short")
	require.Error(t, err)

	invalid := NewBoardStart().String()[:63] + "x"
	_, err = NewBoardFromString(invalid)
	require.Error(t, err)
}

func TestBoard_ASCIIArtLines(t *testing.T) {
	board := NewBoardStart()
	lines := board.ASCIIArtLines(Black)

	require.Len(t, lines, 10)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-+", lines[0])
	require.Equal(t, "+-----------------+", lines[9])

	// The black discs sit on rows 4 and 5 of the rendering.
	require.Contains(t, lines[4], "●")
	require.Contains(t, lines[4], "○")
}

func TestFieldToCoord(t *testing.T) {
	tests := []struct {
		field     string
		wantCoord Coord
		wantErr   bool
	}{
		{field: "a1", wantCoord: Coord{Row: 0, Col: 0}},
		{field: "h8", wantCoord: Coord{Row: 7, Col: 7}},
		{field: "e3", wantCoord: Coord{Row: 2, Col: 4}},
		{field: "D6", wantCoord: Coord{Row: 5, Col: 3}},
		{field: "i1", wantErr: true},
		{field: "a9", wantErr: true},
		{field: "", wantErr: true},
		{field: "a10", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			coord, err := FieldToCoord(test.field)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.wantCoord, coord)
			require.Equal(t, coord, mustFieldToCoord(t, coord.Field()))
		})
	}
}

func mustFieldToCoord(t *testing.T, field string) Coord {
	t.Helper()
	coord, err := FieldToCoord(field)
	require.NoError(t, err)
	return coord
}

// firstMove returns the row-major smallest legal move, so that tests walk
// the same game every run.
func firstMove(moves map[Coord]CaptureSet) Move {
	var best Coord
	found := false
	for coord := range moves {
		if !found || coord.Row < best.Row || (coord.Row == best.Row && coord.Col < best.Col) {
			best = coord
			found = true
		}
	}
	return Move{Coord: best, Captures: moves[best]}
}
