package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game := NewGame(Black)

	require.Equal(t, NewBoardStart(), game.Board())
	require.Equal(t, Black, game.Turn())
	require.Equal(t, 0, game.MoveCount())
	require.False(t, game.Over())
	require.Equal(t, InProgress, game.Result())

	game = NewGame(White)
	require.Equal(t, White, game.Turn())
}

func TestGame_Apply(t *testing.T) {
	game := NewGame(Black)

	coord := Coord{Row: 2, Col: 4}
	game.Apply(Move{Coord: coord, Captures: game.LegalMoves()[coord]})

	require.Equal(t, Black, game.Board().At(coord))
	require.Equal(t, Black, game.Board().At(Coord{Row: 3, Col: 4}), "captured disc should flip")
	require.Equal(t, 1, game.MoveCount())
	require.Equal(t, White, game.Turn())
	require.False(t, game.Over())

	require.Equal(t, 4, game.Board().Count(Black))
	require.Equal(t, 1, game.Board().Count(White))
}

func TestGame_Apply_Conservation(t *testing.T) {
	game := NewGame(Black)

	for !game.Over() {
		moves := game.LegalMoves()
		if len(moves) == 0 {
			occupiedBefore := 64 - game.Board().Count(Empty)
			game.Pass()
			require.Equal(t, occupiedBefore, 64-game.Board().Count(Empty))
			continue
		}

		move := firstMove(moves)
		occupiedBefore := 64 - game.Board().Count(Empty)

		game.Apply(move)

		occupiedAfter := 64 - game.Board().Count(Empty)
		require.Equal(t, occupiedBefore+1+len(move.Captures), occupiedAfter)
	}

	// Every placement adds exactly one disc to the initial four.
	require.Equal(t, 4+game.MoveCount(), 64-game.Board().Count(Empty))
	require.NotEqual(t, InProgress, game.Result())
}

func TestGame_Terminal_FullBoard(t *testing.T) {
	// One empty square left at a1, sixty placements made: applying the
	// last move must end the game with a full board.
	var board Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			board[row][col] = Black
		}
	}
	board[0][0] = Empty
	board[0][1] = White

	game := &Game{board: board, turn: Black, moveCount: MaxMoves - 1}

	moves := game.LegalMoves()
	require.Len(t, moves, 1)

	game.Apply(firstMove(moves))

	require.True(t, game.Over())
	require.Equal(t, MaxMoves, game.MoveCount())
	require.Equal(t, 64, game.Board().Count(Black))
	require.Equal(t, 0, game.Board().Count(White))
	require.Equal(t, BlackWins, game.Result())
}

func TestGame_Pass(t *testing.T) {
	// Black has no move but White does: the pass hands the turn over
	// without counting a placement or ending the game.
	var board Board
	board[0][0] = White
	board[0][1] = Black
	board[0][2] = Black

	game := &Game{board: board, turn: Black}

	require.Empty(t, game.LegalMoves())
	require.True(t, board.HasMoves(White))

	game.Pass()

	require.Equal(t, White, game.Turn())
	require.Equal(t, 0, game.MoveCount())
	require.False(t, game.Over())
}

func TestGame_Pass_BothBlocked(t *testing.T) {
	// Neither color can move: the game ends early with the discs counted
	// as they stand.
	var board Board
	board[3][3] = Black
	board[4][4] = Black

	game := &Game{board: board, turn: White}

	require.Empty(t, game.LegalMoves())
	require.False(t, board.HasMoves(Black))

	game.Pass()

	require.True(t, game.Over())
	require.Equal(t, BlackWins, game.Result())
}

func TestGame_Pass_BothBlocked_Draw(t *testing.T) {
	var board Board
	board[0][0] = Black
	board[7][7] = White

	game := &Game{board: board, turn: Black}
	game.Pass()

	require.True(t, game.Over())
	require.Equal(t, Draw, game.Result())
}

func TestResult_String(t *testing.T) {
	require.Equal(t, "in_progress", InProgress.String())
	require.Equal(t, "black_wins", BlackWins.String())
	require.Equal(t, "white_wins", WhiteWins.String())
	require.Equal(t, "draw", Draw.String())
}

func TestCell_Opponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Panics(t, func() { Empty.Opponent() })
}

func TestParseColor(t *testing.T) {
	color, err := ParseColor("black")
	require.NoError(t, err)
	require.Equal(t, Black, color)

	color, err = ParseColor("white")
	require.NoError(t, err)
	require.Equal(t, White, color)

	_, err = ParseColor("green")
	require.Error(t, err)
}
