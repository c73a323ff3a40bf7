package models

// MaxMoves is the number of placements that fill the board from the
// four-disc starting position.
const MaxMoves = 60

// Result is the outcome of a finished game.
type Result uint8

const (
	InProgress Result = iota
	BlackWins
	WhiteWins
	Draw
)

func (r Result) String() string {
	switch r {
	case BlackWins:
		return "black_wins"
	case WhiteWins:
		return "white_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Game owns a board and applies moves to it. It trusts its callers: Apply
// must only be given moves taken from LegalMoves, and Pass must only be
// called when the color to move has none. Players are responsible for
// producing legal input; the HTTP layer re-validates at its boundary.
type Game struct {
	board     Board
	turn      Cell
	moveCount int
	over      bool
	result    Result
}

// NewGame returns a game on the starting board with the given color to move.
func NewGame(starting Cell) *Game {
	return &Game{
		board: NewBoardStart(),
		turn:  starting,
	}
}

func (g *Game) Board() Board   { return g.board }
func (g *Game) Turn() Cell     { return g.turn }
func (g *Game) MoveCount() int { return g.moveCount }
func (g *Game) Over() bool     { return g.over }
func (g *Game) Result() Result { return g.result }

// LegalMoves returns the legal moves for the color currently to move.
func (g *Game) LegalMoves() map[Coord]CaptureSet {
	return g.board.LegalMoves(g.turn)
}

// Apply places the current color on the move's square and flips its
// captures. The game ends once the board is full; otherwise the turn
// passes to the other color.
func (g *Game) Apply(move Move) {
	g.board[move.Row][move.Col] = g.turn
	for coord := range move.Captures {
		g.board[coord.Row][coord.Col] = g.turn
	}
	g.moveCount++

	if g.moveCount == MaxMoves {
		g.finish()
		return
	}

	g.turn = g.turn.Opponent()
}

// Pass skips the turn of a color with no legal moves without counting a
// placement. When the other color cannot move either, the game ends early
// and the discs are counted as they stand.
func (g *Game) Pass() {
	opponent := g.turn.Opponent()

	if !g.board.HasMoves(opponent) {
		g.finish()
		return
	}

	g.turn = opponent
}

func (g *Game) finish() {
	g.over = true

	black := g.board.Count(Black)
	white := g.board.Count(White)

	switch {
	case black > white:
		g.result = BlackWins
	case white > black:
		g.result = WhiteWins
	default:
		g.result = Draw
	}
}
