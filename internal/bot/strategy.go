package bot

import (
	"math/rand"
	"sort"

	"reversi/internal/models"
)

// Strategy picks one move from a non-empty legal-move mapping. Implementations
// never mutate the board; callers detect the pass case before choosing.
type Strategy interface {
	Choose(board models.Board, self models.Cell, moves map[models.Coord]models.CaptureSet) models.Move
}

// NewStrategy returns the strategy for a difficulty tier. The random source
// only breaks ties, so a seeded source makes the bot fully deterministic.
//
// Hard currently plays the same positional heuristic as Medium; a stronger
// search-based strategy would slot in at this dispatch.
func NewStrategy(difficulty Difficulty, rng *rand.Rand) Strategy {
	switch difficulty {
	case Medium, Hard:
		return &positionalStrategy{rng: rng}
	default:
		return &randomStrategy{rng: rng}
	}
}

var corners = []models.Coord{
	{Row: 0, Col: 0},
	{Row: 0, Col: BoardMax},
	{Row: BoardMax, Col: 0},
	{Row: BoardMax, Col: BoardMax},
}

// BoardMax is the largest valid row or column index.
const BoardMax = models.BoardSize - 1

// sortedCoords returns the map keys in row-major order so that random picks
// are reproducible for a seeded source.
func sortedCoords(moves map[models.Coord]models.CaptureSet) []models.Coord {
	coords := make([]models.Coord, 0, len(moves))
	for coord := range moves {
		coords = append(coords, coord)
	}

	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})

	return coords
}

// randomStrategy picks uniformly among all legal moves.
type randomStrategy struct {
	rng *rand.Rand
}

func (s *randomStrategy) Choose(_ models.Board, _ models.Cell, moves map[models.Coord]models.CaptureSet) models.Move {
	coords := sortedCoords(moves)
	coord := coords[s.rng.Intn(len(coords))]
	return models.Move{Coord: coord, Captures: moves[coord]}
}

// positionalStrategy encodes standard positional play: take corners, never
// gift one, prefer edges, and otherwise keep the exposed frontier small.
type positionalStrategy struct {
	rng *rand.Rand
}

func (s *positionalStrategy) Choose(board models.Board, self models.Cell, moves map[models.Coord]models.CaptureSet) models.Move {
	pick := func(coords []models.Coord) models.Move {
		coord := coords[s.rng.Intn(len(coords))]
		return models.Move{Coord: coord, Captures: moves[coord]}
	}

	// Corners are permanently safe: always take one when available.
	var cornerMoves []models.Coord
	for _, corner := range corners {
		if len(moves[corner]) > 0 {
			cornerMoves = append(cornerMoves, corner)
		}
	}
	if len(cornerMoves) > 0 {
		return pick(cornerMoves)
	}

	opponent := self.Opponent()

	// Reject every move whose exposure set hands the opponent a corner.
	// Exposure sizes are recorded for all candidates, rejected or not,
	// because the last stage falls back on them.
	var safe []models.Coord
	exposureSizes := make(map[models.Coord]int, len(moves))

	for _, coord := range sortedCoords(moves) {
		exposure := exposureSet(board, coord, moves[coord])
		exposureSizes[coord] = len(exposure)

		if !giftsCorner(board, exposure, opponent) {
			safe = append(safe, coord)
		}
	}
	if len(safe) > 0 {
		return pick(safe)
	}

	// Every move risks a corner: prefer a non-corner edge square.
	var edges []models.Coord
	for _, coord := range sortedCoords(moves) {
		if isEdge(coord) {
			edges = append(edges, coord)
		}
	}
	if len(edges) > 0 {
		return pick(edges)
	}

	// Fall back to the smallest exposure set: the move that opens the
	// fewest new squares for the opponent to play toward.
	best := -1
	var minimal []models.Coord
	for _, coord := range sortedCoords(moves) {
		size := exposureSizes[coord]
		switch {
		case best == -1 || size < best:
			best = size
			minimal = []models.Coord{coord}
		case size == best:
			minimal = append(minimal, coord)
		}
	}

	return pick(minimal)
}

// exposureSet returns the empty squares adjacent to the move's footprint,
// where the footprint is the played square plus everything it flips.
func exposureSet(board models.Board, coord models.Coord, captures models.CaptureSet) map[models.Coord]bool {
	dirs := [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}

	exposure := make(map[models.Coord]bool)

	dilate := func(c models.Coord) {
		for _, dir := range dirs {
			row, col := c.Row+dir[0], c.Col+dir[1]
			if row < 0 || row >= models.BoardSize || col < 0 || col >= models.BoardSize {
				continue
			}
			if board[row][col] == models.Empty {
				exposure[models.Coord{Row: row, Col: col}] = true
			}
		}
	}

	dilate(coord)
	for captured := range captures {
		dilate(captured)
	}

	return exposure
}

// giftsCorner reports whether the exposure set contains a corner that is
// currently a capturing move for the opponent.
func giftsCorner(board models.Board, exposure map[models.Coord]bool, opponent models.Cell) bool {
	for _, corner := range corners {
		if exposure[corner] && len(board.CaptureSet(corner.Row, corner.Col, opponent)) > 0 {
			return true
		}
	}
	return false
}

// isEdge reports whether the square lies on the board's rim, corners excluded.
func isEdge(c models.Coord) bool {
	onRim := c.Row == 0 || c.Row == BoardMax || c.Col == 0 || c.Col == BoardMax
	corner := (c.Row == 0 || c.Row == BoardMax) && (c.Col == 0 || c.Col == BoardMax)
	return onRim && !corner
}
