// Package cli drives interactive game sessions on a terminal: player and
// difficulty menus, the turn loop, and a score tally across games.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"reversi/internal/bot"
	"reversi/internal/models"
	"reversi/internal/player"
)

// CLI runs game sessions until the user quits.
type CLI struct {
	in  *bufio.Scanner
	out io.Writer
	rng *rand.Rand
}

// New creates a CLI reading from in and writing to out. The random source
// feeds the bots' tie-breaking.
func New(in io.Reader, out io.Writer, rng *rand.Rand) *CLI {
	return &CLI{
		in:  bufio.NewScanner(in),
		out: out,
		rng: rng,
	}
}

// score tallies game outcomes across a session.
type score struct {
	Black int
	White int
	Draws int
}

// Run plays games until the user declines another, keeping score and
// alternating the starting color between games.
func (c *CLI) Run() {
	var tally score
	starter := models.Black

	for {
		if !c.promptYesNo("Do you wish to start a game? (y/n): ") {
			break
		}

		black, white := c.choosePlayers()
		result, err := c.playGame(black, white, starter)
		if err != nil {
			// The input stream ended mid-game; nothing to tally.
			break
		}

		switch result {
		case models.BlackWins:
			tally.Black++
		case models.WhiteWins:
			tally.White++
		default:
			tally.Draws++
		}

		starter = starter.Opponent()
		c.printScore(tally)
	}

	c.printScore(tally)
}

// choosePlayers walks the menus: human vs human, human vs bot, or bot vs bot.
func (c *CLI) choosePlayers() (player.Player, player.Player) {
	if !c.promptYesNo("Play against bot? (y/n): ") {
		return player.NewHuman(models.Black, c.in, c.out),
			player.NewHuman(models.White, c.in, c.out)
	}

	difficulty := c.promptDifficulty()

	if c.promptYesNo("Play bot v bot? (y/n): ") {
		second := c.promptDifficulty()
		return player.NewBot(models.Black, second, c.rng),
			player.NewBot(models.White, difficulty, c.rng)
	}

	return player.NewHuman(models.Black, c.in, c.out),
		player.NewBot(models.White, difficulty, c.rng)
}

// playGame runs a single game to completion and announces its outcome. It
// fails when a player's input stream ends, so the session can stop instead
// of treating the silence as an endless pass.
func (c *CLI) playGame(black, white player.Player, starter models.Cell) (models.Result, error) {
	game := models.NewGame(starter)
	players := map[models.Cell]player.Player{
		models.Black: black,
		models.White: white,
	}

	for !game.Over() {
		fmt.Fprintf(c.out, "Player: %s's turn\n", colorName(game.Turn()))
		c.printBoard(game)

		move, ok, err := players[game.Turn()].GetMove(game.Board())
		if err != nil {
			fmt.Fprintln(c.out, "Input ended, abandoning the game")
			return models.InProgress, err
		}
		if !ok {
			fmt.Fprintf(c.out, "%s has no valid moves and must pass\n", colorName(game.Turn()))
			game.Pass()
			continue
		}

		game.Apply(move)
	}

	c.printBoard(game)

	switch game.Result() {
	case models.Draw:
		fmt.Fprintln(c.out, "Game is a draw")
	case models.BlackWins:
		fmt.Fprintln(c.out, "Player Black wins!")
	case models.WhiteWins:
		fmt.Fprintln(c.out, "Player White wins!")
	}

	return game.Result(), nil
}

func (c *CLI) printBoard(game *models.Game) {
	for _, line := range game.Board().ASCIIArtLines(game.Turn()) {
		fmt.Fprintln(c.out, line)
	}
}

func (c *CLI) printScore(tally score) {
	fmt.Fprintf(c.out, "\nScore - Black: %d, White: %d, Draws: %d\n",
		tally.Black, tally.White, tally.Draws)
}

// promptYesNo returns true only for a "y" answer. A closed input stream
// counts as "n" so the session loop cannot wedge.
func (c *CLI) promptYesNo(prompt string) bool {
	fmt.Fprint(c.out, prompt)

	if !c.in.Scan() {
		return false
	}

	return strings.ToLower(strings.TrimSpace(c.in.Text())) == "y"
}

// promptDifficulty shows the tier menu and retries until the choice parses.
func (c *CLI) promptDifficulty() bot.Difficulty {
	fmt.Fprintln(c.out, "\nChoose difficulty:")
	fmt.Fprintln(c.out, "1. Easy")
	fmt.Fprintln(c.out, "2. Medium")
	fmt.Fprintln(c.out, "3. Hard")

	for {
		fmt.Fprint(c.out, "Enter a difficulty (1-3): ")

		if !c.in.Scan() {
			return bot.Easy
		}

		difficulty, err := bot.ParseDifficulty(c.in.Text())
		if err != nil {
			fmt.Fprintln(c.out, "Invalid choice, try again")
			continue
		}

		return difficulty
	}
}

func colorName(c models.Cell) string {
	if c == models.Black {
		return "Black"
	}
	return "White"
}
