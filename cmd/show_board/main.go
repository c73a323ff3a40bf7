package main

import (
	"flag"
	"fmt"
	"os"

	"reversi/internal/models"
)

func main() {
	boardString := flag.String("board", models.NewBoardStart().String(), "the board to show")
	turnString := flag.String("turn", "black", "the color to move")
	flag.Parse()

	board, err := models.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := models.ParseColor(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, line := range board.ASCIIArtLines(turn) {
		fmt.Println(line)
	}
}
