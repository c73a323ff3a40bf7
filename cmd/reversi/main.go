package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"reversi/internal/cli"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the bots' tie-breaking")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	cli.New(os.Stdin, os.Stdout, rng).Run()
}
