package main

import (
	"flag"
	"fmt"
	"os"

	"shallowblue/engine"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const defaultDepth = 4

func main() {
	depth := flag.Int("d", defaultDepth, "depth of the tree search")
	fen := flag.String("f", startingFEN, "the state of the game as a FEN")
	interactive := flag.Bool("i", false, "run in interactive mode")
	selfplay := flag.Bool("s", false, "run in self play mode")
	bench := flag.Bool("b", false, "run benchmark")
	suite := flag.String("suite", "", "YAML benchmark suite, empty for the built-in one")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	fmt.Println("shallowblue !!")
	fmt.Printf("Depth: %d\n", *depth)

	if *bench {
		if err := runBenchmark(*suite); err != nil {
			log.Fatal().Err(err).Msg("benchmark failed")
		}
		return
	}

	opt, err := chess.FEN(*fen)
	if err != nil {
		fmt.Println("Bad FEN")
		return
	}
	pos := chess.NewGame(opt).Position()

	switch {
	case *selfplay:
		selfPlayLoop(pos, *depth)
		fmt.Println("Good Game!")
	case *interactive:
		interactiveLoop(pos, *depth)
	default:
		move, stats := engine.FindBestMove(pos, *depth)
		if move == nil {
			fmt.Println("Error!! No move found!")
			return
		}
		log.Debug().Int64("leaves", stats.Leaves).Msg("search finished")
		fmt.Printf("Best Move: %s\n", move)
	}
}
