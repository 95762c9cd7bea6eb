package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"shallowblue/engine"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

var stdin = bufio.NewScanner(os.Stdin)

// execAITurn searches for the engine's move, applies it and shows the
// board. The position comes back unchanged when no move exists.
func execAITurn(pos *chess.Position, depth int) *chess.Position {
	start := time.Now()
	move, stats := engine.FindBestMove(pos, depth)
	if move == nil {
		fmt.Println("Error!! No move found")
	} else {
		log.Debug().
			Stringer("move", move).
			Int("depth", depth).
			Int64("leaves", stats.Leaves).
			Dur("took", time.Since(start)).
			Msg("engine move")
		pos = pos.Update(move)
	}
	fmt.Println("--------------------")
	fmt.Print(renderBoard(pos))
	return pos
}

// execUserTurn reads moves in algebraic notation from stdin until a legal
// one arrives and returns the resulting position. The position comes back
// unchanged when stdin is exhausted first.
func execUserTurn(pos *chess.Position) *chess.Position {
	for stdin.Scan() {
		move, err := chess.AlgebraicNotation{}.Decode(pos, stdin.Text())
		if err == nil {
			return pos.Update(move)
		}
		fmt.Println("Invalid Move")
		fmt.Println("--------------------")
		fmt.Print(renderBoard(pos))
	}
	return pos
}

// interactiveLoop alternates engine and user turns, the engine moving
// first, until the game ends.
func interactiveLoop(pos *chess.Position, depth int) {
	aiTurn := true
	for {
		switch pos.Status() {
		case chess.Stalemate:
			fmt.Println("Stalemate...")
			return
		case chess.Checkmate:
			fmt.Println("Checkmate!!")
			return
		}
		if aiTurn {
			pos = execAITurn(pos, depth)
		} else {
			fmt.Println("Your turn...")
			pos = execUserTurn(pos)
		}
		aiTurn = !aiTurn
	}
}

// selfPlayLoop lets the engine play both sides until the game ends.
func selfPlayLoop(pos *chess.Position, depth int) {
	for pos.Status() == chess.NoMethod {
		pos = execAITurn(pos, depth)
	}
}
