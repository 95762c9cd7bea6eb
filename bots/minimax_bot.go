package bots

import (
	"fmt"

	"shallowblue/engine"

	"github.com/notnil/chess"
)

// MinimaxBot drives the alpha-beta searcher at a fixed ply depth. There is
// no move clock; every call searches the full configured depth.
type MinimaxBot struct {
	Depth int
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{Depth: depth}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	move, _ := engine.FindBestMove(game.Position(), b.Depth)
	return move
}
