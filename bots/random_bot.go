package bots

import (
	"math/rand"

	"github.com/notnil/chess"
)

type RandomBot struct{}

func NewRandomBot() *RandomBot {
	return &RandomBot{}
}

func (b *RandomBot) BestMove(game *chess.Game) *chess.Move {
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil
	}
	return moves[rand.Intn(len(moves))]
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
