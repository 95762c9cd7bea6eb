package bots

import "github.com/notnil/chess"

// NewbornBot always plays the first legal move it is offered.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(game *chess.Game) *chess.Move {
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil
	}
	return moves[0]
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
