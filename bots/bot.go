package bots

import "github.com/notnil/chess"

// ChessBot picks a move for the side to move in the given game.
type ChessBot interface {
	BestMove(game *chess.Game) *chess.Move
	Name() string
}
