package main

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var pieceGlyphs = map[chess.Piece]string{
	chess.WhiteKing:   "♔",
	chess.WhiteQueen:  "♕",
	chess.WhiteRook:   "♖",
	chess.WhiteBishop: "♗",
	chess.WhiteKnight: "♘",
	chess.WhitePawn:   "♙",
	chess.BlackKing:   "♚",
	chess.BlackQueen:  "♛",
	chess.BlackRook:   "♜",
	chess.BlackBishop: "♝",
	chess.BlackKnight: "♞",
	chess.BlackPawn:   "♟",
}

// renderBoard draws the position one rank per line, rank 1 first, with
// the file letters underneath.
func renderBoard(pos *chess.Position) string {
	builder := strings.Builder{}
	board := pos.Board()
	for rank := 0; rank < 8; rank++ {
		builder.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(chess.File(file), chess.Rank(rank))
			glyph, ok := pieceGlyphs[board.Piece(sq)]
			if !ok {
				glyph = "."
			}
			builder.WriteString(glyph)
			builder.WriteByte(' ')
		}
		builder.WriteByte('\n')
	}
	builder.WriteString("  a b c d e f g h\n")
	return builder.String()
}
