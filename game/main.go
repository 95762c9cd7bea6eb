package main

import (
	"fmt"
	"image/color"
	"os"
	"sync"
	"time"

	"shallowblue/bots"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	screenWidth  int
	screenHeight int
	squareSize   int
)

var botNames = []string{"Newborn", "minimax2", "minimax4"}

type Game struct {
	chessGame    *chess.Game
	pieces       map[chess.Piece]*ebiten.Image
	selected     chess.Square
	dragging     *chess.Piece
	dragX, dragY int
	playerColor  chess.Color
	gameStarted  bool
	boardOffsetX int
	boardOffsetY int
	bots         map[string]bots.ChessBot

	// Guarded by botMutex; the bot goroutine parks its move in pendingMove
	// and Update applies it, so the chess game is only mutated on the game
	// loop.
	botMutex    sync.Mutex
	botThinking bool
	pendingMove *chess.Move
	currentBot  bots.ChessBot
}

func NewGame() *Game {
	screenWidth, screenHeight = ebiten.ScreenSizeInFullscreen()

	// Leave room above the board for the status line.
	boardHeight := screenHeight - 80
	squareSize = boardHeight / 8
	if screenWidth/8 < squareSize {
		squareSize = screenWidth / 8
	}

	boardWidth := squareSize * 8
	g := &Game{
		pieces:       make(map[chess.Piece]*ebiten.Image),
		bots:         make(map[string]bots.ChessBot),
		boardOffsetX: (screenWidth - boardWidth) / 2,
		boardOffsetY: (screenHeight - boardHeight) / 2,
	}

	g.bots["Newborn"] = bots.NewNewbornBot()
	g.bots["minimax2"] = bots.NewMinimaxBot(2)
	g.bots["minimax4"] = bots.NewMinimaxBot(4)
	g.currentBot = g.bots["minimax2"]

	g.buildPieceImages()
	return g
}

// buildPieceImages draws each piece as a colored tile with its letter on a
// small badge, so the game runs without any image assets.
func (g *Game) buildPieceImages() {
	labels := map[chess.Piece]string{
		chess.WhiteKing:   "K",
		chess.WhiteQueen:  "Q",
		chess.WhiteRook:   "R",
		chess.WhiteBishop: "B",
		chess.WhiteKnight: "N",
		chess.WhitePawn:   "P",
		chess.BlackKing:   "k",
		chess.BlackQueen:  "q",
		chess.BlackRook:   "r",
		chess.BlackBishop: "b",
		chess.BlackKnight: "n",
		chess.BlackPawn:   "p",
	}

	for piece, label := range labels {
		img := ebiten.NewImage(squareSize, squareSize)

		body := ebiten.NewImage(squareSize*3/4, squareSize*3/4)
		if piece.Color() == chess.White {
			body.Fill(color.RGBA{235, 235, 235, 255})
		} else {
			body.Fill(color.RGBA{40, 40, 40, 255})
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(squareSize)/8, float64(squareSize)/8)
		img.DrawImage(body, op)

		badge := ebiten.NewImage(14, 18)
		badge.Fill(color.RGBA{90, 90, 90, 255})
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(squareSize)/2-7, float64(squareSize)/2-9)
		img.DrawImage(badge, op)

		ebitenutil.DebugPrintAt(img, label, squareSize/2-3, squareSize/2-8)
		g.pieces[piece] = img
	}
}

func (g *Game) Update() error {
	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnWidth := 200
			btnHeight := 60
			btnY := screenHeight/2 + 100

			if y > btnY && y < btnY+btnHeight {
				if x > screenWidth/2-btnWidth-20 && x < screenWidth/2-20 {
					g.playerColor = chess.White
					g.startGame()
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+btnWidth {
					g.playerColor = chess.Black
					g.startGame()
				}
			}
		}
		return nil
	}

	if move := g.takePendingMove(); move != nil {
		if err := g.chessGame.Move(move); err != nil {
			log.Error().Err(err).Stringer("move", move).Msg("bot move rejected")
		}
	}

	if g.chessGame.Position().Turn() == g.playerColor && !g.isBotThinking() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			x -= g.boardOffsetX
			y -= g.boardOffsetY
			if x >= 0 && x < squareSize*8 && y >= 0 && y < squareSize*8 {
				file := x / squareSize
				rank := 7 - y/squareSize
				sq := chess.Square(file + rank*8)
				piece := g.chessGame.Position().Board().Piece(sq)
				if piece != chess.NoPiece && piece.Color() == g.playerColor {
					g.selected = sq
					g.dragging = &piece
					g.dragX, g.dragY = x+g.boardOffsetX, y+g.boardOffsetY
				}
			}
		}
	}

	if g.dragging != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging != nil {
		x, y := ebiten.CursorPosition()
		x -= g.boardOffsetX
		y -= g.boardOffsetY
		if x >= 0 && x < squareSize*8 && y >= 0 && y < squareSize*8 {
			file := x / squareSize
			rank := 7 - y/squareSize
			target := chess.Square(file + rank*8)
			move := findMove(g.chessGame, g.selected, target)
			if move != nil {
				if err := g.chessGame.Move(move); err == nil {
					g.startBotMove(0)
				}
			}
		}
		g.selected = 0
		g.dragging = nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.switchBot()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= 20 && x < 320 && y >= screenHeight-40 && y < screenHeight-20 {
			g.switchBot()
		}
	}

	if !g.isBotThinking() && g.chessGame.Position().Turn() != g.playerColor && g.chessGame.Outcome() == chess.NoOutcome {
		g.startBotMove(300 * time.Millisecond)
	}

	return nil
}

func (g *Game) switchBot() {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()

	for i, name := range botNames {
		if g.currentBot == g.bots[name] {
			g.currentBot = g.bots[botNames[(i+1)%len(botNames)]]
			return
		}
	}
	g.currentBot = g.bots[botNames[0]]
}

func (g *Game) startGame() {
	g.chessGame = chess.NewGame()
	g.gameStarted = true
	if g.playerColor == chess.Black {
		g.startBotMove(500 * time.Millisecond)
	}
}

// startBotMove raises the thinking flag and hands the search to a goroutine.
func (g *Game) startBotMove(delay time.Duration) {
	g.botMutex.Lock()
	g.botThinking = true
	g.botMutex.Unlock()

	go func() {
		time.Sleep(delay)
		g.makeBotMove()
	}()
}

// makeBotMove runs off the game loop. It copies the bot under the mutex,
// searches without holding it, then parks the result in pendingMove. The
// game itself is never mutated here; Update applies the parked move.
func (g *Game) makeBotMove() {
	g.botMutex.Lock()
	bot := g.currentBot
	g.botMutex.Unlock()

	var move *chess.Move
	if g.chessGame.Position().Turn() != g.playerColor && g.chessGame.Outcome() == chess.NoOutcome {
		move = bot.BestMove(g.chessGame)
	}

	g.botMutex.Lock()
	g.pendingMove = move
	g.botThinking = false
	g.botMutex.Unlock()
}

func (g *Game) isBotThinking() bool {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	return g.botThinking
}

func (g *Game) takePendingMove() *chess.Move {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	move := g.pendingMove
	g.pendingMove = nil
	return move
}

func (g *Game) currentBotName() string {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	return g.currentBot.Name()
}

func findMove(game *chess.Game, from, to chess.Square) *chess.Move {
	for _, m := range game.ValidMoves() {
		if m.S1() == from && m.S2() == to {
			return m
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.gameStarted {
		ebitenutil.DebugPrintAt(screen, "shallowblue", screenWidth/2-35, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Pick your color:", screenWidth/2-50, screenHeight/2)

		whiteBtn := ebiten.NewImage(200, 60)
		whiteBtn.Fill(color.RGBA{200, 200, 200, 255})
		ebitenutil.DebugPrintAt(whiteBtn, "Play White", 65, 20)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2-200-20), float64(screenHeight/2+100))
		screen.DrawImage(whiteBtn, op)

		blackBtn := ebiten.NewImage(200, 60)
		blackBtn.Fill(color.RGBA{50, 50, 50, 255})
		ebitenutil.DebugPrintAt(blackBtn, "Play Black", 65, 20)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2+20), float64(screenHeight/2+100))
		screen.DrawImage(blackBtn, op)
		return
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			clr := color.RGBA{240, 217, 181, 255}
			if (x+y)%2 == 1 {
				clr = color.RGBA{181, 136, 99, 255}
			}
			rect := ebiten.NewImage(squareSize, squareSize)
			rect.Fill(clr)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*squareSize+g.boardOffsetX), float64(y*squareSize+g.boardOffsetY))
			screen.DrawImage(rect, op)
		}
	}

	board := g.chessGame.Position().Board()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := chess.Square(x + (7-y)*8)
			piece := board.Piece(sq)
			if piece != chess.NoPiece && (g.dragging == nil || sq != g.selected) {
				img := g.pieces[piece]
				if img != nil {
					op := &ebiten.DrawImageOptions{}
					op.GeoM.Translate(
						float64(x*squareSize+g.boardOffsetX),
						float64(y*squareSize+g.boardOffsetY),
					)
					screen.DrawImage(img, op)
				}
			}
		}
	}

	if g.dragging != nil {
		img := g.pieces[*g.dragging]
		if img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(g.dragX)-float64(squareSize)/2,
				float64(g.dragY)-float64(squareSize)/2,
			)
			screen.DrawImage(img, op)
		}
	}

	status := "Your move"
	if g.isBotThinking() {
		status = "Bot is thinking..."
	} else if g.chessGame.Position().Turn() != g.playerColor {
		status = "Bot's move"
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)

	botInfo := fmt.Sprintf("Bot: %s (B to switch)", g.currentBotName())
	ebitenutil.DebugPrintAt(screen, botInfo, 20, screenHeight-40)

	outcome := g.chessGame.Outcome().String()
	if outcome != "*" {
		ebitenutil.DebugPrintAt(screen, "Result: "+outcome, screenWidth/2-50, 20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	game := NewGame()
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("shallowblue")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game stopped")
	}
}
