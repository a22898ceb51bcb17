package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chesshouse/backend/internal/engine"
)

// parseMove turns "e2e4" style input into a pair of squares. The file
// letter maps to the column, the rank digit counts up from White's
// side, so rank 8 is row 0.
func parseMove(input string) (from, to engine.Square, ok bool) {
	if len(input) != 4 {
		return from, to, false
	}
	squares := [2]engine.Square{}
	for i := 0; i < 2; i++ {
		col := int(input[i*2] - 'a')
		rank := int(input[i*2+1] - '0')
		sq := engine.Square{Row: 8 - rank, Col: col}
		if !sq.InBounds() {
			return from, to, false
		}
		squares[i] = sq
	}
	return squares[0], squares[1], true
}

func render(g *engine.Game) {
	fmt.Println("\n   a b c d e f g h")
	fmt.Println("  +-+-+-+-+-+-+-+-+")
	for row := 0; row < 8; row++ {
		fmt.Printf("%d |", 8-row)
		for col := 0; col < 8; col++ {
			if p := g.GetPiece(engine.Square{Row: row, Col: col}); p != nil {
				fmt.Printf("%s|", p.Symbol())
			} else {
				fmt.Print(" |")
			}
		}
		fmt.Printf(" %d\n", 8-row)
		fmt.Println("  +-+-+-+-+-+-+-+-+")
	}
	fmt.Println("   a b c d e f g h")
	fmt.Printf("\nCurrent turn: %s\n", g.Turn())
	if g.IsInCheck(g.Turn()) {
		fmt.Println("CHECK!")
	}
}

func showHelp() {
	fmt.Println("\nCommands:")
	fmt.Println("- enter moves like 'e2e4' (from square to square)")
	fmt.Println("- 'moves'  show all valid moves")
	fmt.Println("- 'undo'   undo last move")
	fmt.Println("- 'quit'   exit game")
	fmt.Println("- 'help'   show this help")
}

func showValidMoves(g *engine.Game) {
	moves := g.GetAllValidMoves(g.Turn())
	if len(moves) == 0 {
		fmt.Println("No valid moves available!")
		return
	}
	fmt.Printf("\nValid moves for %s:\n", g.Turn())
	for i, m := range moves {
		fmt.Printf("%2d. %s%s\n", i+1, m.From, m.To)
	}
}

func main() {
	fmt.Println("Welcome to Chess!")
	fmt.Println("Enter moves in format like 'e2e4' (from square to square)")
	fmt.Println("Type 'quit' to exit, 'help' for help")

	game := engine.NewGame()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		render(game)

		if game.IsCheckmate(game.Turn()) {
			fmt.Printf("Checkmate! %s wins!\n", game.Turn().Opponent())
			return
		}
		if game.IsStalemate(game.Turn()) {
			fmt.Println("Stalemate! Game is a draw!")
			return
		}

		fmt.Printf("\n%s's move: ", game.Turn())
		if !scanner.Scan() {
			return
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch input {
		case "quit":
			return
		case "help":
			showHelp()
			continue
		case "moves":
			showValidMoves(game)
			continue
		case "undo":
			if !game.UndoLastMove() {
				fmt.Println("No moves to undo!")
			}
			continue
		}

		from, to, ok := parseMove(input)
		if !ok {
			fmt.Println("Invalid input! Try again.")
			continue
		}
		if !game.MakeMove(from, to) {
			fmt.Println("Invalid move! Try again.")
		}
	}
}
