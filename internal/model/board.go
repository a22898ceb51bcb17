package model

import "github.com/chesshouse/backend/internal/engine"

// Position is the wire form of a board coordinate: X is the column
// (0 = a-file), Y the row (0 = Black's back rank).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) square() engine.Square {
	return engine.Square{Row: p.Y, Col: p.X}
}

func positionOf(sq engine.Square) Position {
	return Position{X: sq.Col, Y: sq.Row}
}

// ClientPiece is the wire form of a piece.
type ClientPiece struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	HasMoved bool   `json:"hasMoved"`
}

func clientPiece(p engine.Piece) ClientPiece {
	return ClientPiece{
		Type:     p.Kind.String(),
		Color:    p.Color.String(),
		HasMoved: p.HasMoved,
	}
}

// boardSnapshot copies the engine board into the nested-slice layout
// clients render from, row 0 first.
func boardSnapshot(g *engine.Game) [][]*ClientPiece {
	board := make([][]*ClientPiece, 8)
	for row := 0; row < 8; row++ {
		board[row] = make([]*ClientPiece, 8)
		for col := 0; col < 8; col++ {
			if p := g.GetPiece(engine.Square{Row: row, Col: col}); p != nil {
				cp := clientPiece(*p)
				board[row][col] = &cp
			}
		}
	}
	return board
}
