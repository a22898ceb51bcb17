package engine

import "fmt"

// Color identifies a side.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is the movement class of a piece. Every kind is handled
// exhaustively by the move rules; there is no default behavior.
type Kind int

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "unknown"
}

// Piece is a single man on the board. HasMoved flips on the piece's
// first successful move and gates castling eligibility.
type Piece struct {
	Color    Color
	Kind     Kind
	HasMoved bool
}

var symbols = map[Color]map[Kind]string{
	White: {Pawn: "♙", Rook: "♖", Knight: "♘", Bishop: "♗", Queen: "♕", King: "♔"},
	Black: {Pawn: "♟", Rook: "♜", Knight: "♞", Bishop: "♝", Queen: "♛", King: "♚"},
}

// Symbol returns the unicode figurine for the piece.
func (p Piece) Symbol() string {
	if s, ok := symbols[p.Color][p.Kind]; ok {
		return s
	}
	return "?"
}

// Square is a board coordinate. Row 0 is Black's back rank, row 7 is
// White's; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String renders the square in file-rank form, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}
