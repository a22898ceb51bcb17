package engine

import "testing"

func clearBoard(g *Game) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			g.SetPiece(Square{Row: row, Col: col}, nil)
		}
	}
}

func TestOpeningMoves(t *testing.T) {
	tests := []struct {
		name string
		from Square
		to   Square
		want bool
	}{
		{"pawn single step", Square{6, 4}, Square{5, 4}, true},
		{"pawn double step", Square{6, 4}, Square{4, 4}, true},
		{"pawn triple step", Square{6, 4}, Square{3, 4}, false},
		{"pawn sideways", Square{6, 4}, Square{6, 5}, false},
		{"pawn diagonal without capture", Square{6, 4}, Square{5, 5}, false},
		{"knight over pawns", Square{7, 1}, Square{5, 2}, true},
		{"knight straight", Square{7, 1}, Square{5, 1}, false},
		{"rook through pawn", Square{7, 0}, Square{5, 0}, false},
		{"bishop through pawn", Square{7, 2}, Square{5, 4}, false},
		{"queen through pawn", Square{7, 3}, Square{5, 3}, false},
		{"king onto own pawn", Square{7, 4}, Square{6, 4}, false},
		{"castle through back rank pieces", Square{7, 4}, Square{7, 6}, false},
		{"zero move", Square{6, 4}, Square{6, 4}, false},
		{"capture own piece", Square{7, 0}, Square{7, 1}, false},
		{"empty origin", Square{4, 4}, Square{3, 4}, false},
		{"black piece on white's turn", Square{1, 4}, Square{2, 4}, false},
		{"destination off board", Square{7, 1}, Square{8, 2}, false},
		{"origin off board", Square{-1, 0}, Square{0, 0}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			if got := g.IsValidMove(tt.from, tt.to); got != tt.want {
				t.Fatalf("IsValidMove(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestBlackPawnDirection(t *testing.T) {
	g := NewGame()
	if !g.MakeMove(Square{6, 4}, Square{4, 4}) {
		t.Fatal("opening pawn move rejected")
	}

	if !g.IsValidMove(Square{1, 4}, Square{2, 4}) {
		t.Error("black pawn cannot step toward row 7")
	}
	if !g.IsValidMove(Square{1, 3}, Square{3, 3}) {
		t.Error("black pawn cannot double step toward row 7")
	}
	if g.IsValidMove(Square{1, 0}, Square{0, 0}) {
		t.Error("black pawn allowed to move backwards")
	}
}

func TestPawnDoubleStepBlockedMidway(t *testing.T) {
	g := NewGame()
	g.SetPiece(Square{5, 4}, &Piece{Color: Black, Kind: Knight})

	if g.IsValidMove(Square{6, 4}, Square{4, 4}) {
		t.Error("pawn jumped over a piece on its double step")
	}
	if g.IsValidMove(Square{6, 4}, Square{5, 4}) {
		t.Error("pawn stepped forward onto an occupied square")
	}
}

func TestPawnDoubleStepOnlyFromStartRank(t *testing.T) {
	g := NewGame()
	if !g.MakeMove(Square{6, 4}, Square{5, 4}) {
		t.Fatal("opening pawn move rejected")
	}
	if !g.MakeMove(Square{1, 0}, Square{2, 0}) {
		t.Fatal("black reply rejected")
	}

	if g.IsValidMove(Square{5, 4}, Square{3, 4}) {
		t.Error("pawn double stepped from a non-start rank")
	}
}

func TestPawnCapture(t *testing.T) {
	g := NewGame()
	g.SetPiece(Square{5, 5}, &Piece{Color: Black, Kind: Knight})
	g.SetPiece(Square{5, 3}, &Piece{Color: White, Kind: Knight})

	if !g.IsValidMove(Square{6, 4}, Square{5, 5}) {
		t.Error("pawn cannot capture diagonally")
	}
	if g.IsValidMove(Square{6, 4}, Square{5, 3}) {
		t.Error("pawn captured its own piece")
	}
}

func TestSlidingPieces(t *testing.T) {
	setup := func() *Game {
		g := NewGame()
		clearBoard(g)
		g.SetPiece(Square{7, 7}, &Piece{Color: White, Kind: King})
		g.SetPiece(Square{0, 0}, &Piece{Color: Black, Kind: King})
		return g
	}

	tests := []struct {
		name  string
		kind  Kind
		extra map[Square]*Piece
		from  Square
		to    Square
		want  bool
	}{
		{"rook along row", Rook, nil, Square{4, 4}, Square{4, 0}, true},
		{"rook along column", Rook, nil, Square{4, 4}, Square{0, 4}, true},
		{"rook diagonal", Rook, nil, Square{4, 4}, Square{2, 2}, false},
		{"rook blocked", Rook, map[Square]*Piece{{4, 6}: {Color: White, Kind: Pawn}}, Square{4, 4}, Square{4, 7}, false},
		{"rook capture endpoint", Rook, map[Square]*Piece{{4, 2}: {Color: Black, Kind: Pawn}}, Square{4, 4}, Square{4, 2}, true},
		{"rook past enemy", Rook, map[Square]*Piece{{4, 2}: {Color: Black, Kind: Pawn}}, Square{4, 4}, Square{4, 1}, false},
		{"bishop diagonal", Bishop, nil, Square{4, 4}, Square{1, 1}, true},
		{"bishop off diagonal", Bishop, nil, Square{4, 4}, Square{4, 6}, false},
		{"bishop blocked", Bishop, map[Square]*Piece{{3, 3}: {Color: Black, Kind: Pawn}}, Square{4, 4}, Square{2, 2}, false},
		{"queen as rook", Queen, nil, Square{4, 4}, Square{4, 1}, true},
		{"queen as bishop", Queen, nil, Square{4, 4}, Square{1, 7}, true},
		{"queen knight shape", Queen, nil, Square{4, 4}, Square{2, 3}, false},
		{"knight ignores blockers", Knight, map[Square]*Piece{
			{3, 4}: {Color: Black, Kind: Pawn},
			{4, 3}: {Color: Black, Kind: Pawn},
			{3, 3}: {Color: Black, Kind: Pawn},
		}, Square{4, 4}, Square{2, 3}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := setup()
			g.SetPiece(tt.from, &Piece{Color: White, Kind: tt.kind})
			for sq, p := range tt.extra {
				g.SetPiece(sq, p)
			}
			if got := g.IsValidMove(tt.from, tt.to); got != tt.want {
				t.Fatalf("IsValidMove(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestKingSingleStep(t *testing.T) {
	g := NewGame()
	clearBoard(g)
	g.SetPiece(Square{4, 4}, &Piece{Color: White, Kind: King})
	g.SetPiece(Square{0, 0}, &Piece{Color: Black, Kind: King})

	for _, to := range []Square{{3, 3}, {3, 4}, {3, 5}, {4, 3}, {4, 5}, {5, 3}, {5, 4}, {5, 5}} {
		if !g.IsValidMove(Square{4, 4}, to) {
			t.Errorf("king step to %v rejected", to)
		}
	}
	if g.IsValidMove(Square{4, 4}, Square{2, 4}) {
		t.Error("king moved two squares outside castling")
	}
}
