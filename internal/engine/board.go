package engine

// board is the 8x8 grid. A nil entry is an empty square.
type board [8][8]*Piece

// backRank is the standard piece order from the a-file to the h-file.
var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() board {
	var b board
	for col, kind := range backRank {
		b[0][col] = &Piece{Color: Black, Kind: kind}
		b[7][col] = &Piece{Color: White, Kind: kind}
	}
	for col := 0; col < 8; col++ {
		b[1][col] = &Piece{Color: Black, Kind: Pawn}
		b[6][col] = &Piece{Color: White, Kind: Pawn}
	}
	return b
}

func (b *board) pieceAt(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b[sq.Row][sq.Col]
}

func (b *board) setPiece(sq Square, p *Piece) {
	if !sq.InBounds() {
		return
	}
	b[sq.Row][sq.Col] = p
}

func (b *board) isEmpty(sq Square) bool {
	return sq.InBounds() && b[sq.Row][sq.Col] == nil
}

// kingSquare scans for the unique king of the given color. ok is false
// when the board holds no such king, which only happens on boards built
// by hand through SetPiece.
func (b *board) kingSquare(color Color) (sq Square, ok bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p != nil && p.Kind == King && p.Color == color {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}
