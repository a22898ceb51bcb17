package engine

// IsSquareAttacked reports whether any piece of by could move to sq.
// Each candidate attacker is evaluated with its own square cleared, so
// a sliding piece is judged purely on the line it attacks along.
func (g *Game) IsSquareAttacked(sq Square, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := g.board[row][col]
			if p == nil || p.Color != by {
				continue
			}
			from := Square{Row: row, Col: col}
			g.board[row][col] = nil
			hit := g.pieceCanReach(p, from, sq)
			g.board[row][col] = p
			if hit {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether the king of the given color is attacked.
// A board with no such king reports not in check; callers that care
// about that condition can detect it through KingSquare.
func (g *Game) IsInCheck(color Color) bool {
	kingSq, ok := g.board.kingSquare(color)
	if !ok {
		return false
	}
	return g.IsSquareAttacked(kingSq, color.Opponent())
}

// KingSquare locates the king of the given color. ok is false when the
// board has none, which indicates a hand-built position.
func (g *Game) KingSquare(color Color) (Square, bool) {
	return g.board.kingSquare(color)
}
