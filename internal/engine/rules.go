package engine

// The movement rules are check-agnostic: they answer whether a piece's
// shape and path permit the move, nothing more. Whether the move leaves
// the mover's own king attacked is the validator's problem.

// canMove reports whether the piece at from could move to to, ignoring
// check. Same-color captures and the zero move are rejected here.
func (g *Game) canMove(from, to Square) bool {
	return g.pieceCanReach(g.board.pieceAt(from), from, to)
}

// pieceCanReach is canMove with the moving piece supplied by the
// caller. The attack oracle uses it to evaluate a piece whose own
// square has been temporarily cleared.
func (g *Game) pieceCanReach(p *Piece, from, to Square) bool {
	if p == nil || !from.InBounds() || !to.InBounds() {
		return false
	}
	if from == to {
		return false
	}
	if target := g.board.pieceAt(to); target != nil && target.Color == p.Color {
		return false
	}

	switch p.Kind {
	case Pawn:
		return g.canPawnMove(p, from, to)
	case Rook:
		return g.canRookMove(from, to)
	case Knight:
		return canKnightMove(from, to)
	case Bishop:
		return g.canBishopMove(from, to)
	case Queen:
		return g.canRookMove(from, to) || g.canBishopMove(from, to)
	case King:
		return g.canKingMove(p, from, to)
	}
	return false
}

// pawnDirection is the row delta of a single forward step.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnStartRow is the rank a pawn double-steps from.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func (g *Game) canPawnMove(p *Piece, from, to Square) bool {
	dir := pawnDirection(p.Color)

	// Forward moves need an empty destination.
	if from.Col == to.Col && g.board.isEmpty(to) {
		if to.Row == from.Row+dir {
			return true
		}
		if from.Row == pawnStartRow(p.Color) && to.Row == from.Row+2*dir &&
			g.board.isEmpty(Square{Row: from.Row + dir, Col: from.Col}) {
			return true
		}
	}

	// Diagonal one-step capture, plain or en passant.
	if abs(to.Col-from.Col) == 1 && to.Row == from.Row+dir {
		if target := g.board.pieceAt(to); target != nil && target.Color != p.Color {
			return true
		}
		if g.enPassant != nil && to == *g.enPassant {
			return true
		}
	}

	return false
}

func (g *Game) canRookMove(from, to Square) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return g.pathClear(from, to)
}

func canKnightMove(from, to Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
}

func (g *Game) canBishopMove(from, to Square) bool {
	if abs(to.Row-from.Row) != abs(to.Col-from.Col) {
		return false
	}
	return g.pathClear(from, to)
}

func (g *Game) canKingMove(p *Piece, from, to Square) bool {
	if abs(to.Row-from.Row) <= 1 && abs(to.Col-from.Col) <= 1 {
		return true
	}
	return g.canCastle(p, from, to)
}

// canCastle checks the castling shape: unmoved king on its home row,
// unmoved same-color rook on the corresponding corner, empty squares
// between them. Attack constraints on the king's start and transit
// squares are not part of the shape; the validator applies them only
// when StrictCastling is set.
func (g *Game) canCastle(p *Piece, from, to Square) bool {
	if p.Kind != King || p.HasMoved {
		return false
	}
	if from.Row != homeRow(p.Color) || to.Row != from.Row {
		return false
	}

	switch to.Col {
	case from.Col + 2: // kingside
		rook := g.board.pieceAt(Square{Row: from.Row, Col: 7})
		return rook != nil && rook.Kind == Rook && rook.Color == p.Color && !rook.HasMoved &&
			g.board.isEmpty(Square{Row: from.Row, Col: from.Col + 1}) &&
			g.board.isEmpty(Square{Row: from.Row, Col: from.Col + 2})
	case from.Col - 2: // queenside
		rook := g.board.pieceAt(Square{Row: from.Row, Col: 0})
		return rook != nil && rook.Kind == Rook && rook.Color == p.Color && !rook.HasMoved &&
			g.board.isEmpty(Square{Row: from.Row, Col: from.Col - 1}) &&
			g.board.isEmpty(Square{Row: from.Row, Col: from.Col - 2}) &&
			g.board.isEmpty(Square{Row: from.Row, Col: from.Col - 3})
	}
	return false
}

func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// pathClear walks the line from from toward to, endpoints excluded,
// and reports whether every stepped-over square is empty. The caller
// guarantees the two squares share a rank, file or diagonal.
func (g *Game) pathClear(from, to Square) bool {
	rowStep := sign(to.Row - from.Row)
	colStep := sign(to.Col - from.Col)

	cur := Square{Row: from.Row + rowStep, Col: from.Col + colStep}
	for cur != to {
		if !g.board.isEmpty(cur) {
			return false
		}
		cur.Row += rowStep
		cur.Col += colStep
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
