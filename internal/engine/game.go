package engine

// Game is the complete state of one chess game: the board, whose turn
// it is, the en-passant target left by the previous ply, and the move
// log. All engine operations take their state from here; there is no
// shared or package-level board.
type Game struct {
	board     board
	turn      Color
	enPassant *Square
	history   []MoveRecord

	// StrictCastling additionally forbids castling while the king's
	// start or transit square is attacked. Off by default: the base
	// rule set only constrains the castling shape, and the usual
	// leaves-own-king-in-check test already covers the landing square.
	StrictCastling bool
}

// Move is an origin-destination pair.
type Move struct {
	From Square
	To   Square
}

// MoveRecord is one executed ply. Captured is the piece removed by the
// move, which for an en-passant capture is not the piece that stood on
// To. The record carries enough hidden state to invert the ply.
type MoveRecord struct {
	From     Square
	To       Square
	Piece    Piece
	Captured *Piece

	undo undoRecord
}

// undoRecord is everything apply changed, so unapply can restore the
// position exactly: pointers to the touched pieces, their prior
// has-moved flags, the captured piece and its square, and the prior
// en-passant target.
type undoRecord struct {
	from          Square
	to            Square
	moved         *Piece
	movedHadMoved bool
	captured      *Piece
	capturedAt    Square
	rook          *Piece
	rookHadMoved  bool
	rookFrom      Square
	rookTo        Square
	prevEnPassant *Square
}

// NewGame returns a game at the standard initial position with White
// to move.
func NewGame() *Game {
	return &Game{
		board:   newBoard(),
		turn:    White,
		history: make([]MoveRecord, 0),
	}
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// GetPiece returns the piece on sq, or nil for an empty or off-board
// square.
func (g *Game) GetPiece(sq Square) *Piece {
	return g.board.pieceAt(sq)
}

// SetPiece overwrites sq with p (nil clears it). It is a raw override
// for building test positions and bypasses all move rules.
func (g *Game) SetPiece(sq Square, p *Piece) {
	g.board.setPiece(sq, p)
}

// EnPassantTarget returns the square a pawn skipped on the previous
// ply, or nil when no en-passant capture is available.
func (g *Game) EnPassantTarget() *Square {
	if g.enPassant == nil {
		return nil
	}
	sq := *g.enPassant
	return &sq
}

// History returns the executed moves in order. The slice is shared;
// treat it as read-only.
func (g *Game) History() []MoveRecord {
	return g.history
}

// IsValidMove reports whether moving from from to to is legal for the
// side to move: the piece belongs to the mover, the movement rules
// allow it, and it does not leave the mover's own king attacked. The
// check test speculatively applies the move and reverts it, so the
// game is unchanged no matter the outcome.
func (g *Game) IsValidMove(from, to Square) bool {
	p := g.board.pieceAt(from)
	if p == nil || p.Color != g.turn {
		return false
	}
	if !g.canMove(from, to) {
		return false
	}
	if g.StrictCastling && p.Kind == King && abs(to.Col-from.Col) == 2 {
		// Start and transit squares; the landing square falls out of
		// the in-check test below.
		transit := Square{Row: from.Row, Col: from.Col + sign(to.Col-from.Col)}
		if g.IsSquareAttacked(from, p.Color.Opponent()) ||
			g.IsSquareAttacked(transit, p.Color.Opponent()) {
			return false
		}
	}

	undo := g.apply(from, to)
	inCheck := g.IsInCheck(p.Color)
	g.unapply(undo)
	return !inCheck
}

// MakeMove validates and executes a move. It returns false without
// touching any state when the move is illegal; on success it appends a
// MoveRecord and passes the turn.
func (g *Game) MakeMove(from, to Square) bool {
	if !g.IsValidMove(from, to) {
		return false
	}

	rec := MoveRecord{From: from, To: to, Piece: *g.board.pieceAt(from)}
	rec.undo = g.apply(from, to)
	if rec.undo.captured != nil {
		captured := *rec.undo.captured
		rec.Captured = &captured
	}
	g.history = append(g.history, rec)
	g.turn = g.turn.Opponent()
	return true
}

// UndoLastMove reverts exactly one ply using the reversal data in the
// move log. It returns false when there is nothing to undo.
func (g *Game) UndoLastMove() bool {
	if len(g.history) == 0 {
		return false
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.unapply(rec.undo)
	g.turn = g.turn.Opponent()
	return true
}

// apply executes a move the validator already approved (or is probing)
// and returns the record needed to revert it. Side effects, in order:
// the mover's has-moved flag, en-passant capture removal, the castling
// rook relocation, the piece relocation itself, and the next ply's
// en-passant target.
func (g *Game) apply(from, to Square) undoRecord {
	p := g.board.pieceAt(from)
	undo := undoRecord{
		from:          from,
		to:            to,
		moved:         p,
		movedHadMoved: p.HasMoved,
		prevEnPassant: g.enPassant,
	}
	p.HasMoved = true

	if p.Kind == Pawn && g.enPassant != nil && to == *g.enPassant {
		// The captured pawn stands one rank behind the target square,
		// toward the mover's own side.
		behind := Square{Row: to.Row - pawnDirection(p.Color), Col: to.Col}
		undo.captured = g.board.pieceAt(behind)
		undo.capturedAt = behind
		g.board.setPiece(behind, nil)
	} else if target := g.board.pieceAt(to); target != nil {
		undo.captured = target
		undo.capturedAt = to
	}

	if p.Kind == King && abs(to.Col-from.Col) == 2 {
		if to.Col > from.Col {
			undo.rookFrom = Square{Row: from.Row, Col: 7}
			undo.rookTo = Square{Row: from.Row, Col: 5}
		} else {
			undo.rookFrom = Square{Row: from.Row, Col: 0}
			undo.rookTo = Square{Row: from.Row, Col: 3}
		}
		if rook := g.board.pieceAt(undo.rookFrom); rook != nil {
			undo.rook = rook
			undo.rookHadMoved = rook.HasMoved
			rook.HasMoved = true
			g.board.setPiece(undo.rookTo, rook)
			g.board.setPiece(undo.rookFrom, nil)
		}
	}

	g.board.setPiece(to, p)
	g.board.setPiece(from, nil)

	if p.Kind == Pawn && abs(to.Row-from.Row) == 2 {
		g.enPassant = &Square{Row: (to.Row + from.Row) / 2, Col: from.Col}
	} else {
		g.enPassant = nil
	}
	return undo
}

// unapply reverts one apply. Restoring runs in reverse order so the
// position, flags and en-passant target come back exactly.
func (g *Game) unapply(undo undoRecord) {
	g.board.setPiece(undo.from, undo.moved)
	g.board.setPiece(undo.to, nil)
	undo.moved.HasMoved = undo.movedHadMoved

	if undo.rook != nil {
		g.board.setPiece(undo.rookFrom, undo.rook)
		g.board.setPiece(undo.rookTo, nil)
		undo.rook.HasMoved = undo.rookHadMoved
	}
	if undo.captured != nil {
		g.board.setPiece(undo.capturedAt, undo.captured)
	}
	g.enPassant = undo.prevEnPassant
}

// GetAllValidMoves enumerates every legal move for the given color,
// row-major by origin and then by destination. The order is stable and
// matches the board scan, so fixtures can rely on it.
func (g *Game) GetAllValidMoves(color Color) []Move {
	var moves []Move
	for fromRow := 0; fromRow < 8; fromRow++ {
		for fromCol := 0; fromCol < 8; fromCol++ {
			from := Square{Row: fromRow, Col: fromCol}
			p := g.board.pieceAt(from)
			if p == nil || p.Color != color {
				continue
			}
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					to := Square{Row: toRow, Col: toCol}
					if g.IsValidMove(from, to) {
						moves = append(moves, Move{From: from, To: to})
					}
				}
			}
		}
	}
	return moves
}

// hasValidMove is GetAllValidMoves with an exit on the first hit; the
// terminal-state tests only need existence.
func (g *Game) hasValidMove(color Color) bool {
	for fromRow := 0; fromRow < 8; fromRow++ {
		for fromCol := 0; fromCol < 8; fromCol++ {
			from := Square{Row: fromRow, Col: fromCol}
			p := g.board.pieceAt(from)
			if p == nil || p.Color != color {
				continue
			}
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					if g.IsValidMove(from, Square{Row: toRow, Col: toCol}) {
						return true
					}
				}
			}
		}
	}
	return false
}

// IsCheckmate reports whether the given color is in check with no
// legal move.
func (g *Game) IsCheckmate(color Color) bool {
	return g.IsInCheck(color) && !g.hasValidMove(color)
}

// IsStalemate reports whether the given color has no legal move while
// not in check.
func (g *Game) IsStalemate(color Color) bool {
	return !g.IsInCheck(color) && !g.hasValidMove(color)
}
