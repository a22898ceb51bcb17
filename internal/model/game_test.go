package model

import "testing"

func TestAddPlayerSeatsWhiteThenBlack(t *testing.T) {
	g := NewGame("test-game")

	color, err := g.AddPlayer("p1")
	if err != nil || color != PlayerColorWhite {
		t.Fatalf("first seat = %q, err = %v", color, err)
	}
	color, err = g.AddPlayer("p2")
	if err != nil || color != PlayerColorBlack {
		t.Fatalf("second seat = %q, err = %v", color, err)
	}
	if _, err := g.AddPlayer("p3"); err == nil {
		t.Fatal("third player seated in a two-seat game")
	}

	if !g.IsPlayerInGame("p1") || !g.IsPlayerInGame("p2") {
		t.Error("seated players not recognized")
	}
	if g.IsPlayerInGame("p3") {
		t.Error("unseated player recognized")
	}
	if g.CanSpectate() {
		t.Error("full game still open to spectators")
	}
}

func TestMakeMoveEnforcesSeatsAndTurn(t *testing.T) {
	g := NewGame("test-game")
	g.AddPlayer("white")
	g.AddPlayer("black")

	e2e4 := WSMove{From: Position{X: 4, Y: 6}, To: Position{X: 4, Y: 4}}

	if err := g.MakeMove("nobody", e2e4); err == nil {
		t.Fatal("unseated player moved")
	}
	if err := g.MakeMove("black", e2e4); err == nil {
		t.Fatal("black moved on white's turn")
	}
	if err := g.MakeMove("white", e2e4); err != nil {
		t.Fatalf("white's opening move rejected: %v", err)
	}

	state := g.GetState()
	if state.ToMove != "black" {
		t.Errorf("toMove = %q after white's move", state.ToMove)
	}
	if state.Board[4][4] == nil || state.Board[4][4].Type != "pawn" {
		t.Error("moved pawn missing from snapshot")
	}
	if state.Board[6][4] != nil {
		t.Error("origin square still occupied in snapshot")
	}
	if len(state.MoveHistory) != 1 {
		t.Errorf("history length = %d", len(state.MoveHistory))
	}
	if state.MoveHistory[0].Notation != "e2e4" {
		t.Errorf("notation = %q", state.MoveHistory[0].Notation)
	}
	if state.EnPassantTarget == nil || *state.EnPassantTarget != (Position{X: 4, Y: 5}) {
		t.Errorf("en-passant target = %v", state.EnPassantTarget)
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := NewGame("test-game")
	g.AddPlayer("white")
	g.AddPlayer("black")

	if err := g.MakeMove("white", WSMove{
		From: Position{X: 0, Y: 7},
		To:   Position{X: 0, Y: 4},
	}); err == nil {
		t.Fatal("blocked rook move accepted")
	}

	state := g.GetState()
	if state.ToMove != "white" {
		t.Error("rejected move flipped the turn")
	}
	if len(state.MoveHistory) != 0 {
		t.Error("rejected move recorded")
	}
}

func TestCaptureTally(t *testing.T) {
	g := NewGame("test-game")
	g.AddPlayer("white")
	g.AddPlayer("black")

	moves := []struct {
		player string
		move   WSMove
	}{
		{"white", WSMove{From: Position{X: 4, Y: 6}, To: Position{X: 4, Y: 4}}}, // e2e4
		{"black", WSMove{From: Position{X: 3, Y: 1}, To: Position{X: 3, Y: 3}}}, // d7d5
		{"white", WSMove{From: Position{X: 4, Y: 4}, To: Position{X: 3, Y: 3}}}, // exd5
	}
	for _, m := range moves {
		if err := g.MakeMove(m.player, m.move); err != nil {
			t.Fatalf("move %v by %s rejected: %v", m.move, m.player, err)
		}
	}

	state := g.GetState()
	if len(state.CapturedPieces.White) != 1 {
		t.Fatalf("white capture tally = %d", len(state.CapturedPieces.White))
	}
	captured := state.CapturedPieces.White[0]
	if captured.Type != "pawn" || captured.Color != "black" {
		t.Errorf("captured piece = %+v", captured)
	}
	if len(state.CapturedPieces.Black) != 0 {
		t.Errorf("black capture tally = %d", len(state.CapturedPieces.Black))
	}
}

func TestFoolsMateResolvesGame(t *testing.T) {
	g := NewGame("test-game")
	g.AddPlayer("white")
	g.AddPlayer("black")

	moves := []struct {
		player string
		move   WSMove
	}{
		{"white", WSMove{From: Position{X: 5, Y: 6}, To: Position{X: 5, Y: 5}}}, // f2f3
		{"black", WSMove{From: Position{X: 4, Y: 1}, To: Position{X: 4, Y: 3}}}, // e7e5
		{"white", WSMove{From: Position{X: 6, Y: 6}, To: Position{X: 6, Y: 4}}}, // g2g4
		{"black", WSMove{From: Position{X: 3, Y: 0}, To: Position{X: 7, Y: 4}}}, // Qd8h4
	}
	for _, m := range moves {
		if err := g.MakeMove(m.player, m.move); err != nil {
			t.Fatalf("move %v by %s rejected: %v", m.move, m.player, err)
		}
	}

	state := g.GetState()
	if !state.IsCheck {
		t.Error("mated side not reported in check")
	}
	if state.Resolve == nil || *state.Resolve != "checkmate" {
		t.Fatalf("resolve = %v, want checkmate", state.Resolve)
	}

	// The game is over; nothing further is accepted.
	if err := g.MakeMove("white", WSMove{
		From: Position{X: 4, Y: 6},
		To:   Position{X: 4, Y: 5},
	}); err == nil {
		t.Fatal("move accepted after checkmate")
	}
}

func TestSnapshotInitialBoard(t *testing.T) {
	g := NewGame("test-game")
	state := g.GetState()

	if len(state.Board) != 8 {
		t.Fatalf("board has %d rows", len(state.Board))
	}
	for row := range state.Board {
		if len(state.Board[row]) != 8 {
			t.Fatalf("row %d has %d columns", row, len(state.Board[row]))
		}
	}
	if p := state.Board[0][4]; p == nil || p.Type != "king" || p.Color != "black" {
		t.Errorf("e8 = %+v", p)
	}
	if p := state.Board[7][4]; p == nil || p.Type != "king" || p.Color != "white" {
		t.Errorf("e1 = %+v", p)
	}
	if state.Resolve != nil {
		t.Error("fresh game already resolved")
	}
}
