package model

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/chesshouse/backend/internal/engine"
	"github.com/chesshouse/backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameConnections is the websocket registry for a single game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one game session: the rules engine holding the position,
// the two seats, per-game display state, and the observers to notify.
// All rule decisions are the engine's; this layer only orchestrates.
type Game struct {
	ID          string
	mu          sync.Mutex
	eng         *engine.Game
	players     Players
	captured    CapturedPieces
	resolve     *string
	lastMove    *SimpleMove
	connections *GameConnections
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// GameState is the full snapshot broadcast to clients.
type GameState struct {
	Board           [][]*ClientPiece `json:"board"`
	ToMove          string           `json:"toMove"`
	MoveHistory     []HistoryMove    `json:"moveHistory"`
	CapturedPieces  CapturedPieces   `json:"capturedPieces"`
	IsCheck         bool             `json:"isCheck"`
	EnPassantTarget *Position        `json:"enPassantTarget"`
	Resolve         *string          `json:"resolve"`
	Players         Players          `json:"players"`
	LastMove        *SimpleMove      `json:"lastMove"`
}

type CapturedPieces struct {
	White []ClientPiece `json:"white"`
	Black []ClientPiece `json:"black"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		eng:         engine.NewGame(),
		captured:    newCapturedPieces(),
		connections: NewGameConnections(),
	}
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]ClientPiece, 0),
		Black: make([]ClientPiece, 0),
	}
}

// AddPlayer seats a player on the first free color, white first.
func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Color: "white"}
		return PlayerColorWhite, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Color: "black"}
		return PlayerColorBlack, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotState()
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.players.White.ID != "" && g.players.White.ID == playerID {
		return true
	}
	if g.players.Black.ID != "" && g.players.Black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// MakeMove applies a player's move. The engine rejects anything
// illegal; this layer only enforces that the submitting player sits on
// the side to move and that the game has not already resolved.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resolve != nil {
		return errors.New("game is over")
	}

	color, err := g.seatColor(playerID)
	if err != nil {
		return err
	}
	if string(color) != g.eng.Turn().String() {
		return errors.New("not your turn")
	}

	from := move.From.square()
	to := move.To.square()
	if !g.eng.MakeMove(from, to) {
		return errors.New("illegal move")
	}

	// The record just appended carries the capture, including the en
	// passant victim that never stood on the destination square.
	history := g.eng.History()
	rec := history[len(history)-1]
	if rec.Captured != nil {
		cp := clientPiece(*rec.Captured)
		switch rec.Piece.Color {
		case engine.White:
			g.captured.White = append(g.captured.White, cp)
		case engine.Black:
			g.captured.Black = append(g.captured.Black, cp)
		}
	}
	g.lastMove = &SimpleMove{From: move.From, To: move.To}

	// Terminal detection for the side now to move.
	next := g.eng.Turn()
	if g.eng.IsCheckmate(next) {
		result := "checkmate"
		g.resolve = &result
	} else if g.eng.IsStalemate(next) {
		result := "stalemate"
		g.resolve = &result
	}

	state := g.snapshotState()
	go g.connections.broadcast(state)

	return nil
}

func (g *Game) seatColor(playerID string) (PlayerColor, error) {
	if playerID != "" && g.players.White.ID == playerID {
		return PlayerColorWhite, nil
	}
	if playerID != "" && g.players.Black.ID == playerID {
		return PlayerColorBlack, nil
	}
	return "", errors.New("player is not seated in this game")
}

// snapshotState builds the client view. Caller holds g.mu.
func (g *Game) snapshotState() GameState {
	state := GameState{
		Board:          boardSnapshot(g.eng),
		ToMove:         g.eng.Turn().String(),
		MoveHistory:    historySnapshot(g.eng),
		CapturedPieces: g.captured,
		IsCheck:        g.eng.IsInCheck(g.eng.Turn()),
		Resolve:        g.resolve,
		Players:        g.players,
		LastMove:       g.lastMove,
	}
	if ep := g.eng.EnPassantTarget(); ep != nil {
		pos := positionOf(*ep)
		state.EnPassantTarget = &pos
	}
	return state
}

func historySnapshot(eng *engine.Game) []HistoryMove {
	records := eng.History()
	history := make([]HistoryMove, 0, len(records))
	for _, rec := range records {
		hm := HistoryMove{
			From:     positionOf(rec.From),
			To:       positionOf(rec.To),
			Piece:    clientPiece(rec.Piece),
			Notation: fmt.Sprintf("%s%s", rec.From, rec.To),
		}
		if rec.Captured != nil {
			cp := clientPiece(*rec.Captured)
			hm.Captured = &cp
		}
		history = append(history, hm)
	}
	return history
}

// RegisterConnection attaches a websocket to the game. Seated players
// and, while a seat is open, spectators are allowed. A second
// connection for the same player is rejected in favor of the first.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	state := g.snapshotState()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.connections.broadcast(state)
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

// broadcast sends a state snapshot to every registered connection.
// Connections that fail to take the write are dropped.
func (gc *GameConnections) broadcast(state GameState) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	for playerID, conn := range gc.connections {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: ws.MustPayload(state),
		})
		if err != nil {
			log.Printf("failed to send state to player %s: %v", playerID, err)
			delete(gc.connections, playerID)
		}
	}
}
