package model

// WSMove is a move submission from a client.
type WSMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// SimpleMove is an origin-destination pair on the wire.
type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// HistoryMove is one executed ply as sent to clients.
type HistoryMove struct {
	From     Position     `json:"from"`
	To       Position     `json:"to"`
	Piece    ClientPiece  `json:"piece"`
	Captured *ClientPiece `json:"captured"`
	Notation string       `json:"notation"`
}

// MatchFoundEvent notifies a queued player that matchmaking paired
// them into a game.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  PlayerColor `json:"color"`
}
