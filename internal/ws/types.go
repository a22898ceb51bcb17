package ws

import (
	"encoding/json"
)

// MessageType discriminates the kinds of messages the game channel
// carries.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the websocket envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MustPayload marshals v into a message payload. The wire types are
// all marshalable by construction, so a failure is a programming
// error.
func MustPayload(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return json.RawMessage(data)
}
