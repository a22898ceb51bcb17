package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/chesshouse/backend/internal/model"
	"github.com/chesshouse/backend/internal/service"
	"github.com/chesshouse/backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection runs the message loop for one websocket connection
// until the peer goes away.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("failed to register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: ws.MustPayload(errorMsg),
	})
}
