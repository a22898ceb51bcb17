package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/chesshouse/backend/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameManager owns every live game, the matchmaking queue, and the
// notification channels of players waiting for a match.
type GameManager struct {
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan string
	mu               sync.RWMutex
}

func NewGameManager() *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
	}

	go gm.processMatchmaking()

	return gm
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	// A reconnect replaces the previous channel; remove it from the
	// map before closing so nothing writes to a closed channel.
	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}

	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	// The channel's creator closes it; only drop the registration.
	delete(gm.matchingChannels, playerID)
}

// processMatchmaking pairs the two longest-waiting players into a
// fresh game once a second.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		gm.mu.Lock()
		if gm.queue.Size() >= 2 {
			player1, player2 := gm.queue.GetNextPair()

			gameID := uuid.New().String()
			game := model.NewGame(gameID)

			p1Color, err := game.AddPlayer(player1.ID)
			if err != nil {
				log.Println("error seating matched player:", err)
				gm.mu.Unlock()
				continue
			}
			p2Color, err := game.AddPlayer(player2.ID)
			if err != nil {
				log.Println("error seating matched player:", err)
				gm.mu.Unlock()
				continue
			}
			gm.games[gameID] = game

			gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
			gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
		}
		gm.mu.Unlock()
	}
}

// notifyMatch delivers a match event to the player's waiting channel
// and retires the channel. Caller holds gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("error marshaling match event:", err)
		return
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Println("failed to notify player of match:", playerID)
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}

	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.PlayerColor, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	game, exists := gm.games[gameID]
	if !exists {
		return model.PlayerColor(""), errors.New("game not found")
	}

	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return model.GameState{}, errors.New("game not found")
	}

	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.WSMove) error {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()

	if !exists {
		return errors.New("game not found")
	}

	return game.MakeMove(playerID, move)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()

	if !exists {
		return errors.New("game not found")
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()

	if !exists {
		return
	}

	game.UnregisterConnection(playerID)
}
