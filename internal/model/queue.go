package model

import (
	"fmt"
	"sync"
	"time"
)

type QueuedPlayer struct {
	Player   Player
	JoinedAt time.Time
}

// Queue is the matchmaking waiting line.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(player Player) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.Player.ID == player.ID {
			return fmt.Errorf("player already in queue")
		}
	}

	q.players = append(q.players, QueuedPlayer{
		Player:   player,
		JoinedAt: time.Now(),
	})
	return nil
}

// GetNextPair pops the two players who have been waiting longest. The
// caller must have confirmed Size() >= 2.
func (q *Queue) GetNextPair() (Player, Player) {
	q.mu.Lock()
	defer q.mu.Unlock()

	player1 := q.players[0].Player
	player2 := q.players[1].Player
	q.players = q.players[2:]

	return player1, player2
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
