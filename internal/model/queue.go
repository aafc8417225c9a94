package model

import (
	"errors"
	"sync"
	"time"
)

// SeatsPerGame is the number of players a match needs before it starts.
const SeatsPerGame = 4

// ErrAlreadyQueued reports a second matchmaking join for the same player.
var ErrAlreadyQueued = errors.New("player already in queue")

type QueuedPlayer struct {
	PlayerID string
	JoinedAt time.Time
}

// Queue collects players waiting for a four-seat match.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return ErrAlreadyQueued
		}
	}
	q.players = append(q.players, QueuedPlayer{
		PlayerID: playerID,
		JoinedAt: time.Now(),
	})
	return nil
}

// GetNextGroup pops the four longest-waiting players.
func (q *Queue) GetNextGroup() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < SeatsPerGame {
		return nil
	}
	group := make([]string, 0, SeatsPerGame)
	for _, p := range q.players[:SeatsPerGame] {
		group = append(group, p.PlayerID)
	}
	q.players = q.players[SeatsPerGame:]
	return group
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}

// MatchFoundEvent tells a queued player which game and seat they were given.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  PlayerColor `json:"color"`
}
