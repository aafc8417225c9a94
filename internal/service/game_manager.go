package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Arcify/4-player-chess-engine/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ErrGameNotFound reports a game id absent from the registry.
var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live game and the matchmaking queue. Multiple games
// coexist; each one carries its own state and lock.
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

// processMatchmaking starts a game whenever four players are waiting and
// notifies each of them of their game id and seat color.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		gm.mu.Lock()
		group := gm.queue.GetNextGroup()
		if group == nil {
			gm.mu.Unlock()
			continue
		}

		gameID := uuid.New().String()
		game := model.NewGame(gameID)
		seated := true
		for _, playerID := range group {
			color, err := game.AddPlayer(playerID)
			if err != nil {
				log.Printf("seat player %s: %v", playerID, err)
				seated = false
				break
			}
			gm.notifyMatch(playerID, model.MatchFoundEvent{GameID: gameID, Color: color})
		}
		if seated {
			gm.games[gameID] = game
		}
		gm.mu.Unlock()
	}
}

// notifyMatch sends the match event to the player's waiting channel and
// retires the channel. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal match event: %v", err)
		return
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("match notification for player %s not delivered", playerID)
	}
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
	return nil
}

// UnregisterMatchmakingChannel removes the registration, but only if it still
// points at the given channel: a reconnect replaces the registration, and the
// superseded handler must not tear down its successor's.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if gm.matchingChannels[playerID] == ch {
		delete(gm.matchingChannels, playerID)
	}
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.queue.AddPlayer(playerID)
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

// ImportGame creates a game from a serialized snapshot.
func (gm *GameManager) ImportGame(gameID string, snapshot []byte) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}
	game, err := model.NewGameFromSnapshot(gameID, snapshot)
	if err != nil {
		return err
	}
	gm.games[gameID] = game
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.PlayerColor, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.WSMove) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, move)
}

func (gm *GameManager) UndoLastMove(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.UndoLastMove(playerID)
}

func (gm *GameManager) LegalMoves(gameID string, pos model.Position) ([]model.Move, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMovesFrom(pos), nil
}

func (gm *GameManager) GameStatus(gameID string) (model.Status, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Status{}, err
	}
	return game.Status(), nil
}

func (gm *GameManager) GameView(gameID string) ([]byte, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.View()
}

func (gm *GameManager) Snapshot(gameID string) ([]byte, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.Snapshot()
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
