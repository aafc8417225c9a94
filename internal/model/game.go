package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Arcify/4-player-chess-engine/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameConnections holds the websocket observers of a single game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game owns one game: the engine state, the four seats and the observers
// that get the state pushed after every accepted mutation. All engine access
// goes through the game's lock; the engine itself is not synchronized.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       *GameState
	seats       map[PlayerColor]ClientPlayer
	connections *GameConnections
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       NewGameState(),
		seats:       make(map[PlayerColor]ClientPlayer),
		connections: NewGameConnections(),
	}
}

// NewGameFromSnapshot resumes a game from a serialized snapshot.
func NewGameFromSnapshot(id string, snapshot []byte) (*Game, error) {
	state, err := RestoreGameState(snapshot)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:          id,
		state:       state,
		seats:       make(map[PlayerColor]ClientPlayer),
		connections: NewGameConnections(),
	}, nil
}

// GameView is the payload pushed to observers: engine state plus seat
// occupancy.
type GameView struct {
	State *GameState                   `json:"state"`
	Seats map[PlayerColor]ClientPlayer `json:"seats"`
}

// AddPlayer claims the next free seat in turn order. Re-joining returns the
// seat already held.
func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for color, seat := range g.seats {
		if seat.ID == playerID {
			return color, nil
		}
	}
	for _, color := range turnOrder {
		if _, taken := g.seats[color]; !taken {
			g.seats[color] = ClientPlayer{ID: playerID, Color: color}
			return color, nil
		}
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	for _, seat := range g.seats {
		if seat.ID == playerID {
			return true
		}
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return true
}

// MakeMove applies a client move on behalf of playerID. When the active seat
// is claimed, only its owner may move; unclaimed seats are open, which keeps
// a single local client able to drive all four players.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seat, taken := g.seats[g.state.ToMove]; taken && seat.ID != playerID {
		return illegalMove(fmt.Sprintf("it is %s's turn", g.state.ToMove))
	}
	if err := g.state.MakeMove(Move{From: move.From, To: move.To, Promotion: move.Promotion}); err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

// UndoLastMove reverses the latest ply for any seated player (or anyone, in
// an unseated local game).
func (g *Game) UndoLastMove(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.seats) > 0 && !g.isPlayerInGame(playerID) {
		return errors.New("not a player in this game")
	}
	if err := g.state.UndoLastMove(); err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

// LegalMovesFrom lists the legal moves from a square, for move hinting.
func (g *Game) LegalMovesFrom(pos Position) []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.LegalMovesFrom(pos)
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Status()
}

// Snapshot serializes the current state.
func (g *Game) Snapshot() ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Serialize()
}

// View returns the observer payload, marshaled under the game lock.
func (g *Game) View() ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewJSON()
}

func (g *Game) viewJSON() ([]byte, error) {
	seats := make(map[PlayerColor]ClientPlayer, len(g.seats))
	for color, seat := range g.seats {
		seats[color] = seat
	}
	return json.Marshal(GameView{State: g.state, Seats: seats})
}

// RegisterConnection attaches a websocket observer and sends it the current
// state. A second connection for the same player replaces nothing: the
// existing one wins and the new one is closed.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Printf("registered connection for player %s on game %s", playerID, g.ID)

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

// broadcastState pushes the full game view to every observer, dropping
// connections that fail to accept the write.
func (g *Game) broadcastState() {
	g.mu.Lock()
	payload, err := g.viewJSON()
	g.mu.Unlock()
	if err != nil {
		log.Printf("marshal game %s state: %v", g.ID, err)
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("send state to player %s: %v", playerID, err)
			g.connections.mu.Lock()
			delete(g.connections.connections, playerID)
			g.connections.mu.Unlock()
		}
	}
}
