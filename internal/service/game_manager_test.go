package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Arcify/4-player-chess-engine/internal/model"
)

func TestGetGameNotFound(t *testing.T) {
	gm := NewGameManager()
	if _, err := gm.GetGame("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("GetGame on unknown id returned %v, want ErrGameNotFound", err)
	}
}

// Four queued players with registered channels each get a MatchFoundEvent
// naming the same game and four distinct seats, and the game is live in the
// registry.
func TestMatchmakingNotifiesSeatedPlayers(t *testing.T) {
	gm := NewGameManager()

	players := []string{"p1", "p2", "p3", "p4"}
	channels := make(map[string]chan string, len(players))
	for _, id := range players {
		ch := make(chan string, 1)
		channels[id] = ch
		if err := gm.RegisterMatchmakingChannel(id, ch); err != nil {
			t.Fatal(err)
		}
		if err := gm.JoinMatchmaking(id); err != nil {
			t.Fatal(err)
		}
	}

	gameID := ""
	seats := make(map[model.PlayerColor]string)
	for _, id := range players {
		select {
		case payload := <-channels[id]:
			var event model.MatchFoundEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				t.Fatalf("decode event for %s: %v", id, err)
			}
			if event.GameID == "" || event.Color == "" {
				t.Fatalf("incomplete event for %s: %+v", id, event)
			}
			if gameID == "" {
				gameID = event.GameID
			} else if event.GameID != gameID {
				t.Fatalf("player %s matched into %s, others into %s", id, event.GameID, gameID)
			}
			if holder, taken := seats[event.Color]; taken {
				t.Fatalf("seat %s handed to both %s and %s", event.Color, holder, id)
			}
			seats[event.Color] = id
		case <-time.After(3 * time.Second):
			t.Fatalf("no match notification for %s", id)
		}
	}

	game, err := gm.GetGame(gameID)
	if err != nil {
		t.Fatalf("matched game not in registry: %v", err)
	}
	for _, id := range players {
		if !game.IsPlayerInGame(id) {
			t.Errorf("player %s not seated in the matched game", id)
		}
	}
}

func TestUnregisterKeepsSuccessorChannel(t *testing.T) {
	gm := NewGameManager()

	old := make(chan string, 1)
	if err := gm.RegisterMatchmakingChannel("p1", old); err != nil {
		t.Fatal(err)
	}
	replacement := make(chan string, 1)
	if err := gm.RegisterMatchmakingChannel("p1", replacement); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-old; ok {
		t.Fatal("superseded channel not closed")
	}

	// The superseded handler's teardown must not evict the replacement.
	gm.UnregisterMatchmakingChannel("p1", old)
	gm.mu.RLock()
	registered := gm.matchingChannels["p1"]
	gm.mu.RUnlock()
	if registered != replacement {
		t.Fatal("stale unregister removed the successor's channel")
	}
}
