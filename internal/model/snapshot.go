package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// The snapshot format is the JSON encoding of GameState: board occupancy
// with per-piece flags, seats, active player, outcome and the full ply
// history. Restoring a snapshot yields a state that behaves identically,
// including undo across the reload.

type boardSnapshot struct {
	Squares []Square `json:"squares"`
}

// MarshalJSON encodes the sparse board as a square list sorted by rank then
// file, so identical positions serialize identically.
func (b *BoardState) MarshalJSON() ([]byte, error) {
	squares := make([]Square, 0, len(b.pieces))
	for pos, piece := range b.pieces {
		squares = append(squares, Square{Position: pos, Piece: piece})
	}
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Position.Y != squares[j].Position.Y {
			return squares[i].Position.Y < squares[j].Position.Y
		}
		return squares[i].Position.X < squares[j].Position.X
	})
	return json.Marshal(boardSnapshot{Squares: squares})
}

func (b *BoardState) UnmarshalJSON(data []byte) error {
	var snap boardSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	b.pieces = make(map[Position]*Piece, len(snap.Squares))
	b.kings = make(map[PlayerColor]Position)
	for _, sq := range snap.Squares {
		if sq.Piece == nil {
			continue
		}
		if !onBoard(sq.Position) {
			return fmt.Errorf("%w: %s", ErrInvalidPosition, sq.Position.getSquareNotation())
		}
		if b.pieces[sq.Position] != nil {
			return fmt.Errorf("duplicate piece on %s", sq.Position.getSquareNotation())
		}
		piece := *sq.Piece
		b.mustSet(&piece)
	}
	return nil
}

// Serialize renders the game as its textual snapshot.
func (gs *GameState) Serialize() ([]byte, error) {
	return json.Marshal(gs)
}

// RestoreGameState reconstructs a game from a snapshot produced by Serialize.
func RestoreGameState(data []byte) (*GameState, error) {
	gs := &GameState{Board: newEmptyBoard()}
	if err := json.Unmarshal(data, gs); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if gs.Board == nil {
		return nil, fmt.Errorf("decode snapshot: missing board")
	}
	for i, color := range turnOrder {
		if gs.Players[i] == nil || gs.Players[i].Color != color {
			return nil, fmt.Errorf("decode snapshot: seat %d is not %s", i, color)
		}
	}
	if turnIndex(gs.ToMove) == 0 && gs.ToMove != PlayerColorRed {
		return nil, fmt.Errorf("decode snapshot: unknown active player %q", gs.ToMove)
	}
	if gs.MoveHistory == nil {
		gs.MoveHistory = make([]Ply, 0)
	}
	return gs, nil
}
