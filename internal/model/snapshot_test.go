package model

import (
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("fresh game", func(t *testing.T) {
		gs := NewGameState()
		snap, err := gs.Serialize()
		if err != nil {
			t.Fatal(err)
		}
		restored, err := RestoreGameState(snap)
		if err != nil {
			t.Fatal(err)
		}
		again, err := restored.Serialize()
		if err != nil {
			t.Fatal(err)
		}
		if string(again) != string(snap) {
			t.Error("restored state serializes differently")
		}
	})

	t.Run("mid game", func(t *testing.T) {
		gs := NewGameState()
		opening := []Move{
			{From: Position{3, 12}, To: Position{3, 10}},
			{From: Position{1, 3}, To: Position{2, 3}},
			{From: Position{3, 1}, To: Position{3, 2}},
		}
		for _, mv := range opening {
			if err := gs.MakeMove(mv); err != nil {
				t.Fatalf("apply %+v: %v", mv, err)
			}
		}

		snap, err := gs.Serialize()
		if err != nil {
			t.Fatal(err)
		}
		restored, err := RestoreGameState(snap)
		if err != nil {
			t.Fatal(err)
		}
		if restored.ToMove != PlayerColorGreen {
			t.Fatalf("restored active player = %s, want green", restored.ToMove)
		}
		if len(restored.MoveHistory) != 3 {
			t.Fatalf("restored history length = %d, want 3", len(restored.MoveHistory))
		}
		// Red's en-passant flag was cleared when blue moved; the reload must
		// not resurrect it.
		pawn := restored.Board.PieceAt(Position{3, 10})
		if pawn == nil {
			t.Fatal("restored board lost the double-stepped pawn")
		}
		if pawn.EnPassantable {
			t.Error("reload resurrected a cleared en-passant flag")
		}

		// Undo behaves identically on original and restored copies.
		for i := 0; i < len(opening); i++ {
			if err := gs.UndoLastMove(); err != nil {
				t.Fatal(err)
			}
			if err := restored.UndoLastMove(); err != nil {
				t.Fatal(err)
			}
			a, err := gs.Serialize()
			if err != nil {
				t.Fatal(err)
			}
			b, err := restored.Serialize()
			if err != nil {
				t.Fatal(err)
			}
			if string(a) != string(b) {
				t.Fatalf("after %d undos the copies diverge", i+1)
			}
		}
		if err := restored.UndoLastMove(); err != ErrNoHistory {
			t.Fatalf("undo past restored history returned %v, want ErrNoHistory", err)
		}
	})
}

func TestRestoreRejectsMalformedSnapshots(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"board":`},
		{"piece off board", `{"board":{"squares":[{"position":{"x":0,"y":0},"piece":{"type":"pawn","color":"red","position":{"x":0,"y":0},"hasMoved":false}}]},"toMove":"red","players":[{"color":"red","eliminated":false,"inCheck":false,"score":0},{"color":"blue","eliminated":false,"inCheck":false,"score":0},{"color":"yellow","eliminated":false,"inCheck":false,"score":0},{"color":"green","eliminated":false,"inCheck":false,"score":0}],"moveHistory":[],"outcome":{"finished":false}}`},
		{"missing seats", `{"board":{"squares":[]},"toMove":"red","players":[null,null,null,null],"moveHistory":[],"outcome":{"finished":false}}`},
		{"unknown active player", `{"board":{"squares":[]},"toMove":"purple","players":[{"color":"red","eliminated":false,"inCheck":false,"score":0},{"color":"blue","eliminated":false,"inCheck":false,"score":0},{"color":"yellow","eliminated":false,"inCheck":false,"score":0},{"color":"green","eliminated":false,"inCheck":false,"score":0}],"moveHistory":[],"outcome":{"finished":false}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RestoreGameState([]byte(tt.data)); err == nil {
				t.Fatal("malformed snapshot accepted")
			}
		})
	}
}
