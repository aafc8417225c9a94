package model

import (
	"testing"
)

// perft counts leaf nodes of the legal move tree, applying and undoing real
// moves so the walk also exercises MakeMove/UndoLastMove bookkeeping.
func perft(t *testing.T, gs *GameState, depth int) int {
	t.Helper()
	if depth == 0 {
		return 1
	}
	total := 0
	for _, mv := range gs.LegalMoves(gs.ToMove) {
		if depth == 1 {
			total++
			continue
		}
		if err := gs.MakeMove(mv); err != nil {
			t.Fatalf("apply %+v: %v", mv, err)
		}
		total += perft(t, gs, depth-1)
		if err := gs.UndoLastMove(); err != nil {
			t.Fatalf("undo %+v: %v", mv, err)
		}
	}
	return total
}

// Regression baselines from the standard starting position: red opens with
// 16 pawn moves and 4 knight moves; over the first two plies the only
// interaction is red's a-file pawn double-step landing on d11's path and
// blocking one blue double-step.
func TestPerftFromStart(t *testing.T) {
	gs := NewGameState()

	if got := perft(t, gs, 1); got != 20 {
		t.Errorf("perft(1) = %d, want 20", got)
	}
	if got := perft(t, gs, 2); got != 399 {
		t.Errorf("perft(2) = %d, want 399", got)
	}

	// The walk must leave the state untouched.
	after, err := gs.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	baseline, err := NewGameState().Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(baseline) {
		t.Error("perft walk mutated the game state")
	}
}

func TestLegalMovesNeverExposeOwnKing(t *testing.T) {
	gs := newBareState(PlayerColorRed,
		newPiece(King, PlayerColorRed, 7, 13),
		newPiece(Rook, PlayerColorRed, 7, 12),
		newPiece(Queen, PlayerColorYellow, 7, 6),
		newPiece(King, PlayerColorYellow, 6, 0),
		newPiece(King, PlayerColorBlue, 0, 6),
		newPiece(King, PlayerColorGreen, 13, 7),
	)

	for _, mv := range gs.LegalMoves(PlayerColorRed) {
		if err := gs.MakeMove(mv); err != nil {
			t.Fatalf("apply %+v: %v", mv, err)
		}
		if gs.isKingInCheck(PlayerColorRed) {
			t.Errorf("legal move %+v leaves red in check", mv)
		}
		if err := gs.UndoLastMove(); err != nil {
			t.Fatal(err)
		}
	}

	// The rook is pinned to the king by the yellow queen: it may only slide
	// along the pin file.
	for _, mv := range gs.LegalMovesFrom(Position{7, 12}) {
		if mv.To.X != 7 {
			t.Errorf("pinned rook offered off-file move to %v", mv.To)
		}
	}
	err := gs.MakeMove(Move{From: Position{7, 12}, To: Position{6, 12}})
	if err == nil {
		t.Fatal("pinned rook move accepted")
	}
	if got := err.Error(); got != "illegal move: leaves own king in check" {
		t.Errorf("unexpected rule: %v", got)
	}
}

func TestKingsCannotBeCaptured(t *testing.T) {
	gs := newBareState(PlayerColorRed,
		newPiece(Queen, PlayerColorRed, 3, 6),
		newPiece(King, PlayerColorRed, 7, 13),
		newPiece(King, PlayerColorBlue, 0, 6),
		newPiece(King, PlayerColorYellow, 6, 0),
		newPiece(King, PlayerColorGreen, 13, 7),
	)

	for _, mv := range gs.LegalMovesFrom(Position{3, 6}) {
		if mv.To == (Position{0, 6}) {
			t.Fatalf("generator offered king capture: %+v", mv)
		}
	}
	err := gs.MakeMove(Move{From: Position{3, 6}, To: Position{0, 6}})
	if err == nil {
		t.Fatal("king capture accepted")
	}
	if got := err.Error(); got != "illegal move: kings cannot be captured" {
		t.Errorf("unexpected rule: %v", got)
	}
}

func TestCastling(t *testing.T) {
	base := func() *GameState {
		gs := newBareState(PlayerColorRed,
			&Piece{Type: King, Color: PlayerColorRed, Position: Position{7, 13}},
			&Piece{Type: Rook, Color: PlayerColorRed, Position: Position{10, 13}},
			&Piece{Type: Rook, Color: PlayerColorRed, Position: Position{3, 13}},
			newPiece(King, PlayerColorBlue, 0, 6),
			newPiece(King, PlayerColorYellow, 6, 0),
			newPiece(King, PlayerColorGreen, 13, 7),
		)
		return gs
	}

	t.Run("both castles available", func(t *testing.T) {
		gs := base()
		var kingside, queenside *Move
		for _, mv := range gs.LegalMovesFrom(Position{7, 13}) {
			mv := mv
			switch mv.Special {
			case SpecialCastleKingside:
				kingside = &mv
			case SpecialCastleQueenside:
				queenside = &mv
			}
		}
		if kingside == nil || kingside.To != (Position{9, 13}) {
			t.Fatalf("kingside castle missing or wrong target: %+v", kingside)
		}
		if queenside == nil || queenside.To != (Position{5, 13}) {
			t.Fatalf("queenside castle missing or wrong target: %+v", queenside)
		}

		if err := gs.MakeMove(*kingside); err != nil {
			t.Fatal(err)
		}
		if pc := gs.Board.PieceAt(Position{9, 13}); pc == nil || pc.Type != King {
			t.Error("king not on castle target")
		}
		if pc := gs.Board.PieceAt(Position{8, 13}); pc == nil || pc.Type != Rook {
			t.Error("rook did not hop the king")
		}
		if gs.MoveHistory[0].Notation != "O-O" {
			t.Errorf("notation = %q, want O-O", gs.MoveHistory[0].Notation)
		}

		if err := gs.UndoLastMove(); err != nil {
			t.Fatal(err)
		}
		king := gs.Board.PieceAt(Position{7, 13})
		rook := gs.Board.PieceAt(Position{10, 13})
		if king == nil || king.HasMoved || rook == nil || rook.HasMoved {
			t.Error("castle undo did not restore king and rook")
		}
	})

	t.Run("attacked transit square", func(t *testing.T) {
		gs := base()
		gs.Board.mustSet(newPiece(Rook, PlayerColorYellow, 8, 3))
		for _, mv := range gs.LegalMovesFrom(Position{7, 13}) {
			if mv.Special == SpecialCastleKingside {
				t.Fatal("kingside castle generated across an attacked square")
			}
		}
	})

	t.Run("moved king", func(t *testing.T) {
		gs := base()
		gs.Board.PieceAt(Position{7, 13}).HasMoved = true
		for _, mv := range gs.LegalMovesFrom(Position{7, 13}) {
			if mv.Special == SpecialCastleKingside || mv.Special == SpecialCastleQueenside {
				t.Fatal("castle generated for a moved king")
			}
		}
	})
}

func TestPawnPromotion(t *testing.T) {
	gs := newBareState(PlayerColorRed,
		newPiece(Pawn, PlayerColorRed, 5, 1),
		newPiece(King, PlayerColorRed, 7, 13),
		newPiece(King, PlayerColorBlue, 0, 6),
		newPiece(King, PlayerColorYellow, 9, 1),
		newPiece(King, PlayerColorGreen, 13, 7),
	)

	moves := gs.LegalMovesFrom(Position{5, 1})
	promotions := make(map[PieceType]bool)
	for _, mv := range moves {
		if mv.To != (Position{5, 0}) || mv.Special != SpecialPromotion {
			t.Fatalf("unexpected move %+v", mv)
		}
		promotions[mv.Promotion] = true
	}
	if len(promotions) != 4 {
		t.Fatalf("got promotion choices %v, want queen/rook/bishop/knight", promotions)
	}

	err := gs.MakeMove(Move{From: Position{5, 1}, To: Position{5, 0}, Promotion: King})
	if err == nil {
		t.Fatal("promotion to king accepted")
	}
	if got := err.Error(); got != "illegal move: invalid promotion piece" {
		t.Errorf("unexpected rule: %v", got)
	}

	if err := gs.MakeMove(Move{From: Position{5, 1}, To: Position{5, 0}, Special: SpecialPromotion, Promotion: Queen}); err != nil {
		t.Fatal(err)
	}
	if pc := gs.Board.PieceAt(Position{5, 0}); pc == nil || pc.Type != Queen {
		t.Fatalf("promotion produced %+v", gs.Board.PieceAt(Position{5, 0}))
	}
	if gs.MoveHistory[0].Notation != "f14=Q" {
		t.Errorf("notation = %q, want f14=Q", gs.MoveHistory[0].Notation)
	}

	if err := gs.UndoLastMove(); err != nil {
		t.Fatal(err)
	}
	if pc := gs.Board.PieceAt(Position{5, 1}); pc == nil || pc.Type != Pawn {
		t.Fatal("undo did not revert the promotion")
	}
}
