package model

import "fmt"

// GameState aggregates the board, the four seats in fixed turn order, the
// append-only move history and the outcome. It is the engine facade: all
// mutation goes through MakeMove and UndoLastMove, and a rejected operation
// leaves the state untouched. GameState itself is not synchronized; Game
// wraps it with a lock for concurrent callers.
type GameState struct {
	Board       *BoardState     `json:"board"`
	ToMove      PlayerColor     `json:"toMove"`
	Players     [4]*PlayerState `json:"players"`
	MoveHistory []Ply           `json:"moveHistory"`
	Outcome     Outcome         `json:"outcome"`
	LastMove    *Move           `json:"lastMove,omitempty"`
}

// Status is the per-ply summary exposed to observers.
type Status struct {
	ActivePlayer PlayerColor    `json:"activePlayer"`
	Players      [4]PlayerState `json:"players"`
	Outcome      Outcome        `json:"outcome"`
}

// NewGameState starts a fresh game from the standard four-player layout with
// red to move.
func NewGameState() *GameState {
	gs := &GameState{
		Board:       newBoard(),
		ToMove:      PlayerColorRed,
		MoveHistory: make([]Ply, 0),
	}
	for i, color := range turnOrder {
		gs.Players[i] = &PlayerState{Color: color}
	}
	return gs
}

func (gs *GameState) player(color PlayerColor) *PlayerState {
	return gs.Players[turnIndex(color)]
}

// LegalMoves returns the legal moves of the given player. Ordering is
// unspecified; the result never contains duplicates.
func (gs *GameState) LegalMoves(color PlayerColor) []Move {
	if gs.Outcome.Finished {
		return nil
	}
	return gs.legalMovesFor(color)
}

// LegalMovesFrom returns the legal moves originating from a square, for UI
// move hinting. An empty square and a square of an eliminated player both
// yield nothing.
func (gs *GameState) LegalMovesFrom(pos Position) []Move {
	if gs.Outcome.Finished || !onBoard(pos) {
		return nil
	}
	piece := gs.Board.PieceAt(pos)
	if piece == nil {
		return nil
	}
	return gs.legalMovesForPiece(piece)
}

// MakeMove validates the move against the active player's legal set and
// applies it: board mutation, history, capture scoring, en-passant flag
// maintenance, check evaluation for every player, elimination, turn advance
// and outcome resolution. Failures name the violated rule and leave the
// state untouched.
func (gs *GameState) MakeMove(mv Move) error {
	if gs.Outcome.Finished {
		return ErrGameFinished
	}
	if !onBoard(mv.From) || !onBoard(mv.To) {
		return illegalMove("square outside the board")
	}
	piece := gs.Board.PieceAt(mv.From)
	if piece == nil {
		return illegalMove("no piece on the source square")
	}
	if piece.Color != gs.ToMove {
		return illegalMove(fmt.Sprintf("it is %s's turn", gs.ToMove))
	}

	matched, ok := gs.matchLegalMove(piece, mv)
	if !ok {
		return gs.diagnoseIllegal(piece, mv)
	}

	ply := gs.executeMove(matched)
	gs.evaluatePlayers(&ply)
	gs.MoveHistory = append(gs.MoveHistory, ply)
	gs.LastMove = &gs.MoveHistory[len(gs.MoveHistory)-1].Move
	gs.advanceTurn()
	gs.resolveOutcome()
	return nil
}

// matchLegalMove finds the generated legal move matching the request. A
// promotion request without an explicit piece type defaults to a queen.
func (gs *GameState) matchLegalMove(piece *Piece, mv Move) (Move, bool) {
	for _, candidate := range gs.legalMovesForPiece(piece) {
		if candidate.From != mv.From || candidate.To != mv.To {
			continue
		}
		if candidate.Special == SpecialPromotion {
			want := mv.Promotion
			if want == "" {
				want = Queen
			}
			if candidate.Promotion != want {
				continue
			}
		}
		return candidate, true
	}
	return Move{}, false
}

// diagnoseIllegal names the rule an unmatched move violates.
func (gs *GameState) diagnoseIllegal(piece *Piece, mv Move) error {
	if target := gs.Board.PieceAt(mv.To); target != nil {
		if target.Color == piece.Color {
			return illegalMove("destination occupied by own piece")
		}
		if target.Type == King {
			return illegalMove("kings cannot be captured")
		}
	}
	for _, candidate := range pseudoMoves(gs.Board, piece) {
		if candidate.From != mv.From || candidate.To != mv.To {
			continue
		}
		if candidate.Special == SpecialPromotion {
			switch mv.Promotion {
			case "", Queen, Rook, Bishop, Knight:
			default:
				return illegalMove("invalid promotion piece")
			}
		}
		return illegalMove("leaves own king in check")
	}
	return illegalMove("not in this piece's movement pattern")
}

// executeMove mutates the board and returns the history entry for the move.
func (gs *GameState) executeMove(mv Move) Ply {
	ply := Ply{
		Color:    gs.ToMove,
		Move:     mv,
		Piece:    *gs.Board.PieceAt(mv.From),
		Notation: gs.getNotation(mv),
	}

	captured, rookMove := gs.Board.applyMove(mv)
	ply.RookMove = rookMove
	if captured != nil {
		snapshot := *captured
		ply.Captured = &snapshot
		gs.player(gs.ToMove).Score += captured.Type.getPieceScore()
	}

	moved := gs.Board.PieceAt(mv.To)
	fwd := orientations[moved.Color].forward
	if moved.Type == Pawn && mv.To == mv.From.add(fwd).add(fwd) {
		moved.EnPassantable = true
	}
	// En-passant eligibility lives for one ply: every flag but the one just
	// set is cleared, and the cleared squares are recorded for undo.
	for _, other := range gs.Board.pieces {
		if other.EnPassantable && other != moved {
			other.EnPassantable = false
			ply.FlagsCleared = append(ply.FlagsCleared, other.Position)
		}
	}
	return ply
}

// UndoLastMove reverses the most recent ply exactly: board occupancy, moved
// and captured piece flags, en-passant eligibility, scores, eliminations,
// active player and outcome.
func (gs *GameState) UndoLastMove() error {
	n := len(gs.MoveHistory)
	if n == 0 {
		return ErrNoHistory
	}
	ply := gs.MoveHistory[n-1]
	gs.MoveHistory = gs.MoveHistory[:n-1]

	b := gs.Board
	b.removePiece(ply.Move.To)
	restored := ply.Piece
	b.mustSet(&restored)
	if ply.RookMove != nil {
		rook := b.removePiece(ply.RookMove.To)
		rook.HasMoved = false
		rook.Position = ply.RookMove.From
		b.mustSet(rook)
	}
	if ply.Captured != nil {
		captured := *ply.Captured
		b.mustSet(&captured)
		gs.player(ply.Color).Score -= captured.Type.getPieceScore()
	}
	for _, pos := range ply.FlagsCleared {
		if pawn := b.PieceAt(pos); pawn != nil && pawn.Type == Pawn {
			pawn.EnPassantable = true
		}
	}
	for _, color := range ply.Eliminated {
		gs.player(color).Eliminated = false
	}

	gs.ToMove = ply.Color
	gs.Outcome = Outcome{}
	if n-1 > 0 {
		gs.LastMove = &gs.MoveHistory[n-2].Move
	} else {
		gs.LastMove = nil
	}
	for _, color := range turnOrder {
		if ps := gs.player(color); !ps.Eliminated {
			ps.InCheck = gs.isKingInCheck(color)
		}
	}
	return nil
}

// Status reports the active player, each seat's check/elimination/score
// state and the outcome.
func (gs *GameState) Status() Status {
	st := Status{ActivePlayer: gs.ToMove, Outcome: gs.Outcome}
	for i, ps := range gs.Players {
		st.Players[i] = *ps
	}
	return st
}

// getNotation renders the move in algebraic form before the board mutates:
// piece letter, capture marker and destination square, with castle and
// promotion conventions.
func (gs *GameState) getNotation(mv Move) string {
	switch mv.Special {
	case SpecialCastleKingside:
		return "O-O"
	case SpecialCastleQueenside:
		return "O-O-O"
	}
	piece := gs.Board.PieceAt(mv.From)
	prefix := piece.Type.getPieceNotation()
	capture := ""
	if gs.Board.PieceAt(mv.To) != nil || mv.Special == SpecialEnPassant {
		capture = "x"
	}
	pawnFile := ""
	if piece.Type == Pawn && capture == "x" {
		pawnFile = mv.From.getFileNotation()
	}
	suffix := mv.To.getSquareNotation()
	if mv.Special == SpecialPromotion {
		suffix += "=" + mv.Promotion.getPieceNotation()
	}
	return fmt.Sprintf("%s%s%s%s", prefix, pawnFile, capture, suffix)
}
