package model

// legalMovesFor produces the full legal move set for a player. Candidates
// come from the pseudo-legal generator (plus castles); each one is simulated
// on a scratch copy of the board and discarded if the mover's king would be
// attacked by any surviving opponent. Eliminated players generate nothing.
func (gs *GameState) legalMovesFor(color PlayerColor) []Move {
	if gs.player(color).Eliminated {
		return nil
	}
	var legal []Move
	for _, piece := range gs.Board.piecesOf(color) {
		legal = append(legal, gs.legalMovesForPiece(piece)...)
	}
	return legal
}

func (gs *GameState) legalMovesForPiece(piece *Piece) []Move {
	if gs.player(piece.Color).Eliminated {
		return nil
	}
	candidates := pseudoMoves(gs.Board, piece)
	if piece.Type == King {
		candidates = append(candidates, gs.castleMoves(piece)...)
	}
	legal := make([]Move, 0, len(candidates))
	for _, candidate := range candidates {
		// Kings are never captured directly; checkmate is the only path.
		if target := gs.Board.PieceAt(candidate.To); target != nil && target.Type == King {
			continue
		}
		if gs.leavesKingExposed(candidate, piece.Color) {
			continue
		}
		legal = append(legal, candidate)
	}
	return legal
}

// leavesKingExposed simulates the candidate on a board copy and reports
// whether the mover's king ends up attacked by any other surviving player.
// Safety against all remaining opponents at once is what distinguishes the
// four-player game from the two-player one.
func (gs *GameState) leavesKingExposed(candidate Move, mover PlayerColor) bool {
	scratch := gs.Board.clone()
	scratch.applyMove(candidate)
	kingPos, ok := scratch.kingPosition(mover)
	if !ok {
		return true
	}
	for _, color := range turnOrder {
		if color == mover || gs.player(color).Eliminated {
			continue
		}
		if attackedSquares(scratch, color)[kingPos] {
			return true
		}
	}
	return false
}

// attackedByOpponents unions the attack maps of every surviving player other
// than the given one, on the current board.
func (gs *GameState) attackedByOpponents(color PlayerColor) map[Position]bool {
	attacked := make(map[Position]bool)
	for _, other := range turnOrder {
		if other == color || gs.player(other).Eliminated {
			continue
		}
		for pos := range attackedSquares(gs.Board, other) {
			attacked[pos] = true
		}
	}
	return attacked
}
