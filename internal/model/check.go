package model

// isKingInCheck reports whether the player's king stands on a square attacked
// by any surviving opponent.
func (gs *GameState) isKingInCheck(color PlayerColor) bool {
	kingPos, ok := gs.Board.kingPosition(color)
	if !ok {
		return false
	}
	for _, other := range turnOrder {
		if other == color || gs.player(other).Eliminated {
			continue
		}
		if attackedSquares(gs.Board, other)[kingPos] {
			return true
		}
	}
	return false
}

func (gs *GameState) isCheckmated(color PlayerColor) bool {
	return gs.isKingInCheck(color) && len(gs.legalMovesFor(color)) == 0
}

func (gs *GameState) isStalemated(color PlayerColor) bool {
	return !gs.isKingInCheck(color) && len(gs.legalMovesFor(color)) == 0
}

// evaluatePlayers settles check and elimination state after a ply, recording
// the eliminations on the ply so undo can revive them. Check and checkmate
// are judged against the attacks of surviving players only, so one
// elimination can relieve a mate found earlier in the same pass; the pass
// runs in turn order starting after the mover and repeats until the
// elimination set stops changing, re-testing players it eliminated this ply.
// Check flags are then recomputed against the final survivor set. A
// checkmated player's pieces stay on the board as capturable obstacles.
func (gs *GameState) evaluatePlayers(ply *Ply) {
	start := turnIndex(ply.Color)
	for pass := 0; pass < len(turnOrder); pass++ {
		changed := false
		for i := 1; i < len(turnOrder); i++ {
			color := turnOrder[(start+i)%len(turnOrder)]
			ps := gs.player(color)
			if ps.Eliminated && !containsColor(ply.Eliminated, color) {
				continue
			}
			ps.Eliminated = false
			mated := gs.isCheckmated(color)
			ps.Eliminated = mated
			if mated == containsColor(ply.Eliminated, color) {
				continue
			}
			if mated {
				ps.InCheck = true
				ply.Eliminated = append(ply.Eliminated, color)
			} else {
				ply.Eliminated = removeColor(ply.Eliminated, color)
			}
			changed = true
		}
		if !changed {
			break
		}
	}
	for _, color := range turnOrder {
		if ps := gs.player(color); !ps.Eliminated {
			ps.InCheck = gs.isKingInCheck(color)
		}
	}
}

func containsColor(colors []PlayerColor, c PlayerColor) bool {
	for _, v := range colors {
		if v == c {
			return true
		}
	}
	return false
}

func removeColor(colors []PlayerColor, c PlayerColor) []PlayerColor {
	out := colors[:0]
	for _, v := range colors {
		if v != c {
			out = append(out, v)
		}
	}
	return out
}

// advanceTurn hands the move to the next surviving player in cyclic order.
func (gs *GameState) advanceTurn() {
	start := turnIndex(gs.ToMove)
	for i := 1; i <= len(turnOrder); i++ {
		next := turnOrder[(start+i)%len(turnOrder)]
		if !gs.player(next).Eliminated {
			gs.ToMove = next
			return
		}
	}
}

// resolveOutcome finishes the game once at most one player survives, or with
// a draw when the player to move has no legal moves without being in check.
func (gs *GameState) resolveOutcome() {
	survivors := gs.survivors()
	if len(survivors) <= 1 {
		gs.Outcome = Outcome{Finished: true}
		if len(survivors) == 1 {
			gs.Outcome.Winner = survivors[0]
		}
		return
	}
	if gs.isStalemated(gs.ToMove) {
		gs.Outcome = Outcome{Finished: true, Draw: true}
	}
}

func (gs *GameState) survivors() []PlayerColor {
	var alive []PlayerColor
	for _, color := range turnOrder {
		if !gs.player(color).Eliminated {
			alive = append(alive, color)
		}
	}
	return alive
}

func turnIndex(color PlayerColor) int {
	for i, c := range turnOrder {
		if c == color {
			return i
		}
	}
	return 0
}
