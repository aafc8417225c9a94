package model

// attackedSquares returns every square the given player currently threatens:
// the union of its pieces' capture targets. Pawns contribute their two
// forward diagonals only, never the squares they move to. The walk uses piece
// patterns directly, so check detection and castle-transit tests never depend
// on the legal-move generator.
func attackedSquares(b *BoardState, attacker PlayerColor) map[Position]bool {
	attacked := make(map[Position]bool)
	for _, piece := range b.piecesOf(attacker) {
		switch piece.Type {
		case Pawn:
			o := orientations[attacker]
			for _, diag := range []Direction{o.diagLeft, o.diagRight} {
				if target := piece.Position.add(diag); onBoard(target) {
					attacked[target] = true
				}
			}
		case Knight:
			markOffsets(attacked, piece.Position, knightDirs)
		case King:
			markOffsets(attacked, piece.Position, kingDirs)
		case Bishop:
			markRays(attacked, b, piece.Position, bishopDirs)
		case Rook:
			markRays(attacked, b, piece.Position, rookDirs)
		case Queen:
			markRays(attacked, b, piece.Position, rookDirs)
			markRays(attacked, b, piece.Position, bishopDirs)
		}
	}
	return attacked
}

func markOffsets(attacked map[Position]bool, from Position, offsets []Direction) {
	for _, off := range offsets {
		if target := from.add(off); onBoard(target) {
			attacked[target] = true
		}
	}
}

func markRays(attacked map[Position]bool, b *BoardState, from Position, dirs []Direction) {
	for _, dir := range dirs {
		for target := from.add(dir); onBoard(target); target = target.add(dir) {
			attacked[target] = true
			if b.PieceAt(target) != nil {
				break
			}
		}
	}
}
