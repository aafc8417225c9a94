package model

var (
	rookDirs   = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []Direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// pseudoMoves returns the piece's pseudo-legal moves: pattern and occupancy
// only, no self-check filtering and no castling (castles are co-generated
// with attack information in the legal-move pass).
func pseudoMoves(b *BoardState, piece *Piece) []Move {
	switch piece.Type {
	case Pawn:
		return pseudoPawnMoves(b, piece)
	case Knight:
		return pseudoOffsetMoves(b, piece, knightDirs)
	case Bishop:
		return pseudoSlidingMoves(b, piece, bishopDirs)
	case Rook:
		return pseudoSlidingMoves(b, piece, rookDirs)
	case Queen:
		return pseudoSlidingMoves(b, piece, append(append([]Direction{}, rookDirs...), bishopDirs...))
	case King:
		return pseudoOffsetMoves(b, piece, kingDirs)
	}
	return nil
}

func pseudoSlidingMoves(b *BoardState, piece *Piece, dirs []Direction) []Move {
	var moves []Move
	for _, dir := range dirs {
		for target := piece.Position.add(dir); onBoard(target); target = target.add(dir) {
			occupant := b.PieceAt(target)
			if occupant == nil {
				moves = append(moves, Move{From: piece.Position, To: target})
				continue
			}
			if occupant.Color != piece.Color {
				moves = append(moves, Move{From: piece.Position, To: target})
			}
			break
		}
	}
	return moves
}

func pseudoOffsetMoves(b *BoardState, piece *Piece, offsets []Direction) []Move {
	var moves []Move
	for _, off := range offsets {
		target := piece.Position.add(off)
		if !onBoard(target) {
			continue
		}
		if occupant := b.PieceAt(target); occupant == nil || occupant.Color != piece.Color {
			moves = append(moves, Move{From: piece.Position, To: target})
		}
	}
	return moves
}

// pseudoPawnMoves orients the pawn by its owner: forward step, double step
// from the starting square, diagonal captures and en passant. Steps onto the
// owner's far edge are expanded into the four promotion choices.
func pseudoPawnMoves(b *BoardState, piece *Piece) []Move {
	var moves []Move
	o := orientations[piece.Color]

	forward := piece.Position.add(o.forward)
	if onBoard(forward) && b.PieceAt(forward) == nil {
		moves = append(moves, expandPromotions(piece, forward, SpecialNone)...)
		double := forward.add(o.forward)
		if !piece.HasMoved && onBoard(double) && b.PieceAt(double) == nil {
			moves = append(moves, Move{From: piece.Position, To: double})
		}
	}

	for _, diag := range []Direction{o.diagLeft, o.diagRight} {
		target := piece.Position.add(diag)
		if !onBoard(target) {
			continue
		}
		occupant := b.PieceAt(target)
		switch {
		case occupant != nil && occupant.Color != piece.Color:
			moves = append(moves, expandPromotions(piece, target, SpecialNone)...)
		case occupant == nil && b.enPassantVictim(target, piece.Color) != nil:
			moves = append(moves, Move{From: piece.Position, To: target, Special: SpecialEnPassant})
		}
	}
	return moves
}

// isFarEdge reports whether the square is the last cross square along the
// player's forward direction, i.e. the promotion edge for that orientation.
func isFarEdge(p Position, color PlayerColor) bool {
	return !onBoard(p.add(orientations[color].forward))
}

func expandPromotions(piece *Piece, target Position, special MoveSpecial) []Move {
	if !isFarEdge(target, piece.Color) {
		return []Move{{From: piece.Position, To: target, Special: special}}
	}
	moves := make([]Move, 0, 4)
	for _, t := range []PieceType{Queen, Rook, Bishop, Knight} {
		moves = append(moves, Move{From: piece.Position, To: target, Special: SpecialPromotion, Promotion: t})
	}
	return moves
}

// castleMoves generates the king's castle moves with either unmoved rook on
// its back line: every square between them empty, and none of the king's
// start, transit and end squares attacked by a surviving opponent. The nearer
// rook is the kingside one.
func (gs *GameState) castleMoves(king *Piece) []Move {
	if king.HasMoved {
		return nil
	}
	danger := gs.attackedByOpponents(king.Color)
	if danger[king.Position] {
		return nil
	}
	// The back line runs perpendicular to the player's forward direction.
	fwd := orientations[king.Color].forward
	lineDirs := []Direction{{fwd.Y, fwd.X}, {-fwd.Y, -fwd.X}}

	var moves []Move
	for _, dir := range lineDirs {
		between := 0
		for cur := king.Position.add(dir); onBoard(cur); cur = cur.add(dir) {
			occupant := gs.Board.PieceAt(cur)
			if occupant == nil {
				between++
				continue
			}
			if occupant.Type != Rook || occupant.Color != king.Color || occupant.HasMoved || between < 2 {
				break
			}
			transit := king.Position.add(dir)
			kingTo := transit.add(dir)
			if danger[transit] || danger[kingTo] {
				break
			}
			special := SpecialCastleQueenside
			if between == 2 {
				special = SpecialCastleKingside
			}
			moves = append(moves, Move{From: king.Position, To: kingTo, Special: special})
			break
		}
	}
	return moves
}
