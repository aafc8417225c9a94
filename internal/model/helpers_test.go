package model

// newPiece builds a piece for hand-set positions. HasMoved is set so pawns
// do not gain double-steps and kings do not gain castles by accident; tests
// that need fresh pieces construct them literally.
func newPiece(t PieceType, c PlayerColor, x, y int) *Piece {
	return &Piece{Type: t, Color: c, Position: Position{x, y}, HasMoved: true}
}

// newBareState builds a game around a hand-set board. Check flags are
// recomputed so the state is coherent for the first MakeMove.
func newBareState(toMove PlayerColor, pieces ...*Piece) *GameState {
	gs := &GameState{
		Board:       newEmptyBoard(),
		ToMove:      toMove,
		MoveHistory: make([]Ply, 0),
	}
	for i, color := range turnOrder {
		gs.Players[i] = &PlayerState{Color: color}
	}
	for _, pc := range pieces {
		gs.Board.mustSet(pc)
	}
	for _, color := range turnOrder {
		gs.player(color).InCheck = gs.isKingInCheck(color)
	}
	return gs
}
