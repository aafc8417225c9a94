package model

// BoardState is the sparse positional store: only occupied, on-board squares
// carry a key. King positions are cached per color so check detection does not
// rescan the map.
type BoardState struct {
	pieces map[Position]*Piece
	kings  map[PlayerColor]Position
}

func newEmptyBoard() *BoardState {
	return &BoardState{
		pieces: make(map[Position]*Piece),
		kings:  make(map[PlayerColor]Position),
	}
}

// newBoard builds the standard four-player starting layout: each player has
// eight pawns on the inner line of their edge and R N B Q K B N R on the
// outer line. Red and green keep the king on the 7-line, blue and yellow on
// the 6-line, so opposing kings face opposing queens.
func newBoard() *BoardState {
	b := newEmptyBoard()
	type edge struct {
		color PlayerColor
		back  func(i int) Position
		pawn  func(i int) Position
		// kingAt is the back-line index holding the king; the queen sits
		// on the other center index.
		kingAt int
	}
	edges := []edge{
		{PlayerColorRed, func(i int) Position { return Position{i, 13} }, func(i int) Position { return Position{i, 12} }, 7},
		{PlayerColorBlue, func(i int) Position { return Position{0, i} }, func(i int) Position { return Position{1, i} }, 6},
		{PlayerColorYellow, func(i int) Position { return Position{i, 0} }, func(i int) Position { return Position{i, 1} }, 6},
		{PlayerColorGreen, func(i int) Position { return Position{13, i} }, func(i int) Position { return Position{12, i} }, 7},
	}
	for _, e := range edges {
		for i := 3; i <= 10; i++ {
			var t PieceType
			switch {
			case i == 3 || i == 10:
				t = Rook
			case i == 4 || i == 9:
				t = Knight
			case i == 5 || i == 8:
				t = Bishop
			case i == e.kingAt:
				t = King
			default:
				t = Queen
			}
			b.mustSet(&Piece{Type: t, Color: e.color, Position: e.back(i)})
			b.mustSet(&Piece{Type: Pawn, Color: e.color, Position: e.pawn(i)})
		}
	}
	return b
}

// PieceAt returns the piece on the given square, or nil.
func (b *BoardState) PieceAt(p Position) *Piece {
	return b.pieces[p]
}

// SetPiece places a piece on (or, with nil, clears) the given square. Writing
// outside the cross is a contract violation and fails with ErrInvalidPosition.
func (b *BoardState) SetPiece(p Position, piece *Piece) error {
	if !onBoard(p) {
		return ErrInvalidPosition
	}
	if piece == nil {
		b.removePiece(p)
		return nil
	}
	piece.Position = p
	b.pieces[p] = piece
	if piece.Type == King {
		b.kings[piece.Color] = p
	}
	return nil
}

func (b *BoardState) mustSet(piece *Piece) {
	if err := b.SetPiece(piece.Position, piece); err != nil {
		panic(err)
	}
}

func (b *BoardState) removePiece(p Position) *Piece {
	piece := b.pieces[p]
	if piece == nil {
		return nil
	}
	delete(b.pieces, p)
	if piece.Type == King && b.kings[piece.Color] == p {
		delete(b.kings, piece.Color)
	}
	return piece
}

func (b *BoardState) kingPosition(color PlayerColor) (Position, bool) {
	p, ok := b.kings[color]
	return p, ok
}

// clone copies the board deeply enough that moves simulated on the copy never
// touch the canonical pieces.
func (b *BoardState) clone() *BoardState {
	c := &BoardState{
		pieces: make(map[Position]*Piece, len(b.pieces)),
		kings:  make(map[PlayerColor]Position, len(b.kings)),
	}
	for pos, piece := range b.pieces {
		copied := *piece
		c.pieces[pos] = &copied
	}
	for color, pos := range b.kings {
		c.kings[color] = pos
	}
	return c
}

// applyMove moves the piece and removes whatever the move captures, including
// the passed pawn of an en-passant capture and the rook hop of a castle. It
// returns the captured piece (still holding the square it stood on) and the
// rook movement, if any. En-passant flagging, scoring and history are the
// caller's concern.
func (b *BoardState) applyMove(mv Move) (*Piece, *CastleRookMove) {
	var captured *Piece
	if mv.Special == SpecialEnPassant {
		if victim := b.enPassantVictim(mv.To, b.pieces[mv.From].Color); victim != nil {
			captured = b.removePiece(victim.Position)
		}
	} else {
		captured = b.removePiece(mv.To)
	}

	piece := b.removePiece(mv.From)
	piece.HasMoved = true
	if mv.Special == SpecialPromotion {
		piece.Type = mv.Promotion
	}
	piece.Position = mv.To
	b.mustSet(piece)

	var rookMove *CastleRookMove
	if mv.Special == SpecialCastleKingside || mv.Special == SpecialCastleQueenside {
		rookMove = b.castleRookMove(mv)
		rook := b.removePiece(rookMove.From)
		rook.HasMoved = true
		rook.Position = rookMove.To
		b.mustSet(rook)
	}
	return captured, rookMove
}

// castleRookMove derives the rook hop from the king's two-square move: the
// rook is the first piece beyond the king's destination and lands on the
// square the king crossed.
func (b *BoardState) castleRookMove(mv Move) *CastleRookMove {
	dir := Direction{X: sign(mv.To.X - mv.From.X), Y: sign(mv.To.Y - mv.From.Y)}
	for cur := mv.To.add(dir); onBoard(cur); cur = cur.add(dir) {
		if b.pieces[cur] != nil {
			return &CastleRookMove{From: cur, To: Position{X: mv.To.X - dir.X, Y: mv.To.Y - dir.Y}}
		}
	}
	return nil
}

// enPassantVictim returns the flagged enemy pawn that a capture landing on the
// empty square target would remove: the pawn now standing one step past the
// target along its own forward direction.
func (b *BoardState) enPassantVictim(target Position, capturer PlayerColor) *Piece {
	for _, color := range turnOrder {
		if color == capturer {
			continue
		}
		piece := b.pieces[target.add(orientations[color].forward)]
		if piece != nil && piece.Type == Pawn && piece.Color == color && piece.EnPassantable {
			return piece
		}
	}
	return nil
}

func (b *BoardState) piecesOf(color PlayerColor) []*Piece {
	var out []*Piece
	for _, piece := range b.pieces {
		if piece.Color == color {
			out = append(out, piece)
		}
	}
	return out
}
