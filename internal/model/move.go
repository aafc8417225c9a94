package model

// MoveSpecial tags the handful of moves that do more than relocate one piece.
type MoveSpecial string

const (
	SpecialNone            MoveSpecial = ""
	SpecialEnPassant       MoveSpecial = "enPassant"
	SpecialCastleKingside  MoveSpecial = "castleKingside"
	SpecialCastleQueenside MoveSpecial = "castleQueenside"
	SpecialPromotion       MoveSpecial = "promotion"
)

// Move is an immutable move record as produced by the generator and accepted
// by MakeMove. Promotion is set only when Special is SpecialPromotion.
type Move struct {
	From      Position    `json:"from"`
	To        Position    `json:"to"`
	Special   MoveSpecial `json:"special,omitempty"`
	Promotion PieceType   `json:"promotion,omitempty"`
}

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Ply is one history entry. It snapshots everything needed to reverse the
// move exactly: the mover as it stood before moving, the captured piece on
// the square it stood on, the rook hop of a castle, the en-passant flags the
// ply cleared and the eliminations it caused.
type Ply struct {
	Color        PlayerColor     `json:"color"`
	Move         Move            `json:"move"`
	Piece        Piece           `json:"piece"`
	Captured     *Piece          `json:"captured,omitempty"`
	RookMove     *CastleRookMove `json:"rookMove,omitempty"`
	FlagsCleared []Position      `json:"flagsCleared,omitempty"`
	Eliminated   []PlayerColor   `json:"eliminated,omitempty"`
	Notation     string          `json:"notation"`
}

// WSMove is the move payload as sent by clients. Promotion may be empty, in
// which case a promoting pawn becomes a queen.
type WSMove struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion"`
}

// Outcome is the terminal state of a game. The zero value means the game is
// still in progress.
type Outcome struct {
	Finished bool        `json:"finished"`
	Winner   PlayerColor `json:"winner,omitempty"`
	Draw     bool        `json:"draw,omitempty"`
}
