package model

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// getPieceScore is the material value credited to the capturing player.
func (p PieceType) getPieceScore() int {
	switch p {
	case Queen:
		return 9
	case Rook, Bishop:
		return 5
	case Knight:
		return 3
	case Pawn:
		return 1
	}
	return 0
}

type Piece struct {
	Type     PieceType   `json:"type"`
	Color    PlayerColor `json:"color"`
	Position Position    `json:"position"`
	HasMoved bool        `json:"hasMoved"`
	// EnPassantable marks a pawn that double-stepped on the previous ply.
	// The flag lives for exactly one ply.
	EnPassantable bool `json:"enPassantable,omitempty"`
}

type Square struct {
	Position Position `json:"position"`
	Piece    *Piece   `json:"piece"`
}
