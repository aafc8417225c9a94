package model

import (
	"testing"
)

func TestOnBoardCrossShape(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"center", Position{7, 7}, true},
		{"red back rank", Position{3, 13}, true},
		{"blue back file", Position{0, 6}, true},
		{"top-left corner", Position{0, 0}, false},
		{"top-left corner edge", Position{2, 2}, false},
		{"just inside top-left", Position{3, 2}, true},
		{"just inside left arm", Position{2, 3}, true},
		{"bottom-right corner", Position{13, 13}, false},
		{"bottom-right corner inner", Position{11, 11}, false},
		{"right arm", Position{13, 10}, true},
		{"below board", Position{7, 14}, false},
		{"negative", Position{-1, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onBoard(tt.pos); got != tt.want {
				t.Fatalf("onBoard(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestSquaresBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want []Position
	}{
		{"horizontal", Position{3, 7}, Position{6, 7}, []Position{{4, 7}, {5, 7}}},
		{"vertical reversed", Position{7, 9}, Position{7, 6}, []Position{{7, 8}, {7, 7}}},
		{"diagonal", Position{4, 4}, Position{7, 7}, []Position{{5, 5}, {6, 6}}},
		{"adjacent", Position{4, 4}, Position{5, 4}, nil},
		{"not aligned", Position{3, 3}, Position{5, 4}, nil},
		{"same square", Position{6, 6}, Position{6, 6}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaresBetween(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("SquaresBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("SquaresBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
				}
			}
		})
	}
}

func TestStartingLayout(t *testing.T) {
	b := newBoard()

	counts := make(map[PlayerColor]int)
	kings := make(map[PlayerColor]int)
	for pos, piece := range b.pieces {
		if !onBoard(pos) {
			t.Fatalf("piece %s %s on off-board square %v", piece.Color, piece.Type, pos)
		}
		if piece.Position != pos {
			t.Fatalf("piece at %v records position %v", pos, piece.Position)
		}
		counts[piece.Color]++
		if piece.Type == King {
			kings[piece.Color]++
		}
	}
	for _, color := range turnOrder {
		if counts[color] != 16 {
			t.Errorf("%s has %d pieces, want 16", color, counts[color])
		}
		if kings[color] != 1 {
			t.Errorf("%s has %d kings, want 1", color, kings[color])
		}
	}

	// The asymmetric royals: red and green kings on the 7-line, blue and
	// yellow on the 6-line.
	royals := []struct {
		color PlayerColor
		king  Position
		queen Position
	}{
		{PlayerColorRed, Position{7, 13}, Position{6, 13}},
		{PlayerColorBlue, Position{0, 6}, Position{0, 7}},
		{PlayerColorYellow, Position{6, 0}, Position{7, 0}},
		{PlayerColorGreen, Position{13, 7}, Position{13, 6}},
	}
	for _, r := range royals {
		if piece := b.PieceAt(r.king); piece == nil || piece.Type != King || piece.Color != r.color {
			t.Errorf("expected %s king on %v, got %+v", r.color, r.king, piece)
		}
		if piece := b.PieceAt(r.queen); piece == nil || piece.Type != Queen || piece.Color != r.color {
			t.Errorf("expected %s queen on %v, got %+v", r.color, r.queen, piece)
		}
		if cached, ok := b.kingPosition(r.color); !ok || cached != r.king {
			t.Errorf("king cache for %s = %v, want %v", r.color, cached, r.king)
		}
	}
}

func TestSetPieceOffBoard(t *testing.T) {
	b := newEmptyBoard()
	err := b.SetPiece(Position{0, 0}, &Piece{Type: Pawn, Color: PlayerColorRed})
	if err != ErrInvalidPosition {
		t.Fatalf("SetPiece off board returned %v, want ErrInvalidPosition", err)
	}
	if len(b.pieces) != 0 {
		t.Fatalf("rejected write mutated the board")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := newBoard()
	c := b.clone()

	c.applyMove(Move{From: Position{3, 12}, To: Position{3, 10}})
	if b.PieceAt(Position{3, 12}) == nil {
		t.Fatal("move on clone mutated the original board")
	}
	if c.PieceAt(Position{3, 12}) != nil {
		t.Fatal("move not applied on clone")
	}
	if b.PieceAt(Position{3, 12}).HasMoved {
		t.Fatal("clone shares piece structs with the original")
	}
}
