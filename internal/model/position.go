package model

import "fmt"

// Position is a square on the 14x14 board, X being the file (left to right)
// and Y the rank (top to bottom). Positions are value types; equality and map
// keys work on the coordinate pair.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a coordinate offset applied to a Position.
type Direction struct {
	X int
	Y int
}

func (p Position) add(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// onBoard reports whether the position lies on the cross-shaped board: the
// 14x14 grid minus the four 3x3 corner regions.
func onBoard(p Position) bool {
	if p.X < 0 || p.X > 13 || p.Y < 0 || p.Y > 13 {
		return false
	}
	middleX := p.X >= 3 && p.X <= 10
	middleY := p.Y >= 3 && p.Y <= 10
	return middleX || middleY
}

// SquaresBetween returns the squares strictly between a and b, ordered from a
// towards b. It returns nil when the squares do not share a rank, file or
// diagonal.
func SquaresBetween(a, b Position) []Position {
	dx := sign(b.X - a.X)
	dy := sign(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return nil
	}
	straight := a.X == b.X || a.Y == b.Y
	diagonal := abs(b.X-a.X) == abs(b.Y-a.Y)
	if !straight && !diagonal {
		return nil
	}
	var between []Position
	step := Direction{X: dx, Y: dy}
	for cur := a.add(step); cur != b; cur = cur.add(step) {
		between = append(between, cur)
	}
	return between
}

func (p Position) getSquareNotation() string {
	return fmt.Sprintf("%c%d", p.X+97, 14-p.Y)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.X+97)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
