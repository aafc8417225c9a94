package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition reports a coordinate outside the cross-shaped board.
	// Callers are expected to pre-filter with onBoard, so hitting this is a
	// programming error rather than user input.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrIllegalMove reports a move that violates the rules. The wrapped
	// message names the violated rule.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoHistory reports an undo request on an empty move history.
	ErrNoHistory = errors.New("no move history")
	// ErrGameFinished reports a mutation attempted after the game ended.
	ErrGameFinished = errors.New("game already finished")
)

func illegalMove(rule string) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, rule)
}
