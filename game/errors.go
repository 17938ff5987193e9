package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIllegalMove matches every *IllegalMoveError with errors.Is.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError reports a placement that is off the board, on an occupied cell, or captures nothing.
type IllegalMoveError struct {
	Move   Move
	Player Player
	Reason string
}

func (err *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v for %v: %s", err.Move, err.Player, err.Reason)
}

func (err *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
