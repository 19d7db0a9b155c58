package apperror

import "errors"

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrInvalidConfig = errors.New("invalid config")
)
