package apperror

import "errors"

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrMalformedBoard = errors.New("malformed board")

	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMark  = errors.New("invalid player mark")
)
