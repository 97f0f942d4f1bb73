package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("position is out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameExited       = errors.New("game was exited")
	ErrStaleTurn        = errors.New("move belongs to a finished turn")
	ErrNotHumanTurn     = errors.New("it's not the human player's turn")
	ErrNoAvailableMoves = errors.New("no available moves")
)

var (
	ErrInvalidPlayers   = errors.New("a game needs one human and one computer player with distinct tokens")
	ErrInvalidBoardSize = errors.New("board size must be at least 3")
)
