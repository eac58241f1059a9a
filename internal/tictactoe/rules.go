package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// GameOutcome is derived from a board, never stored.
type GameOutcome int

const (
	InProgress GameOutcome = iota
	XWins
	OWins
	Draw
)

func (that GameOutcome) String() string {
	switch that {
	case XWins:
		return "x-wins"
	case OWins:
		return "o-wins"
	case Draw:
		return "draw"
	default:
		return "in-progress"
	}
}

// WinLines lists rows, then columns, then both diagonals.
var WinLines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Mover derives whose turn it is from the mark counts. X moves on equal counts.
// This relies on X always moving first and the counts never drifting apart by
// more than one; see Validate for boards from untrusted sources.
func Mover(board Board) Mark {
	if board.Count(MarkX) > board.Count(MarkO) {
		return MarkO
	}
	return MarkX
}

// LegalActions returns the empty cells in row-major order.
func LegalActions(board Board) []Action {
	actions := make([]Action, 0, Size*Size)
	for r, row := range board {
		for c, cell := range row {
			if cell == Empty {
				actions = append(actions, Action{Row: r, Col: c})
			}
		}
	}
	return actions
}

// Winner returns the mark owning a complete line, or Empty.
func Winner(board Board) Mark {
	for _, line := range WinLines {
		if mark := lineOwner(board, line); mark != Empty {
			return mark
		}
	}
	return Empty
}

func lineOwner(board Board, line [3]Action) Mark {
	a := board[line[0].Row][line[0].Col]
	b := board[line[1].Row][line[1].Col]
	c := board[line[2].Row][line[2].Col]
	if a != Empty && a == b && b == c {
		return a
	}
	return Empty
}

// IsTerminal reports whether the game has stopped: a line is complete or no
// empty cell remains.
func IsTerminal(board Board) bool {
	if Winner(board) != Empty {
		return true
	}
	return board.Count(Empty) == 0
}

// Utility scores a terminal board from X's point of view: +1, -1 or 0.
// Only meaningful when IsTerminal is true.
func Utility(board Board) int {
	switch Winner(board) {
	case MarkX:
		return maxUtility
	case MarkO:
		return minUtility
	default:
		return 0
	}
}

func Outcome(board Board) GameOutcome {
	switch Winner(board) {
	case MarkX:
		return XWins
	case MarkO:
		return OWins
	}
	if IsTerminal(board) {
		return Draw
	}
	return InProgress
}

// Validate rejects boards that cannot arise from play starting at InitialState.
func Validate(board Board) error {
	for r, row := range board {
		for c, cell := range row {
			switch cell {
			case Empty, MarkX, MarkO:
			default:
				return fmt.Errorf("%w: unknown mark %q at (%d,%d)", apperror.ErrMalformedBoard, cell, r, c)
			}
		}
	}

	x, o := board.Count(MarkX), board.Count(MarkO)
	if diff := x - o; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrMalformedBoard, x, o)
	}

	xLine, oLine := false, false
	for _, line := range WinLines {
		switch lineOwner(board, line) {
		case MarkX:
			xLine = true
		case MarkO:
			oLine = true
		}
	}

	switch {
	case xLine && oLine:
		return fmt.Errorf("%w: both players own a line", apperror.ErrMalformedBoard)
	case xLine && x != o+1:
		return fmt.Errorf("%w: O moved after X had won", apperror.ErrMalformedBoard)
	case oLine && x != o:
		return fmt.Errorf("%w: X moved after O had won", apperror.ErrMalformedBoard)
	}

	return nil
}
