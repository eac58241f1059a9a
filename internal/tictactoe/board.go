// Package tictactoe holds the 3x3 board model, the rules derived from it and a
// perfect-play minimax search. All functions are pure: boards are arrays and
// travel by value, so every transition yields a new board and callers never
// observe shared state.
package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size is the board dimension.
const Size = 3

// Mark is the content of a single cell.
type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Board is a row-major 3x3 grid.
type Board [Size][Size]Mark

// Action addresses a cell by zero-based row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Index returns the flat cell index, 0..8.
func (that Action) Index() int {
	return that.Row*Size + that.Col
}

// ActionFromIndex is the inverse of Action.Index.
func ActionFromIndex(cell int) Action {
	return Action{Row: cell / Size, Col: cell % Size}
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// Apply places the mover's mark on the targeted cell and returns the new board.
// The input board is left untouched.
func Apply(board Board, action Action) (Board, error) {
	if !action.InBounds() {
		return Board{}, fmt.Errorf("%w: %s is off the board", apperror.ErrIllegalMove, action)
	}

	if board[action.Row][action.Col] != Empty {
		return Board{}, fmt.Errorf("%w: cell %s is occupied", apperror.ErrIllegalMove, action)
	}

	return place(board, action, Mover(board)), nil
}

// place assumes the target cell is empty.
func place(board Board, action Action, mark Mark) Board {
	board[action.Row][action.Col] = mark
	return board
}

// Count returns how many cells hold mark.
func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that.Cells() {
		if cell == mark {
			n++
		}
	}
	return n
}

// Cells flattens the board in row-major order.
func (that Board) Cells() [Size * Size]Mark {
	var cells [Size * Size]Mark
	for r, row := range that {
		for c, cell := range row {
			cells[r*Size+c] = cell
		}
	}
	return cells
}

// String renders the board as three rows, using '.' for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	for r, row := range that {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
	}
	return sb.String()
}
