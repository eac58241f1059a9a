package tictactoe

import "testing"

// parseBoard builds a board from three rows written with 'X', 'O' and '.'.
func parseBoard(t *testing.T, rows ...string) Board {
	t.Helper()

	if len(rows) != Size {
		t.Fatalf("expected %d rows, got %d", Size, len(rows))
	}

	var board Board
	for r, row := range rows {
		if len(row) != Size {
			t.Fatalf("row %d: expected %d cells, got %q", r, Size, row)
		}
		for c, ch := range row {
			switch ch {
			case 'X':
				board[r][c] = MarkX
			case 'O':
				board[r][c] = MarkO
			case '.':
				board[r][c] = Empty
			default:
				t.Fatalf("row %d: unexpected cell %q", r, ch)
			}
		}
	}

	return board
}

// reachable walks every board reachable from the empty one, including terminal boards.
func reachable(visit func(board Board)) {
	seen := make(map[Board]struct{})

	var walk func(board Board)
	walk = func(board Board) {
		if _, ok := seen[board]; ok {
			return
		}
		seen[board] = struct{}{}

		visit(board)

		if IsTerminal(board) {
			return
		}
		for _, action := range LegalActions(board) {
			walk(place(board, action, Mover(board)))
		}
	}

	walk(InitialState())
}
