package tictactoe

const (
	minUtility = -1
	maxUtility = 1
)

// Result is the outcome of a full search from one position.
type Result struct {
	Action Action
	// Found is false when the searched board was already terminal.
	Found bool
	// Value is the game-theoretic utility of the position under perfect play.
	Value int
}

// BestAction returns the optimal move for Mover(board), or false when the
// board is terminal.
func BestAction(board Board) (Action, bool) {
	result := Search(board)
	return result.Action, result.Found
}

// Search runs minimax over the whole remaining game tree. Depth is bounded by
// the nine cells, so the recursion needs no explicit stack or time budget.
func Search(board Board) Result {
	if IsTerminal(board) {
		return Result{Value: Utility(board)}
	}

	value, action := minimax(board, minUtility, maxUtility)

	return Result{Action: action, Found: true, Value: value}
}

// minimax carries two bounds: bestForMax is what X can already force at an
// ancestor, bestForMin is what O can already force. A child reaching the
// opponent's bound cuts the node off, ties included. Among non-cutting moves
// the first strictly improving one is kept, so iteration order decides
// between equal moves.
func minimax(board Board, bestForMax, bestForMin int) (int, Action) {
	if IsTerminal(board) {
		return Utility(board), Action{}
	}

	mover := Mover(board)
	maximizing := mover == MarkX

	value := maxUtility
	if maximizing {
		value = minUtility
	}

	var best Action
	found := false

	for _, action := range LegalActions(board) {
		childValue, _ := minimax(place(board, action, mover), bestForMax, bestForMin)

		if maximizing {
			if childValue >= bestForMin {
				return childValue, action
			}

			bestForMax = max(bestForMax, childValue)

			if !found || childValue > value {
				value, best, found = childValue, action, true
			}

			continue
		}

		if childValue <= bestForMax {
			return childValue, action
		}

		bestForMin = min(bestForMin, childValue)

		if !found || childValue < value {
			value, best, found = childValue, action, true
		}
	}

	return value, best
}
