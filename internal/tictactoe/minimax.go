package tictactoe

// BestMove - returns the optimal move for the player to move.
// The second result is false when the board is already terminal.
// Ties go to the earliest move in row-major order.
func BestMove(board Board) (Move, bool) {
	if IsTerminal(board) {
		return Move{}, false
	}

	maximizing := TurnOwner(board) == X

	var (
		best      Move
		bestScore int
		found     bool
	)

	for _, move := range LegalMoves(board) {
		score := value(place(board, move), !maximizing)
		if !found || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore, found = move, score, true
		}
	}

	return best, found
}

// Evaluate - returns the minimax value of board under optimal play by both sides.
func Evaluate(board Board) int {
	return value(board, TurnOwner(board) == X)
}

// value is max-value when maximizing and min-value otherwise; the two roles alternate.
func value(state Board, maximizing bool) int {
	if IsTerminal(state) {
		return Utility(state)
	}

	best := 2
	if maximizing {
		best = -2
	}

	for _, move := range LegalMoves(state) {
		score := value(place(state, move), !maximizing)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
