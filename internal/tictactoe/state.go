package tictactoe

// Lines are scanned in this order: rows, columns, main diagonal, anti-diagonal.
var Lines = [][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// TurnOwner - returns the mark of the player who moves next. X moves on ties.
func TurnOwner(board Board) Mark {
	if board.count(X) > board.count(O) {
		return O
	}

	return X
}

// LegalMoves - returns the empty cells in row-major order.
func LegalMoves(board Board) []Move {
	moves := make([]Move, 0, Size*Size)

	for i, row := range board {
		for j, cell := range row {
			if cell == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}

	return moves
}

// Winner - returns the mark holding the first complete line, or Empty.
func Winner(board Board) Mark {
	for _, line := range Lines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]

		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// IsTerminal - reports whether someone has won or the board is full.
func IsTerminal(board Board) bool {
	return Winner(board) != Empty || board.count(Empty) == 0
}

// Utility - scores the board from X's side: 1 if X won, -1 if O won, otherwise 0.
func Utility(board Board) int {
	switch Winner(board) {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// Opponent - returns the other player's mark.
func Opponent(mark Mark) Mark {
	if mark == X {
		return O
	}

	return X
}
