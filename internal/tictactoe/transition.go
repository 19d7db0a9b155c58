package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// ApplyMove - returns a copy of board with move marked for the player to move.
// The input board is never modified.
func ApplyMove(board Board, move Move) (Board, error) {
	if !move.Valid() {
		return board, fmt.Errorf("%w: %s is off the board", apperror.ErrIllegalMove, move)
	}

	if board[move.Row][move.Col] != Empty {
		return board, fmt.Errorf("%w: %s is already occupied", apperror.ErrIllegalMove, move)
	}

	return place(board, move), nil
}

// place marks move for the player to move without validation.
// Callers pass only moves taken from LegalMoves(board).
func place(board Board, move Move) Board {
	next := board
	next[move.Row][move.Col] = TurnOwner(board)

	return next
}
