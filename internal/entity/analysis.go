package entity

import "github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"

// Analysis is a snapshot of every predicate over a board plus the engine's choice.
type Analysis struct {
	Board      []string         `json:"board"`
	Turn       tictactoe.Mark   `json:"turn"`
	Winner     tictactoe.Mark   `json:"winner"`
	Terminal   bool             `json:"terminal"`
	Utility    int              `json:"utility"`
	Value      int              `json:"value"`
	LegalMoves []tictactoe.Move `json:"legal_moves"`
	BestMove   *tictactoe.Move  `json:"best_move"`
}
