package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type AnalysisService interface {
	BestMove(rows []string) (*tictactoe.Move, tictactoe.Mark, error)
	Analyze(rows []string) (*entity.Analysis, error)
}

type analysisService struct{}

func NewAnalysisService() AnalysisService {
	return &analysisService{}
}

// BestMove - returns the engine's move and the mark it is played for.
// The move is nil when the board is terminal.
func (that *analysisService) BestMove(rows []string) (*tictactoe.Move, tictactoe.Mark, error) {
	board, err := tictactoe.ParseBoard(rows)
	if err != nil {
		return nil, tictactoe.Empty, fmt.Errorf("failed to parse board: %w", err)
	}

	move, ok := tictactoe.BestMove(board)
	if !ok {
		return nil, tictactoe.Empty, nil
	}

	return &move, tictactoe.TurnOwner(board), nil
}

func (that *analysisService) Analyze(rows []string) (*entity.Analysis, error) {
	board, err := tictactoe.ParseBoard(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	analysis := &entity.Analysis{
		Board:      board.Rows(),
		Turn:       tictactoe.TurnOwner(board),
		Winner:     tictactoe.Winner(board),
		Terminal:   tictactoe.IsTerminal(board),
		Utility:    tictactoe.Utility(board),
		Value:      tictactoe.Evaluate(board),
		LegalMoves: tictactoe.LegalMoves(board),
	}

	if move, ok := tictactoe.BestMove(board); ok {
		analysis.BestMove = &move
	}

	if analysis.Terminal {
		analysis.Turn = tictactoe.Empty
	}

	return analysis, nil
}
