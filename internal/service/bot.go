package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) (tictactoe.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - plays the minimax move for whoever owns the turn.
func (that *botService) MakeTurn(game *entity.Game) (tictactoe.Move, error) {
	move, ok := tictactoe.BestMove(game.Board)
	if !ok {
		return tictactoe.Move{}, ErrNoAvailableMoves
	}

	if err := game.MakeTurn(game.Turn, move); err != nil {
		return tictactoe.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "game_id", game.ID, "move", move.String(), "status", game.Status)

	return move, nil
}
