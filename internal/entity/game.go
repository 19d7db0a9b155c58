package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

type Game struct {
	ID     string          `json:"id"`
	Board  tictactoe.Board `json:"board"`
	Winner string          `json:"winner"`
	Status string          `json:"status"`
	Turn   tictactoe.Mark  `json:"player_turn"`
	Moves  []Turn          `json:"moves,omitempty"`
}

type Turn struct {
	Mark tictactoe.Mark `json:"mark"`
	Move tictactoe.Move `json:"move"`
}

func NewGame() *Game {
	return &Game{
		ID:     uuid.NewString(),
		Board:  tictactoe.InitialState(),
		Turn:   tictactoe.X,
		Status: StatusOngoing,
	}
}

func (that *Game) UpdateGameState() {
	switch winner := tictactoe.Winner(that.Board); {
	// one player wins
	case winner != tictactoe.Empty:
		that.Winner = string(winner)
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// tie
	case tictactoe.IsTerminal(that.Board):
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// game continue
	default:
		that.Status = StatusOngoing
		that.Turn = tictactoe.TurnOwner(that.Board)
	}
}

func (that *Game) MakeTurn(mark tictactoe.Mark, move tictactoe.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.ApplyMove(that.Board, move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.Moves = append(that.Moves, Turn{Mark: mark, Move: move})
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
