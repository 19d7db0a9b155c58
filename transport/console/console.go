package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrInputClosed = errors.New("input closed before the game finished")

type botService interface {
	MakeTurn(game *entity.Game) (tictactoe.Move, error)
}

type Console struct {
	logger     *slog.Logger
	botService botService
	human      tictactoe.Mark
	in         *bufio.Scanner
	out        io.Writer
}

// New - human is the mark typed in by the user, or tictactoe.Empty for bot-vs-bot.
func New(logger *slog.Logger, botService botService, human tictactoe.Mark, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:     logger.With("component", "console"),
		botService: botService,
		human:      human,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Play - runs one game to completion and returns it.
func (that *Console) Play(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame()
	log := that.logger.With("game_id", game.ID)
	log.Info("game started", "human", string(that.human))

	var lines <-chan string
	if that.human != tictactoe.Empty {
		lines = that.readLines(ctx)
	}

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		that.printBoard(game.Board)

		if game.Turn == that.human {
			if err := that.humanTurn(ctx, game, lines); err != nil {
				return game, err
			}
			continue
		}

		move, err := that.botService.MakeTurn(game)
		if err != nil {
			return game, fmt.Errorf("failed to make bot turn: %w", err)
		}

		that.printf("Bot plays %d %d\n", move.Row, move.Col)
	}

	that.printBoard(game.Board)
	that.printResult(game)
	log.Info("game finished", "winner", game.Winner, "moves", len(game.Moves))

	return game, nil
}

func (that *Console) humanTurn(ctx context.Context, game *entity.Game, lines <-chan string) error {
	for {
		that.printf("%s to move (row col): ", game.Turn)

		var line string
		select {
		case <-ctx.Done():
			return fmt.Errorf("game interrupted: %w", ctx.Err())
		case text, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("game interrupted: %w", err)
				}
				if err := that.in.Err(); err != nil {
					return fmt.Errorf("failed to read move: %w", err)
				}
				return ErrInputClosed
			}
			line = strings.TrimSpace(text)
		}

		if line == "" {
			continue
		}

		move, err := tictactoe.ParseMove(line)
		if err == nil {
			err = game.MakeTurn(game.Turn, move)
		}

		if err != nil {
			that.printf("Invalid move: %v\n", err)
			continue
		}

		return nil
	}
}

// readLines feeds input lines to the returned channel, which is closed at EOF or read error.
// A Scan blocked on input outlives ctx; its line is then dropped.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- that.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

func (that *Console) printBoard(board tictactoe.Board) {
	that.printf("\n%s\n\n", board)
}

func (that *Console) printResult(game *entity.Game) {
	switch game.Winner {
	case entity.PlayerTie:
		that.printf("Game over: tie\n")
	default:
		that.printf("Game over: %s wins\n", game.Winner)
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
