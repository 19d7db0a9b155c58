package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
)

var ErrUnknownMode = errors.New("unknown mode")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	switch conf.Mode {
	case config.ModeHTTP:
		return runHTTP(ctx, logger, conf)
	case config.ModeConsole:
		return runConsole(ctx, logger, conf)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}
}

func runHTTP(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	handlers := rest.NewHandlers(logger, service.NewAnalysisService())

	logger.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, logger, conf.HTTPPort, rest.NewRouter(handlers)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	human := tictactoe.Mark(conf.Console.HumanMark)
	if conf.Console.HumanMark == config.HumanNone {
		human = tictactoe.Empty
	}

	c := console.New(logger, service.NewBotService(logger), human, os.Stdin, os.Stdout)
	if _, err := c.Play(ctx); err != nil {
		return fmt.Errorf("console game failed: %w", err)
	}

	return nil
}
