package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/localplay/tictactoe/internal/cli"
	"github.com/localplay/tictactoe/internal/config"
	"github.com/localplay/tictactoe/internal/session"
)

// RunApp - runs the application: builds the session from config, wires the
// coordinator to the terminal shell and blocks until the player quits or a
// shutdown signal arrives.
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

	ui := cli.New(os.Stdin, os.Stdout, conf.AppTitle, conf.AppVersion)

	initial := session.New(conf.Game.BoardSize, session.ModeHumans, conf.Game.BotMark)
	coordinator := session.NewCoordinator(logger, initial, conf.Game.GetBotMoveWait(), ui.Render)
	defer coordinator.Stop()

	log.Info("Starting game", "session", initial.ID, "board-size", conf.Game.BoardSize)

	if err := ui.Run(ctx, coordinator); err != nil {
		return fmt.Errorf("ui loop failed: %w", err)
	}

	log.Info("Game over, goodbye")

	return nil
}
