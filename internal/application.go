package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-cli/internal/events"
	"github.com/rocketscienceinc/tictactoe-cli/internal/loop"
	"github.com/rocketscienceinc/tictactoe-cli/internal/player"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/redis"
)

// RunApp - plays one game on screen and returns once the player exits or ctx is cancelled.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, screen tcell.Screen) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := events.NewBus()
	mainLoop := loop.New(logger)

	rnd := random.New()
	human := player.NewHuman(conf.Human.Token, conf.Human.Name)
	computer := player.NewComputer(conf.Computer.Token, conf.Computer.Name, player.NewRandomStrategy(rnd), mainLoop, player.ThinkTime{
		Delay:  conf.Computer.ThinkDelay,
		Jitter: conf.Computer.ThinkJitter,
		Random: rnd,
	})

	game, err := tictactoe.NewGame(logger, bus, conf.BoardSize, human, computer)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	if conf.Redis.Enabled {
		client, err := redis.Connect(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		publisher := redis.NewPublisher(logger, client, conf.Redis.Channel)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("could not close redis publisher", "error", err)
			}
		}()

		publisher.Attach(bus, game)
		log.Info("Mirroring game to redis", "channel", conf.Redis.Channel)
	}

	term, err := terminal.New(logger, screen)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	defer term.Close()

	bus.OnRedraw(func() {
		term.Draw(game.View())
	})
	bus.OnExit(mainLoop.Stop)

	go term.Listen(mainLoop, bus)
	mainLoop.Post(game.Run)

	err = mainLoop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("Game finished", "winner", game.Snapshot().Winner)

	return nil
}
