// Package redis mirrors game progress to a Redis pub/sub channel for spectators.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/events"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
)

const (
	DefaultChannel = "tictactoe:events"
	publishTimeout = 500 * time.Millisecond
)

// Message is published as JSON on every turn change and on exit.
type Message struct {
	Kind events.Kind         `json:"kind"`
	Game entity.GameSnapshot `json:"game"`
}

// SnapshotSource is anything that can describe the current game.
type SnapshotSource interface {
	Snapshot() entity.GameSnapshot
}

type Publisher struct {
	logger    *slog.Logger
	client    *redis.Client
	channel   string
	snapshots repository.SnapshotRepository
}

// Connect - opens a client and checks the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}

	return &Publisher{
		logger:    logger.With("component", "redis-publisher"),
		client:    client,
		channel:   channel,
		snapshots: repository.NewSnapshotRepository(client, channel),
	}
}

// Publish - stores snapshot as the latest state for late spectators, then sends one message to the channel.
func (that *Publisher) Publish(ctx context.Context, kind events.Kind, snapshot entity.GameSnapshot) error {
	if err := that.snapshots.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to store latest snapshot: %w", err)
	}

	payload, err := json.Marshal(Message{Kind: kind, Game: snapshot})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", that.channel, err)
	}

	return nil
}

// Attach - publishes a snapshot of source whenever a turn begins or ends and on exit.
// Failures are logged and never reach the game.
func (that *Publisher) Attach(bus *events.Bus, source SnapshotSource) {
	bus.OnTurnBegan(func(string) {
		that.mirror(events.KindTurnBegan, source)
	})
	bus.OnTurnEnded(func() {
		that.mirror(events.KindTurnEnded, source)
	})
	bus.OnExit(func() {
		that.mirror(events.KindExit, source)
	})
}

func (that *Publisher) mirror(kind events.Kind, source SnapshotSource) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := that.Publish(ctx, kind, source.Snapshot()); err != nil {
		that.logger.Warn("mirror failed", "kind", kind, "error", err)
	}
}

func (that *Publisher) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
