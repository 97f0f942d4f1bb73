package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	latestSuffix = ":latest"
	SnapshotTTL  = time.Hour
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository keeps the most recent snapshot of the game, overwritten on every save.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot entity.GameSnapshot) error
	Latest(ctx context.Context) (entity.GameSnapshot, error)
	Delete(ctx context.Context) error
}

type dbSnapshot struct {
	client *redis.Client
	key    string
}

// NewSnapshotRepository - stores under "<channel>:latest" next to the pub/sub channel.
func NewSnapshotRepository(client *redis.Client, channel string) SnapshotRepository {
	return &dbSnapshot{
		client: client,
		key:    channel + latestSuffix,
	}
}

func (that *dbSnapshot) Save(ctx context.Context, snapshot entity.GameSnapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	err = that.client.Set(ctx, that.key, snapshotJSON, SnapshotTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *dbSnapshot) Latest(ctx context.Context) (entity.GameSnapshot, error) {
	response, err := that.client.Get(ctx, that.key).Result()

	if errors.Is(err, redis.Nil) {
		return entity.GameSnapshot{}, ErrSnapshotNotFound
	}

	if err != nil {
		return entity.GameSnapshot{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot entity.GameSnapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return entity.GameSnapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return snapshot, nil
}

func (that *dbSnapshot) Delete(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
