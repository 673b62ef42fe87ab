package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/cipherledger-server/internal/config"
	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// Publisher is the subset of the redis client RedisSink uses.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisSink publishes committed events as JSON to a redis pub/sub channel.
type RedisSink struct {
	client  Publisher
	channel string
}

func NewRedisSink(client Publisher, channel string) *RedisSink {
	return &RedisSink{
		client:  client,
		channel: channel,
	}
}

// Name implements model.EventSink.
func (s *RedisSink) Name() string {
	return "redis"
}

// Deliver implements model.EventSink.
func (s *RedisSink) Deliver(ctx context.Context, event model.Event) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %d: %w", event.ID, err)
	}

	if err := s.client.Publish(ctx, s.channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish event %d to %s: %w", event.ID, s.channel, err)
	}

	return nil
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.Redis, logger *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	logger.Info("Redis client connected", "addr", cfg.Addr, "db", cfg.DB, "channel", cfg.Channel)

	return client, nil
}
