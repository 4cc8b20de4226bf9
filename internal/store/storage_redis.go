// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/match-point/internal/logger"
)

// redisKeyPrefix namespaces client keys inside a shared Redis database.
const redisKeyPrefix = "matchpoint:"

type redisLocalStorage struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// NewConnectRedis parses a redis:// DSN, connects and pings the server.
func NewConnectRedis(ctx context.Context, dsn string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis dsn: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err = rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = rdb.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return rdb, nil
}

// NewRedisLocalStorage returns a [LocalStorage] keeping each key as a plain
// Redis string without expiry; token lifetime is the server's concern.
func NewRedisLocalStorage(rdb *redis.Client, logger *logger.Logger) LocalStorage {
	return &redisLocalStorage{rdb: rdb, logger: logger}
}

func (s *redisLocalStorage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "redisLocalStorage.Get").Str("key", key).Msg("failed to read client state")
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

func (s *redisLocalStorage) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		s.logger.Err(err).Str("func", "redisLocalStorage.Set").Str("key", key).Msg("failed to write client state")
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *redisLocalStorage) Remove(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		s.logger.Err(err).Str("func", "redisLocalStorage.Remove").Str("key", key).Msg("failed to delete client state")
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

func (s *redisLocalStorage) Close() error {
	return s.rdb.Close()
}
