package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "drawio:diagram:"

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps diagrams in Redis for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(name string) string {
	return redisKeyPrefix + name
}

func (s *RedisStore) Get(ctx context.Context, name string) (*Record, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, redisKey(name)).Bytes()
	if err == redis.Nil {
		return nil, NotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("get diagram: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse diagram record: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Put(ctx context.Context, rec *Record) error {
	if err := ValidateName(rec.Name); err != nil {
		return err
	}

	rec.UpdatedAt = time.Now()
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal diagram record: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(rec.Name), data, 0).Err(); err != nil {
		return fmt.Errorf("store diagram: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.client.Del(ctx, redisKey(name)).Err(); err != nil {
		return fmt.Errorf("delete diagram: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan diagrams: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
