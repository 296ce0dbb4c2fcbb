package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vodeneev/easybets/internal/pkg/models"
)

const matchesKeyPrefix = "easybets:odds:matches:"

// RedisClient caches scraped match lists in Redis with a TTL.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int, ttl time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client, ttl: ttl}, nil
}

// GetMatches returns the cached list for source, or ok=false on a miss.
func (r *RedisClient) GetMatches(ctx context.Context, source string) ([]models.Match, bool, error) {
	data, err := r.client.Get(ctx, matchesKey(source)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get matches: %w", err)
	}

	matches, err := decodeMatches(data)
	if err != nil {
		return nil, false, err
	}
	return matches, true, nil
}

// SetMatches stores matches for source until the TTL expires.
func (r *RedisClient) SetMatches(ctx context.Context, source string, matches []models.Match) error {
	data, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	return r.client.Set(ctx, matchesKey(source), data, r.ttl).Err()
}

// Close closes connection with Redis
func (r *RedisClient) Close() error {
	return r.client.Close()
}

func matchesKey(source string) string {
	return matchesKeyPrefix + source
}

func decodeMatches(data []byte) ([]models.Match, error) {
	var matches []models.Match
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return matches, nil
}
