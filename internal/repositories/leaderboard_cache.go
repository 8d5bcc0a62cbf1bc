package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/models"
)

var (
	// ErrCacheMiss is returned when no ranked list is cached for the key.
	ErrCacheMiss = errors.New("leaderboard not found in cache")
	// ErrStaleGeneration is returned by Set when the leaderboard changed
	// after the list being cached was read.
	ErrStaleGeneration = errors.New("leaderboard changed since read")
)

const (
	leaderboardKeyPrefix = "leaderboard:"
	leaderboardKeyAll    = leaderboardKeyPrefix + "all"
	leaderboardKeyGen    = leaderboardKeyPrefix + "gen"
)

// LeaderboardCacheRepository caches ranked leaderboard lists in Redis
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

// NewLeaderboardCacheRepository creates a new repository instance with the given TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func leaderboardKey(mode *models.GameMode) string {
	if mode == nil {
		return leaderboardKeyAll
	}
	return leaderboardKeyPrefix + string(*mode)
}

// Get returns the cached ranked list for mode (nil means unfiltered).
func (r *LeaderboardCacheRepository) Get(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	key := leaderboardKey(mode)

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow(
		"key", key,
		"size", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(val, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Generation returns the current leaderboard generation. It is bumped by
// every Invalidate, so a list read under one generation must not be cached
// under another.
func (r *LeaderboardCacheRepository) Generation(ctx context.Context) (int64, error) {
	gen, err := r.client.Get(ctx, leaderboardKeyGen).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores the ranked list for mode with the configured expiration, but
// only while the generation is still gen. Otherwise ErrStaleGeneration is
// returned and nothing is written.
func (r *LeaderboardCacheRepository) Set(ctx context.Context, mode *models.GameMode, gen int64, entries []models.LeaderboardEntry) error {
	key := leaderboardKey(mode)

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, leaderboardKeyGen).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return ErrStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}, leaderboardKeyGen)
	if errors.Is(err, redis.TxFailedErr) {
		err = ErrStaleGeneration
	}

	logger.Log.Infow(
		"key", key,
		"generation", gen,
		"entries", len(entries),
		"error", err,
	)

	return err
}

// Invalidate bumps the generation and drops every cached list. A new entry
// can change both the unfiltered list and the list of its own mode.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	keys := []string{
		leaderboardKeyAll,
		leaderboardKey(ptr(models.GameModePassThrough)),
		leaderboardKey(ptr(models.GameModeWalls)),
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, leaderboardKeyGen)
		pipe.Del(ctx, keys...)
		return nil
	})

	logger.Log.Infow(
		"keys", keys,
		"result", "deleted",
		"error", err,
	)

	return err
}

func ptr[T any](v T) *T {
	return &v
}
