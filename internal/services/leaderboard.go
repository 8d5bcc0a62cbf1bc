package services

//go:generate mockgen -source=leaderboard.go -destination=leaderboard_mock_test.go -package=services

import (
	"context"
	"encoding/json"
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/repositories"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrInvalidScore is returned for negative scores.
	ErrInvalidScore = errors.New("score must be a non-negative integer")
	// ErrInvalidGameMode is returned for modes outside the supported set.
	ErrInvalidGameMode = errors.New("game mode must be one of pass-through, walls")
	// ErrInvalidUsername is returned for blank usernames.
	ErrInvalidUsername = errors.New("username must not be empty")
)

// LeaderboardWriter appends score entries.
type LeaderboardWriter interface {
	Save(ctx context.Context, username string, score int, mode models.GameMode) (*models.LeaderboardEntry, error)
}

// LeaderboardReader lists score entries in insertion order.
type LeaderboardReader interface {
	List(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
}

// LeaderboardCache caches ranked lists per mode.
type LeaderboardCache interface {
	Get(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, mode *models.GameMode, gen int64, entries []models.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LeaderboardService handles score submission and ranking.
type LeaderboardService struct {
	writer      LeaderboardWriter
	reader      LeaderboardReader
	cache       LeaderboardCache
	kafkaWriter KafkaWriter
}

// NewLeaderboardService creates a new LeaderboardService. cache and kafkaWriter may be nil.
func NewLeaderboardService(
	writer LeaderboardWriter,
	reader LeaderboardReader,
	cache LeaderboardCache,
	kafkaWriter KafkaWriter,
) *LeaderboardService {
	return &LeaderboardService{
		writer:      writer,
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Submit validates and appends a score. Prior entries are never touched.
func (s *LeaderboardService) Submit(ctx context.Context, username string, score int, mode models.GameMode) (*models.LeaderboardEntry, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrInvalidUsername
	}
	if score < 0 {
		return nil, ErrInvalidScore
	}
	if !mode.Valid() {
		return nil, ErrInvalidGameMode
	}

	entry, err := s.writer.Save(ctx, username, score, mode)
	if err != nil {
		logger.Log.Errorw("failed to save score", "username", username, "score", score, "gameMode", mode, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
		}
	}

	s.publishScore(ctx, entry)

	return entry, nil
}

// List returns entries sorted by score descending, ties in submission order.
// A nil mode lists every entry.
func (s *LeaderboardService) List(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	if mode != nil && !mode.Valid() {
		return nil, ErrInvalidGameMode
	}

	if s.cache != nil {
		entries, err := s.cache.Get(ctx, mode)
		if err == nil {
			return entries, nil
		}
		logger.Log.Debugw("leaderboard cache lookup failed", "error", err)
	}

	// the generation is taken before reading so a submit racing with this
	// read keeps the result out of the cache
	var gen int64
	cacheable := s.cache != nil
	if cacheable {
		var err error
		if gen, err = s.cache.Generation(ctx); err != nil {
			logger.Log.Errorw("failed to read leaderboard generation", "error", err)
			cacheable = false
		}
	}

	entries, err := s.reader.List(ctx, mode)
	if err != nil {
		logger.Log.Errorw("failed to list leaderboard", "error", err)
		return nil, err
	}

	Rank(entries)

	if cacheable {
		err := s.cache.Set(ctx, mode, gen, entries)
		switch {
		case errors.Is(err, repositories.ErrStaleGeneration):
			logger.Log.Debugw("leaderboard changed while listing, not caching", "generation", gen)
		case err != nil:
			logger.Log.Errorw("failed to cache leaderboard", "error", err)
		}
	}

	return entries, nil
}

// Rank sorts entries in place by score descending, keeping the relative
// order of equal scores.
func Rank(entries []models.LeaderboardEntry) {
	slices.SortStableFunc(entries, func(a, b models.LeaderboardEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// publishScore publishes an accepted score to Kafka.
func (s *LeaderboardService) publishScore(ctx context.Context, entry *models.LeaderboardEntry) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "entry_id", entry.ID)
		return
	}

	event := models.ScoreEvent{
		EventID:   uuid.NewString(),
		EntryID:   entry.ID.String(),
		Username:  entry.Username,
		Score:     entry.Score,
		GameMode:  entry.GameMode,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal score event for Kafka", "entry_id", event.EntryID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Username),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish score event to Kafka", "entry_id", event.EntryID, "error", err)
	} else {
		logger.Log.Infow("Score event published to Kafka", "entry_id", event.EntryID, "score", event.Score)
	}
}
