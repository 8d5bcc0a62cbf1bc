package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/models"
)

// LeaderboardWriteRepository appends score entries.
type LeaderboardWriteRepository struct {
	db *sqlx.DB
}

func NewLeaderboardWriteRepository(db *sqlx.DB) *LeaderboardWriteRepository {
	return &LeaderboardWriteRepository{db: db}
}

// Save appends a new entry and returns it with its server-assigned id and date.
func (r *LeaderboardWriteRepository) Save(ctx context.Context, username string, score int, mode models.GameMode) (*models.LeaderboardEntry, error) {
	query := `
		INSERT INTO leaderboard_entries (entry_id, username, score, game_mode, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING entry_id, username, score, game_mode, created_at
	`
	args := []any{uuid.New(), username, score, string(mode)}

	var entry models.LeaderboardEntry
	err := r.db.GetContext(ctx, &entry, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", entry.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// LeaderboardReadRepository reads score entries.
type LeaderboardReadRepository struct {
	db *sqlx.DB
}

func NewLeaderboardReadRepository(db *sqlx.DB) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db}
}

// List returns entries in insertion order, restricted to mode when it is non-nil.
func (r *LeaderboardReadRepository) List(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT entry_id, username, score, game_mode, created_at
		FROM leaderboard_entries
		WHERE ($1::VARCHAR IS NULL OR game_mode = $1)
		ORDER BY seq
	`

	var arg *string
	if mode != nil {
		s := string(*mode)
		arg = &s
	}

	entries := []models.LeaderboardEntry{}
	err := r.db.SelectContext(ctx, &entries, query, arg)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
