package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/snake-backend/internal/logger"
)

// migrations create the three collections the service persists. Every
// statement is idempotent so Migrate can run on each startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS leaderboard_entries (
		entry_id UUID PRIMARY KEY,
		seq BIGSERIAL NOT NULL UNIQUE,
		username TEXT NOT NULL,
		score BIGINT NOT NULL CHECK (score >= 0),
		game_mode VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_game_mode ON leaderboard_entries (game_mode);`,
	`CREATE TABLE IF NOT EXISTS active_games (
		game_id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		score BIGINT NOT NULL,
		game_mode VARCHAR(20) NOT NULL,
		kind VARCHAR(10) NOT NULL,
		snake JSONB NOT NULL,
		food JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	// scores are Go ints; databases created with INTEGER columns are widened
	`ALTER TABLE leaderboard_entries ALTER COLUMN score TYPE BIGINT;`,
	`ALTER TABLE active_games ALTER COLUMN score TYPE BIGINT;`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		_, err := db.ExecContext(ctx, m)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(m), " "),
			"error", err,
		)

		if err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
