package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is a single submitted score.
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	// example: 0b8e3f5c-3f55-4c6e-8f5e-7d0a6f1f2b11
	ID uuid.UUID `json:"id" db:"entry_id"`
	// example: SnakeMaster
	Username string `json:"username" db:"username"`
	// example: 250
	Score int `json:"score" db:"score"`
	// example: walls
	GameMode GameMode `json:"gameMode" db:"game_mode"`
	// Submission time
	Date time.Time `json:"date" db:"created_at"`
}

// ScoreEvent is published to Kafka for every accepted score submission.
type ScoreEvent struct {
	EventID   string   `json:"event_id"`  // Unique event identifier
	EntryID   string   `json:"entry_id"`  // Leaderboard entry the event refers to
	Username  string   `json:"username"`  // Player who submitted the score
	Score     int      `json:"score"`     // Submitted score
	GameMode  GameMode `json:"game_mode"` // Mode the score was achieved in
	Timestamp int64    `json:"timestamp"` // Unix timestamp (seconds) of the submission
}
