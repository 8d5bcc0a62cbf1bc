package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/models"
)

const activeGameColumns = `game_id, username, score, game_mode, kind, snake, food, updated_at`

// activeGameRow is the storage shape of models.ActiveGame; snake and food live in JSONB columns.
type activeGameRow struct {
	GameID    uuid.UUID      `db:"game_id"`
	Username  string         `db:"username"`
	Score     int            `db:"score"`
	GameMode  string         `db:"game_mode"`
	Kind      string         `db:"kind"`
	Snake     types.JSONText `db:"snake"`
	Food      types.JSONText `db:"food"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (row *activeGameRow) toModel() (*models.ActiveGame, error) {
	game := &models.ActiveGame{
		ID:        row.GameID,
		Username:  row.Username,
		Score:     row.Score,
		GameMode:  models.GameMode(row.GameMode),
		Kind:      models.GameKind(row.Kind),
		UpdatedAt: row.UpdatedAt,
	}
	if err := row.Snake.Unmarshal(&game.Snake); err != nil {
		return nil, fmt.Errorf("decode snake of game %s: %w", row.GameID, err)
	}
	if err := row.Food.Unmarshal(&game.Food); err != nil {
		return nil, fmt.Errorf("decode food of game %s: %w", row.GameID, err)
	}
	return game, nil
}

func encodeBoard(snake []models.Segment, food models.Position) (types.JSONText, types.JSONText, error) {
	if snake == nil {
		snake = []models.Segment{}
	}
	s, err := json.Marshal(snake)
	if err != nil {
		return nil, nil, err
	}
	f, err := json.Marshal(food)
	if err != nil {
		return nil, nil, err
	}
	return types.JSONText(s), types.JSONText(f), nil
}

// ActiveGameWriteRepository handles active game writes
type ActiveGameWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewActiveGameWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ActiveGameWriteRepository {
	return &ActiveGameWriteRepository{db: db, txGetter: txGetter}
}

// UpsertLive creates the live game of update.Username or replaces its state in
// place, keeping the id. The statement is atomic, so concurrent pushes for one
// username are serialized on the row. A demo game under the same username is
// left untouched and ErrKindMismatch is returned.
func (r *ActiveGameWriteRepository) UpsertLive(ctx context.Context, update models.GameUpdate) (*models.ActiveGame, error) {
	query := `
		INSERT INTO active_games (game_id, username, score, game_mode, kind, snake, food, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'live', $5, $6, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET score = EXCLUDED.score,
		    game_mode = EXCLUDED.game_mode,
		    snake = EXCLUDED.snake,
		    food = EXCLUDED.food,
		    updated_at = NOW()
		WHERE active_games.kind = 'live'
		RETURNING ` + activeGameColumns

	snakeJSON, foodJSON, err := encodeBoard(update.Snake, update.Food)
	if err != nil {
		return nil, err
	}
	args := []any{uuid.New(), update.Username, update.Score, string(update.GameMode), snakeJSON, foodJSON}

	var row activeGameRow
	err = sqlx.GetContext(ctx, r.executor(ctx), &row, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{update.Username, update.Score, update.GameMode, len(update.Snake)},
		"result", row.GameID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKindMismatch
	}
	if err != nil {
		return nil, err
	}
	return row.toModel()
}

// SaveDemo inserts a demo game unless the username already has a game.
// It reports whether a row was inserted.
func (r *ActiveGameWriteRepository) SaveDemo(ctx context.Context, game models.ActiveGame) (bool, error) {
	query := `
		INSERT INTO active_games (game_id, username, score, game_mode, kind, snake, food, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'demo', $5, $6, NOW(), NOW())
		ON CONFLICT (username) DO NOTHING
	`

	snakeJSON, foodJSON, err := encodeBoard(game.Snake, game.Food)
	if err != nil {
		return false, err
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, uuid.New(), game.Username, game.Score, string(game.GameMode), snakeJSON, foodJSON)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{game.Username, game.Score, game.GameMode},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// AdvanceDemo locks the demo game with the given id, applies fn to it and
// stores the result. It joins the request transaction when there is one and
// otherwise runs its own. Live games are never touched: they yield ErrNotFound.
func (r *ActiveGameWriteRepository) AdvanceDemo(ctx context.Context, gameID uuid.UUID, fn func(game *models.ActiveGame)) (*models.ActiveGame, error) {
	if tx := r.requestTx(ctx); tx != nil {
		return r.advanceDemo(ctx, tx, gameID, fn)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	game, err := r.advanceDemo(ctx, tx, gameID, fn)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return game, nil
}

func (r *ActiveGameWriteRepository) advanceDemo(ctx context.Context, tx *sqlx.Tx, gameID uuid.UUID, fn func(game *models.ActiveGame)) (*models.ActiveGame, error) {
	selectQuery := `
		SELECT ` + activeGameColumns + `
		FROM active_games
		WHERE game_id = $1 AND kind = 'demo'
		FOR UPDATE
	`

	var row activeGameRow
	err := tx.GetContext(ctx, &row, selectQuery, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(selectQuery), " "),
		"args", []any{gameID},
		"result", row.Username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	game, err := row.toModel()
	if err != nil {
		return nil, err
	}
	fn(game)

	updateQuery := `
		UPDATE active_games
		SET score = $2, snake = $3, food = $4, updated_at = NOW()
		WHERE game_id = $1 AND kind = 'demo'
		RETURNING updated_at
	`

	snakeJSON, foodJSON, err := encodeBoard(game.Snake, game.Food)
	if err != nil {
		return nil, err
	}

	err = tx.GetContext(ctx, &game.UpdatedAt, updateQuery, gameID, game.Score, snakeJSON, foodJSON)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateQuery), " "),
		"args", []any{gameID, game.Score, len(game.Snake)},
		"result", game.UpdatedAt,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return game, nil
}

func (r *ActiveGameWriteRepository) requestTx(ctx context.Context) *sqlx.Tx {
	if r.txGetter == nil {
		return nil
	}
	return r.txGetter(ctx)
}

func (r *ActiveGameWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if tx := r.requestTx(ctx); tx != nil {
		return tx
	}
	return r.db
}

// ActiveGameReadRepository handles active game reads
type ActiveGameReadRepository struct {
	db *sqlx.DB
}

func NewActiveGameReadRepository(db *sqlx.DB) *ActiveGameReadRepository {
	return &ActiveGameReadRepository{db: db}
}

// GetByID returns the game with the given id, or ErrNotFound.
func (r *ActiveGameReadRepository) GetByID(ctx context.Context, gameID uuid.UUID) (*models.ActiveGame, error) {
	query := `SELECT ` + activeGameColumns + ` FROM active_games WHERE game_id = $1`

	var row activeGameRow
	err := r.db.GetContext(ctx, &row, query, gameID)

	logger.Log.Infow(
		"query", query,
		"args", []any{gameID},
		"result", row.Username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel()
}

// List returns every active game in creation order.
func (r *ActiveGameReadRepository) List(ctx context.Context) ([]models.ActiveGame, error) {
	query := `SELECT ` + activeGameColumns + ` FROM active_games ORDER BY created_at, game_id`

	var rows []activeGameRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", query,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	games := make([]models.ActiveGame, 0, len(rows))
	for i := range rows {
		game, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}
	return games, nil
}
