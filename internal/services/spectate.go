package services

//go:generate mockgen -source=spectate.go -destination=spectate_mock_test.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/repositories"
	"github.com/sbilibin2017/snake-backend/internal/snake"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrDemoGame     = errors.New("game is a demo game")
	ErrEmptySnake   = errors.New("snake must not be empty")
)

// ActiveGameReader defines read-only operations for active games.
type ActiveGameReader interface {
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.ActiveGame, error)
	List(ctx context.Context) ([]models.ActiveGame, error)
}

// ActiveGameWriter defines write operations for active games.
type ActiveGameWriter interface {
	UpsertLive(ctx context.Context, update models.GameUpdate) (*models.ActiveGame, error)
	SaveDemo(ctx context.Context, game models.ActiveGame) (bool, error)
	AdvanceDemo(ctx context.Context, gameID uuid.UUID, fn func(game *models.ActiveGame)) (*models.ActiveGame, error)
}

// demoGame describes a seeded server-simulated game.
type demoGame struct {
	username string
	mode     models.GameMode
	score    int
	length   int
	headX    int
	headY    int
}

var demoGames = []demoGame{
	{username: "SnakeMaster", mode: models.GameModeWalls, score: 45, length: 5, headX: 10, headY: 10},
	{username: "PyPlayer", mode: models.GameModePassThrough, score: 30, length: 4, headX: 6, headY: 4},
	{username: "VenomKing", mode: models.GameModeWalls, score: 60, length: 7, headX: 14, headY: 16},
}

// SpectateService exposes active games to spectators.
type SpectateService struct {
	reader ActiveGameReader
	writer ActiveGameWriter
	rnd    snake.Random
}

// NewSpectateService creates a new SpectateService. A nil rnd uses the global source.
func NewSpectateService(reader ActiveGameReader, writer ActiveGameWriter, rnd snake.Random) *SpectateService {
	if rnd == nil {
		rnd = snake.GlobalRandom{}
	}
	return &SpectateService{
		reader: reader,
		writer: writer,
		rnd:    rnd,
	}
}

// ListActive returns every active game in storage order.
func (s *SpectateService) ListActive(ctx context.Context) ([]models.ActiveGame, error) {
	games, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active games", "error", err)
		return nil, err
	}
	return games, nil
}

// GetOne returns the game with the given id. Demo games advance one tick
// per observation; live games are returned as stored.
func (s *SpectateService) GetOne(ctx context.Context, id string) (*models.ActiveGame, error) {
	gameID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrGameNotFound
	}

	game, err := s.reader.GetByID(ctx, gameID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get active game", "gameID", gameID, "error", err)
		return nil, err
	}

	if game.Kind != models.GameKindDemo {
		return game, nil
	}

	game, err = s.writer.AdvanceDemo(ctx, gameID, func(g *models.ActiveGame) {
		snake.Tick(g, s.rnd)
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to advance demo game", "gameID", gameID, "error", err)
		return nil, err
	}
	return game, nil
}

// PushUpdate records the latest client snapshot of a live game.
func (s *SpectateService) PushUpdate(ctx context.Context, update models.GameUpdate) error {
	if !update.GameMode.Valid() {
		return ErrInvalidGameMode
	}
	if len(update.Snake) == 0 {
		return ErrEmptySnake
	}

	_, err := s.writer.UpsertLive(ctx, update)
	if errors.Is(err, repositories.ErrKindMismatch) {
		logger.Log.Infow("rejected push to demo game", "username", update.Username)
		return ErrDemoGame
	}
	if err != nil {
		logger.Log.Errorw("failed to upsert live game", "username", update.Username, "error", err)
		return err
	}
	return nil
}

// SeedDemoGames inserts the demo games that are not present yet.
func (s *SpectateService) SeedDemoGames(ctx context.Context) error {
	for _, d := range demoGames {
		body := snake.NewSnake(d.headX, d.headY, d.length)
		game := models.ActiveGame{
			Username: d.username,
			Score:    d.score,
			GameMode: d.mode,
			Kind:     models.GameKindDemo,
			Snake:    body,
			Food:     snake.RandomFood(body, s.rnd),
		}

		inserted, err := s.writer.SaveDemo(ctx, game)
		if err != nil {
			logger.Log.Errorw("failed to seed demo game", "username", d.username, "error", err)
			return err
		}
		if inserted {
			logger.Log.Infow("demo game seeded", "username", d.username)
		}
	}
	return nil
}
