package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/snake-backend/docs"
	"github.com/sbilibin2017/snake-backend/internal/handlers"
	"github.com/sbilibin2017/snake-backend/internal/jwt"
	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/metrics"
	"github.com/sbilibin2017/snake-backend/internal/middlewares"
	"github.com/sbilibin2017/snake-backend/internal/repositories"
	"github.com/sbilibin2017/snake-backend/internal/services"
	"github.com/sbilibin2017/snake-backend/internal/snake"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title snake-backend API
// @version 1.0.0
// @description Snake game backend: auth, leaderboard and spectating
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds the application, database, Redis, Kafka, logging and JWT settings.
type config struct {
	AppHost      string
	AppPort      string
	LogLevel     string
	LogFormat    string
	CORSOrigins  []string
	SeedDemo     bool
	PGHost       string
	PGPort       int
	PGUser       string
	PGPassword   string
	PGDB         string
	PGMaxOpen    int
	PGMaxIdle    int
	RedisHost    string
	RedisPort    int
	RedisDB      int
	RedisPass    string
	RedisPool    int
	RedisMinIdle int
	CacheTTL     time.Duration
	KafkaBrokers []string
	KafkaTopic   string
	JWTSecretKey string
	JWTExp       time.Duration
}

// parseConfig loads environment variables from a file and returns the
// configuration, falling back to defaults for unset keys.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	if cfg.SeedDemo, err = strconv.ParseBool(getEnv("SEED_DEMO_GAMES", "true")); err != nil {
		return cfg, fmt.Errorf("SEED_DEMO_GAMES: %w", err)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpen, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdle, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPass = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPool, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdle, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	ttl, err := getInt("LEADERBOARD_CACHE_TTL_SECOND", "30")
	if err != nil {
		return
	}
	cfg.CacheTTL = time.Duration(ttl) * time.Second

	// Kafka config, publishing is disabled without brokers
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_SCORE_TOPIC", "leaderboard.scores")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getInt("JWT_EXP_SECOND", "3600")
	if err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, database, Redis, Kafka and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpen)
	db.SetMaxIdleConns(cfg.PGMaxIdle)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPool,
		MinIdleConns: cfg.RedisMinIdle,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for score events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing score events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	leaderboardReadRepo := repositories.NewLeaderboardReadRepository(db)
	leaderboardWriteRepo := repositories.NewLeaderboardWriteRepository(db)
	leaderboardCacheRepo := repositories.NewLeaderboardCacheRepository(rdb, cfg.CacheTTL)
	activeGameReadRepo := repositories.NewActiveGameReadRepository(db)
	activeGameWriteRepo := repositories.NewActiveGameWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	leaderboardService := services.NewLeaderboardService(leaderboardWriteRepo, leaderboardReadRepo, leaderboardCacheRepo, kafkaWriter)
	spectateService := services.NewSpectateService(activeGameReadRepo, activeGameWriteRepo, snake.GlobalRandom{})

	if cfg.SeedDemo {
		if err := spectateService.SeedDemoGames(ctx); err != nil {
			return fmt.Errorf("seeding demo games failed: %w", err)
		}
	}

	r := newRouter(routerDeps{
		db:          db,
		tokens:      tokens,
		auth:        authService,
		leaderboard: leaderboardService,
		spectate:    spectateService,
		corsOrigins: cfg.CORSOrigins,
		swaggerURL:  fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// routerDeps are the collaborators the HTTP routes are built from.
type routerDeps struct {
	db          *sqlx.DB
	tokens      *jwt.JWT
	auth        *services.AuthService
	leaderboard *services.LeaderboardService
	spectate    *services.SpectateService
	corsOrigins []string
	swaggerURL  string
}

// newRouter mounts the API under /api together with the operational endpoints.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.IdentityMiddleware(deps.tokens))

	r.Get("/", handlers.NewRootHandler())
	r.Get("/healthz", handlers.NewHealthHandler(deps.db))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.swaggerURL)))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", handlers.NewSignupHandler(deps.auth))
			r.Post("/login", handlers.NewLoginHandler(deps.auth))
			r.Post("/logout", handlers.NewLogoutHandler())
			r.Get("/me", handlers.NewMeHandler(deps.auth))
		})

		r.Get("/leaderboard", handlers.NewLeaderboardListHandler(deps.leaderboard))
		r.Post("/leaderboard", handlers.NewLeaderboardSubmitHandler(deps.leaderboard))

		r.Route("/spectate", func(r chi.Router) {
			r.Get("/active", handlers.NewSpectateActiveHandler(deps.spectate))
			r.Post("/update", handlers.NewSpectateUpdateHandler(deps.spectate))
			// demo ticks lock their row inside the request transaction
			r.With(middlewares.TxMiddleware(deps.db)).Get("/{id}", handlers.NewSpectateGameHandler(deps.spectate))
		})
	})

	return r
}
