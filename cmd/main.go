package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/moodtrack/docs"
	"github.com/sbilibin2017/moodtrack/internal/handlers"
	"github.com/sbilibin2017/moodtrack/internal/jwt"
	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/middlewares"
	"github.com/sbilibin2017/moodtrack/internal/repositories"
	"github.com/sbilibin2017/moodtrack/internal/services"
	"github.com/sbilibin2017/moodtrack/internal/views"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// defaultJWTSecret is only acceptable outside production.
const defaultJWTSecret = "moodtrack_dev_secret"

const shutdownTimeout = 10 * time.Second

const migrateRetryInterval = 5 * time.Second

// config is the application configuration read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	Env      string
	LogLevel string

	DatabaseURL    string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisPoolSize     int
	AnalyticsCacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret string
	JWTExp    time.Duration

	DefaultUser    string
	AuthRateLimit  int
	AuthRateWindow time.Duration
	SecureCookie   bool
}

// @title MoodTrack API
// @version 1.0.0
// @description Mood journal with analytics and affirmations
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
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

// parseConfig loads environment variables from a file and builds the
// application, database, Redis, Kafka, JWT and rate limit configuration.
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
	cfg.AppPort = getEnv("PORT", getEnv("APP_PORT", "8080"))
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.DefaultUser = getEnv("DEFAULT_USER", "Guest")
	cfg.SecureCookie = cfg.Env == "production"

	// PostgreSQL config
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		pgPort, err := getInt("POSTGRES_PORT", "5432")
		if err != nil {
			return cfg, err
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(getEnv("POSTGRES_USER", "user"), getEnv("POSTGRES_PASSWORD", "password")),
			Host:     fmt.Sprintf("%s:%d", getEnv("POSTGRES_HOST", "localhost"), pgPort),
			Path:     getEnv("POSTGRES_DB", "moodtrack"),
			RawQuery: "sslmode=disable",
		}
		cfg.DatabaseURL = u.String()
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return cfg, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return cfg, err
	}

	// Redis config
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return cfg, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return cfg, err
	}
	cacheTTL, err := getInt("ANALYTICS_CACHE_TTL_SECOND", "300")
	if err != nil {
		return cfg, err
	}
	cfg.AnalyticsCacheTTL = time.Duration(cacheTTL) * time.Second

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "moodtrack.events")

	// JWT config
	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", defaultJWTSecret)
	jwtExp, err := getInt("JWT_EXP_SECOND", "2592000")
	if err != nil {
		return cfg, err
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Rate limit config
	if cfg.AuthRateLimit, err = getInt("AUTH_RATE_LIMIT", "10"); err != nil {
		return cfg, err
	}
	window, err := getInt("AUTH_RATE_WINDOW_SECOND", "60")
	if err != nil {
		return cfg, err
	}
	cfg.AuthRateWindow = time.Duration(window) * time.Second

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		return cfg, errors.New("JWT_SECRET_KEY must be set in production")
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.Env); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("Logger initialized", "level", cfg.LogLevel, "env", cfg.Env)

	// Connect to PostgreSQL. An unreachable database is reported by /api/status.
	db, err := sqlx.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := db.PingContext(ctx); err != nil {
		logger.Log.Warnw("PostgreSQL ping failed, starting without database", "error", err)
		go migrateWhenReady(ctxShutdown, func(ctx context.Context) error {
			return repositories.Migrate(ctx, db)
		}, migrateRetryInterval)
	} else if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	// Connect to Redis
	var analyticsCache services.AnalyticsCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis ping failed, analytics cache errors will be ignored", "error", err)
		}
		analyticsCache = repositories.NewAnalyticsCacheRepository(rdb, cfg.AnalyticsCacheTTL)
	}

	// Kafka writer
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecret), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	moodReadRepo := repositories.NewMoodReadRepository(db)
	moodWriteRepo := repositories.NewMoodWriteRepository(db)
	affirmationReadRepo := repositories.NewAffirmationReadRepository(db)
	affirmationWriteRepo := repositories.NewAffirmationWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, events)
	moodService := services.NewMoodService(moodWriteRepo, moodReadRepo, analyticsCache, events)
	affirmationService := services.NewAffirmationService(affirmationWriteRepo, affirmationReadRepo)
	preferencesService := services.NewPreferencesService(userWriteRepo)
	healthService := services.NewHealthService(db, cfg.Env)

	// Initialize views
	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	p := handlers.NewResponder(renderer, cfg.Env)
	cookie := handlers.CookieSettings{
		Name:   tokens.CookieName(),
		MaxAge: tokens.Expiration(),
		Secure: cfg.SecureCookie,
	}

	limiter := middlewares.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.Recoverer(handlers.NewServerErrorHandler(p)))
	r.Use(chimiddleware.StripSlashes)
	r.NotFound(handlers.NewNotFoundHandler(p))

	// Public routes
	r.Get("/test", handlers.NewTestHandler())
	r.Get("/api/status", handlers.NewStatusHandler(p, healthService))
	r.Get("/logout", handlers.NewLogoutHandler(cookie))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.OptionalAuthMiddleware(tokens, userReadRepo))
		r.Get("/", handlers.NewHomeHandler(p, cfg.DefaultUser))
		r.Get("/about", handlers.NewAboutHandler(p))
		r.Get("/login", handlers.NewLoginFormHandler(p))
		r.Get("/register", handlers.NewRegisterFormHandler(p))
		r.Get("/affirmations/today", handlers.NewTodayAffirmationHandler(p))

		r.With(limiter.Middleware).Post("/register", handlers.NewRegisterHandler(p, authService, cookie))
		r.With(limiter.Middleware).Post("/login", handlers.NewLoginHandler(p, authService, cookie))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, userReadRepo))
		r.Get("/dashboard", handlers.NewDashboardHandler(p, moodService))

		r.Get("/moods", handlers.NewMoodListHandler(p, moodService))
		r.Get("/moods/new", handlers.NewMoodFormHandler(p))
		r.Post("/moods", handlers.NewMoodCreateHandler(p, moodService))
		r.Get("/moods/analytics", handlers.NewMoodAnalyticsHandler(p, moodService))
		r.Get("/moods/export", handlers.NewMoodExportHandler(p, moodService))
		r.Get("/moods/{id}", handlers.NewMoodViewHandler(p, moodService))

		r.Get("/affirmations", handlers.NewAffirmationListHandler(p, affirmationService))
		r.Get("/affirmations/new", handlers.NewAffirmationFormHandler(p))
		r.Post("/affirmations", handlers.NewAffirmationCreateHandler(p, affirmationService))
		r.Get("/affirmations/random", handlers.NewRandomAffirmationHandler(p, affirmationService))

		favorite := handlers.NewFavoriteHandler(p, affirmationService)
		r.With(middlewares.TxMiddleware(db)).Put("/affirmations/{id}/favorite", favorite)
		r.With(middlewares.TxMiddleware(db)).Post("/affirmations/{id}/favorite", favorite)

		r.Get("/settings", handlers.NewSettingsHandler(p))
		r.Post("/settings", handlers.NewSettingsUpdateHandler(p, preferencesService))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)

	go limiter.Run(ctxShutdown, time.Minute)

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// migrateWhenReady retries migrate every interval until it succeeds or ctx is done.
func migrateWhenReady(ctx context.Context, migrate func(context.Context) error, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := migrate(ctx); err != nil {
				logger.Log.Warnw("Schema migration failed, will retry", "error", err)
				continue
			}
			logger.Log.Info("Schema migrated after PostgreSQL became reachable")
			return
		}
	}
}
