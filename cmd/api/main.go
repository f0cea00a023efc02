// @title Speak Byte API
// @version 1.0
// @description Speaking-practice answer matching and course points.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"speak-byte/internal/adapter"
	"speak-byte/internal/adapter/tagger"
	"speak-byte/internal/cache"
	"speak-byte/internal/config"
	"speak-byte/internal/database"
	"speak-byte/internal/domain"
	"speak-byte/internal/logger"
	"speak-byte/internal/metrics"
	"speak-byte/internal/points"
	"speak-byte/internal/repository"
	"speak-byte/internal/service"
	"speak-byte/internal/speaking"
	"speak-byte/internal/validation"

	_ "speak-byte/cmd/api/docs"

	"go.uber.org/zap"
)

// newRoleTagger selects the part-of-speech capability for the semantic tier.
// "none" disables the tier.
func newRoleTagger(cfg config.TaggerConfig) (domain.RoleTagger, error) {
	switch cfg.Source {
	case "", "prose":
		return speaking.NewProseTagger(), nil
	case "ollama":
		return tagger.NewOllamaRoleTagger(cfg.Ollama.ServerURL, cfg.Ollama.Model, cfg.Ollama.Timeout)
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported tagger source: %s", cfg.Source)
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	roleTagger, err := newRoleTagger(cfg.Tagger)
	if err != nil {
		appLogger.Fatal("Failed to create role tagger", zap.Error(err))
	}
	appLogger.Info("Role tagger initialized", zap.String("source", cfg.Tagger.Source))

	db, err := database.NewSQLXOracleDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	sentenceRepo := repository.NewSQLXSentenceRepository(db)
	attemptRepo := repository.NewSQLXSpeakingAttemptRepository(db)
	activityRepo := repository.NewSQLXActivityRepository(db)
	enrollmentRepo := repository.NewSQLXEnrollmentRepository(db)
	coursePointsRepo := repository.NewSQLXCoursePointsRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis backs the sentence cache and the leaderboard; both degrade without it.
	var (
		cacheAdapter domain.Cache
		leaderboard  domain.Leaderboard
	)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache and leaderboard", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		leaderboard = adapter.NewRedisLeaderboardAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	matcher := speaking.NewMatcher(roleTagger,
		speaking.WithThresholds(cfg.Speaking.SemanticThreshold, cfg.Speaking.TokenThreshold))
	aggregator := points.NewAggregator(activityRepo, enrollmentRepo, cfg.Points.TeamConcurrency)

	authService, err := service.NewAuthService(cfg.Auth.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	speakingService := service.NewSpeakingService(matcher, sentenceRepo, attemptRepo, cacheAdapter, cfg)
	pointsService := service.NewPointsService(aggregator, coursePointsRepo, leaderboard, txManager)

	metrics.Register()
	app := newApp(cfg.Server, appDeps{
		auth:      authService,
		speaking:  speakingService,
		points:    pointsService,
		cache:     cacheAdapter,
		validator: validation.NewValidator(),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
