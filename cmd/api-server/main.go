package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"reelhub/database"
	"reelhub/internal/catalog"
	"reelhub/internal/config"
	"reelhub/internal/httpapi/handler"
	"reelhub/internal/httpapi/middleware"
	"reelhub/internal/httpapi/repository"
	"reelhub/internal/httpapi/service"
	"reelhub/internal/sentiment"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// 3. Connect to Redis (revoked-token store)
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	if cfg.RedisPassword != "" {
		redisOpts.Password = cfg.RedisPassword
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// 4. External collaborators
	catalogClient := catalog.NewClient(cfg.TMDBAPIURL, cfg.TMDBAPIKey)

	analyzer := sentiment.NewAnalyzer(cfg.SentimentPython, cfg.SentimentScript, cfg.SentimentTimeout)
	pool := sentiment.NewPool(analyzer, cfg.SentimentWorkers)
	pool.Start()
	defer pool.Shutdown()

	// 5. Repositories
	userRepo := repository.NewUserRepository(db)
	revokedRepo := repository.NewRevokedTokenRepository(redisClient)
	reviewRepo := repository.NewReviewRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)

	// 6. Services
	authService := service.NewAuthService(userRepo, revokedRepo, cfg)
	reviewService := service.NewReviewService(reviewRepo, pool)
	ratingService := service.NewRatingService(ratingRepo, userRepo)
	playlistService := service.NewPlaylistService(playlistRepo)
	insightService, err := service.NewInsightService(cfg)
	if err != nil {
		log.Fatalf("could not create insight service: %v", err)
	}

	// 7. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	requireAuth := middleware.RequireAuth(authService)

	api := r.Group("/api")
	handler.NewAuthHandler(authService, int(cfg.JWTExpiry.Seconds())).RegisterRoutes(api)
	handler.NewMediaHandler(catalogClient).RegisterRoutes(api)
	handler.NewReviewHandler(reviewService).RegisterRoutes(api, requireAuth)
	handler.NewRatingHandler(ratingService).RegisterRoutes(api, requireAuth)
	handler.NewPlaylistHandler(playlistService).RegisterRoutes(api, requireAuth)
	handler.NewInsightHandler(insightService).RegisterRoutes(api, requireAuth)

	// 8. Serve until interrupted
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
