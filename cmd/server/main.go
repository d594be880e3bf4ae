package main

// @title           School Election Voting API
// @version         1.0
// @description     A RESTful API service for running a school election
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"election-service/configs"
	"election-service/internal/adapters/database"
	"election-service/internal/adapters/kafka"
	"election-service/internal/server"
	"election-service/internal/server/handlers"
	"election-service/internal/server/middleware"
	"election-service/internal/server/repository"
	"election-service/internal/server/service"
	"election-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := configs.Load()

	slog.Info("Starting election server")

	db, err := database.NewPostgresConnection(
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB,
	)
	if err != nil {
		slog.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Redis only backs rate limiting; the server still runs without it.
	var redisClient *redis.Client
	if client, err := database.NewRedisConnection(cfg.RedisURL); err != nil {
		slog.Warn("Redis unavailable, rate limiting disabled", "error", err)
	} else {
		redisClient = client
		defer redisClient.Close()
	}

	var media *database.MinIOClient
	if cfg.MinIOEndpoint != "" {
		media, err = database.NewMinIOClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket)
		if err != nil {
			slog.Error("Failed to connect to MinIO", "error", err)
			os.Exit(1)
		}
	}

	voteStream := kafka.NewVoteEventWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer voteStream.Close()

	hub := ws.NewHub()
	go hub.Run()

	// Repositories
	electionRepo := repository.NewElectionRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	voteLogRepo := repository.NewVoteLogRepository(db)
	issueRepo := repository.NewIssueRepository(db)

	// Services
	authService := service.NewAuthService(studentRepo, cfg.JWTSecret, cfg.JWTExpire, cfg.AdminSecret)
	electionService := service.NewElectionService(db, electionRepo, candidateRepo, studentRepo, voteLogRepo)
	voteService := service.NewVoteService(db, electionRepo, studentRepo, candidateRepo, voteLogRepo)
	candidateService := service.NewCandidateService(candidateRepo, voteLogRepo, media)
	studentService := service.NewStudentService(db, studentRepo, candidateRepo, voteLogRepo)
	issueService := service.NewIssueService(issueRepo)
	notifier := service.NewNotifier(hub, voteStream)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	voteHandler := handlers.NewVoteHandler(voteService, candidateService, electionService, notifier)
	electionHandler := handlers.NewElectionHandler(electionService, voteService, studentService, candidateService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	studentHandler := handlers.NewStudentHandler(studentService)
	issueHandler := handlers.NewIssueHandler(issueService)

	rateLimiter := middleware.NewRateLimitMiddleware(redisClient)

	router := gin.New()
	router.Use(middleware.LogApi(), gin.Recovery(), middleware.CORS())

	server.SetupRoutes(router, hub, rateLimiter,
		authHandler, voteHandler, electionHandler, candidateHandler, studentHandler, issueHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
}
