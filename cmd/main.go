package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/padeltour/tournament-server/brackets"
	"github.com/padeltour/tournament-server/config"
	"github.com/padeltour/tournament-server/db"
	"github.com/padeltour/tournament-server/handlers"
	"github.com/padeltour/tournament-server/middleware"
	"github.com/padeltour/tournament-server/repositories"
	api "github.com/padeltour/tournament-server/routes"
	"github.com/padeltour/tournament-server/services"
	"github.com/padeltour/tournament-server/storage"
)

const (
	dbConnectTimeout = 5 * time.Second
	shutdownTimeout  = 15 * time.Second

	loginRatePerMinute = 5
	loginRateBurst     = 5
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, dbConnectTimeout)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Logo upload is optional. Without the R2 credential block the
	// service runs with uploads disabled.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("R2 credentials not set, logo upload disabled")
	}

	wsHub := brackets.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	groupRepo := repositories.NewPostgresGroupRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	bracketRepo := repositories.NewPostgresBracketRepository(dbConn)

	authService, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}
	teamService := services.NewTeamService(dbConn, teamRepo, groupRepo, matchRepo, uploader)
	groupService := services.NewGroupService(dbConn, groupRepo, matchRepo)
	matchService := services.NewMatchService(dbConn, matchRepo, groupRepo, wsHub)
	scheduleService := services.NewScheduleService(dbConn, groupRepo, matchRepo, logger)
	standingsService := services.NewStandingsService(groupRepo, matchRepo, teamRepo)
	bracketService := services.NewBracketService(dbConn, bracketRepo, wsHub, logger)
	tournamentService := services.NewTournamentService(teamService, groupService, matchService, bracketService)
	logger.Info("services initialized")

	h := api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Team:      handlers.NewTeamHandler(teamService),
		Group:     handlers.NewGroupHandler(groupService, standingsService, scheduleService),
		Match:     handlers.NewMatchHandler(matchService),
		Bracket:   handlers.NewBracketHandler(bracketService),
		Overview:  handlers.NewOverviewHandler(tournamentService),
		WebSocket: handlers.NewWebSocketHandler(wsHub),
	}

	loginLimiter := middleware.NewLoginRateLimiter(loginRatePerMinute, loginRateBurst)

	router := chi.NewRouter()
	api.SetupRoutes(router, h, []byte(cfg.JWTSecretKey), loginLimiter)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
