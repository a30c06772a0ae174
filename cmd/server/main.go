package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mgarcia/healthlifting-app/internal/api"
	"mgarcia/healthlifting-app/internal/cache"
	"mgarcia/healthlifting-app/internal/config"
	"mgarcia/healthlifting-app/internal/repository"
	"mgarcia/healthlifting-app/internal/repository/cached"
	"mgarcia/healthlifting-app/internal/repository/mongo"
	"mgarcia/healthlifting-app/internal/service"
	"mgarcia/healthlifting-app/internal/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := log.With().Str("app", "healthlifting").Logger()
	logger.Info().Msg("Starting Healthlifting App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load config")
	}
	logger.Info().Msg("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not connect to MongoDB")
	}
	defer func() {
		logger.Info().Msg("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error().Err(err).Msg("Failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info().Msg("Database connection established.")

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureAthleteIndexes(ctx, appDB.Collection("athletes"))
		mongo.EnsureCoachIndexes(ctx, appDB.Collection("coaches"))
		mongo.EnsureAppointmentIndexes(ctx, appDB.Collection("appointments"))
		mongo.EnsureTrainingSheetIndexes(ctx, appDB.Collection("training_sheets"))
		logger.Info().Msg("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize S3 storage")
	}

	// --- Initialize Cache ---
	var appCache cache.Cache = cache.Noop{}
	if cfg.Redis.Enabled {
		appCache, err = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache enabled.")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	var athleteRepo repository.AthleteRepository = mongo.NewMongoAthleteRepository(appDB)
	var coachRepo repository.CoachRepository = mongo.NewMongoCoachRepository(appDB)
	var appointmentRepo repository.AppointmentRepository = mongo.NewMongoAppointmentRepository(appDB)
	var trainingSheetRepo repository.TrainingSheetRepository = mongo.NewMongoTrainingSheetRepository(appDB)

	athleteRepo = cached.NewAthleteRepository(athleteRepo, appCache, logger)
	coachRepo = cached.NewCoachRepository(coachRepo, appCache, logger)
	appointmentRepo = cached.NewAppointmentRepository(appointmentRepo, appCache, logger)
	trainingSheetRepo = cached.NewTrainingSheetRepository(trainingSheetRepo, appCache, logger)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	healthliftingService := service.NewHealthliftingService(athleteRepo, coachRepo, appointmentRepo, logger)
	trainingSheetService := service.NewTrainingSheetService(trainingSheetRepo, athleteRepo, coachRepo, fileStorage, logger)

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, authService, healthliftingService, trainingSheetService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info().Str("addr", server.Addr).Msg("Server starting")

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exiting.")
}
