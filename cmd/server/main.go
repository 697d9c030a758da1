package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harukimori/study-log-api/internal/auth"
	"github.com/harukimori/study-log-api/internal/config"
	"github.com/harukimori/study-log-api/internal/database"
	"github.com/harukimori/study-log-api/internal/filestore"
	"github.com/harukimori/study-log-api/internal/handlers"
	"github.com/harukimori/study-log-api/internal/repository"
	"github.com/harukimori/study-log-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Construct the persistence backend once and inject it everywhere
	userRepo, itemRepo, logRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize services
	tokens := auth.NewManager([]byte(cfg.JWTSecret), config.TokenValidity)
	authService := services.NewAuthService(userRepo, tokens)
	itemService := services.NewStudyItemService(itemRepo)
	logService := services.NewLogService(logRepo, itemRepo)
	statsService := services.NewStatsService(itemRepo, logRepo)

	// Initialize handlers and routes
	r := gin.Default()
	handlers.RegisterRoutes(
		r,
		tokens,
		handlers.NewAuthHandler(authService),
		handlers.NewStudyItemHandler(itemService),
		handlers.NewLogHandler(logService),
		handlers.NewStatsHandler(statsService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Drain in-flight requests before exiting
	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// buildRepositories selects the persistence backend from configuration:
// the relational store via GORM, or flat JSON files.
func buildRepositories(cfg *config.Config) (repository.UserRepository, repository.StudyItemRepository, repository.LogRepository, error) {
	switch cfg.StoreBackend {
	case "file":
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Printf("Using JSON file store in %s", cfg.DataDir)
		return filestore.NewUserRepository(store),
			filestore.NewStudyItemRepository(store),
			filestore.NewLogRepository(store),
			nil
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, nil, nil, err
		}
		return repository.NewUserRepository(db),
			repository.NewStudyItemRepository(db),
			repository.NewLogRepository(db),
			nil
	}
}
