package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/trip-recommender/internal/config"
	"github.com/trip-recommender/internal/domain/repository"
	"github.com/trip-recommender/internal/infrastructure/ollama"
	"github.com/trip-recommender/internal/pkg/logger"
	"github.com/trip-recommender/internal/repository/cache"
	"github.com/trip-recommender/internal/repository/catalog"
	"github.com/trip-recommender/internal/repository/postgres"
	redisRepo "github.com/trip-recommender/internal/repository/redis"
	"github.com/trip-recommender/internal/usecase"
	"github.com/trip-recommender/internal/worker"
	"github.com/trip-recommender/internal/worker/itinerary"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Itinerary Generation Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("ollama_model", cfg.Ollama.Model))

	// 3. Initialize place catalog (csv file or postgres)
	var placeRepo repository.PlaceRepository
	switch cfg.Catalog.Source {
	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		placeRepo = postgres.NewPlaceRepository(db)
	default:
		placeRepo, err = catalog.NewCSVRepository(cfg.Catalog.CSVPath, log)
		if err != nil {
			log.Fatal("Failed to load CSV catalog",
				zap.String("path", cfg.Catalog.CSVPath),
				zap.Error(err))
		}
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories and use case
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	llm := ollama.NewOllamaClient(&cfg.Ollama, log)
	itineraryUC := usecase.NewItineraryUseCase(placeRepo, llm, streamRepo, log)

	// 6. Initialize workers
	generationWorker := itinerary.NewGenerationWorker(
		streamRepo,
		itineraryUC,
		cfg.Worker.ConsumerGroup,
		log,
	)

	manager := worker.NewManager(log)
	manager.Register(generationWorker)

	// 7. Start and wait for shutdown signal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Received shutdown signal")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
