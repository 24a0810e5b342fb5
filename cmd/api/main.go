package main

// @title Trip Recommender API
// @version 1.0.0
// @description Сервис подбора направлений для поездок. Геокодирует точку старта, считает достижимую дистанцию из бюджета времени поездки и рекомендует города с достопримечательностями в дистанционной полосе вокруг цели.
// @description
// @description Основные возможности:
// @description - Подбор до 5 городов под длительность поездки
// @description - Список достопримечательностей города с фильтрацией по типам
// @description - Генерация детального маршрута по городу через LLM (синхронно и через очередь)
// @description - Статистика по каталогу мест

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/trip-recommender/docs"
	"github.com/trip-recommender/internal/config"
	httpDelivery "github.com/trip-recommender/internal/delivery/http"
	"github.com/trip-recommender/internal/delivery/http/handler"
	"github.com/trip-recommender/internal/domain/repository"
	"github.com/trip-recommender/internal/infrastructure/nominatim"
	"github.com/trip-recommender/internal/infrastructure/ollama"
	"github.com/trip-recommender/internal/pkg/logger"
	"github.com/trip-recommender/internal/repository/cache"
	"github.com/trip-recommender/internal/repository/catalog"
	"github.com/trip-recommender/internal/repository/postgres"
	redisRepo "github.com/trip-recommender/internal/repository/redis"
	"github.com/trip-recommender/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Recommender")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// 3. Initialize place catalog (csv file or postgres)
	var placeRepo repository.PlaceRepository
	var db *postgres.DB

	switch cfg.Catalog.Source {
	case "postgres":
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		placeRepo = postgres.NewPlaceRepository(db)
		log.Info("PostgreSQL catalog connected")
	default:
		placeRepo, err = catalog.NewCSVRepository(cfg.Catalog.CSVPath, log)
		if err != nil {
			log.Fatal("Failed to load CSV catalog",
				zap.String("path", cfg.Catalog.CSVPath),
				zap.Error(err))
		}
		log.Info("CSV catalog loaded", zap.String("path", cfg.Catalog.CSVPath))
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
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories and external clients
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geocoder := nominatim.NewNominatimClient(&cfg.Nominatim, log)
	llm := ollama.NewOllamaClient(&cfg.Ollama, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	recommendUC := usecase.NewRecommendUseCase(
		placeRepo,
		geocoder,
		cacheRepo,
		cfg.Trip,
		cfg.Cache,
		log,
	)
	placeUC := usecase.NewPlaceUseCase(placeRepo, log)
	itineraryUC := usecase.NewItineraryUseCase(placeRepo, llm, streamRepo, log)
	statsUC := usecase.NewStatsUseCase(placeRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	recommendHandler := handler.NewRecommendHandler(recommendUC, log)
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	itineraryHandler := handler.NewItineraryHandler(itineraryUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		recommendHandler,
		placeHandler,
		itineraryHandler,
		statsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
