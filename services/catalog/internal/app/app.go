package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-hub/pkg/cache"
	"creator-hub/pkg/config"
	"creator-hub/pkg/database"
	"creator-hub/pkg/logger"
	"creator-hub/pkg/queue"
	"creator-hub/services/catalog/internal/repo/persistent"
	"creator-hub/services/catalog/internal/usecase"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg            *config.Config
	log            *logger.Logger
	db             *gorm.DB
	redisClient    *redis.Client
	queueClient    *queue.Client
	catalogUseCase usecase.CatalogUseCase
	httpServer     *http.Server
	stopConsumer   context.CancelFunc
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without cache and rate limiting)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without catalog events)", err)
		queueClient = nil
	}

	var publisher usecase.EventPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	catalogUseCase := usecase.NewCatalogUseCase(
		persistent.NewCatalogRepository(db),
		cache.NewQueryCache(redisClient, cfg.CacheTTL),
		publisher,
		log,
	)

	return &App{
		cfg:            cfg,
		log:            log,
		db:             db,
		redisClient:    redisClient,
		queueClient:    queueClient,
		catalogUseCase: catalogUseCase,
	}, nil
}

func (a *App) Run() error {
	consumerCtx, cancel := context.WithCancel(context.Background())
	a.stopConsumer = cancel

	// Writes from other processes (seeding, other instances) arrive as events.
	err := a.queueClient.ConsumeCatalogEvents(consumerCtx, func(event queue.CatalogEvent) error {
		a.log.Debug("Catalog changed: %s %s", event.Entity, event.ID)
		return a.catalogUseCase.InvalidateCache(consumerCtx)
	})
	if err != nil {
		a.log.Warn("Failed to consume catalog events: %v", err)
	}

	router := NewRouter(a.cfg, a.log, a.catalogUseCase, a.redisClient)

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Catalog service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down catalog service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.stopConsumer != nil {
		a.stopConsumer()
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	if err := a.queueClient.Close(); err != nil {
		a.log.Error("Error closing RabbitMQ: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Catalog service exited")
	return nil
}
