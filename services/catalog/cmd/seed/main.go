package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"creator-hub/pkg/cache"
	"creator-hub/pkg/config"
	"creator-hub/pkg/database"
	"creator-hub/pkg/logger"
	"creator-hub/pkg/queue"
	"creator-hub/pkg/s3"
	"creator-hub/services/catalog/internal/repo/persistent"
	"creator-hub/services/catalog/internal/usecase"
)

func main() {
	var (
		assetDir     = flag.String("assets", "", "directory with creator avatar/cover images to upload to S3")
		products     = flag.Bool("products", false, "top up every creator's shop with demo products")
		demoUser     = flag.String("user", "demo", "demo username to create, empty to skip")
		demoPassword = flag.String("password", "demo-password", "demo user password")
		seed         = flag.Int64("seed", time.Now().UnixNano(), "random seed for engagement counts and prices")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Redis and RabbitMQ let a running API drop its cached reads once seeding writes land.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (running API caches expire by TTL)", err)
		redisClient = nil
	}

	var publisher usecase.EventPublisher
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without catalog events)", err)
	} else {
		publisher = queueClient
		defer queueClient.Close()
	}

	s := &seeder{
		catalog: usecase.NewCatalogUseCase(
			persistent.NewCatalogRepository(db),
			cache.NewQueryCache(redisClient, cfg.CacheTTL),
			publisher,
			log,
		),
		users:    usecase.NewUserUseCase(persistent.NewUserRepository(db), log),
		assetDir: *assetDir,
		rng:      rand.New(rand.NewSource(*seed)),
		log:      log,
	}

	if *assetDir != "" {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
		s.uploader = s3Client
	}

	opts := seedOptions{
		Products:     *products,
		DemoUser:     *demoUser,
		DemoPassword: *demoPassword,
	}
	if err := s.Run(context.Background(), opts); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	if redisClient != nil {
		redisClient.Close()
	}
	log.Info("Database seeded successfully!")
}
