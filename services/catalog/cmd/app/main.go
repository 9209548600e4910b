package main

import (
	"creator-hub/pkg/config"
	app "creator-hub/services/catalog/internal/app"

	_ "creator-hub/services/catalog/docs" // Swagger docs
)

// @title           Creator Hub Catalog API
// @version         1.0
// @description     Read API for creators, their membership tiers, posts and shop products

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
