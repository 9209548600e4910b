package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"creator-hub/pkg/apperror"
	"creator-hub/pkg/config"
	"creator-hub/pkg/logger"
	"creator-hub/pkg/middleware"
	catalogHTTP "creator-hub/services/catalog/internal/controller/http"
	"creator-hub/services/catalog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "creator-hub/services/catalog/docs" // Swagger docs
)

// NewRouter builds the HTTP surface: health, docs, the /api read routes and,
// when cfg.PublicDir is set, the front-end bundle with index.html fallback.
// redisClient may be nil, which turns rate limiting off.
func NewRouter(cfg *config.Config, log *logger.Logger, catalogUseCase usecase.CatalogUseCase, redisClient *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute, log))

	catalogHandler := catalogHTTP.NewCatalogHandler(catalogUseCase, log)
	catalogHandler.RegisterRoutes(api)

	r.NoRoute(noRoute(cfg.PublicDir))

	return r
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", catalogHTTP.HeaderTotalCount, catalogHTTP.HeaderResultLabel},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}

func noRoute(publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if publicDir == "" || strings.HasPrefix(path, "/api/") || path == "/api" || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, catalogHTTP.ErrorResponse{Message: "Not found", Kind: apperror.KindNotFound})
			return
		}

		// Clean against a rooted path so ".." cannot leave publicDir.
		file := filepath.Join(publicDir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(publicDir, "index.html"))
	}
}
