package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/soloflowhq/soloflow-api/internal/cache"
	"github.com/soloflowhq/soloflow-api/internal/config"
	"github.com/soloflowhq/soloflow-api/internal/db"
	"github.com/soloflowhq/soloflow-api/internal/logging"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/routes"
	"github.com/soloflowhq/soloflow-api/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	conn := db.NewDB(cfg, log)
	c := cache.New(cfg.RedisURL, log)
	uploader := storage.NewUploader(cfg)

	if uploader == nil {
		log.Warn().Msg("S3 not configured, avatar upload disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, conn, cfg, log, c, uploader)

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
