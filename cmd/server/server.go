package main

import (
	"fmt"

	"codeberg.org/hitlog/analyzer/internal/config"
	apierrors "codeberg.org/hitlog/analyzer/internal/errors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// per-IP rate limit on analysis runs; analyses are CPU-bound one-shots
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit %q: %w", cfg.RateLimit, err)
	}

	analyzeLimit := mgin.NewMiddleware(
		limiter.New(memory.NewStore(), rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			apierrors.TooManyRequests(c, "")
		}),
	)

	server := &Server{
		config:       cfg,
		router:       gin.Default(),
		analyzeLimit: analyzeLimit,
	}

	RegisterRoutes(server.router, server)

	return server, nil
}
