package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ghibli-kitchen/backend/config"
	"github.com/pageza/ghibli-kitchen/backend/internal/api"
	"github.com/pageza/ghibli-kitchen/backend/internal/database"
	"github.com/pageza/ghibli-kitchen/backend/internal/middleware"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New wires the services onto the configured storage. s3Config may be nil.
func New(cfg *config.Config, res *database.Resources, s3Config *config.S3Config) *Server {
	gin.SetMode(config.GinMode())
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	var limiter, kitchenLimiter *middleware.RateLimiter
	if res.Redis != nil {
		limiter = middleware.NewMutationRateLimiter(res.Redis, cfg.RateLimitWindow, cfg.RateLimitLimit)
		kitchenLimiter = middleware.NewKitchenCreationRateLimiter(res.Redis, cfg.RateLimitWindow, cfg.KitchenRateLimit)
	} else {
		log.Printf("Redis not configured, recipe changes and kitchen creation are not rate limited")
	}

	api.RegisterRoutes(router, api.Services{
		Kitchens:           service.NewBoundedKitchenRegistry(res.Backend, cfg.QuotaBytes, cfg.MaxKitchens),
		Auth:               service.NewKitchenAuth(cfg.JWTSecret),
		Forms:              service.NewFormValidator(),
		Images:             service.NewImageService(s3Config),
		RateLimiter:        limiter,
		KitchenRateLimiter: kitchenLimiter,
		DefaultKitchen:     cfg.DefaultKitchen,
	})

	s := &Server{router: router, cfg: cfg}
	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler is the router behind the JSON error handler.
func (s *Server) Handler() http.Handler {
	return middleware.ErrorHandler(s.router)
}

// Start listens until the server is shut down.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
