package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/middleware"
)

// Pinger reports whether the store behind the API is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck returns the health status of the API and its store
func HealthCheck(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			log.Printf("Health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "storage unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Ghibli Kitchen API is running",
			"version": "v1.0.0",
		})
	}
}

// RegisterRoutes registers all API routes and HTML pages
func RegisterRoutes(router *gin.Engine, svc Services) {
	// Health check endpoint (no kitchen required)
	router.GET("/health", HealthCheck(svc.Kitchens))
	router.GET("/api/health", HealthCheck(svc.Kitchens))

	kitchenMW := middleware.KitchenMiddleware(svc.Auth, svc.DefaultKitchen)

	NewPageHandler(svc.Kitchens).RegisterRoutes(router, kitchenMW)

	v1 := router.Group("/api/v1")
	NewKitchenHandler(svc.Auth, svc.KitchenRateLimiter).RegisterRoutes(v1)

	scoped := v1.Group("")
	scoped.Use(kitchenMW)
	NewRecipeHandler(svc.Kitchens, svc.Forms, svc.Images, svc.RateLimiter).RegisterRoutes(scoped)
	NewPreferenceHandler(svc.Kitchens).RegisterRoutes(scoped)

	if svc.RateLimiter != nil {
		RegisterRateLimitRoutes(scoped, svc.RateLimiter)
	}
}

// RegisterRateLimitRoutes registers an endpoint for checking the kitchen's
// remaining recipe changes
func RegisterRateLimitRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	router.GET("/rate-limits/recipe-changes", func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), middleware.KitchenID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":      limiter.Limit(),
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     fmt.Sprint(limiter.Window()),
		})
	})
}
