package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/middleware"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
)

// currentKitchen returns the kitchen resolved by middleware.KitchenMiddleware.
func currentKitchen(c *gin.Context, kitchens *service.KitchenRegistry) *service.Kitchen {
	return kitchens.Kitchen(c.Request.Context(), middleware.KitchenID(c))
}

// limited wraps handlers with the rate limiter when one is configured.
func limited(rl *middleware.RateLimiter, handler gin.HandlerFunc) []gin.HandlerFunc {
	if rl == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{rl.RateLimitMiddleware(), handler}
}
