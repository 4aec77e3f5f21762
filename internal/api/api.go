package api

import (
	"github.com/pageza/ghibli-kitchen/backend/internal/middleware"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
)

// Services are the dependencies of the HTTP layer.
type Services struct {
	Kitchens *service.KitchenRegistry
	Auth     *service.KitchenAuth
	Forms    *service.FormValidator
	Images   *service.ImageService
	// RateLimiter and KitchenRateLimiter are nil when Redis is not configured.
	RateLimiter        *middleware.RateLimiter
	KitchenRateLimiter *middleware.RateLimiter
	DefaultKitchen     string
}
