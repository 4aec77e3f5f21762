package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/middleware"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
)

type KitchenHandler struct {
	auth        *service.KitchenAuth
	rateLimiter *middleware.RateLimiter
}

func NewKitchenHandler(auth *service.KitchenAuth, rateLimiter *middleware.RateLimiter) *KitchenHandler {
	return &KitchenHandler{auth: auth, rateLimiter: rateLimiter}
}

func (h *KitchenHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/kitchens", limited(h.rateLimiter, h.CreateKitchen)...)
}

// CreateKitchen allocates a new, empty kitchen and returns its token.
func (h *KitchenHandler) CreateKitchen(c *gin.Context) {
	kitchenID, token, err := h.auth.NewKitchen()
	if err != nil {
		log.Printf("Failed to issue kitchen token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create kitchen"})
		return
	}
	c.JSON(http.StatusCreated, KitchenResponse{KitchenID: kitchenID, Token: token})
}
