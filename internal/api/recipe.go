package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/middleware"
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
)

type RecipeHandler struct {
	kitchens    *service.KitchenRegistry
	forms       *service.FormValidator
	images      *service.ImageService
	rateLimiter *middleware.RateLimiter
}

func NewRecipeHandler(kitchens *service.KitchenRegistry, forms *service.FormValidator, images *service.ImageService, rateLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		kitchens:    kitchens,
		forms:       forms,
		images:      images,
		rateLimiter: rateLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/export", h.ExportRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/form", h.GetRecipeForm)
		recipes.POST("", limited(h.rateLimiter, h.CreateRecipe)...)
		recipes.POST("/image", limited(h.rateLimiter, h.UploadImage)...)
		recipes.PUT("/:id", limited(h.rateLimiter, h.UpdateRecipe)...)
		recipes.DELETE("/:id", limited(h.rateLimiter, h.DeleteRecipe)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	result := currentKitchen(c, h.kitchens).Recipes.List(c.Request.Context())
	c.JSON(http.StatusOK, RecipeListResponse{
		Recipes: result.Recipes,
		Count:   len(result.Recipes),
		Corrupt: result.Corrupt,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := currentKitchen(c, h.kitchens).Recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GetRecipeForm returns the authoring form pre-filled for editing.
func (h *RecipeHandler) GetRecipeForm(c *gin.Context) {
	id := c.Param("id")
	if model.IsBuiltinID(id) {
		h.writeError(c, service.ErrBuiltinImmutable)
		return
	}
	recipe, err := currentKitchen(c, h.kitchens).Recipes.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.Prefill(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	kitchen := currentKitchen(c, h.kitchens)
	draft, ok := h.bindForm(c)
	if !ok {
		return
	}

	draft.Image = h.images.Offload(c.Request.Context(), kitchen.ID, draft.Image)
	recipe, err := kitchen.Recipes.Add(c.Request.Context(), draft)
	h.writeMutation(c, http.StatusCreated, recipe, err)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")
	if model.IsBuiltinID(id) {
		h.writeError(c, service.ErrBuiltinImmutable)
		return
	}

	kitchen := currentKitchen(c, h.kitchens)
	// resolve the recipe first so an unknown id never uploads an image
	if _, err := kitchen.Recipes.Get(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	draft, ok := h.bindForm(c)
	if !ok {
		return
	}

	draft.Image = h.images.Offload(c.Request.Context(), kitchen.ID, draft.Image)
	recipe, err := kitchen.Recipes.Update(c.Request.Context(), draft.WithID(id))
	h.writeMutation(c, http.StatusOK, recipe, err)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	err := currentKitchen(c, h.kitchens).Recipes.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrQuotaExceeded) {
		c.JSON(http.StatusOK, gin.H{"warning": service.QuotaMessage})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage accepts a multipart "image" file and returns the value to put in
// the form's image field.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Errors: map[string]string{"image": service.MsgImageNotAnImage},
		})
		return
	}

	var dataURL string
	f, err := file.Open()
	if err == nil {
		defer f.Close()
		dataURL, err = service.EncodeImageUpload(file.Header.Get("Content-Type"), file.Size, f)
	} else {
		err = service.FieldErrors{"image": service.MsgImageReadFailed}
	}

	var fields service.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fields})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	image := h.images.Offload(c.Request.Context(), middleware.KitchenID(c), dataURL)
	c.JSON(http.StatusOK, gin.H{"image": image})
}

// bindForm decodes and validates the submitted form. On failure the response
// has been written.
func (h *RecipeHandler) bindForm(c *gin.Context) (model.RecipeDraft, bool) {
	var form service.RecipeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return model.RecipeDraft{}, false
	}

	draft, err := h.forms.Validate(form)
	var fields service.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fields})
		return model.RecipeDraft{}, false
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.RecipeDraft{}, false
	}

	return draft, true
}

func (h *RecipeHandler) writeMutation(c *gin.Context, status int, recipe model.Recipe, err error) {
	if errors.Is(err, store.ErrQuotaExceeded) {
		c.JSON(status, RecipeMutationResponse{Recipe: recipe, Warning: service.QuotaMessage})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(status, RecipeMutationResponse{Recipe: recipe})
}

func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case errors.Is(err, service.ErrBuiltinImmutable):
		c.JSON(http.StatusForbidden, gin.H{"error": "built-in recipes cannot be changed"})
	case errors.Is(err, store.ErrUnavailable):
		log.Printf("Recipe storage unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe storage is unavailable, try again"})
	default:
		log.Printf("Recipe request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
