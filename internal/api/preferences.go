package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
)

type PreferenceHandler struct {
	kitchens *service.KitchenRegistry
}

func NewPreferenceHandler(kitchens *service.KitchenRegistry) *PreferenceHandler {
	return &PreferenceHandler{kitchens: kitchens}
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("", h.GetPreferences)
		prefs.PUT("", h.UpdatePreferences)
		prefs.POST("/theme/toggle", h.ToggleTheme)
	}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, preferencesResponse(currentKitchen(c, h.kitchens), nil))
}

// UpdatePreferences applies whichever fields are present. Unknown values are
// ignored and listed in the response.
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	prefs := currentKitchen(c, h.kitchens).Preferences
	var ignored []string
	if req.Theme != nil && !prefs.SetTheme(ctx, *req.Theme) {
		ignored = append(ignored, "theme")
	}
	if req.Font != nil && !prefs.SetFont(ctx, *req.Font) {
		ignored = append(ignored, "font")
	}
	if req.ColorTheme != nil && !prefs.SetColorTheme(ctx, *req.ColorTheme) {
		ignored = append(ignored, "color_theme")
	}

	c.JSON(http.StatusOK, preferencesResponse(currentKitchen(c, h.kitchens), ignored))
}

func (h *PreferenceHandler) ToggleTheme(c *gin.Context) {
	kitchen := currentKitchen(c, h.kitchens)
	kitchen.Preferences.ToggleTheme(c.Request.Context())
	c.JSON(http.StatusOK, preferencesResponse(kitchen, nil))
}

func preferencesResponse(k *service.Kitchen, ignored []string) PreferencesResponse {
	current := k.Preferences.Preferences()
	return PreferencesResponse{
		Preferences: current,
		Palette:     activePalette(current),
		Fonts:       model.FontOptions(),
		ColorThemes: model.ColorThemeOptions(),
		Root: RootResponse{
			Class:      k.Root.Class(),
			Attributes: k.Root.Attributes(),
		},
		Ignored: ignored,
	}
}

func activePalette(p model.Preferences) model.Palette {
	opt, ok := model.LookupColorTheme(p.ColorTheme)
	if !ok {
		opt, _ = model.LookupColorTheme(model.DefaultColorTheme)
	}
	if p.Theme == model.ThemeDark {
		return opt.Dark
	}
	return opt.Light
}
