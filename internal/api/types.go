package api

import (
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
)

// RecipeListResponse is the merged catalog of a kitchen.
type RecipeListResponse struct {
	Recipes []model.Recipe `json:"recipes"`
	Count   int            `json:"count"`
	Corrupt bool           `json:"corrupt"`
}

// RecipeMutationResponse is returned by create and update. Warning is set when
// the change was applied but could not be saved.
type RecipeMutationResponse struct {
	Recipe  model.Recipe `json:"recipe"`
	Warning string       `json:"warning,omitempty"`
}

// ValidationErrorResponse carries field-level form errors.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// KitchenResponse is returned when a kitchen is created.
type KitchenResponse struct {
	KitchenID string `json:"kitchen_id"`
	Token     string `json:"token"`
}

// RootResponse describes the attributes of the page's root element.
type RootResponse struct {
	Class      string            `json:"class"`
	Attributes map[string]string `json:"attributes"`
}

// PreferencesResponse is the settings panel: current values, the options to
// choose from and how they are applied.
type PreferencesResponse struct {
	Preferences model.Preferences        `json:"preferences"`
	Palette     model.Palette            `json:"palette"`
	Fonts       []model.FontOption       `json:"fonts"`
	ColorThemes []model.ColorThemeOption `json:"color_themes"`
	Root        RootResponse             `json:"root"`
	Ignored     []string                 `json:"ignored,omitempty"`
}

// UpdatePreferencesRequest is a partial update; absent fields are left alone.
type UpdatePreferencesRequest struct {
	Theme      *model.Theme      `json:"theme"`
	Font       *model.Font       `json:"font"`
	ColorTheme *model.ColorTheme `json:"color_theme"`
}
