package model

// Recipe is one card in the catalog. The JSON shape is the one persisted in the
// recipes record and exchanged with the authoring form.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tag         string   `json:"tag"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Mood        string   `json:"mood"`
	Time        string   `json:"time"`
	Serves      string   `json:"serves"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	// IsDefault is derived when the merged view is built; user recipes are
	// persisted with it false.
	IsDefault bool `json:"isDefault"`
}

// RecipeDraft holds the user-editable fields of a recipe before an id is assigned.
type RecipeDraft struct {
	Name        string   `json:"name"`
	Tag         string   `json:"tag"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Mood        string   `json:"mood"`
	Time        string   `json:"time"`
	Serves      string   `json:"serves"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// Clone returns a deep copy so callers can't mutate cached slices.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	out.Steps = append([]string(nil), r.Steps...)
	return out
}

// Draft strips identity from a recipe.
func (r Recipe) Draft() RecipeDraft {
	return RecipeDraft{
		Name:        r.Name,
		Tag:         r.Tag,
		Description: r.Description,
		Image:       r.Image,
		Mood:        r.Mood,
		Time:        r.Time,
		Serves:      r.Serves,
		Ingredients: append([]string(nil), r.Ingredients...),
		Steps:       append([]string(nil), r.Steps...),
	}
}

// WithID materialises a draft as a user recipe.
func (d RecipeDraft) WithID(id string) Recipe {
	return Recipe{
		ID:          id,
		Name:        d.Name,
		Tag:         d.Tag,
		Description: d.Description,
		Image:       d.Image,
		Mood:        d.Mood,
		Time:        d.Time,
		Serves:      d.Serves,
		Ingredients: append([]string(nil), d.Ingredients...),
		Steps:       append([]string(nil), d.Steps...),
		IsDefault:   false,
	}
}
