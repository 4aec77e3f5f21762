package model

// Theme is the light/dark mode of the document.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Font identifies one of the selectable display fonts.
type Font string

const (
	FontDisplay     Font = "display"
	FontHandwritten Font = "handwritten"
	FontInter       Font = "inter"
	FontPlayfair    Font = "playfair"
)

// ColorTheme identifies a color palette.
type ColorTheme string

const (
	ColorThemeGhibli   ColorTheme = "ghibli"
	ColorThemeLavender ColorTheme = "lavender"
	ColorThemeOcean    ColorTheme = "ocean"
	ColorThemeSunset   ColorTheme = "sunset"
)

// Defaults used when nothing valid is stored.
const (
	DefaultTheme      = ThemeLight
	DefaultFont       = FontDisplay
	DefaultColorTheme = ColorThemeGhibli
)

// FontOption describes a font for the settings panel.
type FontOption struct {
	ID          Font   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClassName   string `json:"class_name"`
}

// Palette is the three named colors of a color theme in one mode.
type Palette struct {
	Cream string `json:"cream"`
	Sage  string `json:"sage"`
	Cocoa string `json:"cocoa"`
}

// ColorThemeOption describes a palette for the settings panel.
type ColorThemeOption struct {
	ID          ColorTheme `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Light       Palette    `json:"light"`
	Dark        Palette    `json:"dark"`
}

var fontOptions = []FontOption{
	{ID: FontDisplay, Name: "DM Serif Display", Description: "Elegant serif", ClassName: "font-display"},
	{ID: FontHandwritten, Name: "Courgette", Description: "Handwritten style", ClassName: "font-handwritten"},
	{ID: FontInter, Name: "Inter", Description: "Modern sans-serif", ClassName: "font-sans"},
	{ID: FontPlayfair, Name: "Playfair Display", Description: "Classic serif", ClassName: "font-serif"},
}

var colorThemeOptions = []ColorThemeOption{
	{
		ID: ColorThemeGhibli, Name: "Ghibli", Description: "Cream, sage, cocoa",
		Light: Palette{Cream: "#fdf5e6", Sage: "#c9d8c5", Cocoa: "#b08968"},
		Dark:  Palette{Cream: "#1a1a1a", Sage: "#4a5d4a", Cocoa: "#d4a574"},
	},
	{
		ID: ColorThemeLavender, Name: "Lavender Dreams", Description: "Soft purple tones",
		Light: Palette{Cream: "#f5f0ff", Sage: "#e8d5ff", Cocoa: "#b794d4"},
		Dark:  Palette{Cream: "#1a1620", Sage: "#3d2f4d", Cocoa: "#c9a8e8"},
	},
	{
		ID: ColorThemeOcean, Name: "Ocean Breeze", Description: "Cool blue greens",
		Light: Palette{Cream: "#e6f5f5", Sage: "#b8e0d8", Cocoa: "#5fa8a3"},
		Dark:  Palette{Cream: "#1a2323", Sage: "#2d4a47", Cocoa: "#7dd3cc"},
	},
	{
		ID: ColorThemeSunset, Name: "Sunset Glow", Description: "Warm oranges",
		Light: Palette{Cream: "#fff5e6", Sage: "#ffd9b3", Cocoa: "#ff8c42"},
		Dark:  Palette{Cream: "#1a1610", Sage: "#4a3d2d", Cocoa: "#ffa366"},
	},
}

// FontOptions returns the selectable fonts in display order.
func FontOptions() []FontOption {
	return append([]FontOption(nil), fontOptions...)
}

// ColorThemeOptions returns the selectable palettes in display order.
func ColorThemeOptions() []ColorThemeOption {
	return append([]ColorThemeOption(nil), colorThemeOptions...)
}

// Valid reports whether f is one of FontOptions.
func (f Font) Valid() bool {
	for _, o := range fontOptions {
		if o.ID == f {
			return true
		}
	}
	return false
}

// Valid reports whether c is one of ColorThemeOptions.
func (c ColorTheme) Valid() bool {
	for _, o := range colorThemeOptions {
		if o.ID == c {
			return true
		}
	}
	return false
}

// LookupColorTheme returns the palette metadata for c.
func LookupColorTheme(c ColorTheme) (ColorThemeOption, bool) {
	for _, o := range colorThemeOptions {
		if o.ID == c {
			return o, true
		}
	}
	return ColorThemeOption{}, false
}

// Preferences is a snapshot of the three appearance settings.
type Preferences struct {
	Theme      Theme      `json:"theme"`
	Font       Font       `json:"font"`
	ColorTheme ColorTheme `json:"color_theme"`
}

// DefaultPreferences returns the documented defaults.
func DefaultPreferences() Preferences {
	return Preferences{Theme: DefaultTheme, Font: DefaultFont, ColorTheme: DefaultColorTheme}
}
