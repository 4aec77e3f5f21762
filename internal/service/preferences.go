package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/pageza/ghibli-kitchen/backend/internal/model"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
)

// Attribute names applied to the document root.
const (
	AttrFont       = "data-font"
	AttrColorTheme = "data-color-theme"
)

// DocumentRoot is where appearance preferences take visual effect.
type DocumentRoot interface {
	SetDark(dark bool)
	SetAttribute(name, value string)
}

// RootAttributes is the DocumentRoot of a rendered page: the dark class plus
// data-* attributes on <html>. It is safe for concurrent use.
type RootAttributes struct {
	mu    sync.RWMutex
	dark  bool
	attrs map[string]string
}

func NewRootAttributes() *RootAttributes {
	return &RootAttributes{attrs: map[string]string{}}
}

func (r *RootAttributes) SetDark(dark bool) {
	r.mu.Lock()
	r.dark = dark
	r.mu.Unlock()
}

func (r *RootAttributes) SetAttribute(name, value string) {
	r.mu.Lock()
	r.attrs[name] = value
	r.mu.Unlock()
}

// Class is the class attribute of the root element.
func (r *RootAttributes) Class() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.dark {
		return "dark"
	}
	return ""
}

// Attributes returns a copy of the data attributes.
func (r *RootAttributes) Attributes() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.attrs))
	for k, v := range r.attrs {
		out[k] = v
	}
	return out
}

// PreferenceController holds the theme, font and color theme of a kitchen.
// Each accepted change is applied to the document root, then persisted.
type PreferenceController struct {
	kv   store.KV
	root DocumentRoot

	mu         sync.Mutex
	theme      model.Theme
	font       model.Font
	colorTheme model.ColorTheme
}

// NewPreferenceController reads the stored preferences once, falling back to
// the defaults for anything absent or invalid, and applies them to root.
func NewPreferenceController(ctx context.Context, kv store.KV, root DocumentRoot) *PreferenceController {
	p := &PreferenceController{
		kv:         kv,
		root:       root,
		theme:      model.DefaultTheme,
		font:       model.DefaultFont,
		colorTheme: model.DefaultColorTheme,
	}

	if v := model.Theme(p.read(ctx, store.KeyTheme)); v.Valid() {
		p.theme = v
	}
	if v := model.Font(p.read(ctx, store.KeyFont)); v.Valid() {
		p.font = v
	}
	if v := model.ColorTheme(p.read(ctx, store.KeyColorTheme)); v.Valid() {
		p.colorTheme = v
	}

	root.SetDark(p.theme == model.ThemeDark)
	root.SetAttribute(AttrFont, string(p.font))
	root.SetAttribute(AttrColorTheme, string(p.colorTheme))
	return p
}

func (p *PreferenceController) Theme() model.Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

func (p *PreferenceController) Font() model.Font {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.font
}

func (p *PreferenceController) ColorTheme() model.ColorTheme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.colorTheme
}

// Preferences returns all three settings at once.
func (p *PreferenceController) Preferences() model.Preferences {
	p.mu.Lock()
	defer p.mu.Unlock()
	return model.Preferences{Theme: p.theme, Font: p.font, ColorTheme: p.colorTheme}
}

// SetTheme reports false and changes nothing when v is not a known theme.
func (p *PreferenceController) SetTheme(ctx context.Context, v model.Theme) bool {
	if !v.Valid() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.applyTheme(ctx, v)
	return true
}

// ToggleTheme flips between light and dark and returns the new theme.
func (p *PreferenceController) ToggleTheme(ctx context.Context) model.Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := model.ThemeDark
	if p.theme == model.ThemeDark {
		next = model.ThemeLight
	}
	p.applyTheme(ctx, next)
	return next
}

// SetFont reports false and changes nothing when v is not a known font.
func (p *PreferenceController) SetFont(ctx context.Context, v model.Font) bool {
	if !v.Valid() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.font = v
	p.root.SetAttribute(AttrFont, string(v))
	p.write(ctx, store.KeyFont, string(v))
	return true
}

// SetColorTheme reports false and changes nothing when v is not a known palette.
func (p *PreferenceController) SetColorTheme(ctx context.Context, v model.ColorTheme) bool {
	if !v.Valid() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.colorTheme = v
	p.root.SetAttribute(AttrColorTheme, string(v))
	p.write(ctx, store.KeyColorTheme, string(v))
	return true
}

// applyTheme must be called with mu held.
func (p *PreferenceController) applyTheme(ctx context.Context, v model.Theme) {
	p.theme = v
	p.root.SetDark(v == model.ThemeDark)
	p.write(ctx, store.KeyTheme, string(v))
}

func (p *PreferenceController) read(ctx context.Context, key string) string {
	v, err := p.kv.Get(ctx, key)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[PreferenceController] Error loading %s: %v", key, err)
	}
	return v
}

func (p *PreferenceController) write(ctx context.Context, key, value string) {
	if err := p.kv.Set(ctx, key, value); err != nil {
		log.Printf("[PreferenceController] Error saving %s: %v", key, err)
	}
}
