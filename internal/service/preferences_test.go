package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pageza/ghibli-kitchen/backend/internal/mocks"
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceDefaults(t *testing.T) {
	root := NewRootAttributes()
	p := NewPreferenceController(context.Background(), newKV(), root)

	assert.Equal(t, model.DefaultPreferences(), p.Preferences())
	assert.Equal(t, "", root.Class())
	assert.Equal(t, map[string]string{AttrFont: "display", AttrColorTheme: "ghibli"}, root.Attributes())
}

func TestPreferencesReadOnceFromStore(t *testing.T) {
	ctx := context.Background()
	kv := newKV()
	require.NoError(t, kv.Set(ctx, store.KeyTheme, "dark"))
	require.NoError(t, kv.Set(ctx, store.KeyFont, "comic-sans"))
	require.NoError(t, kv.Set(ctx, store.KeyColorTheme, "ocean"))

	root := NewRootAttributes()
	p := NewPreferenceController(ctx, kv, root)

	assert.Equal(t, model.ThemeDark, p.Theme())
	assert.Equal(t, model.DefaultFont, p.Font(), "invalid stored font falls back to default")
	assert.Equal(t, model.ColorThemeOcean, p.ColorTheme())
	assert.Equal(t, "dark", root.Class())
	assert.Equal(t, map[string]string{AttrFont: "display", AttrColorTheme: "ocean"}, root.Attributes())

	// later writes by someone else are not picked up
	require.NoError(t, kv.Set(ctx, store.KeyTheme, "light"))
	assert.Equal(t, model.ThemeDark, p.Theme())
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	kv := newKV()
	p := NewPreferenceController(ctx, kv, NewRootAttributes())

	assert.False(t, p.SetTheme(ctx, "purple"))
	assert.Equal(t, model.ThemeLight, p.Theme())
	_, err := kv.Get(ctx, store.KeyTheme)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.False(t, p.SetFont(ctx, "comic-sans"))
	assert.False(t, p.SetColorTheme(ctx, "neon"))
	assert.Equal(t, model.DefaultPreferences(), p.Preferences())
}

func TestSettersApplyThenPersist(t *testing.T) {
	ctx := context.Background()
	kv := newKV()
	root := &mocks.MockDocumentRoot{}
	root.On("SetDark", false).Once()
	root.On("SetAttribute", AttrFont, "display").Once()
	root.On("SetAttribute", AttrColorTheme, "ghibli").Once()
	p := NewPreferenceController(ctx, kv, root)

	root.On("SetDark", true).Once()
	root.On("SetAttribute", AttrFont, "playfair").Once()
	root.On("SetAttribute", AttrColorTheme, "sunset").Once()

	assert.True(t, p.SetTheme(ctx, model.ThemeDark))
	assert.True(t, p.SetFont(ctx, model.FontPlayfair))
	assert.True(t, p.SetColorTheme(ctx, model.ColorThemeSunset))
	root.AssertExpectations(t)

	for key, want := range map[string]string{
		store.KeyTheme:      "dark",
		store.KeyFont:       "playfair",
		store.KeyColorTheme: "sunset",
	} {
		got, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	kv := newKV()
	root := NewRootAttributes()
	p := NewPreferenceController(ctx, kv, root)

	assert.Equal(t, model.ThemeDark, p.ToggleTheme(ctx))
	assert.Equal(t, "dark", root.Class())
	assert.Equal(t, model.ThemeLight, p.ToggleTheme(ctx))
	assert.Equal(t, "", root.Class())

	stored, err := kv.Get(ctx, store.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", stored)
}

func TestPreferenceWriteFailureKeepsValue(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{KV: newKV(), err: errors.New("unavailable")}
	p := NewPreferenceController(ctx, kv, NewRootAttributes())

	assert.True(t, p.SetFont(ctx, model.FontInter))
	assert.Equal(t, model.FontInter, p.Font())
}

func TestPreferenceReadFailureUsesDefaults(t *testing.T) {
	ctx := context.Background()
	kv := &mocks.MockKV{}
	kv.On("Get", mock.Anything, mock.Anything).Return("", store.ErrUnavailable)
	kv.On("Set", mock.Anything, store.KeyColorTheme, "lavender").Return(nil).Once()

	p := NewPreferenceController(ctx, kv, NewRootAttributes())
	assert.Equal(t, model.DefaultPreferences(), p.Preferences())

	assert.True(t, p.SetColorTheme(ctx, model.ColorThemeLavender))
	kv.AssertNumberOfCalls(t, "Get", 3)
	kv.AssertExpectations(t)
}
