// Package store persists the four per-kitchen records (user recipes, theme,
// font, color theme) in a pluggable key-value backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Record keys. They match the keys the catalog has always used in browser
// storage, so exported data can be imported verbatim.
const (
	KeyRecipes    = "ghibli-kitchen-recipes"
	KeyTheme      = "ghibli-kitchen-theme"
	KeyFont       = "ghibli-kitchen-font"
	KeyColorTheme = "ghibli-kitchen-color-theme"
)

// DefaultQuotaBytes is the per-record size limit applied by WithQuota when no
// explicit limit is configured.
const DefaultQuotaBytes = 5 * 1024 * 1024

var (
	// ErrNotFound is returned by Get when the record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrQuotaExceeded is returned when a write does not fit in storage.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrUnavailable is returned when the backend can't be reached.
	ErrUnavailable = errors.New("storage unavailable")
)

// KV is the view a single kitchen has of its records.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend stores records for many kitchens, each in its own namespace.
type Backend interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
	Ping(ctx context.Context) error
}

type scoped struct {
	backend   Backend
	namespace string
}

// Scoped binds a backend to one kitchen namespace.
func Scoped(b Backend, namespace string) KV {
	return &scoped{backend: b, namespace: namespace}
}

func (s *scoped) Get(ctx context.Context, key string) (string, error) {
	return s.backend.Get(ctx, s.namespace, key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	return s.backend.Set(ctx, s.namespace, key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, s.namespace, key)
}

type quota struct {
	KV
	maxBytes int
}

// WithQuota rejects writes whose value is larger than maxBytes. A non-positive
// limit falls back to DefaultQuotaBytes.
func WithQuota(kv KV, maxBytes int) KV {
	if maxBytes <= 0 {
		maxBytes = DefaultQuotaBytes
	}
	return &quota{KV: kv, maxBytes: maxBytes}
}

func (q *quota) Set(ctx context.Context, key, value string) error {
	if len(value) > q.maxBytes {
		return fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrQuotaExceeded, key, len(value), q.maxBytes)
	}
	return q.KV.Set(ctx, key, value)
}

// classifyNetError maps connection failures to ErrUnavailable.
func classifyNetError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
