package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedIsolatesKitchens(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	a := Scoped(backend, "a")
	b := Scoped(backend, "b")

	require.NoError(t, a.Set(ctx, KeyTheme, "dark"))

	got, err := a.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	_, err = b.Get(ctx, KeyTheme)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBackendDelete(t *testing.T) {
	ctx := context.Background()
	kv := Scoped(NewMemoryBackend(), "k")

	require.NoError(t, kv.Set(ctx, KeyFont, "inter"))
	require.NoError(t, kv.Delete(ctx, KeyFont))
	_, err := kv.Get(ctx, KeyFont)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent record is not an error
	assert.NoError(t, kv.Delete(ctx, KeyFont))
}

func TestWithQuota(t *testing.T) {
	ctx := context.Background()
	kv := WithQuota(Scoped(NewMemoryBackend(), "k"), 8)

	require.NoError(t, kv.Set(ctx, KeyTheme, "light"))

	err := kv.Set(ctx, KeyRecipes, strings.Repeat("x", 9))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// the rejected write never reached the backend
	_, err = kv.Get(ctx, KeyRecipes)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWithQuotaDefault(t *testing.T) {
	q := WithQuota(Scoped(NewMemoryBackend(), "k"), 0).(*quota)
	assert.Equal(t, DefaultQuotaBytes, q.maxBytes)
}

func TestClassifySQLError(t *testing.T) {
	full := &pq.Error{Code: "53100", Message: "could not extend file"}
	assert.ErrorIs(t, classifySQLError(full), ErrQuotaExceeded)

	limit := fmt.Errorf("exec: %w", &pq.Error{Code: "54000"})
	assert.ErrorIs(t, classifySQLError(limit), ErrQuotaExceeded)

	sqliteFull := errors.New("database or disk is full")
	assert.ErrorIs(t, classifySQLError(sqliteFull), ErrQuotaExceeded)

	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	assert.ErrorIs(t, classifySQLError(refused), ErrUnavailable)

	other := &pq.Error{Code: "23505"}
	err := classifySQLError(other)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestClassifyRedisError(t *testing.T) {
	oom := errors.New("OOM command not allowed when used memory > 'maxmemory'.")
	assert.ErrorIs(t, classifyRedisError(oom), ErrQuotaExceeded)

	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	assert.ErrorIs(t, classifyRedisError(refused), ErrUnavailable)
}
