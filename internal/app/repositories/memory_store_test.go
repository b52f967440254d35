package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

func TestMemorySessionStore_GetUnknownSession(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.GetHistory(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemorySessionStore_ReplaceThenGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	err := store.ReplaceHistory(ctx, "s1", []string{"198:111", "640:151", "198:111"})
	require.NoError(t, err)

	history, err := store.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"198:111", "640:151"}, history)
}

func TestMemorySessionStore_AppendCreatesAndDeduplicates(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	history, err := store.AppendHistory(ctx, "s1", []string{"198:111"})
	require.NoError(t, err)
	assert.Equal(t, []string{"198:111"}, history)

	history, err = store.AppendHistory(ctx, "s1", []string{"640:151", "198:111", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"198:111", "640:151"}, history)
}

func TestMemorySessionStore_SessionsAreIsolated(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.ReplaceHistory(ctx, "s1", []string{"198:111"}))
	require.NoError(t, store.ReplaceHistory(ctx, "s2", []string{"640:151"}))

	h1, err := store.GetHistory(ctx, "s1")
	require.NoError(t, err)
	h2, err := store.GetHistory(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, []string{"198:111"}, h1)
	assert.Equal(t, []string{"640:151"}, h2)
}

func TestMemorySessionStore_ReturnedSliceIsACopy(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.ReplaceHistory(ctx, "s1", []string{"198:111"}))
	history, err := store.GetHistory(ctx, "s1")
	require.NoError(t, err)
	history[0] = "mutated"

	again, err := store.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"198:111"}, again)
}

func TestMemorySessionStore_ConcurrentAppends(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.AppendHistory(ctx, "shared", []string{fmt.Sprintf("198:%03d", n)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history, err := store.GetHistory(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, history, 50)
}
