package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sociolens/tweetlens/core"
	"github.com/sociolens/tweetlens/storage"
)

func setupCacheRepo(t *testing.T, opts ...CacheOption) storage.SearchCacheRepository {
	t.Helper()
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	repo, err := NewSearchCacheRepository(backend, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestSaveAndGetCachedSearch(t *testing.T) {
	repo := setupCacheRepo(t)
	ctx := context.Background()

	cached := &core.CachedSearch{
		Query:     "blockchain OR crypto -scam",
		RecordIds: []core.ID{"1", "2"},
	}
	require.NoError(t, repo.SaveSearch(ctx, cached))
	assert.False(t, cached.SearchedAt.IsZero())

	got, err := repo.GetCachedSearch(ctx, "blockchain OR crypto -scam")
	require.NoError(t, err)
	assert.Equal(t, cached.Query, got.Query)
	assert.Equal(t, cached.RecordIds, got.RecordIds)
}

func TestGetCachedSearch_Miss(t *testing.T) {
	repo := setupCacheRepo(t)

	_, err := repo.GetCachedSearch(context.Background(), "never seen")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCachedSearch_Expires(t *testing.T) {
	repo := setupCacheRepo(t, WithSearchTTL(time.Millisecond))
	ctx := context.Background()

	require.NoError(t, repo.SaveSearch(ctx, &core.CachedSearch{
		Query:     "ephemeral",
		RecordIds: []core.ID{"1"},
	}))

	time.Sleep(10 * time.Millisecond)

	_, err := repo.GetCachedSearch(ctx, "ephemeral")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInvalidateSearch(t *testing.T) {
	repo := setupCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSearch(ctx, &core.CachedSearch{
		Query:     "short lived",
		RecordIds: []core.ID{"1"},
	}))
	require.NoError(t, repo.InvalidateSearch(ctx, "short lived"))

	_, err := repo.GetCachedSearch(ctx, "short lived")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Invalidating an absent entry is not an error.
	assert.NoError(t, repo.InvalidateSearch(ctx, "never cached"))
}
