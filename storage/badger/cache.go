package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sociolens/tweetlens/core"
	"github.com/sociolens/tweetlens/storage"
)

// DefaultSearchTTL is how long a cached search answers repeat queries.
const DefaultSearchTTL = time.Hour

// SearchCacheRepository implements storage.SearchCacheRepository for
// BadgerDB, using the store's native TTL support for expiry.
type SearchCacheRepository struct {
	backend *Backend
	ttl     time.Duration
}

var _ storage.SearchCacheRepository = (*SearchCacheRepository)(nil)

// CacheOption configures a SearchCacheRepository.
type CacheOption func(*SearchCacheRepository)

// WithSearchTTL sets how long cached searches live.
// Default is DefaultSearchTTL.
func WithSearchTTL(ttl time.Duration) CacheOption {
	return func(r *SearchCacheRepository) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewSearchCacheRepository creates a new SearchCacheRepository.
func NewSearchCacheRepository(backend *Backend, opts ...CacheOption) (*SearchCacheRepository, error) {
	r := &SearchCacheRepository{
		backend: backend,
		ttl:     DefaultSearchTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases repository resources. The shared backend stays open.
func (r *SearchCacheRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SearchCacheRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveSearch stores which record IDs answered a query.
func (r *SearchCacheRepository) SaveSearch(ctx context.Context, cached *core.CachedSearch) error {
	if cached.SearchedAt.IsZero() {
		cached.SearchedAt = time.Now().UTC()
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		entry := badger.NewEntry(makeSearchCacheKey(cached.Query), storage.MarshalCachedSearch(cached)).
			WithTTL(r.ttl)
		if err := tx.SetEntry(entry); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetCachedSearch retrieves the cached answer for a query.
func (r *SearchCacheRepository) GetCachedSearch(ctx context.Context, query string) (*core.CachedSearch, error) {
	var result *core.CachedSearch
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSearchCacheKey(query))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalCachedSearch(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// InvalidateSearch drops the cached answer for a query, if any.
func (r *SearchCacheRepository) InvalidateSearch(ctx context.Context, query string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeSearchCacheKey(query)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
