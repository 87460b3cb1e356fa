package storage

import (
	"context"

	"github.com/sociolens/tweetlens/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// RecordRepository provides operations for managing collected records.
type RecordRepository interface {
	Repository
	// AddRecords adds one or more records to storage.
	// Records without an ID get a content-derived one, so the same text
	// arriving twice overwrites rather than duplicates.
	// Sets CollectedAt if not already set.
	// Returns the records with IDs and timestamps populated.
	AddRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error)

	// DeleteRecords removes records by their IDs.
	// Also removes associated author index entries.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteRecords(ctx context.Context, ids ...core.ID) error

	// GetRecord retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id core.ID) (*core.Record, error)

	// GetRecords retrieves multiple records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetRecords(ctx context.Context, ids ...core.ID) ([]*core.Record, error)

	// GetAllRecords returns the full corpus snapshot, in key order.
	// Search callers treat the snapshot as read-only.
	GetAllRecords(ctx context.Context) ([]*core.Record, error)

	// GetRecordsByAuthor retrieves all records posted by the given author.
	GetRecordsByAuthor(ctx context.Context, authorID string) ([]*core.Record, error)

	// CountRecords returns the number of stored records.
	CountRecords(ctx context.Context) (int, error)
}

// SearchCacheRepository provides operations for caching resolved searches.
// Entries expire; an expired entry reads as ErrNotFound.
type SearchCacheRepository interface {
	Repository
	// SaveSearch stores which record IDs answered a query.
	// Sets SearchedAt if not already set.
	SaveSearch(ctx context.Context, cached *core.CachedSearch) error

	// GetCachedSearch retrieves the cached answer for a query.
	// Returns ErrNotFound if no live entry exists.
	GetCachedSearch(ctx context.Context, query string) (*core.CachedSearch, error)

	// InvalidateSearch drops the cached answer for a query, if any.
	InvalidateSearch(ctx context.Context, query string) error
}
