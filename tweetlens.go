// Copyright 2026 Sociolens
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tweetlens

import (
	"context"
	"log/slog"
	"time"

	"github.com/sociolens/tweetlens/ai"
	"github.com/sociolens/tweetlens/ai/openai"
	"github.com/sociolens/tweetlens/analyzer"
	"github.com/sociolens/tweetlens/collector"
	"github.com/sociolens/tweetlens/core"
	"github.com/sociolens/tweetlens/storage"
	"github.com/sociolens/tweetlens/storage/badger"
)

// Archive is the top-level handle over a record corpus: storage, the
// semantic service, and factories for the pipeline pieces built on them.
type Archive struct {
	backend    *badger.Backend
	recordRepo storage.RecordRepository
	cacheRepo  storage.SearchCacheRepository
	service    ai.SemanticService
	logger     *slog.Logger
}

// ArchiveOption configures an Archive.
type ArchiveOption func(*archiveOptions)

type archiveOptions struct {
	aiConfig  *ai.Config
	searchTTL time.Duration
}

// WithAIConfig sets the semantic service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) ArchiveOption {
	return func(o *archiveOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithSearchTTL sets how long resolved searches are cached.
// Default is badger.DefaultSearchTTL.
func WithSearchTTL(ttl time.Duration) ArchiveOption {
	return func(o *archiveOptions) {
		o.searchTTL = ttl
	}
}

// Open opens (or creates) an archive at filePath.
func Open(filePath string, opts ...ArchiveOption) (*Archive, error) {
	// Apply options
	options := &archiveOptions{
		aiConfig:  ai.DefaultConfig(),
		searchTTL: badger.DefaultSearchTTL,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create record repository
	recordRepo, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create search cache repository
	cacheRepo, err := badger.NewSearchCacheRepository(backend, badger.WithSearchTTL(options.searchTTL))
	if err != nil {
		recordRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create the semantic service with configured settings
	service, err := openai.NewService(options.aiConfig)
	if err != nil {
		cacheRepo.Close()
		recordRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Archive{
		backend:    backend,
		recordRepo: recordRepo,
		cacheRepo:  cacheRepo,
		service:    service,
		logger:     slog.Default(),
	}, nil
}

// Close releases the archive's repositories and backend.
func (a *Archive) Close() error {
	if err := a.cacheRepo.Close(); err != nil {
		a.logger.Error("error closing search cache repository", "err", err)
		return err
	}
	if err := a.recordRepo.Close(); err != nil {
		a.logger.Error("error closing record repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Records returns the record repository.
func (a *Archive) Records() storage.RecordRepository {
	return a.recordRepo
}

// SearchCache returns the search cache repository.
func (a *Archive) SearchCache() storage.SearchCacheRepository {
	return a.cacheRepo
}

// NewAnalyzer creates an analyzer backed by the archive's semantic service.
func (a *Archive) NewAnalyzer(opts ...analyzer.Option) (*analyzer.Analyzer, error) {
	return analyzer.NewAnalyzer(a.service, opts...)
}

// NewCollector creates a collector persisting into the archive.
func (a *Archive) NewCollector(fetcher collector.Fetcher, opts ...collector.CollectorOption) *collector.Collector {
	return collector.NewCollector(fetcher, a.recordRepo, opts...)
}

// Search runs a search over the stored corpus, answering repeat queries
// from the search cache until the cached entry expires. Cached answers
// return the matched records without fresh relevance scores.
func (a *Archive) Search(ctx context.Context, anlz *analyzer.Analyzer, query string, filters map[string]string) (*core.SearchResult, error) {
	if cached, err := a.cacheRepo.GetCachedSearch(ctx, query); err == nil {
		records, err := a.recordRepo.GetRecords(ctx, cached.RecordIds...)
		if err == nil {
			a.logger.Info("serving search from cache", "query", query, "matches", len(records))
			return cachedResult(query, records, cached.SearchedAt), nil
		}
		a.logger.Warn("cached search unusable, searching again", "query", query, "error", err)
	}

	records, err := a.recordRepo.GetAllRecords(ctx)
	if err != nil {
		return nil, err
	}

	result := anlz.Search(ctx, records, query, filters)

	if !result.Metadata.Error && len(result.Matches) > 0 {
		ids := make([]core.ID, 0, len(result.Matches))
		for _, m := range result.Matches {
			ids = append(ids, m.Id)
		}
		if err := a.cacheRepo.SaveSearch(ctx, &core.CachedSearch{Query: query, RecordIds: ids}); err != nil {
			a.logger.Warn("failed to cache search", "query", query, "error", err)
		}
	}

	return result, nil
}

func cachedResult(query string, records []*core.Record, searchedAt time.Time) *core.SearchResult {
	matches := make([]core.EnrichedMatch, 0, len(records))
	for _, r := range records {
		matches = append(matches, core.EnrichedMatch{Record: *r})
	}
	return &core.SearchResult{
		Matches: matches,
		Metadata: core.SearchMetadata{
			MatchCount: len(matches),
			Query:      query,
			Timestamp:  searchedAt,
			Message:    "served from cache",
		},
	}
}
