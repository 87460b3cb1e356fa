// Copyright 2026 Sociolens
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"context"
	"log/slog"

	"github.com/sociolens/tweetlens/core"
	"github.com/sociolens/tweetlens/storage"
)

// Collector fetches records through a (possibly policy-wrapped) Fetcher and
// persists them. Records that fail validation are skipped and logged, not
// fatal; one bad post must not sink a batch.
type Collector struct {
	fetcher    Fetcher
	repository storage.RecordRepository
	logger     *slog.Logger
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithCollectorLogger sets a custom logger.
// Default is slog.Default().
func WithCollectorLogger(logger *slog.Logger) CollectorOption {
	return func(c *Collector) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewCollector creates a Collector persisting to repository.
func NewCollector(fetcher Fetcher, repository storage.RecordRepository, opts ...CollectorOption) *Collector {
	c := &Collector{
		fetcher:    fetcher,
		repository: repository,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect fetches up to maxResults records for the query and stores the
// valid ones. Returns the stored records.
func (c *Collector) Collect(ctx context.Context, query string, maxResults int) ([]*core.Record, error) {
	fetched, err := c.fetcher.Fetch(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	valid := make([]*core.Record, 0, len(fetched))
	for _, record := range fetched {
		if record == nil {
			continue
		}
		// Sources may deliver records without IDs; derive one from the
		// text so validation judges the record, not the source's gaps.
		if record.Id == "" {
			record.Id = core.IDFromContent(record.Text)
		}
		if err := core.ValidateRecord(record); err != nil {
			c.logger.Warn("skipping invalid record", "id", record.Id, "error", err)
			continue
		}
		valid = append(valid, record)
	}

	if len(valid) == 0 {
		c.logger.Info("nothing to store", "query", query, "fetched", len(fetched))
		return nil, nil
	}

	stored, err := c.repository.AddRecords(ctx, valid...)
	if err != nil {
		return nil, err
	}

	c.logger.Info("collected records", "query", query, "fetched", len(fetched), "stored", len(stored))
	return stored, nil
}
