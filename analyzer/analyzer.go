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

package analyzer

import (
	"log/slog"

	"github.com/panjf2000/ants/v2"
	"github.com/sociolens/tweetlens/ai"
	"github.com/sociolens/tweetlens/extract"
	"github.com/sociolens/tweetlens/query"
)

// DefaultMinRelevance is the score an enriched match must reach to survive
// the final relevance cut.
const DefaultMinRelevance = 0.3

// Analyzer runs searches and analyses over an in-memory slice of records.
// It combines local pre-filtering with a semantic service and repairs the
// service's replies before trusting them.
type Analyzer struct {
	parser       *query.Parser
	matcher      *query.Matcher
	extractor    *extract.Extractor
	service      ai.SemanticService
	pool         *ants.Pool
	minRelevance float64
	domain       string
	logger       *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithMinRelevance sets the relevance score threshold applied after
// reconciliation. Default is DefaultMinRelevance.
func WithMinRelevance(score float64) Option {
	return func(a *Analyzer) error {
		a.minRelevance = score
		return nil
	}
}

// WithCandidateCap sets the maximum number of pre-filtered records handed to
// the semantic service. Default is query.DefaultCandidateCap.
func WithCandidateCap(cap int) Option {
	return func(a *Analyzer) error {
		a.matcher = query.NewMatcher(query.WithCandidateCap(cap))
		return nil
	}
}

// WithDomain sets the subject area the analysis prompts are framed in.
// Default is DefaultDomain.
func WithDomain(domain string) Option {
	return func(a *Analyzer) error {
		if domain != "" {
			a.domain = domain
		}
		return nil
	}
}

// WithPoolSize sets the worker pool size used by AnalyzeAll.
// Default is 2, one worker per analysis kind.
func WithPoolSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			size = 1
		}
		if a.pool != nil {
			a.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// NewAnalyzer creates an Analyzer backed by the given semantic service.
func NewAnalyzer(service ai.SemanticService, opts ...Option) (*Analyzer, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}

	pool, err := ants.NewPool(2)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		parser:       query.NewParser(),
		matcher:      query.NewMatcher(),
		extractor:    extract.New(),
		service:      service,
		pool:         pool,
		minRelevance: DefaultMinRelevance,
		domain:       DefaultDomain,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			a.pool.Release()
			return nil, err
		}
	}

	return a, nil
}

// Release frees the analyzer's worker pool. The Analyzer must not be used
// after Release returns.
func (a *Analyzer) Release() {
	if a.pool != nil {
		a.pool.Release()
	}
}
