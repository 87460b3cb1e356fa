package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sociolens/tweetlens/core"
)

// Fetcher is a single fetch operation against a record source.
type Fetcher interface {
	// Fetch returns up to maxResults records matching the query, newest
	// first.
	Fetch(ctx context.Context, query string, maxResults int) ([]*core.Record, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, query string, maxResults int) ([]*core.Record, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, query string, maxResults int) ([]*core.Record, error) {
	return f(ctx, query, maxResults)
}

// FileSource serves records from a JSON corpus file: an array of record
// objects. It stands in for a live scraper during development and tests.
type FileSource struct {
	path string
}

var _ Fetcher = (*FileSource)(nil)

// NewFileSource creates a FileSource reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch loads the corpus file and returns the records containing any of the
// query terms, newest first, truncated to maxResults. An empty query
// returns the whole corpus.
func (s *FileSource) Fetch(ctx context.Context, query string, maxResults int) ([]*core.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	var all []*core.Record
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}

	terms := strings.Fields(strings.ToLower(query))
	var matching []*core.Record
	if len(terms) == 0 {
		// An empty query loads the whole corpus.
		matching = all
	} else {
		for _, record := range all {
			text := strings.ToLower(record.Text)
			for _, term := range terms {
				if strings.Contains(text, term) {
					matching = append(matching, record)
					break
				}
			}
		}
	}

	// CreatedAt is ISO-8601, so string order is time order.
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].CreatedAt > matching[j].CreatedAt
	})

	if maxResults > 0 && len(matching) > maxResults {
		matching = matching[:maxResults]
	}
	return matching, nil
}
