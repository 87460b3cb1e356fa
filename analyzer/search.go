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
	"context"
	"encoding/json"
	"time"

	"github.com/sociolens/tweetlens/core"
)

// searchContext is the payload handed to the semantic service: the raw
// query, the pre-filtered candidates and the caller's extra filters.
type searchContext struct {
	Query   string            `json:"query"`
	Tweets  []*core.Record    `json:"tweets"`
	Filters map[string]string `json:"filters,omitempty"`
}

// serviceMatch is one match as the semantic service reports it. Only
// tweet_text ties it back to a real record; everything else is the
// service's verdict.
type serviceMatch struct {
	TweetText            string   `json:"tweet_text"`
	RelevanceScore       float64  `json:"relevance_score"`
	RelevanceExplanation string   `json:"relevance_explanation"`
	MatchedConcepts      []string `json:"matched_concepts"`
}

type serviceReply struct {
	Matches []serviceMatch `json:"matches"`
}

// Search runs the full pipeline over records: parse the query, pre-filter
// locally, ask the semantic service to rank the candidates, recover its
// reply and reconcile it against the originals. Search never fails; a
// degraded run returns an empty result whose metadata carries the error.
func (a *Analyzer) Search(ctx context.Context, records []*core.Record, rawQuery string, filters map[string]string) *core.SearchResult {
	return a.SearchWithMonitor(ctx, records, rawQuery, filters, nil)
}

// SearchWithMonitor is Search with observation hooks. A nil monitor is
// replaced with a no-op one.
func (a *Analyzer) SearchWithMonitor(ctx context.Context, records []*core.Record, rawQuery string, filters map[string]string, monitor Monitor) *core.SearchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(rawQuery)

	parsed := a.parser.Parse(rawQuery)
	conditions := a.parser.GenerateSearchConditions(parsed)

	candidates := a.matcher.PreFilter(records, conditions)
	monitor.AfterPreFilter(candidates)
	a.logger.Info("pre-filter complete", "query", rawQuery, "candidates", len(candidates))

	if len(candidates) == 0 {
		result := &core.SearchResult{
			Matches: []core.EnrichedMatch{},
			Metadata: core.SearchMetadata{
				TotalCandidates: 0,
				Query:           rawQuery,
				Timestamp:       time.Now(),
				FiltersApplied:  len(filters) > 0,
				Message:         "no records matched the query",
			},
		}
		monitor.Finish(result)
		return result
	}

	payload, err := json.Marshal(searchContext{
		Query:   rawQuery,
		Tweets:  candidates,
		Filters: filters,
	})
	if err != nil {
		return a.degradedSearch(rawQuery, filters, err, monitor)
	}

	raw, err := a.service.Generate(ctx, a.searchPrompt(), string(payload))
	if err != nil {
		a.logger.Error("semantic service call failed", "query", rawQuery, "error", err)
		return a.degradedSearch(rawQuery, filters, err, monitor)
	}
	monitor.AfterServiceReply(raw)

	recovered, err := a.extractor.Extract(raw)
	if err != nil {
		a.logger.Error("reply extraction failed", "query", rawQuery, "error", err)
		return a.degradedSearch(rawQuery, filters, err, monitor)
	}
	monitor.AfterExtraction(recovered)

	var reply serviceReply
	if err := json.Unmarshal(recovered, &reply); err != nil {
		a.logger.Error("recovered reply has unexpected shape", "query", rawQuery, "error", err)
		return a.degradedSearch(rawQuery, filters, err, monitor)
	}

	matches, misses := a.reconcile(reply.Matches, candidates, monitor)
	if misses > 0 {
		a.logger.Warn("service reported unknown tweet texts", "query", rawQuery, "dropped", misses)
	}

	kept := matches[:0]
	for _, m := range matches {
		if m.RelevanceScore >= a.minRelevance {
			kept = append(kept, m)
		}
	}

	result := &core.SearchResult{
		Matches: kept,
		Metadata: core.SearchMetadata{
			TotalCandidates: len(candidates),
			MatchCount:      len(kept),
			Query:           rawQuery,
			Timestamp:       time.Now(),
			FiltersApplied:  len(filters) > 0,
		},
	}
	monitor.Finish(result)
	return result
}

// reconcile maps the service's matches back to the candidate records by
// exact text equality. Matches naming a text no candidate carries are
// dropped; the returned count says how many.
func (a *Analyzer) reconcile(matches []serviceMatch, candidates []*core.Record, monitor Monitor) ([]core.EnrichedMatch, int) {
	enriched := make([]core.EnrichedMatch, 0, len(matches))
	misses := 0

	for _, match := range matches {
		record := findByText(candidates, match.TweetText)
		if record == nil {
			monitor.ReconciliationMiss(match.TweetText)
			a.logger.Debug("dropping unreconciled match", "tweet_text", match.TweetText)
			misses++
			continue
		}
		enriched = append(enriched, core.EnrichedMatch{
			Record:               *record,
			RelevanceScore:       match.RelevanceScore,
			RelevanceExplanation: match.RelevanceExplanation,
			MatchedConcepts:      match.MatchedConcepts,
		})
	}

	return enriched, misses
}

func findByText(records []*core.Record, text string) *core.Record {
	for _, r := range records {
		if r.Text == text {
			return r
		}
	}
	return nil
}

func (a *Analyzer) degradedSearch(rawQuery string, filters map[string]string, cause error, monitor Monitor) *core.SearchResult {
	result := &core.SearchResult{
		Matches: []core.EnrichedMatch{},
		Metadata: core.SearchMetadata{
			Query:          rawQuery,
			Timestamp:      time.Now(),
			FiltersApplied: len(filters) > 0,
			Error:          true,
			Message:        cause.Error(),
		},
	}
	monitor.Finish(result)
	return result
}
