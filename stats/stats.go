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

package stats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sociolens/tweetlens/core"
)

// topRecordCount is how many top posts a summary carries.
const topRecordCount = 5

var noiseRe = regexp.MustCompile(`https?://\S+|@\w+|[^\w\s]`)

// Summary is the engagement view of a set of records.
type Summary struct {
	TotalRecords    int            `json:"total_tweets"`
	TotalEngagement int            `json:"total_engagement"`
	AvgEngagement   float64        `json:"avg_engagement"`
	TopRecords      []*core.Record `json:"top_tweets"`
	UniqueAuthors   []string       `json:"unique_authors"`
}

// KeywordCount is one trending keyword and how often it occurred.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Reporter computes corpus statistics against an injected vocabulary.
type Reporter struct {
	vocab     Vocabulary
	stopWords map[string]struct{}
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithVocabulary sets the word lists keyword extraction uses.
// Default is DefaultVocabulary().
func WithVocabulary(vocab Vocabulary) ReporterOption {
	return func(r *Reporter) {
		r.vocab = vocab
	}
}

// NewReporter creates a Reporter.
func NewReporter(opts ...ReporterOption) *Reporter {
	r := &Reporter{vocab: DefaultVocabulary()}
	for _, opt := range opts {
		opt(r)
	}
	r.stopWords = make(map[string]struct{}, len(r.vocab.StopWords))
	for _, w := range r.vocab.StopWords {
		r.stopWords[w] = struct{}{}
	}
	return r
}

// Summarize computes the engagement summary of records.
func (r *Reporter) Summarize(records []*core.Record) Summary {
	if len(records) == 0 {
		return Summary{TopRecords: []*core.Record{}, UniqueAuthors: []string{}}
	}

	total := 0
	authors := make(map[string]struct{})
	for _, record := range records {
		total += record.Metrics.Engagement()
		if record.AuthorId != "" {
			authors[record.AuthorId] = struct{}{}
		}
	}

	top := make([]*core.Record, len(records))
	copy(top, records)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Metrics.Engagement() > top[j].Metrics.Engagement()
	})
	if len(top) > topRecordCount {
		top = top[:topRecordCount]
	}

	unique := make([]string, 0, len(authors))
	for author := range authors {
		unique = append(unique, author)
	}
	sort.Strings(unique)

	return Summary{
		TotalRecords:    len(records),
		TotalEngagement: total,
		AvgEngagement:   float64(total) / float64(len(records)),
		TopRecords:      top,
		UniqueAuthors:   unique,
	}
}

// TrendingKeywords counts domain terms across records and returns the topN
// most frequent, most frequent first. Ties break alphabetically so the
// result is stable.
func (r *Reporter) TrendingKeywords(records []*core.Record, topN int) []KeywordCount {
	counts := make(map[string]int)

	for _, record := range records {
		text := noiseRe.ReplaceAllString(strings.ToLower(record.Text), "")
		words := strings.Fields(text)

		// Words and bigrams both count, so multi-word domain terms like
		// "smart contract" surface.
		terms := make([]string, 0, len(words)*2)
		terms = append(terms, words...)
		for i := 0; i+1 < len(words); i++ {
			terms = append(terms, words[i]+" "+words[i+1])
		}

		for _, term := range terms {
			if _, stopped := r.stopWords[term]; stopped {
				continue
			}
			if r.isDomainTerm(term) {
				counts[term]++
			}
		}
	}

	keywords := make([]KeywordCount, 0, len(counts))
	for term, count := range counts {
		keywords = append(keywords, KeywordCount{Keyword: term, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})

	if topN > 0 && len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

func (r *Reporter) isDomainTerm(term string) bool {
	for _, domain := range r.vocab.DomainTerms {
		if strings.Contains(term, domain) {
			return true
		}
	}
	return false
}
