package query

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/sociolens/tweetlens/core"
)

// DefaultCandidateCap bounds how many candidates survive pre-filtering.
// It exists to bound the size and cost of the semantic service call, not
// as a quality threshold.
const DefaultCandidateCap = 25

// defaultLang is assumed for records without language tagging. Corpora
// without a lang field cannot be meaningfully filtered by language; the
// lang condition is best-effort, not authoritative.
const defaultLang = "en"

// Matcher evaluates records against search conditions.
type Matcher struct {
	candidateCap int
	logger       *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithCandidateCap sets the maximum number of candidates PreFilter returns.
// Values below 1 fall back to DefaultCandidateCap.
func WithCandidateCap(cap int) MatcherOption {
	return func(m *Matcher) {
		if cap < 1 {
			cap = DefaultCandidateCap
		}
		m.candidateCap = cap
	}
}

// WithMatcherLogger sets a custom logger.
// Default is slog.Default().
func WithMatcherLogger(logger *slog.Logger) MatcherOption {
	return func(m *Matcher) {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
	}
}

// NewMatcher creates a matcher with the default candidate cap.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		candidateCap: DefaultCandidateCap,
		logger:       slog.Default().With("component", "matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MatchesConditions reports whether a record satisfies the conditions.
// Matching is case-insensitive substring matching throughout. Evaluation
// short-circuits in order: exclusions, phrases, keywords, year, lang.
// A record that cannot be evaluated (malformed date) is a non-match.
func (m *Matcher) MatchesConditions(record *core.Record, conditions SearchConditions) bool {
	if record == nil {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(record.Text))

	// Exclusion has highest precedence.
	for _, term := range conditions.MustNotMatch {
		if strings.Contains(text, strings.ToLower(term)) {
			return false
		}
	}

	// Every phrase must appear.
	for _, phrase := range conditions.MustMatchAll {
		if !strings.Contains(text, strings.ToLower(phrase)) {
			return false
		}
	}

	// At least one keyword must appear; an empty keyword list passes
	// vacuously.
	if len(conditions.MustMatchAny) > 0 {
		hit := false
		for _, keyword := range conditions.MustMatchAny {
			if strings.Contains(text, strings.ToLower(keyword)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if conditions.Year != 0 {
		year, err := record.Year()
		if err != nil {
			m.logger.Debug("record has unparseable created_at", "id", record.Id, "created_at", record.CreatedAt)
			return false
		}
		if year != conditions.Year {
			return false
		}
	}

	if lang, ok := conditions.Filters["lang"]; ok && lang != "" {
		recordLang := record.Lang
		if recordLang == "" {
			recordLang = defaultLang
		}
		if recordLang != lang {
			return false
		}
	}

	return true
}

// PreFilter returns the records matching the conditions, ranked by how many
// distinct keywords each one contains (descending, stable on ties) and
// truncated to the candidate cap. The per-record hit count is transient; it
// is discarded after truncation.
func (m *Matcher) PreFilter(records []*core.Record, conditions SearchConditions) []*core.Record {
	type candidate struct {
		record *core.Record
		hits   int
	}

	candidates := make([]candidate, 0, len(records))
	for _, record := range records {
		if !m.MatchesConditions(record, conditions) {
			continue
		}
		candidates = append(candidates, candidate{
			record: record,
			hits:   m.keywordHits(record, conditions.MustMatchAny),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].hits > candidates[j].hits
	})

	if len(candidates) > m.candidateCap {
		candidates = candidates[:m.candidateCap]
	}

	result := make([]*core.Record, len(candidates))
	for i, c := range candidates {
		result[i] = c.record
	}
	m.logger.Debug("pre-filtered records", "total", len(records), "candidates", len(result))
	return result
}

// keywordHits counts the distinct keywords present in the record's text.
func (m *Matcher) keywordHits(record *core.Record, keywords []string) int {
	text := strings.ToLower(record.Text)
	seen := make(map[string]bool, len(keywords))
	hits := 0
	for _, keyword := range keywords {
		lowered := strings.ToLower(keyword)
		if seen[lowered] {
			continue
		}
		seen[lowered] = true
		if strings.Contains(text, lowered) {
			hits++
		}
	}
	return hits
}
