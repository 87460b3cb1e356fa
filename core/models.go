package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for a record.
// Records scraped with a post ID keep it; records arriving without one get
// a content-derived ID so identical text always maps to the same record.
type ID string

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// Metrics holds the engagement counters of a record.
// Absent counters default to zero.
type Metrics struct {
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	LikeCount    int `json:"like_count"`
	QuoteCount   int `json:"quote_count"`
}

// Engagement returns the combined retweet, reply and like count.
// Quotes are not counted, matching how the statistics layer ranks posts.
func (m Metrics) Engagement() int {
	return m.RetweetCount + m.ReplyCount + m.LikeCount
}

// Record is an immutable social-media post. Records are created by the
// acquisition layer and are read-only everywhere else; no search stage
// mutates a record.
type Record struct {
	Id          ID        `json:"id"`
	Text        string    `json:"text"`
	CreatedAt   string    `json:"created_at"` // ISO-8601, as delivered by the source
	AuthorId    string    `json:"author_id"`
	Lang        string    `json:"lang,omitempty"`
	Metrics     Metrics   `json:"metrics"`
	CollectedAt time.Time `json:"-"` // when the acquisition layer stored the record
}

// Year parses the leading YYYY of CreatedAt.
func (r *Record) Year() (int, error) {
	head, _, _ := strings.Cut(r.CreatedAt, "-")
	return strconv.Atoi(head)
}

// EnrichedMatch is a record reconciled with the semantic service's verdict:
// all original record fields plus score, explanation and matched concepts.
type EnrichedMatch struct {
	Record
	RelevanceScore       float64  `json:"relevance_score"`
	RelevanceExplanation string   `json:"relevance_explanation"`
	MatchedConcepts      []string `json:"matched_concepts"`
}

// SearchMetadata describes how a search was resolved. A degraded search
// (service failure, unrecoverable reply) reports Error=true with a message
// instead of failing the caller.
type SearchMetadata struct {
	TotalCandidates int       `json:"total_tweets"`
	MatchCount      int       `json:"processed_tweets"`
	Query           string    `json:"query"`
	Timestamp       time.Time `json:"timestamp"`
	FiltersApplied  bool      `json:"filters_applied"`
	Error           bool      `json:"error,omitempty"`
	Message         string    `json:"message,omitempty"`
}

// SearchResult is the unit returned to search callers. Matches keep the
// order the semantic service returned them in; they are not re-sorted.
type SearchResult struct {
	Matches  []EnrichedMatch `json:"matches"`
	Metadata SearchMetadata  `json:"search_metadata"`
}

// CachedSearch records which record IDs answered a query, so repeated
// queries can be served from storage until the entry expires.
type CachedSearch struct {
	Query      string
	RecordIds  []ID
	SearchedAt time.Time
}
