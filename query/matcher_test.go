package query

import (
	"fmt"
	"testing"

	"github.com/sociolens/tweetlens/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, text string) *core.Record {
	return &core.Record{
		Id:        core.ID(id),
		Text:      text,
		CreatedAt: "2024-03-15T10:30:00",
		AuthorId:  "tester",
	}
}

func TestMatchesConditions_Exclusion(t *testing.T) {
	matcher := NewMatcher()

	conditions := SearchConditions{
		MustMatchAny: []string{"crypto"},
		MustNotMatch: []string{"scam"},
	}

	t.Run("excluded term rejects despite keyword hit", func(t *testing.T) {
		rec := record("1", "This crypto project is a scam")
		assert.False(t, matcher.MatchesConditions(rec, conditions))
	})

	t.Run("exclusion is case-insensitive", func(t *testing.T) {
		rec := record("2", "Crypto SCAM alert")
		assert.False(t, matcher.MatchesConditions(rec, conditions))
	})

	t.Run("clean record passes", func(t *testing.T) {
		rec := record("3", "Crypto markets are up")
		assert.True(t, matcher.MatchesConditions(rec, conditions))
	})
}

func TestMatchesConditions_Phrases(t *testing.T) {
	matcher := NewMatcher()

	conditions := SearchConditions{
		MustMatchAll: []string{"web3 development", "open source"},
	}

	t.Run("all phrases present", func(t *testing.T) {
		rec := record("1", "Web3 development should be open source")
		assert.True(t, matcher.MatchesConditions(rec, conditions))
	})

	t.Run("one phrase missing", func(t *testing.T) {
		rec := record("2", "Web3 development is hard")
		assert.False(t, matcher.MatchesConditions(rec, conditions))
	})
}

func TestMatchesConditions_Keywords(t *testing.T) {
	matcher := NewMatcher()

	t.Run("any keyword suffices", func(t *testing.T) {
		conditions := SearchConditions{MustMatchAny: []string{"bitcoin", "ethereum"}}
		assert.True(t, matcher.MatchesConditions(record("1", "Ethereum merge complete"), conditions))
	})

	t.Run("no keyword present", func(t *testing.T) {
		conditions := SearchConditions{MustMatchAny: []string{"bitcoin", "ethereum"}}
		assert.False(t, matcher.MatchesConditions(record("2", "Stocks are boring"), conditions))
	})

	t.Run("empty keywords pass vacuously", func(t *testing.T) {
		conditions := SearchConditions{}
		assert.True(t, matcher.MatchesConditions(record("3", "anything at all"), conditions))
	})
}

func TestMatchesConditions_YearFilter(t *testing.T) {
	matcher := NewMatcher()
	conditions := SearchConditions{Year: 2024}

	t.Run("matching year", func(t *testing.T) {
		assert.True(t, matcher.MatchesConditions(record("1", "hello"), conditions))
	})

	t.Run("other year", func(t *testing.T) {
		rec := record("2", "hello")
		rec.CreatedAt = "2023-06-01T00:00:00"
		assert.False(t, matcher.MatchesConditions(rec, conditions))
	})

	t.Run("malformed date is a non-match, not a fault", func(t *testing.T) {
		rec := record("3", "hello")
		rec.CreatedAt = "sometime last year"
		assert.False(t, matcher.MatchesConditions(rec, conditions))
	})
}

func TestMatchesConditions_LangFilter(t *testing.T) {
	matcher := NewMatcher()
	conditions := SearchConditions{Filters: map[string]string{"lang": "en"}}

	t.Run("tagged record", func(t *testing.T) {
		rec := record("1", "hello")
		rec.Lang = "uk"
		assert.False(t, matcher.MatchesConditions(rec, conditions))
	})

	t.Run("untagged record assumes the default", func(t *testing.T) {
		// Best-effort only: corpora without language tagging cannot be
		// meaningfully filtered by lang.
		rec := record("2", "hello")
		assert.True(t, matcher.MatchesConditions(rec, conditions))
	})
}

func TestPreFilter_RankingAndCap(t *testing.T) {
	matcher := NewMatcher(WithCandidateCap(3))

	conditions := SearchConditions{MustMatchAny: []string{"bitcoin", "ethereum", "defi"}}

	records := []*core.Record{
		record("one-hit", "bitcoin only here"),
		record("three-hits", "bitcoin ethereum defi all in one"),
		record("no-hit", "nothing relevant"),
		record("two-hits-a", "bitcoin and ethereum"),
		record("two-hits-b", "ethereum and defi"),
	}

	candidates := matcher.PreFilter(records, conditions)

	require.Len(t, candidates, 3)
	assert.Equal(t, core.ID("three-hits"), candidates[0].Id)
	// Ties keep original order (stable sort).
	assert.Equal(t, core.ID("two-hits-a"), candidates[1].Id)
	assert.Equal(t, core.ID("two-hits-b"), candidates[2].Id)
}

func TestPreFilter_NeverExceedsCap(t *testing.T) {
	matcher := NewMatcher(WithCandidateCap(5))

	records := make([]*core.Record, 0, 50)
	for i := 0; i < 50; i++ {
		records = append(records, record(fmt.Sprintf("r%d", i), "bitcoin forever"))
	}

	candidates := matcher.PreFilter(records, SearchConditions{MustMatchAny: []string{"bitcoin"}})
	assert.Len(t, candidates, 5)
	// Stable ties preserve corpus order.
	assert.Equal(t, core.ID("r0"), candidates[0].Id)
	assert.Equal(t, core.ID("r4"), candidates[4].Id)
}

func TestPreFilter_DuplicateKeywordsCountOnce(t *testing.T) {
	matcher := NewMatcher()

	conditions := SearchConditions{MustMatchAny: []string{"bitcoin", "bitcoin", "defi"}}
	records := []*core.Record{
		record("dup", "bitcoin here"),
		record("two", "bitcoin and defi here"),
	}

	candidates := matcher.PreFilter(records, conditions)
	require.Len(t, candidates, 2)
	assert.Equal(t, core.ID("two"), candidates[0].Id)
}

func TestPreFilter_EndToEndScenario(t *testing.T) {
	// Query: blockchain OR crypto -scam lang:en over a small corpus.
	parser := NewParser()
	matcher := NewMatcher()

	conditions := parser.GenerateSearchConditions(parser.Parse("blockchain OR crypto -scam lang:en"))

	records := []*core.Record{
		record("b1", "blockchain changes everything"),
		record("b2", "another blockchain take on blockchain and crypto"),
		record("b3", "blockchain conference next week"),
		record("scammy", "this blockchain coin is a scam"),
		record("offtopic", "great pasta recipe"),
	}

	candidates := matcher.PreFilter(records, conditions)

	require.Len(t, candidates, 3)
	ids := []core.ID{candidates[0].Id, candidates[1].Id, candidates[2].Id}
	assert.NotContains(t, ids, core.ID("scammy"))
	assert.NotContains(t, ids, core.ID("offtopic"))
	// b2 hits both keywords, so it ranks first.
	assert.Equal(t, core.ID("b2"), ids[0])
}
