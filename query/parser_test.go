package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_QuotedPhrases(t *testing.T) {
	parser := NewParser()

	t.Run("phrase and keyword", func(t *testing.T) {
		parsed := parser.Parse(`"a b" c`)
		assert.Equal(t, []string{"a b"}, parsed.Phrases)
		assert.Equal(t, []string{"c"}, parsed.Keywords)
		assert.Empty(t, parsed.Operators)
	})

	t.Run("OR inside phrase is not an operator", func(t *testing.T) {
		parsed := parser.Parse(`"this OR that" bitcoin`)
		assert.Equal(t, []string{"this OR that"}, parsed.Phrases)
		assert.Equal(t, []string{"bitcoin"}, parsed.Keywords)
		assert.Empty(t, parsed.Operators)
	})

	t.Run("phrase content never leaks into filters", func(t *testing.T) {
		parsed := parser.Parse(`"lang:en is nice"`)
		assert.Equal(t, []string{"lang:en is nice"}, parsed.Phrases)
		assert.Empty(t, parsed.Filters)
		assert.Empty(t, parsed.Keywords)
	})
}

func TestParse_OrSegments(t *testing.T) {
	parser := NewParser()

	t.Run("single-word segments", func(t *testing.T) {
		parsed := parser.Parse("blockchain OR crypto")
		assert.Equal(t, []string{"blockchain", "crypto"}, parsed.Keywords)
		assert.Equal(t, []string{"OR"}, parsed.Operators)
	})

	t.Run("multi-word segments stay atomic", func(t *testing.T) {
		parsed := parser.Parse("smart contracts OR yield farming")
		assert.Equal(t, []string{"smart contracts", "yield farming"}, parsed.Keywords)
		assert.Equal(t, []string{"OR"}, parsed.Operators)
	})
}

func TestParse_ImplicitAnd(t *testing.T) {
	parser := NewParser()

	t.Run("words split individually", func(t *testing.T) {
		parsed := parser.Parse("bitcoin mining rig")
		assert.Equal(t, []string{"bitcoin", "mining", "rig"}, parsed.Keywords)
		assert.Empty(t, parsed.Operators)
	})

	t.Run("AND is a no-op joiner", func(t *testing.T) {
		parsed := parser.Parse("bitcoin AND mining AND rig")
		assert.Equal(t, []string{"bitcoin", "mining", "rig"}, parsed.Keywords)
		assert.Empty(t, parsed.Operators)
	})
}

func TestParse_Exclusions(t *testing.T) {
	parser := NewParser()

	parsed := parser.Parse("crypto -spam")
	assert.Equal(t, []string{"spam"}, parsed.ExcludeTerms)
	assert.NotContains(t, parsed.Keywords, "spam")
	assert.NotContains(t, parsed.Keywords, "-spam")
	assert.Equal(t, []string{"crypto"}, parsed.Keywords)
}

func TestParse_Filters(t *testing.T) {
	parser := NewParser()

	t.Run("lang filter", func(t *testing.T) {
		parsed := parser.Parse("crypto lang:en")
		assert.Equal(t, "en", parsed.Filters["lang"])
		assert.NotContains(t, parsed.Keywords, "lang:en")
		assert.Equal(t, []string{"crypto"}, parsed.Keywords)
	})

	t.Run("later duplicate overwrites", func(t *testing.T) {
		parsed := parser.Parse("lang:en lang:uk")
		assert.Equal(t, "uk", parsed.Filters["lang"])
	})
}

func TestParse_Year(t *testing.T) {
	parser := NewParser()

	t.Run("year token", func(t *testing.T) {
		parsed := parser.Parse("bitcoin (2024)")
		assert.Equal(t, 2024, parsed.Year)
		assert.Equal(t, []string{"bitcoin"}, parsed.Keywords)
	})

	t.Run("first year wins", func(t *testing.T) {
		parsed := parser.Parse("bitcoin (2024) (2023)")
		assert.Equal(t, 2024, parsed.Year)
	})

	t.Run("no year", func(t *testing.T) {
		parsed := parser.Parse("bitcoin")
		assert.Zero(t, parsed.Year)
	})
}

func TestParse_Combined(t *testing.T) {
	parser := NewParser()

	parsed := parser.Parse(`blockchain OR crypto OR "Web3 development" -scam lang:en (2024)`)
	assert.Equal(t, []string{"Web3 development"}, parsed.Phrases)
	assert.Equal(t, []string{"blockchain", "crypto"}, parsed.Keywords)
	assert.Equal(t, []string{"scam"}, parsed.ExcludeTerms)
	assert.Equal(t, "en", parsed.Filters["lang"])
	assert.Equal(t, 2024, parsed.Year)
	assert.Equal(t, []string{"OR"}, parsed.Operators)
}

func TestParse_Empty(t *testing.T) {
	parser := NewParser()

	for _, raw := range []string{"", "   ", "\t\n"} {
		parsed := parser.Parse(raw)
		assert.Empty(t, parsed.Keywords)
		assert.Empty(t, parsed.Phrases)
		assert.Empty(t, parsed.ExcludeTerms)
		assert.Empty(t, parsed.Filters)
		assert.Zero(t, parsed.Year)
	}
}

func TestGenerateSearchConditions(t *testing.T) {
	parser := NewParser()

	parsed := parser.Parse(`"exact phrase" crypto -spam lang:en (2024)`)
	conditions := parser.GenerateSearchConditions(parsed)

	assert.Equal(t, parsed.Keywords, conditions.MustMatchAny)
	assert.Equal(t, parsed.Phrases, conditions.MustMatchAll)
	assert.Equal(t, parsed.ExcludeTerms, conditions.MustNotMatch)
	assert.Equal(t, 2024, conditions.Year)
	assert.Equal(t, "en", conditions.Filters["lang"])

	// The projection copies filters; mutating conditions must not touch the query.
	conditions.Filters["lang"] = "uk"
	assert.Equal(t, "en", parsed.Filters["lang"])
}
