package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanReply = `{
  "matches": [
    {
      "tweet_text": "bitcoin is up",
      "relevance_score": 0.92,
      "relevance_explanation": "directly about the asset",
      "matched_concepts": ["bitcoin"]
    }
  ],
  "search_metadata": {"query_interpretation": "price talk"}
}`

func decode(t *testing.T, payload json.RawMessage) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal(payload, &obj))
	return obj
}

func TestExtract_DirectParse(t *testing.T) {
	extractor := New()

	payload, err := extractor.Extract(cleanReply)
	require.NoError(t, err)

	obj := decode(t, payload)
	assert.Contains(t, obj, "matches")
}

func TestExtract_FencedEqualsUnfenced(t *testing.T) {
	extractor := New()

	unfenced, err := extractor.Extract(cleanReply)
	require.NoError(t, err)

	fenced, err := extractor.Extract("```json\n" + cleanReply + "\n```")
	require.NoError(t, err)

	assert.JSONEq(t, string(unfenced), string(fenced))
}

func TestExtract_BareFence(t *testing.T) {
	extractor := New()

	payload, err := extractor.Extract("```\n" + cleanReply + "\n```")
	require.NoError(t, err)
	assert.JSONEq(t, cleanReply, string(payload))
}

func TestExtract_MatchesObjectInProse(t *testing.T) {
	extractor := New()

	raw := "Sure! Here is the result you asked for:\n\n" +
		`{"matches": [{"tweet_text": "gm", "relevance_score": 0.5}]}` +
		"\n\nLet me know if you need anything else."

	payload, err := extractor.Extract(raw)
	require.NoError(t, err)

	obj := decode(t, payload)
	assert.Contains(t, obj, "matches")
}

func TestExtract_AnyObjectFallback(t *testing.T) {
	extractor := New()

	raw := "analysis follows {\"topics\": []} end of reply"

	payload, err := extractor.Extract(raw)
	require.NoError(t, err)

	obj := decode(t, payload)
	assert.Contains(t, obj, "topics")
}

func TestExtract_UnquotedKeyRepair(t *testing.T) {
	extractor := New()

	raw := `{"matches": [{tweet_text": "gm", "relevance_score": 0.5}]}`

	payload, err := extractor.Extract(raw)
	require.NoError(t, err)

	var reply struct {
		Matches []struct {
			TweetText string `json:"tweet_text"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(payload, &reply))
	require.Len(t, reply.Matches, 1)
	assert.Equal(t, "gm", reply.Matches[0].TweetText)
}

func TestExtract_UnescapedNewlineInExplanation(t *testing.T) {
	extractor := New()

	// The explanation value spills over a raw newline, which breaks every
	// direct parse; line sanitization drops the field and recovers the rest.
	raw := `{
  "matches": [
    {
      "tweet_text": "defi yields are stable",
      "relevance_score": 0.8,
      "relevance_explanation": "the post talks about
yields and includes "quotes" too"
    }
  ]
}`

	payload, err := extractor.Extract(raw)
	require.NoError(t, err)

	var reply struct {
		Matches []struct {
			RelevanceScore float64 `json:"relevance_score"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(payload, &reply))
	require.Len(t, reply.Matches, 1)
	assert.Equal(t, 0.8, reply.Matches[0].RelevanceScore)
}

func TestExtract_TrailingFreeTextField(t *testing.T) {
	extractor := New()

	// Dropping the last field of an object must not leave a trailing comma.
	raw := `{
  "matches": [
    {
      "relevance_score": 0.7,
      "relevance_explanation": "unterminated
    }
  ]
}`

	payload, err := extractor.Extract(raw)
	require.NoError(t, err)

	obj := decode(t, payload)
	assert.Contains(t, obj, "matches")
}

func TestExtract_GarbageFails(t *testing.T) {
	extractor := New()

	for _, raw := range []string{
		"",
		"complete nonsense with no structure at all",
		"] [ not , an : object",
	} {
		_, err := extractor.Extract(raw)
		assert.ErrorIs(t, err, ErrNoPayload, "input: %q", raw)
	}
}

func TestExtract_ArrayIsNotAPayload(t *testing.T) {
	extractor := New()

	// Every declared schema is an object; a bare array is rejected.
	_, err := extractor.Extract(`[1, 2, 3]`)
	assert.ErrorIs(t, err, ErrNoPayload)
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "missing opening quote after comma",
			in:   `{"a": 1, type": "x"}`,
			want: `{"a": 1, "type": "x"}`,
		},
		{
			name: "missing opening quote after brace",
			in:   `{score": 2}`,
			want: `{"score": 2}`,
		},
		{
			name: "well-formed input unchanged",
			in:   `{"a": 1, "b": "two"}`,
			want: `{"a": 1, "b": "two"}`,
		},
		{
			name: "bare word value untouched",
			in:   `{"a": true, "b": null}`,
			want: `{"a": true, "b": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.in))
		})
	}
}
