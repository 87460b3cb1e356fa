package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sociolens/tweetlens/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"empty ID", core.ID("")},
		{"source ID", core.ID("1764097231")},
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := &core.Record{
		Id:        core.ID("42"),
		Text:      "gas fees dropped again",
		CreatedAt: "2024-03-01T10:00:00Z",
		AuthorId:  "bob",
		Lang:      "en",
		Metrics: core.Metrics{
			RetweetCount: 3,
			ReplyCount:   1,
			LikeCount:    10,
			QuoteCount:   2,
		},
		CollectedAt: now,
	}

	data := MarshalRecord(record)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record.Id, decoded.Id)
	assert.Equal(t, record.Text, decoded.Text)
	assert.Equal(t, record.CreatedAt, decoded.CreatedAt)
	assert.Equal(t, record.AuthorId, decoded.AuthorId)
	assert.Equal(t, record.Lang, decoded.Lang)
	assert.Equal(t, record.Metrics, decoded.Metrics)
	assert.True(t, record.CollectedAt.Equal(decoded.CollectedAt))
}

func TestUnmarshalRecord_Truncated(t *testing.T) {
	record := &core.Record{
		Id:        core.ID("42"),
		Text:      "gas fees dropped again",
		CreatedAt: "2024-03-01T10:00:00Z",
	}

	data := MarshalRecord(record)
	_, err := UnmarshalRecord(data[:len(data)/2])
	assert.Error(t, err)
}

func TestMarshalUnmarshalCachedSearch(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	cached := &core.CachedSearch{
		Query:      "blockchain OR crypto -scam",
		RecordIds:  []core.ID{"1", "2", core.IDFromContent("some text")},
		SearchedAt: now,
	}

	data := MarshalCachedSearch(cached)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCachedSearch(data)
	require.NoError(t, err)
	assert.Equal(t, cached.Query, decoded.Query)
	assert.Equal(t, cached.RecordIds, decoded.RecordIds)
	assert.True(t, cached.SearchedAt.Equal(decoded.SearchedAt))
}
