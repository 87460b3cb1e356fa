package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sociolens/tweetlens/core"
	"github.com/sociolens/tweetlens/storage"
)

func setupRecordRepo(t *testing.T) storage.RecordRepository {
	t.Helper()
	recordRepo, cacheRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		cacheRepo.Close()
		recordRepo.Close()
		backend.Close()
	})
	return recordRepo
}

func testRecord(id, text, author string) *core.Record {
	return &core.Record{
		Id:        core.ID(id),
		Text:      text,
		CreatedAt: "2024-03-01T10:00:00Z",
		AuthorId:  author,
	}
}

func TestAddAndGetRecord(t *testing.T) {
	repo := setupRecordRepo(t)
	ctx := context.Background()

	added, err := repo.AddRecords(ctx, testRecord("1", "hello storage", "alice"))
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.False(t, added[0].CollectedAt.IsZero())

	got, err := repo.GetRecord(ctx, core.ID("1"))
	require.NoError(t, err)
	assert.Equal(t, "hello storage", got.Text)
	assert.Equal(t, "alice", got.AuthorId)
}

func TestAddRecords_ContentDerivedID(t *testing.T) {
	repo := setupRecordRepo(t)
	ctx := context.Background()

	record := testRecord("", "same text twice", "alice")
	added, err := repo.AddRecords(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent("same text twice"), added[0].Id)

	got, err := repo.GetRecord(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "same text twice", got.Text)

	// The same text arriving again overwrites instead of duplicating.
	_, err = repo.AddRecords(ctx, testRecord("", "same text twice", "bob"))
	require.NoError(t, err)

	count, err := repo.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The author index follows the overwrite.
	byAlice, err := repo.GetRecordsByAuthor(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, byAlice)

	byBob, err := repo.GetRecordsByAuthor(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, byBob, 1)
}

func TestAddRecords_RejectsInvalid(t *testing.T) {
	repo := setupRecordRepo(t)
	ctx := context.Background()

	_, err := repo.AddRecords(ctx, &core.Record{Id: "1", Text: "", CreatedAt: "2024-01-01"})
	assert.ErrorIs(t, err, core.ErrInvalidRecord)
}

func TestGetRecord_NotFound(t *testing.T) {
	repo := setupRecordRepo(t)

	_, err := repo.GetRecord(context.Background(), core.ID("missing"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetRecords_SkipsMissing(t *testing.T) {
	repo := setupRecordRepo(t)
	ctx := context.Background()

	_, err := repo.AddRecords(ctx, testRecord("1", "first", "alice"), testRecord("2", "second", "bob"))
	require.NoError(t, err)

	got, err := repo.GetRecords(ctx, core.ID("1"), core.ID("missing"), core.ID("2"))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetAllRecords(t *testing.T) {
	repo := setupRecordRepo(t)
	ctx := context.Background()

	_, err := repo.AddRecords(ctx,
		testRecord("1", "first", "alice"),
		testRecord("2", "second", "bob"),
		testRecord("3", "third", "alice"),
	)
	require.NoError(t, err)

	all, err := repo.GetAllRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetRecordsByAuthor(t *testing.T) {
	repo := setupRecordRepo(t)
	ctx := context.Background()

	_, err := repo.AddRecords(ctx,
		testRecord("1", "first", "alice"),
		testRecord("2", "second", "bob"),
		testRecord("3", "third", "alice"),
	)
	require.NoError(t, err)

	byAlice, err := repo.GetRecordsByAuthor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, byAlice, 2)
	for _, r := range byAlice {
		assert.Equal(t, "alice", r.AuthorId)
	}

	none, err := repo.GetRecordsByAuthor(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteRecords(t *testing.T) {
	repo := setupRecordRepo(t)
	ctx := context.Background()

	_, err := repo.AddRecords(ctx, testRecord("1", "first", "alice"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRecords(ctx, core.ID("1")))

	_, err = repo.GetRecord(ctx, core.ID("1"))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// The author index entry is gone too.
	byAlice, err := repo.GetRecordsByAuthor(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, byAlice)
}

func TestDeleteRecords_NotFound(t *testing.T) {
	repo := setupRecordRepo(t)

	err := repo.DeleteRecords(context.Background(), core.ID("missing"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
