package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/attendance"
	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceFixture() (*fakeStore, *sheetcache.Cache, attendance.Repository) {
	store := newFakeStore()
	cache := sheetcache.New(30 * time.Second)
	return store, cache, NewAttendanceRepository(store, cache)
}

func janeRecord(present bool) attendance.Record {
	return attendance.Record{
		ID:         "new-id",
		Type:       attendance.TypeMember,
		PersonID:   "m1",
		PersonName: "Jane Doe",
		Date:       "2024-03-01",
		Present:    present,
		CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAttendanceUpsert_InsertWhenStoreEmpty(t *testing.T) {
	ctx := context.Background()
	store, cache, repo := newAttendanceFixture()

	written, err := repo.Upsert(ctx, janeRecord(true))
	require.NoError(t, err)

	assert.Equal(t, 1, store.appendCalls)
	assert.Equal(t, 0, store.updateCalls)
	assert.Equal(t, "new-id", written.ID)
	assert.True(t, written.Present)

	// Appended values follow the attendance schema.
	require.Len(t, store.lastAppendValues, 7)
	assert.Equal(t, "member", store.lastAppendValues[0])
	assert.Equal(t, "m1", store.lastAppendValues[1])
	assert.Equal(t, "Jane Doe", store.lastAppendValues[2])
	assert.Equal(t, "2024-03-01", store.lastAppendValues[3])
	assert.Equal(t, "TRUE", store.lastAppendValues[4])
	assert.NotEmpty(t, store.lastAppendValues[5])
	assert.NotEmpty(t, store.lastAppendValues[6])

	rows, ok := cache.Get(CollectionAttendance)
	require.True(t, ok, "cache should hold the attendance collection after upsert")
	require.Len(t, rows, 1)
	assert.Equal(t, "m1", rows[0]["person_id"])
}

func TestAttendanceUpsert_UpdateExistingRow(t *testing.T) {
	ctx := context.Background()
	store, cache, repo := newAttendanceFixture()
	store.seed(CollectionAttendance,
		[]string{"member", "m1", "Jane Doe", "2024-03-01", "FALSE", "abc", "2024-03-01T09:00:00Z"},
	)

	written, err := repo.Upsert(ctx, janeRecord(true))
	require.NoError(t, err)

	assert.Equal(t, 0, store.appendCalls, "matching row must be updated, not appended")
	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, 2, store.lastUpdatePosition, "first data row lives at sheet position 2")
	assert.Equal(t, "abc", written.ID, "existing record id is preserved")
	assert.Equal(t, "TRUE", store.lastUpdateValues[4])
	assert.Equal(t, "abc", store.lastUpdateValues[5])

	rows, ok := cache.Get(CollectionAttendance)
	require.True(t, ok)
	require.Len(t, rows, 1, "cache entry count must not grow on update")
	assert.Equal(t, "TRUE", rows[0]["present"])
	assert.Equal(t, "abc", rows[0]["id"])
}

func TestAttendanceUpsert_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newAttendanceFixture()

	_, err := repo.Upsert(ctx, janeRecord(true))
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, janeRecord(true))
	require.NoError(t, err)

	assert.Equal(t, 1, store.appendCalls)
	assert.Equal(t, 1, store.updateCalls, "second submission is processed as an update")
	assert.Len(t, store.data[CollectionAttendance], 1, "exactly one row for the (person, date) pair")

	first := store.lastAppendValues[5]
	assert.Equal(t, first, second.ID, "record id is stable across resubmissions")
}

func TestAttendanceUpsert_ToggleKeepsID(t *testing.T) {
	ctx := context.Background()
	store, cache, repo := newAttendanceFixture()

	marked, err := repo.Upsert(ctx, janeRecord(true))
	require.NoError(t, err)
	unmarked, err := repo.Upsert(ctx, janeRecord(false))
	require.NoError(t, err)

	assert.Equal(t, marked.ID, unmarked.ID)
	assert.False(t, unmarked.Present)

	require.Len(t, store.data[CollectionAttendance], 1)
	assert.Equal(t, "FALSE", store.data[CollectionAttendance][0][4])

	rows, ok := cache.Get(CollectionAttendance)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "FALSE", rows[0]["present"])
	assert.Equal(t, marked.ID, rows[0]["id"])
}

func TestAttendanceUpsert_StoreFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	store, cache, repo := newAttendanceFixture()
	store.seed(CollectionAttendance,
		[]string{"member", "m1", "Jane Doe", "2024-03-01", "FALSE", "abc", "2024-03-01T09:00:00Z"},
	)

	// Warm the cache, then make the targeted write fail.
	_, err := repo.ListAll(ctx)
	require.NoError(t, err)
	before, ok := cache.Get(CollectionAttendance)
	require.True(t, ok)

	store.failUpdate = true
	_, err = repo.Upsert(ctx, janeRecord(true))
	require.ErrorIs(t, err, ErrStoreUnavailable)

	after, ok := cache.Get(CollectionAttendance)
	require.True(t, ok)
	assert.Equal(t, before, after, "no partial mutation may be visible after a failed write")
	assert.Equal(t, "FALSE", after[0]["present"])
}

func TestAttendanceUpsert_AppendFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	store, cache, repo := newAttendanceFixture()

	_, err := repo.ListAll(ctx)
	require.NoError(t, err)

	store.failAppend = true
	_, err = repo.Upsert(ctx, janeRecord(true))
	require.ErrorIs(t, err, ErrStoreUnavailable)

	rows, ok := cache.Get(CollectionAttendance)
	require.True(t, ok)
	assert.Empty(t, rows)
}

func TestAttendanceUpsert_UsesCachedRowsWithoutRefetch(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newAttendanceFixture()
	store.seed(CollectionAttendance,
		[]string{"member", "m1", "Jane Doe", "2024-03-01", "FALSE", "abc", "2024-03-01T09:00:00Z"},
	)

	_, err := repo.ListAll(ctx)
	require.NoError(t, err)
	reads := store.readCalls

	_, err = repo.Upsert(ctx, janeRecord(true))
	require.NoError(t, err)
	assert.Equal(t, reads, store.readCalls, "update path must not refetch the collection")
}

func TestAttendanceUpsert_FirstMatchWinsOnDuplicates(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newAttendanceFixture()
	store.seed(CollectionAttendance,
		[]string{"member", "m1", "Jane Doe", "2024-03-01", "FALSE", "dup-1", "2024-03-01T09:00:00Z"},
		[]string{"member", "m1", "Jane Doe", "2024-03-01", "FALSE", "dup-2", "2024-03-01T09:05:00Z"},
	)

	written, err := repo.Upsert(ctx, janeRecord(true))
	require.NoError(t, err)

	assert.Equal(t, "dup-1", written.ID)
	assert.Equal(t, "TRUE", store.data[CollectionAttendance][0][4])
	assert.Equal(t, "FALSE", store.data[CollectionAttendance][1][4], "later duplicates are left untouched")
}

func TestAttendanceListAll_SkipsRowsWithoutID(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newAttendanceFixture()
	store.seed(CollectionAttendance,
		[]string{"member", "m1", "Jane Doe", "2024-03-01", "TRUE", "abc", "2024-03-01T09:00:00Z"},
		[]string{"", "", "", "", "", "", ""},
	)

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "abc", records[0].ID)
	assert.True(t, records[0].Present)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), records[0].CreatedAt)
}
