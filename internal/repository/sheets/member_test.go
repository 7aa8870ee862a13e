package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/member"
	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemberFixture() (*fakeStore, *sheetcache.Cache, member.Repository) {
	store := newFakeStore()
	cache := sheetcache.New(30 * time.Second)
	return store, cache, NewMemberRepository(store, cache)
}

func TestMemberList_ReadThroughCaching(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newMemberFixture()
	store.seed(CollectionMembers,
		[]string{"m1", "Jane", "Doe", "1 Main St", "555-0100", "2024-01-15T08:00:00Z"},
	)

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, store.readCalls, "second list must be served from the cache")
	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, "Jane", first[0].Name)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), first[0].RegisteredAt)
}

func TestMemberCreate_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newMemberFixture()

	_, err := repo.List(ctx)
	require.NoError(t, err)

	err = repo.Create(ctx, member.Member{
		ID:           "m1",
		Name:         "Jane",
		Surname:      "Doe",
		Address:      "1 Main St",
		Phone:        "555-0100",
		RegisteredAt: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.appendCalls)

	members, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.readCalls, "create must invalidate the cached collection")
	require.Len(t, members, 1)
	assert.Equal(t, "m1", members[0].ID)
}

func TestMemberUpdate_PreservesRegisteredAt(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newMemberFixture()
	store.seed(CollectionMembers,
		[]string{"m1", "Jane", "Doe", "1 Main St", "555-0100", "2024-01-15T08:00:00Z"},
	)

	updated, err := repo.Update(ctx, member.Member{
		ID:      "m1",
		Name:    "Jane",
		Surname: "Smith",
		Address: "2 Oak Ave",
		Phone:   "555-0111",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, 2, store.lastUpdatePosition)
	assert.Equal(t, "Smith", updated.Surname)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), updated.RegisteredAt)
	assert.Equal(t, "2024-01-15T08:00:00Z", store.lastUpdateValues[5])
}

func TestMemberUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	_, _, repo := newMemberFixture()

	_, err := repo.Update(ctx, member.Member{ID: "missing"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestMemberDelete(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newMemberFixture()
	store.seed(CollectionMembers,
		[]string{"m1", "Jane", "Doe", "1 Main St", "555-0100", "2024-01-15T08:00:00Z"},
		[]string{"m2", "John", "Roe", "3 Pine Rd", "555-0122", "2024-02-01T08:00:00Z"},
	)

	err := repo.Delete(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, store.deleteCalls)

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "m2", members[0].ID)
}

func TestMemberDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	_, _, repo := newMemberFixture()

	err := repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestMemberGetByID(t *testing.T) {
	ctx := context.Background()
	store, _, repo := newMemberFixture()
	store.seed(CollectionMembers,
		[]string{"m1", "Jane", "Doe", "1 Main St", "555-0100", "2024-01-15T08:00:00Z"},
	)

	m, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Doe", m.Surname)

	_, err = repo.GetByID(ctx, "m9")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
