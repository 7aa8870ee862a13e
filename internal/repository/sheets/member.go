package sheets

import (
	"context"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/member"
	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
)

type memberRepositoryImpl struct {
	store Store
	cache *sheetcache.Cache
}

func NewMemberRepository(store Store, cache *sheetcache.Cache) member.Repository {
	return &memberRepositoryImpl{store: store, cache: cache}
}

// List implements member.Repository.
func (r *memberRepositoryImpl) List(ctx context.Context) ([]member.Member, error) {
	rows, err := readThrough(ctx, r.store, r.cache, CollectionMembers)
	if err != nil {
		return nil, err
	}
	members := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		if row["id"] == "" {
			continue
		}
		members = append(members, memberFromRow(row))
	}
	return members, nil
}

// GetByID implements member.Repository.
func (r *memberRepositoryImpl) GetByID(ctx context.Context, id string) (member.Member, error) {
	members, err := r.List(ctx)
	if err != nil {
		return member.Member{}, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return member.Member{}, member.ErrMemberNotFound
}

// Create implements member.Repository.
func (r *memberRepositoryImpl) Create(ctx context.Context, m member.Member) error {
	if err := r.store.Append(ctx, CollectionMembers, memberValues(m)); err != nil {
		return err
	}
	r.cache.Invalidate(CollectionMembers)
	return nil
}

// Update implements member.Repository. The row position is resolved
// immediately before the write; positions are never carried across
// requests.
func (r *memberRepositoryImpl) Update(ctx context.Context, m member.Member) (member.Member, error) {
	row, position, err := r.store.FindByID(ctx, CollectionMembers, m.ID)
	if err != nil {
		return member.Member{}, err
	}
	if row == nil {
		return member.Member{}, member.ErrMemberNotFound
	}

	// Keep the stored registration date.
	existing := memberFromRow(row)
	m.RegisteredAt = existing.RegisteredAt

	if err := r.store.UpdateAt(ctx, CollectionMembers, position, memberValues(m)); err != nil {
		return member.Member{}, err
	}
	r.cache.Invalidate(CollectionMembers)
	return m, nil
}

// Delete implements member.Repository.
func (r *memberRepositoryImpl) Delete(ctx context.Context, id string) error {
	row, position, err := r.store.FindByID(ctx, CollectionMembers, id)
	if err != nil {
		return err
	}
	if row == nil {
		return member.ErrMemberNotFound
	}
	if err := r.store.DeleteAt(ctx, CollectionMembers, position); err != nil {
		return err
	}
	r.cache.Invalidate(CollectionMembers)
	return nil
}

func memberFromRow(row Row) member.Member {
	registeredAt, _ := time.Parse(time.RFC3339, row["registered_at"])
	return member.Member{
		ID:           row["id"],
		Name:         row["name"],
		Surname:      row["surname"],
		Address:      row["address"],
		Phone:        row["phone"],
		RegisteredAt: registeredAt,
	}
}

func memberValues(m member.Member) []string {
	return []string{
		m.ID,
		m.Name,
		m.Surname,
		m.Address,
		m.Phone,
		m.RegisteredAt.Format(time.RFC3339),
	}
}
