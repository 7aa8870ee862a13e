package sheets

import (
	"context"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/visitor"
	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
)

type visitorRepositoryImpl struct {
	store Store
	cache *sheetcache.Cache
}

func NewVisitorRepository(store Store, cache *sheetcache.Cache) visitor.Repository {
	return &visitorRepositoryImpl{store: store, cache: cache}
}

// List implements visitor.Repository.
func (r *visitorRepositoryImpl) List(ctx context.Context) ([]visitor.Visitor, error) {
	rows, err := readThrough(ctx, r.store, r.cache, CollectionVisitors)
	if err != nil {
		return nil, err
	}
	visitors := make([]visitor.Visitor, 0, len(rows))
	for _, row := range rows {
		if row["id"] == "" {
			continue
		}
		visitors = append(visitors, visitorFromRow(row))
	}
	return visitors, nil
}

// GetByID implements visitor.Repository.
func (r *visitorRepositoryImpl) GetByID(ctx context.Context, id string) (visitor.Visitor, error) {
	visitors, err := r.List(ctx)
	if err != nil {
		return visitor.Visitor{}, err
	}
	for _, v := range visitors {
		if v.ID == id {
			return v, nil
		}
	}
	return visitor.Visitor{}, visitor.ErrVisitorNotFound
}

// Create implements visitor.Repository.
func (r *visitorRepositoryImpl) Create(ctx context.Context, v visitor.Visitor) error {
	if err := r.store.Append(ctx, CollectionVisitors, visitorValues(v)); err != nil {
		return err
	}
	r.cache.Invalidate(CollectionVisitors)
	return nil
}

// Update implements visitor.Repository.
func (r *visitorRepositoryImpl) Update(ctx context.Context, v visitor.Visitor) (visitor.Visitor, error) {
	row, position, err := r.store.FindByID(ctx, CollectionVisitors, v.ID)
	if err != nil {
		return visitor.Visitor{}, err
	}
	if row == nil {
		return visitor.Visitor{}, visitor.ErrVisitorNotFound
	}

	existing := visitorFromRow(row)
	v.RegisteredAt = existing.RegisteredAt

	if err := r.store.UpdateAt(ctx, CollectionVisitors, position, visitorValues(v)); err != nil {
		return visitor.Visitor{}, err
	}
	r.cache.Invalidate(CollectionVisitors)
	return v, nil
}

// Delete implements visitor.Repository.
func (r *visitorRepositoryImpl) Delete(ctx context.Context, id string) error {
	row, position, err := r.store.FindByID(ctx, CollectionVisitors, id)
	if err != nil {
		return err
	}
	if row == nil {
		return visitor.ErrVisitorNotFound
	}
	if err := r.store.DeleteAt(ctx, CollectionVisitors, position); err != nil {
		return err
	}
	r.cache.Invalidate(CollectionVisitors)
	return nil
}

func visitorFromRow(row Row) visitor.Visitor {
	registeredAt, _ := time.Parse(time.RFC3339, row["registered_at"])
	return visitor.Visitor{
		ID:           row["id"],
		Name:         row["name"],
		Origin:       row["origin"],
		RegisteredAt: registeredAt,
	}
}

func visitorValues(v visitor.Visitor) []string {
	return []string{
		v.ID,
		v.Name,
		v.Origin,
		v.RegisteredAt.Format(time.RFC3339),
	}
}
