package sheets

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/attendance"
	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
)

type attendanceRepositoryImpl struct {
	store Store
	cache *sheetcache.Cache

	// Serializes upserts so two concurrent submissions for the same
	// (person, date) cannot both scan a miss and append twice. The store
	// itself enforces no unique constraint.
	mu sync.Mutex
}

func NewAttendanceRepository(store Store, cache *sheetcache.Cache) attendance.Repository {
	return &attendanceRepositoryImpl{store: store, cache: cache}
}

// ListAll implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Record, error) {
	rows, err := readThrough(ctx, r.store, r.cache, CollectionAttendance)
	if err != nil {
		return nil, err
	}
	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		if row["id"] == "" {
			continue
		}
		records = append(records, attendanceFromRow(row))
	}
	return records, nil
}

// Upsert implements attendance.Repository.
//
// The store write always precedes the cache write: the cache must never
// hold a state that was not first durably written. On the update path
// the cache is patched in place rather than invalidated, which spares an
// immediate refetch against the store's request quota.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readThrough(ctx, r.store, r.cache, CollectionAttendance)
	if err != nil {
		return attendance.Record{}, err
	}

	// First match wins; a latent duplicate from a prior race keeps its
	// extra rows untouched.
	idx := -1
	for i, row := range rows {
		if row["person_id"] == rec.PersonID && row["date"] == rec.Date {
			idx = i
			break
		}
	}

	if idx >= 0 {
		rec.ID = rows[idx]["id"]
		position := idx + headerRows + 1
		if err := r.store.UpdateAt(ctx, CollectionAttendance, position, attendanceValues(rec)); err != nil {
			if errors.Is(err, ErrPositionInvalid) {
				slog.Error("attendance row moved during update", "person_id", rec.PersonID, "date", rec.Date)
			}
			return attendance.Record{}, err
		}

		patched := make([]Row, len(rows))
		copy(patched, rows)
		patched[idx] = attendanceToRow(rec)
		r.cache.Set(CollectionAttendance, patched)
		return rec, nil
	}

	if err := r.store.Append(ctx, CollectionAttendance, attendanceValues(rec)); err != nil {
		return attendance.Record{}, err
	}

	extended := make([]Row, len(rows), len(rows)+1)
	copy(extended, rows)
	extended = append(extended, attendanceToRow(rec))
	r.cache.Set(CollectionAttendance, extended)
	return rec, nil
}

func attendanceFromRow(row Row) attendance.Record {
	createdAt, _ := time.Parse(time.RFC3339, row["created_at"])
	return attendance.Record{
		ID:         row["id"],
		Type:       row["type"],
		PersonID:   row["person_id"],
		PersonName: row["person_name"],
		Date:       row["date"],
		Present:    strings.EqualFold(row["present"], "TRUE"),
		CreatedAt:  createdAt,
	}
}

func attendanceToRow(rec attendance.Record) Row {
	return Row{
		"type":        rec.Type,
		"person_id":   rec.PersonID,
		"person_name": rec.PersonName,
		"date":        rec.Date,
		"present":     encodeBool(rec.Present),
		"id":          rec.ID,
		"created_at":  rec.CreatedAt.Format(time.RFC3339),
	}
}

func attendanceValues(rec attendance.Record) []string {
	return []string{
		rec.Type,
		rec.PersonID,
		rec.PersonName,
		rec.Date,
		encodeBool(rec.Present),
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339),
	}
}

// The sheet stores booleans as "TRUE"/"FALSE"; the encoding exists only
// at this boundary.
func encodeBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
