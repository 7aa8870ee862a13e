package attendance

import "context"

// Repository defines row store access for attendance records.
type Repository interface {
	// ListAll retrieves every attendance record, served through the
	// collection cache.
	ListAll(ctx context.Context) ([]Record, error)

	// Upsert creates or updates the record for (rec.PersonID, rec.Date).
	// On update the stored record id is preserved and rec's id is
	// discarded; CreatedAt is overwritten either way. The returned record
	// is the state as written to the store.
	Upsert(ctx context.Context, rec Record) (Record, error)
}
