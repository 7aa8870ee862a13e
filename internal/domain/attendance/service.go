package attendance

import "context"

// Service defines business logic for attendance operations. There is no
// delete: attendance history is append-or-amend only.
type Service interface {
	// Upsert marks a person present or absent for a day, creating the
	// record on first submission and amending it afterwards.
	Upsert(ctx context.Context, req UpsertRequest) (RecordResponse, error)

	// ListByDate retrieves all records for one calendar day.
	ListByDate(ctx context.Context, date string) ([]RecordResponse, error)

	// ListByPerson retrieves one person's history, filtered by type.
	ListByPerson(ctx context.Context, personID, personType string) ([]RecordResponse, error)
}
