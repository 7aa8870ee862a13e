package report

import "context"

// Service computes attendance reports. All aggregation happens over the
// already-materialized attendance rows; no extra store reads per report.
type Service interface {
	// ByDateRange reports records with date in [start, end], optionally
	// narrowed to one person type (TypeAll keeps both).
	ByDateRange(ctx context.Context, start, end, personType string) (DateRangeReport, error)

	// Individual reports one person's history; start and end are
	// optional and only apply when both are set.
	Individual(ctx context.Context, personID, personType, start, end string) (IndividualReport, error)

	// Collective reports present counts per date across [start, end].
	Collective(ctx context.Context, start, end string) (CollectiveReport, error)
}
