package report

import (
	"context"
	"math"

	"github.com/congrega/attendance-backend/internal/domain/attendance"
	"github.com/congrega/attendance-backend/internal/domain/report"
	"github.com/congrega/attendance-backend/internal/pkg/validator"
)

type reportServiceImpl struct {
	attendanceRepo attendance.Repository
}

func NewReportService(attendanceRepo attendance.Repository) report.Service {
	return &reportServiceImpl{attendanceRepo: attendanceRepo}
}

// ByDateRange implements report.Service.
func (s *reportServiceImpl) ByDateRange(ctx context.Context, start, end, personType string) (report.DateRangeReport, error) {
	if err := validateRange(start, end); err != nil {
		return report.DateRangeReport{}, err
	}

	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return report.DateRangeReport{}, err
	}

	matched := make([]attendance.RecordResponse, 0)
	for _, rec := range records {
		if !inRange(rec.Date, start, end) {
			continue
		}
		if personType != report.TypeAll && rec.Type != personType {
			continue
		}
		matched = append(matched, attendance.ToResponse(rec))
	}

	return report.DateRangeReport{
		Records:    matched,
		Statistics: computeStatistics(matched),
	}, nil
}

// Individual implements report.Service.
func (s *reportServiceImpl) Individual(ctx context.Context, personID, personType, start, end string) (report.IndividualReport, error) {
	if personType != attendance.TypeMember && personType != attendance.TypeVisitor {
		return report.IndividualReport{}, attendance.ErrInvalidPersonType
	}
	bounded := start != "" && end != ""
	if bounded {
		if err := validateRange(start, end); err != nil {
			return report.IndividualReport{}, err
		}
	}

	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return report.IndividualReport{}, err
	}

	matched := make([]attendance.RecordResponse, 0)
	for _, rec := range records {
		if rec.PersonID != personID || rec.Type != personType {
			continue
		}
		if bounded && !inRange(rec.Date, start, end) {
			continue
		}
		matched = append(matched, attendance.ToResponse(rec))
	}

	return report.IndividualReport{
		PersonID:   personID,
		Type:       personType,
		Records:    matched,
		Statistics: computeStatistics(matched),
	}, nil
}

// Collective implements report.Service.
func (s *reportServiceImpl) Collective(ctx context.Context, start, end string) (report.CollectiveReport, error) {
	if err := validateRange(start, end); err != nil {
		return report.CollectiveReport{}, err
	}

	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return report.CollectiveReport{}, err
	}

	byDate := make(map[string]report.DayBreakdown)
	totalRecords := 0
	totalPresent := 0
	for _, rec := range records {
		if !inRange(rec.Date, start, end) {
			continue
		}
		totalRecords++
		if !rec.Present {
			continue
		}
		totalPresent++

		day := byDate[rec.Date]
		day.Total++
		if rec.Type == attendance.TypeMember {
			day.Members++
		} else {
			day.Visitors++
		}
		byDate[rec.Date] = day
	}

	return report.CollectiveReport{
		DateRange:    report.DateRange{Start: start, End: end},
		ByDate:       byDate,
		TotalRecords: totalRecords,
		TotalPresent: totalPresent,
	}, nil
}

func validateRange(start, end string) error {
	if _, ok := validator.IsValidDate(start); !ok {
		return report.ErrInvalidDateRange
	}
	if _, ok := validator.IsValidDate(end); !ok {
		return report.ErrInvalidDateRange
	}
	if end < start {
		return report.ErrInvalidDateRange
	}
	return nil
}

// ISO dates compare lexicographically, so the range check is plain
// string comparison on validated input.
func inRange(date, start, end string) bool {
	return date >= start && date <= end
}

func computeStatistics(records []attendance.RecordResponse) report.Statistics {
	stats := report.Statistics{Total: len(records)}
	for _, rec := range records {
		if rec.Present {
			stats.Present++
		}
	}
	stats.Absent = stats.Total - stats.Present
	if stats.Total > 0 {
		rate := float64(stats.Present) / float64(stats.Total) * 100
		stats.AttendanceRate = math.Round(rate*100) / 100
	}
	return stats
}
