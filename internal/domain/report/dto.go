package report

import (
	"github.com/congrega/attendance-backend/internal/domain/attendance"
)

// TypeAll widens a report to both members and visitors.
const TypeAll = "all"

// Statistics summarizes a set of attendance records. AttendanceRate is a
// percentage rounded to two decimals, zero when there are no records.
type Statistics struct {
	Total          int     `json:"total"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type DateRangeReport struct {
	Records    []attendance.RecordResponse `json:"records"`
	Statistics Statistics                  `json:"statistics"`
}

type IndividualReport struct {
	PersonID   string                      `json:"person_id"`
	Type       string                      `json:"type"`
	Records    []attendance.RecordResponse `json:"records"`
	Statistics Statistics                  `json:"statistics"`
}

// DayBreakdown counts present records on one date, split by person type.
type DayBreakdown struct {
	Members  int `json:"members"`
	Visitors int `json:"visitors"`
	Total    int `json:"total"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CollectiveReport struct {
	DateRange    DateRange               `json:"date_range"`
	ByDate       map[string]DayBreakdown `json:"by_date"`
	TotalRecords int                     `json:"total_records"`
	TotalPresent int                     `json:"total_present"`
}
