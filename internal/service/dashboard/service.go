package dashboard

import (
	"context"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/attendance"
	"github.com/congrega/attendance-backend/internal/domain/dashboard"
	"github.com/congrega/attendance-backend/internal/domain/member"
	"github.com/congrega/attendance-backend/internal/domain/visitor"
)

type dashboardServiceImpl struct {
	memberRepo     member.Repository
	visitorRepo    visitor.Repository
	attendanceRepo attendance.Repository
	now            func() time.Time
}

func NewDashboardService(memberRepo member.Repository, visitorRepo visitor.Repository, attendanceRepo attendance.Repository) dashboard.Service {
	return &dashboardServiceImpl{
		memberRepo:     memberRepo,
		visitorRepo:    visitorRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Stats implements dashboard.Service.
func (s *dashboardServiceImpl) Stats(ctx context.Context) (dashboard.Stats, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}
	visitors, err := s.visitorRepo.List(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}
	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	nowUTC := s.now().UTC()
	today := nowUTC.Format("2006-01-02")
	firstOfMonth := time.Date(nowUTC.Year(), nowUTC.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	stats := dashboard.Stats{
		TotalMembers:  len(members),
		TotalVisitors: len(visitors),
	}
	for _, rec := range records {
		if !rec.Present {
			continue
		}
		if rec.Date == today {
			stats.TodayAttendance++
		}
		if rec.Date >= firstOfMonth && rec.Date <= today {
			stats.MonthAttendance++
		}
	}
	return stats, nil
}
