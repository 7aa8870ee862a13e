package dashboard

// Stats is the landing page summary. Month counts run from the first of
// the current month through today.
type Stats struct {
	TotalMembers    int `json:"total_members"`
	TotalVisitors   int `json:"total_visitors"`
	TodayAttendance int `json:"today_attendance"`
	MonthAttendance int `json:"month_attendance"`
}
