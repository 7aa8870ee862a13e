package attendance

import "time"

// Person types an attendance record can refer to.
const (
	TypeMember  = "member"
	TypeVisitor = "visitor"
)

// Record is one person's attendance on one calendar day. A (PersonID,
// Date) pair maps to at most one record; repeated submissions mutate the
// same row. PersonName is a snapshot taken at submission time, not
// re-joined from the member or visitor collection.
type Record struct {
	ID         string
	Type       string // member | visitor
	PersonID   string
	PersonName string
	Date       string // YYYY-MM-DD
	Present    bool
	CreatedAt  time.Time // last-write timestamp, refreshed on every upsert
}
