package visitor

import "time"

type Visitor struct {
	ID           string
	Name         string
	Origin       string
	RegisteredAt time.Time
}
