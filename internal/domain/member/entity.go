package member

import "time"

type Member struct {
	ID           string
	Name         string
	Surname      string
	Address      string
	Phone        string
	RegisteredAt time.Time
}
