package auth

import "time"

// User is an operator account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
}
