package domain

import "time"

// User represents an account of the system, including the profile fields
// that get embedded into session tokens. PasswordHash stays server-side.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Address      string    `json:"address"`
	PhoneNumber  string    `json:"phone_number"`
	Role         string    `json:"role"`
	Photo        string    `json:"photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Scrubbed returns a copy of the user with the password hash removed.
func (u User) Scrubbed() User {
	u.PasswordHash = ""
	return u
}
