package domain

import "time"

// User is the domain entity for a user account. Email is where the reminder
// job addresses daily digests.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
