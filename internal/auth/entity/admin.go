package entity

import "time"

// Admin is the single account that owns the portfolio content.
type Admin struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PendingRegistration holds submitted credentials that are parked until
// the email challenge for them is verified. Nothing is written to the
// database before that happens.
type PendingRegistration struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
