// Package models defines the records persisted by the tracker.
package models

import "time"

// User is an account. Email is the identity and never changes.
type User struct {
	ID           int64
	Name         string
	Surnames     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
