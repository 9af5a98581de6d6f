// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can log in and keep a personal collection.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"` // Unique login identifier.
	PasswordHash string    `json:"-"`        // bcrypt digest; never serialized or logged.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the public-safe projection of a User, returned from login
// and profile endpoints. It carries no credential material.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Summary strips a User down to its public fields.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username}
}
