package entity

import (
	"time"
)

// Admin is a management panel credential record. PasswordHash is a bcrypt
// hash and never leaves the server.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func AdminFromRecord(r *Record) *Admin {
	return &Admin{
		ID:           r.ID,
		Email:        r.String("email"),
		Name:         r.String("name"),
		PasswordHash: r.String("password_hash"),
		Active:       r.Bool("active"),
		CreatedAt:    r.CreatedAt,
	}
}
