// Package entity contains the core business objects of the shop,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a shop account. Customers and administrators share the same record;
// IsAdmin decides whether the account may reach protected routes.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	Phone        string    `json:"phone"`
	IsAdmin      bool      `json:"isAdmin"`
	Street       string    `json:"street"`
	Apartment    string    `json:"apartment"`
	Zip          string    `json:"zip"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is the user projection embedded in order reads.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
