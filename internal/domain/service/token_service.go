package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the access token payload.
type Claims struct {
	UserID  uuid.UUID `json:"userId"`
	IsAdmin bool      `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService generates and validates access tokens.
type TokenService interface {
	// GenerateToken signs a token for the user.
	GenerateToken(userID uuid.UUID, isAdmin bool) (string, error)

	// ValidateToken checks signature, algorithm and expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
