package service

import (
	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the authenticated identity carried by an access token:
// the identity + role + region triple consumed by every authorization check.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	Region entity.Region // Empty for head-office staff.
}

// TokenService defines the interface for generating and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
