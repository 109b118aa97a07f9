// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
// Staff accounts are provisioned out of band, never through self-service.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Region    entity.Region
	ContactNo string
	Address   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// UserInfo is the password-free projection of a user returned to callers.
type UserInfo struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      entity.Role
	Region    entity.Region // Empty for head-office staff.
	ContactNo string
	Address   string
}

// LoginOutput returns the access token and user info after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *UserInfo
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*UserInfo, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}

// NewUserInfo builds the outward projection of a user entity.
func NewUserInfo(user *entity.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Region:    user.RegionOrEmpty(),
		ContactNo: user.ContactNo,
		Address:   user.Address,
	}
}
