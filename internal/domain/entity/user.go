package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system. Role and Region together gate
// which orders and inventory the user may read or mutate.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // Login identifier, unique across the system.
	PasswordHash string
	Role         Role
	Region       *Region // Nil for head-office staff; set for everyone else.
	ContactNo    string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegionOrEmpty returns the user's region, or "" when none is assigned.
func (u *User) RegionOrEmpty() Region {
	if u.Region == nil {
		return ""
	}

	return *u.Region
}
