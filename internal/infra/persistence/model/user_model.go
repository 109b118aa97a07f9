// Package model contains the GORM persistence models mirroring the SQL schema.
// IDs are UUIDs generated in the application so the schema stays portable
// across SQLite, Postgres and MySQL.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(32);not null"`
	Region    *string   `gorm:"type:varchar(16)"` // NULL for head-office staff.
	ContactNo string    `gorm:"type:varchar(32)"`
	Address   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
