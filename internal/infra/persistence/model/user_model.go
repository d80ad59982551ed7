// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Index names are matched against PostgreSQL's constraint_name to tell which
// unique field rejected an insert.
const (
	UsersEmailIndex    = "idx_users_email"
	UsersDocumentIndex = "idx_users_document"
)

// UserModel mirrors the 'users' table. Text columns carry no length limit
// beyond what request validation enforces.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Document     string    `gorm:"type:text;not null;uniqueIndex:idx_users_document"`
	PasswordHash *string   `gorm:"column:password;type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
