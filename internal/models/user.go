package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. A role is fixed at creation
// and never changes afterwards.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never plaintext
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:user"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	Searches  []Search  `json:"-" gorm:"foreignKey:UserID"` // one-to-many relation
}

// BeforeCreate assigns the id here instead of relying on a database-side
// default, so the same model works on both postgres and sqlite.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
