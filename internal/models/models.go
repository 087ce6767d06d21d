package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Only the bcrypt hash is stored, and it never serializes.
	PasswordHash string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserSettings holds one user's dashboard preferences. A single record per
// user, upserted with last-write-wins semantics; concurrent tabs of the same
// user simply overwrite each other.
type UserSettings struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	UserID         string   `gorm:"uniqueIndex;not null;size:36" json:"userId"`
	VisibleColumns []string `gorm:"serializer:json" json:"visibleColumns"`

	LastUpdated time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`
}
