package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted registration record. The password hash is the
// only stored representation of the secret and is excluded from JSON.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName     string    `json:"fullname" gorm:"not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Nickname     string    `json:"nickname" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Address      string    `json:"address" gorm:"not null"`
	Nationality  string    `json:"nationality" gorm:"not null"`
	Zipcode      string    `json:"zipcode" gorm:"not null"`
	Occupation   string    `json:"occupation" gorm:"not null"`
	About        string    `json:"about" gorm:"not null"`
	Gender       string    `json:"gender" gorm:"not null"`
	IsAdmin      bool      `json:"isAdmin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
