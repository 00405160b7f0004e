package models

import (
	"regexp"
	"time"
)

// UsernamePattern restricts usernames to Unicode letters, digits and _ . @ + -
var UsernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

const (
	UsernameMaxLength = 150
	EmailMaxLength    = 254
	NameMaxLength     = 150
)

// User represents an account on the platform
type User struct {
	ID               uint      `json:"-" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email            string    `json:"email" gorm:"size:254;uniqueIndex;not null"`
	FirstName        string    `json:"first_name" gorm:"size:150"`
	LastName         string    `json:"last_name" gorm:"size:150"`
	Bio              string    `json:"bio" gorm:"type:text"`
	Role             Role      `json:"role" gorm:"type:varchar(30);default:'user';not null"`
	ConfirmationCode string    `json:"-" gorm:"size:256"` // bcrypt hash, never exposed
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
