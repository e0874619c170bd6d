package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	FullName  string    `json:"fullName" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	GoogleID  *string   `json:"-" gorm:"uniqueIndex"`
	CreatedOn time.Time `json:"createdOn" gorm:"autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile is the subset of a user returned by register and login.
type Profile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (u *User) Profile() Profile {
	return Profile{FullName: u.FullName, Email: u.Email}
}
