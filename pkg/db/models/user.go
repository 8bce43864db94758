package models

import (
	"time"
)

// User represents the canonical identity entity. Email uniqueness is enforced
// by the index; registration relies on it instead of a pre-check query.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:firstname;not null"`
	LastName     string    `gorm:"column:lastname;not null"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
