package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account of the authenticated deployment
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Theme represents the UI colour scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is one of the supported values
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// UserPreferences represents preferences of a user or anonymous session
type UserPreferences struct {
	OwnerID   string    `json:"owner_id"`
	Theme     Theme     `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}
