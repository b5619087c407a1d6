package models

import (
	"time"

	"github.com/google/uuid"
)

// Crime represents a row of the editable reference crimes dataset
type Crime struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Section     string    `json:"section"`
	Description string    `json:"description"`
	Punishment  string    `json:"punishment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CrimeCategory groups dataset rows under their category label
type CrimeCategory struct {
	Name   string   `json:"name"`
	Crimes []*Crime `json:"crimes"`
}
