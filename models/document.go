package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentDetails holds the user-supplied fields of a legal document
type DocumentDetails struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// Document represents a rendered document persisted to storage
type Document struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      string    `json:"owner_id"`
	DocumentType string    `json:"document_type"`
	Filename     string    `json:"filename"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	StoragePath  string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
