package service

import (
	"context"
	"time"

	"advocate-backend/models"

	"github.com/google/uuid"
)

// ConversationLog is the append-only per-session record of exchanges
type ConversationLog interface {
	Append(ctx context.Context, sessionID string, entry models.ConversationEntry) error
	List(ctx context.Context, sessionID string) ([]models.ConversationEntry, error)
	Clear(ctx context.Context, sessionID string) error
}

// SessionStore maps bearer tokens to users
type SessionStore interface {
	Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// UserStore persists registered users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CrimeStore persists the reference crimes dataset
type CrimeStore interface {
	List(ctx context.Context) ([]*models.Crime, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Crime, error)
	FindByName(ctx context.Context, name string) (*models.Crime, error)
	Create(ctx context.Context, crime *models.Crime) error
	Update(ctx context.Context, crime *models.Crime) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PreferenceStore persists UI preferences
type PreferenceStore interface {
	Get(ctx context.Context, ownerID string) (*models.UserPreferences, error)
	Upsert(ctx context.Context, prefs *models.UserPreferences) error
}

// DocumentStore persists records of stored documents
type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
}
