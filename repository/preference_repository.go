package repository

import (
	"context"

	"advocate-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PreferenceRepository handles database operations for UI preferences
type PreferenceRepository struct {
	db *pgxpool.Pool
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves the preferences of an owner (user ID or anonymous session ID)
func (r *PreferenceRepository) Get(ctx context.Context, ownerID string) (*models.UserPreferences, error) {
	prefs := &models.UserPreferences{}
	query := `
		SELECT owner_id, theme, updated_at
		FROM preferences
		WHERE owner_id = $1`

	err := r.db.QueryRow(ctx, query, ownerID).Scan(&prefs.OwnerID, &prefs.Theme, &prefs.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return prefs, nil
}

// Upsert stores the preferences of an owner
func (r *PreferenceRepository) Upsert(ctx context.Context, prefs *models.UserPreferences) error {
	query := `
		INSERT INTO preferences (owner_id, theme)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET
			theme = EXCLUDED.theme,
			updated_at = NOW()
		RETURNING updated_at`

	return r.db.QueryRow(ctx, query, prefs.OwnerID, prefs.Theme).Scan(&prefs.UpdatedAt)
}
