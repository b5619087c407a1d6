package service

import (
	"context"
	"errors"
	"fmt"

	"advocate-backend/models"
	"advocate-backend/repository"
)

// PreferenceService reads and writes UI preferences
type PreferenceService struct {
	preferences PreferenceStore
}

// PreferenceServiceOption is a functional option for PreferenceService
type PreferenceServiceOption func(*PreferenceService)

// PreferenceWithStore sets the preference store
func PreferenceWithStore(store PreferenceStore) PreferenceServiceOption {
	return func(s *PreferenceService) {
		s.preferences = store
	}
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(opts ...PreferenceServiceOption) *PreferenceService {
	s := &PreferenceService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPreferences returns the owner's preferences, light theme if none are saved
func (s *PreferenceService) GetPreferences(ctx context.Context, ownerID string) (*models.UserPreferences, error) {
	prefs, err := s.preferences.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.UserPreferences{OwnerID: ownerID, Theme: models.ThemeLight}, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return prefs, nil
}

// SetTheme stores the owner's theme
func (s *PreferenceService) SetTheme(ctx context.Context, ownerID string, theme models.Theme) (*models.UserPreferences, error) {
	if !theme.Valid() {
		return nil, ErrInvalidTheme
	}

	prefs := &models.UserPreferences{OwnerID: ownerID, Theme: theme}
	if err := s.preferences.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}
