package service_test

import (
	"context"
	"testing"

	"advocate-backend/models"
	"advocate-backend/service"
	"advocate-backend/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences(t *testing.T) {
	svc := service.NewPreferenceService(service.PreferenceWithStore(servicetest.NewPreferenceStore()))
	ctx := context.Background()

	prefs, err := svc.GetPreferences(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, prefs.Theme)

	_, err = svc.SetTheme(ctx, "owner-1", models.Theme("sepia"))
	assert.ErrorIs(t, err, service.ErrInvalidTheme)

	_, err = svc.SetTheme(ctx, "owner-1", models.ThemeDark)
	require.NoError(t, err)

	prefs, err = svc.GetPreferences(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, prefs.Theme)

	other, err := svc.GetPreferences(ctx, "owner-2")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, other.Theme)
}
