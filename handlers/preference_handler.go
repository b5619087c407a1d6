package handlers

import (
	"errors"
	"net/http"

	"advocate-backend/models"
	"advocate-backend/service"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler handles HTTP requests for UI preferences
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// UpdatePreferencesRequest represents the request body for changing preferences
type UpdatePreferencesRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetPreferences handles GET /api/preferences
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferenceService.GetPreferences(c.Request.Context(), ownerID(c))
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "PREFERENCES_FAILED", "Failed to load preferences")
		return
	}

	respondData(c, http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /api/preferences
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	prefs, err := h.preferenceService.SetTheme(c.Request.Context(), ownerID(c), models.Theme(req.Theme))
	if err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			respondError(c, http.StatusBadRequest, "INVALID_THEME", "Theme must be light or dark")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "PREFERENCES_FAILED", "Failed to save preferences")
		return
	}

	respondData(c, http.StatusOK, prefs)
}
