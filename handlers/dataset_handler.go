package handlers

import (
	"errors"
	"net/http"

	"advocate-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DatasetHandler handles HTTP requests for the reference crimes dataset
type DatasetHandler struct {
	datasetService *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasetService *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// CrimeRequest represents the request body for creating or editing a row
type CrimeRequest struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Section     string `json:"section" binding:"required"`
	Description string `json:"description"`
	Punishment  string `json:"punishment"`
}

func (r CrimeRequest) input() service.CrimeInput {
	return service.CrimeInput{
		Category:    r.Category,
		Name:        r.Name,
		Section:     r.Section,
		Description: r.Description,
		Punishment:  r.Punishment,
	}
}

// ListDataset handles GET /api/dataset
func (h *DatasetHandler) ListDataset(c *gin.Context) {
	result, err := h.datasetService.ListDataset(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "DATASET_FAILED", "Failed to load dataset")
		return
	}

	respondData(c, http.StatusOK, result.Categories)
}

// CreateCrime handles POST /api/dataset
func (h *DatasetHandler) CreateCrime(c *gin.Context) {
	var req CrimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.datasetService.CreateCrime(c.Request.Context(), service.CreateCrimeRequest{CrimeInput: req.input()})
	if err != nil {
		h.respondCrimeError(c, err)
		return
	}

	respondData(c, http.StatusCreated, result.Crime)
}

// UpdateCrime handles PUT /api/dataset/:id
func (h *DatasetHandler) UpdateCrime(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid crime ID format")
		return
	}

	var req CrimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.datasetService.UpdateCrime(c.Request.Context(), service.UpdateCrimeRequest{
		ID:         id,
		CrimeInput: req.input(),
	})
	if err != nil {
		h.respondCrimeError(c, err)
		return
	}

	respondData(c, http.StatusOK, result.Crime)
}

// DeleteCrime handles DELETE /api/dataset/:id
func (h *DatasetHandler) DeleteCrime(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid crime ID format")
		return
	}

	if err := h.datasetService.DeleteCrime(c.Request.Context(), service.DeleteCrimeRequest{ID: id}); err != nil {
		h.respondCrimeError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *DatasetHandler) respondCrimeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCrime):
		respondError(c, http.StatusBadRequest, "INVALID_CRIME", "Name, category and section are required")
	case errors.Is(err, service.ErrCrimeNotFound):
		respondError(c, http.StatusNotFound, "CRIME_NOT_FOUND", "Crime not found")
	case errors.Is(err, service.ErrCrimeExists):
		respondError(c, http.StatusConflict, "CRIME_EXISTS", "A crime with this name already exists")
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "DATASET_FAILED", "Failed to update dataset")
	}
}
