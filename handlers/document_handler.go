package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"advocate-backend/models"
	"advocate-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for legal document templates
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// GenerateDocumentRequest represents the request body for rendering a document
type GenerateDocumentRequest struct {
	Type    string                 `json:"type"`
	Details models.DocumentDetails `json:"details"`
	Crime   string                 `json:"crime"`
	Store   bool                   `json:"store"`
}

// GenerateDocument handles POST /api/documents
func (h *DocumentHandler) GenerateDocument(c *gin.Context) {
	var req GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.documentService.GenerateDocument(c.Request.Context(), service.GenerateDocumentRequest{
		OwnerID: ownerID(c),
		Type:    req.Type,
		Details: req.Details,
		Crime:   req.Crime,
		Store:   req.Store,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDocumentType):
			respondError(c, http.StatusBadRequest, "INVALID_DOCUMENT_TYPE",
				fmt.Sprintf("Document type must be at most %d bytes", service.MaxDocumentTypeLength))
		case errors.Is(err, service.ErrCrimeNotFound):
			respondError(c, http.StatusNotFound, "CRIME_NOT_FOUND", fmt.Sprintf("No dataset entry named %q", req.Crime))
		case errors.Is(err, service.ErrStorageUnavailable):
			respondError(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Document storage is not configured")
		default:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "DOCUMENT_FAILED", "Error generating document")
		}
		return
	}

	data := gin.H{"document": result.Document}
	status := http.StatusOK
	if result.Record != nil {
		data["record"] = result.Record
		status = http.StatusCreated
	}
	respondData(c, status, data)
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid document ID format")
		return
	}

	result, err := h.documentService.GetDocument(c.Request.Context(), service.GetDocumentRequest{
		OwnerID: ownerID(c),
		ID:      id,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
		case errors.Is(err, service.ErrStorageUnavailable):
			respondError(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Document storage is not configured")
		default:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", "Failed to download document")
		}
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.Record.Filename}))
	c.Data(http.StatusOK, result.Record.MimeType, result.Content)
}
