package handlers

import (
	"errors"
	"net/http"

	"advocate-backend/service"

	"github.com/gin-gonic/gin"
)

// AdviceHandler handles HTTP requests for advice and conversation history
type AdviceHandler struct {
	adviceService *service.AdviceService
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(adviceService *service.AdviceService) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService}
}

// ChatRequest represents the request body for asking for advice
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /api/chat
func (h *AdviceHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.adviceService.GetAdvice(c.Request.Context(), service.GetAdviceRequest{
		SessionID: ownerID(c),
		Message:   req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			respondError(c, http.StatusBadRequest, "EMPTY_MESSAGE", "Please enter a message")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "ADVICE_FAILED", "An error occurred processing your request")
		return
	}

	respondData(c, http.StatusOK, result.Advice)
}

// GetHistory handles GET /api/history
func (h *AdviceHandler) GetHistory(c *gin.Context) {
	result, err := h.adviceService.GetHistory(c.Request.Context(), service.GetHistoryRequest{
		SessionID: ownerID(c),
	})
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "HISTORY_FAILED", "Failed to load conversation history")
		return
	}

	respondData(c, http.StatusOK, result.Entries)
}

// ClearHistory handles DELETE /api/history
func (h *AdviceHandler) ClearHistory(c *gin.Context) {
	if _, err := h.adviceService.ClearHistory(c.Request.Context(), service.ClearHistoryRequest{
		SessionID: ownerID(c),
	}); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "HISTORY_FAILED", "Failed to clear conversation history")
		return
	}

	respondData(c, http.StatusOK, gin.H{"cleared": true})
}
