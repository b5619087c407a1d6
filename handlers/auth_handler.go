package handlers

import (
	"errors"
	"net/http"

	"advocate-backend/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for accounts and sessions
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRegistration):
			respondError(c, http.StatusBadRequest, "INVALID_REGISTRATION", err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
		default:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to create account")
		}
		return
	}

	respondData(c, http.StatusCreated, result.User)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user":       result.User,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetString(tokenKey)); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to log out")
		return
	}

	respondData(c, http.StatusOK, gin.H{"logged_out": true})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := c.Get(userKey)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not logged in")
		return
	}
	respondData(c, http.StatusOK, user)
}
