package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"advocate-backend/metrics"
	"advocate-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SessionCookieName identifies anonymous sessions
	SessionCookieName = "advocate_session"

	ownerIDKey = "owner_id"
	userKey    = "user"
	tokenKey   = "token"
)

// RequestLogger logs every request once it has been served
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if owner := c.GetString(ownerIDKey); owner != "" {
			fields = append(fields, zap.String("owner_id", owner))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request served", fields...)
	}
}

// RequestMetrics records request counts and latencies per route
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// AnonymousSession identifies the caller by a session cookie, issuing a new
// one when it is missing or malformed
func AnonymousSession(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err == nil {
			_, err = uuid.Parse(sessionID)
		}
		if err != nil {
			sessionID = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, sessionID, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(ownerIDKey, sessionID)
		c.Next()
	}
}

// RequireBearer rejects requests without a valid bearer token and
// identifies the caller by the token's user
func RequireBearer(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify session")
			return
		}

		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Set(ownerIDKey, user.ID.String())
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func ownerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}
