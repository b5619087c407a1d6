package handlers

import (
	"net/http"
	"time"

	"advocate-backend/config"
	"advocate-backend/metrics"
	"advocate-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds everything the HTTP boundary is assembled from.
// Auth and AuthService are only used in authenticated mode.
type RouterConfig struct {
	Mode          config.Mode
	SessionTTL    time.Duration
	SecureCookies bool
	Logger        *zap.Logger
	Metrics       *metrics.Metrics

	Advice      *AdviceHandler
	Documents   *DocumentHandler
	Dataset     *DatasetHandler
	Preferences *PreferenceHandler
	Auth        *AuthHandler
	AuthService *service.AuthService
}

// NewRouter builds the gin engine for the configured boundary mode
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), RequestMetrics(cfg.Metrics))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"mode":   cfg.Mode,
		})
	})
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")

	var protected *gin.RouterGroup
	if cfg.Mode.RequireAuth() {
		api.POST("/auth/register", cfg.Auth.Register)
		api.POST("/auth/login", cfg.Auth.Login)

		protected = api.Group("", RequireBearer(cfg.AuthService))
		protected.POST("/auth/logout", cfg.Auth.Logout)
		protected.GET("/auth/me", cfg.Auth.Me)
	} else {
		protected = api.Group("", AnonymousSession(cfg.SessionTTL, cfg.SecureCookies))
	}

	{
		// Advice endpoints
		protected.POST("/chat", cfg.Advice.Chat)
		protected.GET("/history", cfg.Advice.GetHistory)
		protected.DELETE("/history", cfg.Advice.ClearHistory)

		// Document endpoints
		protected.POST("/documents", cfg.Documents.GenerateDocument)
		protected.GET("/documents/:id", cfg.Documents.GetDocument)

		// Dataset endpoints
		protected.GET("/dataset", cfg.Dataset.ListDataset)
		protected.POST("/dataset", cfg.Dataset.CreateCrime)
		protected.PUT("/dataset/:id", cfg.Dataset.UpdateCrime)
		protected.DELETE("/dataset/:id", cfg.Dataset.DeleteCrime)

		// Preference endpoints
		protected.GET("/preferences", cfg.Preferences.GetPreferences)
		protected.PUT("/preferences", cfg.Preferences.UpdatePreferences)
	}

	return r
}
