package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "aspirebot-backend/internal/auth"
	"aspirebot-backend/internal/counsel"
	"aspirebot-backend/internal/shared/config"
	"aspirebot-backend/internal/shared/server/middleware"
	"aspirebot-backend/internal/shared/server/respond"
	"aspirebot-backend/internal/users"
)

// RouterDeps carries the handlers the router mounts. Nil handlers are
// skipped so tests can wire only what they exercise.
type RouterDeps struct {
	Config         config.Config
	UserHandler    *users.Handler
	CounselHandler *counsel.Handler
	GoogleAuth     *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.DefaultRule(), middleware.NewRateLimiter(nil)),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.CounselHandler != nil {
		deps.CounselHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
