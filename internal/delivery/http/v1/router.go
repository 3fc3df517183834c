package v1

import (
	"log/slog"
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	AdminUC   domain.AdminUsecase
	Config    *config.Config
	Log       *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(log))
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window), log))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Public routes; the contact form gets its own tighter limit
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window), log))
	NewContactHandler(public, deps.ContactUC)

	// Operator routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(deps.Config.AdminJWTSecret))
	NewAdminHandler(admin, deps.AdminUC)

	return r
}
