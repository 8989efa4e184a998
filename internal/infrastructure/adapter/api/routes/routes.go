package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every route handler
type Handlers struct {
	User        *handler.UserHandler
	Link        *handler.LinkHandler
	Transaction *handler.TransactionHandler
	Admin       *handler.AdminHandler
	Health      *handler.HealthHandler
}

// Guards are the per-group middlewares
type Guards struct {
	Auth           gin.HandlerFunc
	AdminRateLimit gin.HandlerFunc
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, g Guards, metrics http.Handler) {
	router.GET("/healthz", h.Health.Healthz)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	v1 := router.Group("/api/v1")

	// Unauthenticated
	v1.GET("/public/links/:publicId", h.Link.GetPublic)
	v1.POST("/payments/callback", h.Transaction.PaymentCallback)

	authed := v1.Group("", g.Auth)
	{
		authed.GET("/me", h.User.Me)
		authed.POST("/me/notifications", h.User.SetNotifications)
		authed.POST("/messaging/claim", h.User.ClaimBonus)

		authed.POST("/links", h.Link.Create)
		authed.GET("/links", h.Link.List)
		authed.GET("/links/:id", h.Link.Get)
		authed.PUT("/links/:id", h.Link.Update)
		authed.POST("/links/:id/extend", h.Link.Extend)
		authed.DELETE("/links/:id", h.Link.Delete)

		authed.POST("/payments/initialize", h.Transaction.InitializePayment)
		authed.POST("/payments/verify", h.Transaction.VerifyPayment)
		authed.GET("/transactions", h.Transaction.List)
	}

	admin := v1.Group("/admin", g.AdminRateLimit, g.Auth, middleware.RequireAdmin())
	{
		admin.POST("/credit", h.Admin.Grant)
		admin.GET("/stats", h.Admin.Stats)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, metrics *middleware.HTTPMetrics, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	if metrics != nil {
		router.Use(metrics.Handler())
	}
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
