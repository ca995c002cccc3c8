// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mall/internal/delivery/http/middleware"
	"mall/internal/delivery/http/router/handler"
	"mall/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	ShopHandler         *handler.ShopHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	shopHandler         *handler.ShopHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		shopHandler:         params.ShopHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Authenticated identity routes
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.accountHandler.Me)
	}

	// Public shop reads
	e.GET("/shops/:id", r.shopHandler.Get)

	// Vendor routes: registration, metadata edits, withdrawal
	vendorGroup := e.Group("/shops")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.POST("", r.shopHandler.Register)
		vendorGroup.GET("/mine", r.shopHandler.ListMine)
		vendorGroup.PATCH("/:id", r.shopHandler.Update)
		vendorGroup.DELETE("/:id", r.shopHandler.Withdraw)
	}

	// Admin routes: review queue and status decisions
	adminGroup := e.Group("/admin/shops")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("", r.shopHandler.ListByStatus)
		adminGroup.POST("/:id/approve", r.shopHandler.Approve)
		adminGroup.POST("/:id/reject", r.shopHandler.Reject)
		adminGroup.POST("/:id/suspend", r.shopHandler.Suspend)
		adminGroup.POST("/:id/reinstate", r.shopHandler.Reinstate)
	}

	// Notification inbox routes for any authenticated account
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.POST("/:id/archive", r.notificationHandler.Archive)
	}
}
