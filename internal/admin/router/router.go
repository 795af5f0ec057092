package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"staffadmin/internal/admin/auth"
	"staffadmin/internal/admin/handler"
)

func RegisterRoutes(e *echo.Echo, h *handler.StaffHandler, tokens *auth.TokenManager) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/admin")
	api.Use(handler.RequestIDMiddleware)

	// Login issues the bearer token the rest of the API requires
	api.POST("/auth/login", h.PostLogin)

	protected := api.Group("")
	protected.Use(handler.AuthMiddleware(tokens))

	// Group Management
	protected.GET("/groups", h.GetGroups)
	protected.POST("/groups", h.PostGroup)
	protected.PATCH("/groups/:id", h.PatchGroup)
	protected.DELETE("/groups/:id", h.DeleteGroup)
	protected.POST("/groups/:id/add-member", h.PostGroupMember)
	protected.DELETE("/groups/:id/remove-member/:userId", h.DeleteGroupMember)

	// Staff Administration
	protected.GET("/admin-users", h.GetAdminUsers)
	protected.POST("/admin-users", h.PostAdminUser)
	protected.GET("/admin-users/pending/list", h.GetPendingAdmins)
	protected.POST("/admin-users/:id/verify", h.PostVerifyAdmin)
	protected.PATCH("/admin-users/:id/status", h.PatchAdminStatus)
	protected.POST("/promote-user", h.PostPromoteUser)

	// Audit trail
	protected.GET("/audit-logs", h.GetAuditLogs)
}
