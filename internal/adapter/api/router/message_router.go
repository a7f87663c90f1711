package router

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/adapter/api/handler"
	"starlinkwifi/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	messageHandler := handler.GetMessageHandler()

	// Public contact form
	e.POST("/v1/contact", messageHandler.CreateMessage)

	// Admin inbox
	admin := e.Group("/v1/admin/messages")
	admin.Use(adminMiddleware.RequireAdmin)

	admin.GET("", messageHandler.ListMessages)
	admin.GET("/unread-count", messageHandler.UnreadCount)
	admin.PATCH("/:id/read", messageHandler.ToggleRead)
	admin.PATCH("/:id/respond", messageHandler.MarkResponded)
	admin.DELETE("/:id", messageHandler.DeleteMessage)
}
