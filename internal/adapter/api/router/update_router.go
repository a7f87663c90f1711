package router

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/adapter/api/handler"
	"starlinkwifi/internal/adapter/api/middleware"
)

func SetupUpdateRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	updateHandler := handler.GetUpdateHandler()
	subscriberHandler := handler.GetSubscriberHandler()
	notificationHandler := handler.GetNotificationHandler()
	websocketHandler := handler.GetWebSocketHandler()

	// Public delivery: poll-and-drain plus the live websocket feed.
	e.GET("/v1/updates", updateHandler.PollUpdates)
	e.GET("/v1/ws/updates", websocketHandler.HandleUpdates)

	// Push subscription management
	e.POST("/v1/subscribe", subscriberHandler.Subscribe)
	e.DELETE("/v1/subscribe/:token", subscriberHandler.Unsubscribe)

	// Admin broadcast and manual notification send
	admin := e.Group("/v1/admin")
	admin.Use(adminMiddleware.RequireAdmin)

	admin.POST("/updates", updateHandler.PushUpdate)
	admin.POST("/notifications", notificationHandler.SendNotification)
}
