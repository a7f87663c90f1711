package router

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/adapter/api/handler"
	"starlinkwifi/internal/adapter/api/middleware"
)

func SetupBundleRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	bundleHandler := handler.GetBundleHandler()

	// Public price list
	e.GET("/v1/bundles", bundleHandler.ListBundles)

	// Admin bundle management
	admin := e.Group("/v1/admin/bundles")
	admin.Use(adminMiddleware.RequireAdmin)

	admin.GET("", bundleHandler.ListAllBundles)
	admin.PUT("/:slug", bundleHandler.UpsertBundle)
	admin.PATCH("/:slug/visibility", bundleHandler.ToggleVisibility)
	admin.DELETE("/:slug", bundleHandler.DeleteBundle)
}
