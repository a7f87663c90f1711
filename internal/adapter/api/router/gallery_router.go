package router

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/adapter/api/handler"
	"starlinkwifi/internal/adapter/api/middleware"
)

func SetupGalleryRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	galleryHandler := handler.GetGalleryHandler()

	// Public gallery
	e.GET("/v1/gallery", galleryHandler.ListImages)

	// Admin gallery management
	admin := e.Group("/v1/admin/gallery")
	admin.Use(adminMiddleware.RequireAdmin)

	admin.GET("", galleryHandler.ListAllImages)
	admin.POST("", galleryHandler.UploadImage)
	admin.PATCH("/:id/visibility", galleryHandler.ToggleVisibility)
	admin.DELETE("/:id", galleryHandler.DeleteImage)
}
