package router

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupMessageRouter(e, adminMiddleware)
	SetupGalleryRouter(e, adminMiddleware)
	SetupBundleRouter(e, adminMiddleware)
	SetupUpdateRouter(e, adminMiddleware)
	SetupHealthRouter(e)
}
