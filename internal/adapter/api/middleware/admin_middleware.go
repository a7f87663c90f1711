package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/usecase"
)

// AdminMiddleware gates every management route behind a Bearer session token.
// The check happens server-side against the signing secret; there is no
// client-held authentication flag.
type AdminMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAdminMiddleware(authUseCase *usecase.AuthUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		adminID, email, err := m.authUseCase.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("admin_id", adminID)
		c.Set("admin_email", email)

		return next(c)
	}
}
