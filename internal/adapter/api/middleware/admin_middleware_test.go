package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "starlinkwifi/internal/adapter/repository"
	"starlinkwifi/internal/usecase"
)

func setupAuth(t *testing.T) (*AdminMiddleware, string) {
	t.Helper()
	store, err := adapterrepo.NewLocalStore("")
	require.NoError(t, err)

	authUC := usecase.NewAuthUseCase(store, "test-secret", 3600)
	require.NoError(t, authUC.EnsureSeedAdmin(context.Background(), "admin@starlinkwifi.com", "s3cret-pass"))

	out, err := authUC.Login(context.Background(), "admin@starlinkwifi.com", "s3cret-pass")
	require.NoError(t, err)

	return NewAdminMiddleware(authUC), out.Token
}

func invoke(m *AdminMiddleware, authHeader string) (int, echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/messages", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := http.StatusTeapot
	err := m.RequireAdmin(func(c echo.Context) error {
		called = http.StatusOK
		return c.NoContent(http.StatusOK)
	})(c)

	return called, c, err
}

func TestRequireAdminWithValidToken(t *testing.T) {
	m, token := setupAuth(t)

	status, c, err := invoke(m, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin@starlinkwifi.com", c.Get("admin_email"))
	assert.NotEmpty(t, c.Get("admin_id"))
}

func TestRequireAdminMissingHeader(t *testing.T) {
	m, _ := setupAuth(t)

	status, _, err := invoke(m, "")
	require.Error(t, err)
	assert.Equal(t, http.StatusTeapot, status)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAdminMalformedHeader(t *testing.T) {
	m, token := setupAuth(t)

	for _, header := range []string{"Basic " + token, token, "Bearer"} {
		status, _, err := invoke(m, header)
		require.Error(t, err, "header %q", header)
		assert.Equal(t, http.StatusTeapot, status)
	}
}

func TestRequireAdminTamperedToken(t *testing.T) {
	m, token := setupAuth(t)

	status, _, err := invoke(m, "Bearer "+token+"x")
	require.Error(t, err)
	assert.Equal(t, http.StatusTeapot, status)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
