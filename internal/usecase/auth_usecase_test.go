package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "starlinkwifi/pkg/errors"
)

func newAuth(t *testing.T, expirySeconds int64) *AuthUseCase {
	t.Helper()
	uc := NewAuthUseCase(newStore(t), "test-secret", expirySeconds)
	require.NoError(t, uc.EnsureSeedAdmin(context.Background(), "admin@starlinkwifi.com", "s3cret-pass"))
	return uc
}

func TestLoginAndVerify(t *testing.T) {
	uc := newAuth(t, 3600)

	out, err := uc.Login(context.Background(), "admin@starlinkwifi.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@starlinkwifi.com", out.Admin.Email)

	id, email, err := uc.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Admin.ID, id)
	assert.Equal(t, "admin@starlinkwifi.com", email)
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newAuth(t, 3600)

	_, err := uc.Login(context.Background(), "admin@starlinkwifi.com", "wrong")
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := newAuth(t, 3600)

	_, err := uc.Login(context.Background(), "nobody@starlinkwifi.com", "s3cret-pass")
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestLoginMissingCredentials(t *testing.T) {
	uc := newAuth(t, 3600)

	_, err := uc.Login(context.Background(), "", "")
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestVerifyGarbledToken(t *testing.T) {
	uc := newAuth(t, 3600)

	_, _, err := uc.Verify("not-a-token")
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyWrongSecret(t *testing.T) {
	uc := newAuth(t, 3600)

	out, err := uc.Login(context.Background(), "admin@starlinkwifi.com", "s3cret-pass")
	require.NoError(t, err)

	other := NewAuthUseCase(newStore(t), "different-secret", 3600)
	_, _, err = other.Verify(out.Token)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyExpiredToken(t *testing.T) {
	uc := newAuth(t, -1)

	out, err := uc.Login(context.Background(), "admin@starlinkwifi.com", "s3cret-pass")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, _, err = uc.Verify(out.Token)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestEnsureSeedAdminRunsOnce(t *testing.T) {
	store := newStore(t)
	uc := NewAuthUseCase(store, "test-secret", 3600)
	ctx := context.Background()

	require.NoError(t, uc.EnsureSeedAdmin(ctx, "admin@starlinkwifi.com", "first-pass"))
	// A second seed call must not overwrite the existing credential.
	require.NoError(t, uc.EnsureSeedAdmin(ctx, "admin@starlinkwifi.com", "second-pass"))

	_, err := uc.Login(ctx, "admin@starlinkwifi.com", "first-pass")
	require.NoError(t, err)
	_, err = uc.Login(ctx, "admin@starlinkwifi.com", "second-pass")
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestEnsureSeedAdminWithoutCredentials(t *testing.T) {
	store := newStore(t)
	uc := NewAuthUseCase(store, "test-secret", 3600)
	ctx := context.Background()

	require.NoError(t, uc.EnsureSeedAdmin(ctx, "", ""))

	_, err := uc.Login(ctx, "admin@starlinkwifi.com", "anything")
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}
