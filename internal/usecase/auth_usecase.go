package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/pkg/errors"
	"starlinkwifi/pkg/logger"
)

type AuthUseCase struct {
	store     repository.Store
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthUseCase(store repository.Store, jwtSecret string, jwtExpirySeconds int64) *AuthUseCase {
	return &AuthUseCase{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: time.Duration(jwtExpirySeconds) * time.Second,
	}
}

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type LoginOutput struct {
	Token string        `json:"token"`
	Admin *entity.Admin `json:"admin"`
}

// Login checks the password against the stored bcrypt hash and issues a
// session token. Failures are a single generic unauthorized error so the
// response does not reveal which part was wrong.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	if email == "" || password == "" {
		return nil, errors.Validation("email", "password")
	}

	records, err := uc.store.List(ctx, repository.CollectionAdmins, repository.ListOptions{
		Filter: map[string]interface{}{"email": email, "active": true},
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.Unauthorized("invalid credentials", nil)
	}

	admin := entity.AdminFromRecord(records[0])
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("invalid credentials", nil)
	}

	now := time.Now()
	claims := adminClaims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.jwtExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return nil, errors.Internal("failed to sign session token", err)
	}

	return &LoginOutput{Token: token, Admin: admin}, nil
}

// Verify validates a session token and returns the admin id and email.
func (uc *AuthUseCase) Verify(tokenString string) (string, string, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("unexpected signing method", nil)
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.Unauthorized("invalid or expired token", err)
	}

	return claims.Subject, claims.Email, nil
}

// EnsureSeedAdmin creates the first credential record on an empty admins
// collection. Without a configured initial password nothing is seeded and
// login stays impossible, which beats shipping a default credential.
func (uc *AuthUseCase) EnsureSeedAdmin(ctx context.Context, email, password string) error {
	records, err := uc.store.List(ctx, repository.CollectionAdmins, repository.ListOptions{Limit: 1})
	if err != nil {
		return err
	}
	if len(records) > 0 {
		return nil
	}

	if email == "" || password == "" {
		logger.Warn("admins collection is empty and no initial admin credentials are configured")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("failed to hash initial admin password", err)
	}

	_, err = uc.store.Insert(ctx, repository.CollectionAdmins, map[string]interface{}{
		"email":         email,
		"name":          "Administrator",
		"password_hash": string(hash),
		"active":        true,
	})
	if err != nil {
		return err
	}

	logger.Info("seeded initial admin account for %s", email)
	return nil
}
