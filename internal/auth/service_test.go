package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jak-krittin/minishop-backend/internal/users"
	pkgAuth "github.com/jak-krittin/minishop-backend/pkg/auth"
	"github.com/jak-krittin/minishop-backend/pkg/config"
	"github.com/jak-krittin/minishop-backend/pkg/db/models"
	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
	"github.com/jak-krittin/minishop-backend/pkg/types"
)

var testJWT = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "minishop",
	ExpirationMinutes: 60,
}

func newAuthTestService(t *testing.T) Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))

	svc, err := NewService(ServiceParams{
		UserRepo:       users.NewRepository(conn),
		PasswordConfig: config.PasswordConfig{BcryptCost: 4},
		JWTConfig:      testJWT,
	})
	require.NoError(t, err)
	return svc
}

func register(t *testing.T, svc Service, email string) *AuthResponse {
	t.Helper()

	result, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Jak",
		LastName:  "Krittin",
		Email:     email,
		Password:  "secret123",
	})
	require.NoError(t, err)
	return result
}

func TestRegisterSuccess(t *testing.T) {
	svc := newAuthTestService(t)

	result := register(t, svc, "new@example.com")
	assert.Equal(t, types.StatusOK, result.Status)
	assert.Equal(t, "User registered successfully", result.Message)
	require.NotNil(t, result.User)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.NotZero(t, result.User.ID)

	claims, err := pkgAuth.ParseAccessToken(testJWT, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", claims.Email)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := newAuthTestService(t)

	result := register(t, svc, "  Mixed@Example.COM ")
	assert.Equal(t, "mixed@example.com", result.User.Email)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthTestService(t)
	register(t, svc, "dup@example.com")

	_, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "dup@example.com",
		Password:  "different",
	})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, "Email already exists", typed.Message())
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthTestService(t)
	register(t, svc, "login@example.com")

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "login@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "User logged in successfully", result.Message)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, result.User)
	assert.Equal(t, "login@example.com", result.User.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
	assert.Equal(t, "Email does not exists", typed.Message())
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthTestService(t)
	register(t, svc, "victim@example.com")

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "victim@example.com",
		Password: "not-the-password",
	})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
	assert.Equal(t, "Email and password does not match", typed.Message())
}
