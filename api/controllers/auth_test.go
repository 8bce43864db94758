package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jak-krittin/minishop-backend/internal/auth"
	"github.com/jak-krittin/minishop-backend/internal/users"
	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
	"github.com/jak-krittin/minishop-backend/pkg/types"
)

type stubAuthService struct {
	registerResp *auth.AuthResponse
	registerErr  error
	loginResp    *auth.AuthResponse
	loginErr     error
}

func (s stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestAuthRegisterSuccess(t *testing.T) {
	svc := stubAuthService{registerResp: &auth.AuthResponse{
		Status:  types.StatusOK,
		Message: "User registered successfully",
		Token:   "jwt-token",
		User:    &users.UserDTO{ID: 1, Email: "jak@example.com"},
	}}

	resp := postJSON(t, AuthRegister(svc, nil), "/api/auth/register",
		`{"firstname":"Jak","lastname":"Krittin","email":"jak@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusCreated, resp.Code)

	var body auth.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, "jwt-token", body.Token)
	require.NotNil(t, body.User)
	assert.Equal(t, int64(1), body.User.ID)
}

func TestAuthRegisterRejectsInvalidBody(t *testing.T) {
	resp := postJSON(t, AuthRegister(stubAuthService{}, nil), "/api/auth/register",
		`{"firstname":"Jak"}`)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(pkgerrors.CodeValidation), body.Error.Code)
}

func TestAuthRegisterConflict(t *testing.T) {
	svc := stubAuthService{registerErr: pkgerrors.New(pkgerrors.CodeConflict, "Email already exists")}

	resp := postJSON(t, AuthRegister(svc, nil), "/api/auth/register",
		`{"firstname":"Jak","lastname":"Krittin","email":"jak@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusConflict, resp.Code)

	var body types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Email already exists", body.Error.Message)
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := stubAuthService{loginResp: &auth.AuthResponse{
		Status:  types.StatusOK,
		Message: "User logged in successfully",
		Token:   "jwt-token",
		User:    &users.UserDTO{ID: 2, Email: "jak@example.com"},
	}}

	resp := postJSON(t, AuthLogin(svc, nil), "/api/auth/login",
		`{"email":"jak@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, resp.Code)

	var body auth.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User logged in successfully", body.Message)
	assert.Equal(t, "jwt-token", body.Token)
}

func TestAuthLoginUnauthorized(t *testing.T) {
	svc := stubAuthService{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "Email and password does not match")}

	resp := postJSON(t, AuthLogin(svc, nil), "/api/auth/login",
		`{"email":"jak@example.com","password":"wrong-pass"}`)

	require.Equal(t, http.StatusUnauthorized, resp.Code)

	var body types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Email and password does not match", body.Error.Message)
}
