package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDecodeJSONBodySuccess(t *testing.T) {
	var dest loginBody
	err := DecodeJSONBody(jsonRequest(`{"email":"jak@example.com","password":"secret"}`), &dest)
	require.NoError(t, err)
	assert.Equal(t, "jak@example.com", dest.Email)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dest loginBody
	err := DecodeJSONBody(jsonRequest(`{"email":"jak@example.com","password":"secret","admin":true}`), &dest)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	var dest loginBody
	err := DecodeJSONBody(jsonRequest(`{"email":"not-an-email"}`), &dest)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "is required", details["password"])
}
