package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT. The
// token identifies the account solely by email.
type AccessTokenPayload struct {
	Email string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
