package security

import (
	"errors"
	"fmt"

	"github.com/jak-krittin/minishop-backend/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash using the configured cost (work factor
// 10 by default).
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), costFromConfig(cfg))
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword returns true when the password matches the stored hash.
// A mismatch is not an error; anything else (malformed hash) is.
func VerifyPassword(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

func costFromConfig(cfg config.PasswordConfig) int {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}
