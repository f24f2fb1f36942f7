// Package jwtauth mints bearer tokens for calls to the portfolio API.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned when a token is requested from a generator without a signing key.
var ErrEmptySecret = errors.New("jwt secret is empty")

// Generator creates HS256 tokens carrying a fixed subject and role.
// It satisfies sentient.TokenSource.
type Generator struct {
	secret     []byte
	subject    string
	role       string
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a Generator. subject is used for both the sub and user claims.
func NewGenerator(secret, subject, role string, expiration time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		subject:    subject,
		role:       role,
		expiration: expiration,
		now:        time.Now,
	}
}

// Token creates a freshly signed token.
func (g *Generator) Token() (string, error) {
	if len(g.secret) == 0 {
		return "", ErrEmptySecret
	}

	now := g.now()
	claims := jwt.MapClaims{
		"sub":  g.subject,
		"user": g.subject,
		"role": g.role,
		"iat":  now.Unix(),
		"exp":  now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
