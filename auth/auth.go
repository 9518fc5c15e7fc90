package auth

import (
	"strings"

	"github.com/kbukum/storefront/auth/token"
)

// BearerPrefix is the scheme prefix of the Authorization header.
const BearerPrefix = "Bearer "

// TokenValidator validates a raw credential and returns its claims.
// Middleware depends on this rather than on the token service directly.
type TokenValidator interface {
	ValidateToken(raw string) (any, error)
}

// TokenValidatorFunc adapts a function to TokenValidator.
type TokenValidatorFunc func(raw string) (any, error)

// ValidateToken implements TokenValidator.
func (f TokenValidatorFunc) ValidateToken(raw string) (any, error) {
	return f(raw)
}

// ExtractBearer returns the credential carried by an Authorization header.
// An empty header yields token.ErrMissingCredential. A header that is present
// but does not follow the "Bearer <token>" convention is an invalid credential.
func ExtractBearer(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", token.ErrMissingCredential
	}
	if len(header) < len(BearerPrefix) || !strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		return "", &token.VerifyError{Reason: token.ReasonMalformed}
	}
	raw := strings.TrimSpace(header[len(BearerPrefix):])
	if raw == "" {
		return "", &token.VerifyError{Reason: token.ReasonMalformed}
	}
	return raw, nil
}

// BearerHeader formats raw as an Authorization header value.
func BearerHeader(raw string) string {
	return BearerPrefix + raw
}
