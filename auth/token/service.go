// Package token issues and verifies the storefront's bearer credential.
//
// A credential is an HS256 JWT carrying the identity of a user (_id, name,
// email, isAdmin) and expiring a fixed TTL after issuance. Verification is
// stateless: any holder of the shared secret can check a credential.
//
//	svc, err := token.NewService(cfg)
//	raw, err := svc.Issue(token.Identity{ID: "u1", Name: "A", Email: "a@x.com"})
//	claims, err := svc.Verify(raw)
package token

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Identity is the set of user fields embedded in a credential.
type Identity struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Claims are the decoded contents of a credential.
type Claims struct {
	Identity
	gojwt.RegisteredClaims
}

// Service issues and verifies credentials.
type Service struct {
	cfg Config
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a token service from cfg.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	s := &Service{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL returns the configured credential lifetime.
func (s *Service) TTL() time.Duration { return s.cfg.TTL }

// Issue signs a credential for id valid for the configured TTL.
func (s *Service) Issue(id Identity) (string, error) {
	now := s.now()
	claims := &Claims{
		Identity: id,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   id.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of raw and returns its claims.
// An empty raw yields ErrMissingCredential; any other failure is a
// *VerifyError matching ErrInvalidCredential.
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMissingCredential
	}
	claims := &Claims{}
	tok, err := gojwt.ParseWithClaims(raw, claims, s.keyFunc, s.parserOptions()...)
	if err != nil {
		return nil, &VerifyError{Reason: classify(err), Err: err}
	}
	if !tok.Valid {
		return nil, &VerifyError{Reason: ReasonClaims}
	}
	return claims, nil
}

// ValidateToken adapts Verify to auth.TokenValidator.
func (s *Service) ValidateToken(raw string) (any, error) {
	return s.Verify(raw)
}

func (s *Service) keyFunc(tok *gojwt.Token) (interface{}, error) {
	if tok.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("unexpected signing method: %s", tok.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}

func (s *Service) parserOptions() []gojwt.ParserOption {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithExpirationRequired(),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}
	return opts
}
