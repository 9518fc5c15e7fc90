package token

import (
	"errors"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingCredential is returned when no credential was presented.
	ErrMissingCredential = errors.New("token: missing credential")
	// ErrInvalidCredential matches every *VerifyError via errors.Is.
	ErrInvalidCredential = errors.New("token: invalid credential")
)

// Reason classifies why a credential was rejected.
type Reason string

const (
	ReasonExpired   Reason = "expired"
	ReasonMalformed Reason = "malformed"
	ReasonSignature Reason = "signature"
	ReasonClaims    Reason = "claims"
)

// VerifyError is returned for a credential that was present but rejected.
type VerifyError struct {
	Reason Reason
	Err    error
}

func (e *VerifyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token: invalid credential (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token: invalid credential (%s)", e.Reason)
}

func (e *VerifyError) Unwrap() error { return e.Err }

// Is reports ErrInvalidCredential as a match.
func (e *VerifyError) Is(target error) bool {
	return target == ErrInvalidCredential
}

// ReasonOf returns the rejection reason carried by err, if any.
func ReasonOf(err error) (Reason, bool) {
	var ve *VerifyError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}

func classify(err error) Reason {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return ReasonMalformed
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid), errors.Is(err, gojwt.ErrTokenUnverifiable):
		return ReasonSignature
	default:
		return ReasonClaims
	}
}
