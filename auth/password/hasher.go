// Package password hashes and verifies stored user passwords with bcrypt.
//
//	hasher := password.NewHasher(cfg)
//	hash, err := hasher.Hash("secret")
//	err = hasher.Verify("secret", hash)
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes.
const maxLength = 72

var (
	// ErrMismatch is returned by Verify when the password does not match.
	ErrMismatch = errors.New("password: mismatch")
	// ErrTooShort is returned by Hash for passwords under the minimum length.
	ErrTooShort = errors.New("password: too short")
	// ErrTooLong is returned by Hash for passwords over the bcrypt limit.
	ErrTooLong = errors.New("password: too long")
)

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost      int
	minLength int
}

// NewHasher creates a bcrypt hasher from configuration.
func NewHasher(cfg Config) *BcryptHasher {
	cfg.ApplyDefaults()
	return &BcryptHasher{cost: cfg.BcryptCost, minLength: cfg.MinLength}
}

// MinLength returns the minimum accepted password length.
func (h *BcryptHasher) MinLength() int { return h.minLength }

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) < h.minLength {
		return "", fmt.Errorf("%w: minimum length is %d characters", ErrTooShort, h.minLength)
	}
	if len(password) > maxLength {
		return "", fmt.Errorf("%w: maximum length is %d characters", ErrTooLong, maxLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
