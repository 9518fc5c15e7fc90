package database

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/kbukum/storefront/errors"
)

var busyPatterns = []string{
	"database is locked",
	"database table is locked",
	"sqlite_busy",
	"driver: bad connection",
}

// IsBusyError reports whether err is a transient lock or connection error.
func IsBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, p := range busyPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// IsNotFoundError reports whether err is a GORM record-not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError reports whether err is a unique constraint violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// FromDatabase converts a persistence error to an AppError for resource.
// id is included in not-found details when non-empty.
func FromDatabase(err error, resource, id string) *apperrors.AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	switch {
	case IsNotFoundError(err):
		return apperrors.NotFound(resource, id)
	case IsDuplicateError(err):
		return apperrors.AlreadyExists(resource).WithCause(err)
	case IsBusyError(err):
		e := apperrors.DatabaseError(err)
		e.HTTPStatus = http.StatusServiceUnavailable
		e.Message = "Database is temporarily unavailable. Please try again."
		return e
	}
	return apperrors.DatabaseError(err)
}
