package storefront

import (
	"errors"

	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/httpclient"
)

var (
	// ErrSuperseded is returned by a stock check whose response arrived
	// after a newer check for the same product started.
	ErrSuperseded = errors.New("storefront: superseded by a newer request")
	// ErrSignInRequired is returned by operations that need a session.
	ErrSignInRequired = errors.New("storefront: sign in required")
	// ErrShippingRequired is returned when checkout steps run out of order.
	ErrShippingRequired = errors.New("storefront: shipping address required")
	// ErrPaymentRequired is returned when placing an order without a
	// payment method.
	ErrPaymentRequired = errors.New("storefront: payment method required")
	// ErrEmptyCart is returned when placing an order with an empty cart.
	ErrEmptyCart = errors.New("storefront: cart is empty")
)

// Message returns the text to show a user for err: the server's
// error.message for API failures, the AppError message for local
// validation, else err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := httpclient.As(err); ok {
		if m := httpclient.MessageFrom(e.Body); m != "" {
			return m
		}
		return e.Message
	}
	if e, ok := apperrors.AsAppError(err); ok {
		return e.Message
	}
	return err.Error()
}
