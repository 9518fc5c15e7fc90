package storefront

import (
	"context"

	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/httpclient"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/state"
)

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// SignIn authenticates and stores the session.
func (c *Client) SignIn(ctx context.Context, email, password string) (state.UserInfo, error) {
	user, err := httpclient.Post[state.UserInfo](c.api, ctx, "/api/users/signin", credentials{Email: email, Password: password})
	if err != nil {
		return state.UserInfo{}, err
	}
	c.store.Dispatch(state.SignIn(user))
	c.log.Info("signed in", logger.Fields(logger.FieldUserID, user.ID))
	return user, nil
}

// SignUp creates an account and signs in. confirm must equal password.
func (c *Client) SignUp(ctx context.Context, name, email, password, confirm string) (state.UserInfo, error) {
	if password != confirm {
		return state.UserInfo{}, passwordMismatch()
	}
	user, err := httpclient.Post[state.UserInfo](c.api, ctx, "/api/users/signup", credentials{Name: name, Email: email, Password: password})
	if err != nil {
		return state.UserInfo{}, err
	}
	c.store.Dispatch(state.SignIn(user))
	return user, nil
}

// UpdateProfile changes the non-empty fields and replaces the session with
// the refreshed one. confirm must equal password when a password is given.
func (c *Client) UpdateProfile(ctx context.Context, name, email, password, confirm string) (state.UserInfo, error) {
	s := c.store.State()
	if !s.SignedIn() {
		return state.UserInfo{}, ErrSignInRequired
	}
	if password != confirm {
		return state.UserInfo{}, passwordMismatch()
	}
	user, err := httpclient.Put[state.UserInfo](c.api, ctx, "/api/users/profile",
		credentials{Name: name, Email: email, Password: password}, c.bearer(s))
	if err != nil {
		return state.UserInfo{}, err
	}
	c.store.Dispatch(state.SignIn(user))
	return user, nil
}

// SignOut clears the session and the cart.
func (c *Client) SignOut() {
	c.store.Dispatch(state.SignOut())
}

func passwordMismatch() error {
	return apperrors.Validation("Passwords do not match").WithDetail("field", "confirmPassword")
}
