package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/storefront/auth"
	"github.com/kbukum/storefront/auth/authctx"
	"github.com/kbukum/storefront/auth/token"
	apperrors "github.com/kbukum/storefront/errors"
)

// ContextKeyClaims is the gin context key holding verified claims.
const ContextKeyClaims = "claims"

// Auth guards a route with a bearer credential. A request without an
// Authorization header is rejected with 401 MISSING_CREDENTIAL; a header whose
// credential fails verification is rejected with 401 INVALID_CREDENTIAL. On
// success the claims are stored in the request context (authctx) and in the
// gin context under ContextKeyClaims.
func Auth(validator auth.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := auth.ExtractBearer(c.GetHeader("Authorization"))
		var claims any
		if err == nil {
			claims, err = validator.ValidateToken(raw)
		}
		if err != nil {
			abort(c, credentialError(err))
			return
		}

		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

func credentialError(err error) *apperrors.AppError {
	if errors.Is(err, token.ErrMissingCredential) {
		return apperrors.MissingCredential()
	}
	reason, _ := token.ReasonOf(err)
	return apperrors.InvalidCredential(string(reason)).WithCause(err)
}

// CurrentClaims returns the claims stored by Auth. Handlers mounted without
// Auth get MISSING_CREDENTIAL.
func CurrentClaims(c *gin.Context) (*token.Claims, error) {
	claims, ok := authctx.Get[*token.Claims](c.Request.Context())
	if !ok || claims == nil {
		return nil, apperrors.MissingCredential()
	}
	return claims, nil
}
