package middleware

import (
	"context"
	"strings"

	autherrors "github.com/indocarisinternational/admin-caris/internal/auth/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"
	"github.com/indocarisinternational/admin-caris/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "access_token"

type Principal struct {
	UserID    string
	SessionID string
	Email     string
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (Principal, error)
}

type TokenVerifierFunc func(ctx context.Context, token string) (Principal, error)

func (f TokenVerifierFunc) VerifyToken(ctx context.Context, token string) (Principal, error) {
	return f(ctx, token)
}

// TokenFromRequest reads a Bearer token, falling back to the access_token cookie.
func TokenFromRequest(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// SetPrincipal exposes p to handlers and to the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set("user_id", p.UserID)
	c.Set("session_id", p.SessionID)
	c.Set("email", p.Email)
	c.Request = c.Request.WithContext(contextutil.WithUserID(c.Request.Context(), p.UserID))
}

func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			response.FromError(c, autherrors.ErrTokenNotFound)
			c.Abort()
			return
		}

		p, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		SetPrincipal(c, p)
		c.Next()
	}
}
