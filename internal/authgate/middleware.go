package authgate

import (
	"context"
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/auth"
	"github.com/indocarisinternational/admin-caris/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	LoginPath  = "/auth/login"
	sessionKey = "auth_session"
)

// Require sends visitors without a live session to the login screen with a
// 303 so the protected page never lands in history.
func Require(source Source, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		g := New(source, logger)
		defer g.Close()

		state, err := g.Check(c.Request.Context(), middleware.TokenFromRequest(c))
		if state != StateAuthenticated {
			if err != nil {
				g.logger.Debug("console session rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			}
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		sess, _ := g.Session()
		middleware.SetPrincipal(c, middleware.Principal{
			UserID:    sess.User.ID,
			SessionID: sess.SessionID,
			Email:     sess.User.Email,
		})
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session stored by Require.
func SessionFrom(c *gin.Context) (auth.SessionResponse, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return auth.SessionResponse{}, false
	}
	sess, ok := v.(auth.SessionResponse)
	return sess, ok
}

// Verifier adapts source to the API bearer-token middleware.
func Verifier(source Source) middleware.TokenVerifier {
	return middleware.TokenVerifierFunc(func(ctx context.Context, token string) (middleware.Principal, error) {
		sess, err := source.CurrentSession(ctx, token)
		if err != nil {
			return middleware.Principal{}, err
		}
		return middleware.Principal{
			UserID:    sess.User.ID,
			SessionID: sess.SessionID,
			Email:     sess.User.Email,
		}, nil
	})
}
