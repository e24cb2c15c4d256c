package authgate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	autherrors "github.com/indocarisinternational/admin-caris/internal/auth/errors"
	"github.com/indocarisinternational/admin-caris/internal/authgate"
	"github.com/indocarisinternational/admin-caris/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/pegawais", authgate.Require(newSource(), nil), func(c *gin.Context) {
		sess, ok := authgate.SessionFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, "daftar pegawai untuk %s (%s)", sess.User.Name, c.GetString("user_id"))
	})

	t.Run("no cookie redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pegawais", nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, authgate.LoginPath, w.Header().Get("Location"))
	})

	t.Run("ended session redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pegawais", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "stale"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, authgate.LoginPath, w.Header().Get("Location"))
	})

	t.Run("live session renders the page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pegawais", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "good"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "daftar pegawai untuk Sari (u1)", w.Body.String())
	})
}

func TestVerifier(t *testing.T) {
	v := authgate.Verifier(newSource())

	p, err := v.VerifyToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, middleware.Principal{UserID: "u1", SessionID: "s1", Email: "sari@indocaris.test"}, p)

	_, err = v.VerifyToken(context.Background(), "stale")
	assert.ErrorIs(t, err, autherrors.ErrSessionNotFound)
}
