package auth_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/auth"
	autherrors "github.com/indocarisinternational/admin-caris/internal/auth/errors"
	authMock "github.com/indocarisinternational/admin-caris/internal/auth/mock"
	emailMock "github.com/indocarisinternational/admin-caris/internal/email/mock"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type serviceDeps struct {
	repo   *authMock.MockRepository
	mailer *emailMock.MockMailer
	mr     *miniredis.Miniredis
	rdb    *redis.Client
	now    time.Time
}

func newService(t *testing.T) (auth.Service, *serviceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	deps := &serviceDeps{
		repo:   authMock.NewMockRepository(ctrl),
		mailer: emailMock.NewMockMailer(ctrl),
		mr:     mr,
		rdb:    rdb,
		now:    time.Now().Truncate(time.Second),
	}
	svc := auth.NewService(deps.repo, rdb, deps.mailer, auth.Options{
		JWTSecret: testSecret,
		BaseURL:   "https://admin.test/",
		Clock:     func() time.Time { return deps.now },
	})
	return svc, deps
}

func verifiedUser(t *testing.T, password string) *auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	at := time.Now()
	return &auth.User{
		ID:              uuid.New(),
		Name:            "Sari",
		Email:           "sari@indocaris.test",
		PasswordHash:    string(hash),
		EmailVerifiedAt: &at,
	}
}

// tokenFromMail pulls the verification token out of the link in a mail body.
func tokenFromMail(t *testing.T, body string) (string, string) {
	t.Helper()
	i := strings.Index(body, "https://admin.test/auth/verify?")
	require.GreaterOrEqual(t, i, 0, body)
	link := strings.Fields(body[i:])[0]
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("token"), u.Query().Get("redirect_to")
}

func TestService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("new user gets a verification mail", func(t *testing.T) {
		svc, deps := newService(t)
		var body string

		deps.repo.EXPECT().GetByEmail(ctx, "sari@indocaris.test").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, "Sari", u.Name)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia")))
			return nil
		})
		deps.mailer.EXPECT().Send(ctx, "sari@indocaris.test", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, b string) error {
				body = b
				return nil
			})

		resp, err := svc.SignUp(ctx, auth.RegisterRequest{
			Name:       "  Sari ",
			Email:      "sari@indocaris.test",
			Password:   "rahasia",
			RedirectTo: "/pegawais",
		})

		require.NoError(t, err)
		assert.False(t, resp.Verified)
		assert.Equal(t, "Sari", resp.Name)

		token, redirect := tokenFromMail(t, body)
		assert.Equal(t, "/pegawais", redirect)
		assert.True(t, deps.mr.Exists("auth:verify:"+token))
		assert.Equal(t, auth.DefaultVerifyTTL, deps.mr.TTL("auth:verify:"+token))
	})

	t.Run("short password", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.SignUp(ctx, auth.RegisterRequest{Name: "Sari", Email: "sari@indocaris.test", Password: "12345"})

		assert.ErrorIs(t, err, autherrors.ErrWeakPassword)
	})

	t.Run("verified email is taken", func(t *testing.T) {
		svc, deps := newService(t)
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(verifiedUser(t, "rahasia"), nil)

		_, err := svc.SignUp(ctx, auth.RegisterRequest{Name: "Sari", Email: "sari@indocaris.test", Password: "rahasia"})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("unverified account is refreshed and mailed again", func(t *testing.T) {
		svc, deps := newService(t)
		existing := verifiedUser(t, "lama123")
		existing.EmailVerifiedAt = nil

		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(existing, nil)
		deps.repo.EXPECT().UpdateCredentials(ctx, existing.ID, "Sari Dewi", gomock.Any()).Return(nil)
		deps.mailer.EXPECT().Send(ctx, existing.Email, gomock.Any(), gomock.Any()).Return(nil)

		resp, err := svc.SignUp(ctx, auth.RegisterRequest{Name: "Sari Dewi", Email: existing.Email, Password: "baru123"})

		require.NoError(t, err)
		assert.Equal(t, existing.ID.String(), resp.ID)
		assert.Equal(t, "Sari Dewi", resp.Name)
	})

	t.Run("mail failure is reported", func(t *testing.T) {
		svc, deps := newService(t)
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.mailer.EXPECT().Send(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := svc.SignUp(ctx, auth.RegisterRequest{Name: "Sari", Email: "sari@indocaris.test", Password: "rahasia"})

		assert.EqualError(t, err, "smtp down")
	})
}

func TestService_Verify(t *testing.T) {
	ctx := context.Background()
	svc, deps := newService(t)
	var body string
	var created *auth.User

	deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
		created = u
		return nil
	})
	deps.mailer.EXPECT().Send(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, b string) error {
			body = b
			return nil
		})

	_, err := svc.SignUp(ctx, auth.RegisterRequest{
		Name:       "Sari",
		Email:      "sari@indocaris.test",
		Password:   "rahasia",
		RedirectTo: "https://evil.test/",
	})
	require.NoError(t, err)
	token, _ := tokenFromMail(t, body)

	deps.repo.EXPECT().MarkVerified(ctx, created.ID, deps.now).Return(nil)

	redirect, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, auth.DefaultRedirect, redirect)
	assert.False(t, deps.mr.Exists("auth:verify:"+token))

	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, autherrors.ErrInvalidVerificationToken)

	_, err = svc.Verify(ctx, "")
	assert.ErrorIs(t, err, autherrors.ErrInvalidVerificationToken)
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		svc, deps := newService(t)
		deps.repo.EXPECT().GetByEmail(ctx, "nobody@indocaris.test").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.SignIn(ctx, "nobody@indocaris.test", "rahasia")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, deps := newService(t)
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(verifiedUser(t, "rahasia"), nil)

		_, err := svc.SignIn(ctx, "sari@indocaris.test", "salah")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("email not confirmed", func(t *testing.T) {
		svc, deps := newService(t)
		u := verifiedUser(t, "rahasia")
		u.EmailVerifiedAt = nil
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)

		_, err := svc.SignIn(ctx, u.Email, "rahasia")

		assert.ErrorIs(t, err, autherrors.ErrEmailNotConfirmed)
	})

	t.Run("session is stored and token resolves it", func(t *testing.T) {
		svc, deps := newService(t)
		u := verifiedUser(t, "rahasia")
		deps.repo.EXPECT().GetByEmail(ctx, u.Email).Return(u, nil)

		result, err := svc.SignIn(ctx, u.Email, "rahasia")
		require.NoError(t, err)

		sid := result.Session.SessionID
		assert.True(t, deps.mr.Exists(auth.SessionKey(sid)))
		assert.Equal(t, auth.DefaultSessionTTL, deps.mr.TTL(auth.SessionKey(sid)))
		assert.Equal(t, deps.now.Add(auth.DefaultSessionTTL), result.Session.ExpiresAt)

		current, err := svc.CurrentSession(ctx, result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, sid, current.SessionID)
		assert.Equal(t, u.ID.String(), current.User.ID)
		assert.Equal(t, u.Email, current.User.Email)
	})
}

func TestService_CurrentSession(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CurrentSession(ctx, "")
		assert.ErrorIs(t, err, autherrors.ErrTokenNotFound)
	})

	t.Run("foreign signature", func(t *testing.T) {
		svc, _ := newService(t)
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
			SessionID:        "s1",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		})
		raw, err := forged.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = svc.CurrentSession(ctx, raw)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, deps := newService(t)
		u := verifiedUser(t, "rahasia")
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)
		result, err := svc.SignIn(ctx, u.Email, "rahasia")
		require.NoError(t, err)

		deps.now = deps.now.Add(auth.DefaultSessionTTL + time.Minute)

		_, err = svc.CurrentSession(ctx, result.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("session removed from store", func(t *testing.T) {
		svc, deps := newService(t)
		u := verifiedUser(t, "rahasia")
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)
		result, err := svc.SignIn(ctx, u.Email, "rahasia")
		require.NoError(t, err)

		deps.mr.Del(auth.SessionKey(result.Session.SessionID))

		_, err = svc.CurrentSession(ctx, result.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrSessionNotFound)
	})
}

func TestService_SignOut(t *testing.T) {
	ctx := context.Background()
	svc, deps := newService(t)
	u := verifiedUser(t, "rahasia")
	deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)

	result, err := svc.SignIn(ctx, u.Email, "rahasia")
	require.NoError(t, err)

	sub, err := svc.Subscribe(ctx, u.ID.String())
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, svc.SignOut(ctx, result.AccessToken))
	assert.False(t, deps.mr.Exists(auth.SessionKey(result.Session.SessionID)))

	select {
	case ev := <-sub.Events():
		assert.Equal(t, auth.EventSignedOut, ev.Type)
		assert.Equal(t, u.ID.String(), ev.UserID)
		assert.Equal(t, result.Session.SessionID, ev.SessionID)
	case <-time.After(2 * time.Second):
		t.Fatal("signed_out event not delivered")
	}

	_, err = svc.CurrentSession(ctx, result.AccessToken)
	assert.ErrorIs(t, err, autherrors.ErrSessionNotFound)

	// second sign-out is a no-op
	assert.NoError(t, svc.SignOut(ctx, result.AccessToken))
	assert.ErrorIs(t, svc.SignOut(ctx, "garbage"), autherrors.ErrInvalidToken)
}

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"":                    auth.DefaultRedirect,
		"/pegawais":           "/pegawais",
		"/edit/pegawai/1?x=1": "/edit/pegawai/1?x=1",
		"https://evil.test/":  auth.DefaultRedirect,
		"//evil.test":         auth.DefaultRedirect,
		"pegawais":            auth.DefaultRedirect,
		"/\\evil.test":        auth.DefaultRedirect,
	}
	for in, want := range cases {
		assert.Equal(t, want, auth.SafeRedirect(in), in)
	}
}
