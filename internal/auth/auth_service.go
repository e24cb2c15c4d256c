package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	autherrors "github.com/indocarisinternational/admin-caris/internal/auth/errors"
	"github.com/indocarisinternational/admin-caris/internal/email"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultSessionTTL = 7 * 24 * time.Hour
	DefaultVerifyTTL  = 24 * time.Hour
	MinPasswordLength = 6
	DefaultRedirect   = "/auth/login"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	SignUp(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Verify(ctx context.Context, token string) (string, error)
	SignIn(ctx context.Context, email, password string) (SignInResult, error)
	CurrentSession(ctx context.Context, token string) (SessionResponse, error)
	SignOut(ctx context.Context, token string) error
	Subscribe(ctx context.Context, userID string) (*Subscription, error)
}

type Options struct {
	JWTSecret  string
	SessionTTL time.Duration
	VerifyTTL  time.Duration
	BaseURL    string
	Clock      func() time.Time
}

type Claims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	mailer email.Mailer
	opts   Options
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, mailer email.Mailer, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.VerifyTTL <= 0 {
		opts.VerifyTTL = DefaultVerifyTTL
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		mailer: mailer,
		opts:   opts,
		now:    now,
		logger: l,
	}
}

func (s *service) SignUp(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	if len(req.Password) < MinPasswordLength {
		return UserResponse{}, autherrors.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}
	name := strings.TrimSpace(req.Name)

	user, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil && user.Verified():
		return UserResponse{}, autherrors.ErrEmailAlreadyRegistered
	case err == nil:
		// unverified account: take the new credentials and mail a fresh link
		if err := s.repo.UpdateCredentials(ctx, user.ID, name, string(hashed)); err != nil {
			return UserResponse{}, err
		}
		user.Name = name
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &User{
			ID:           uuid.New(),
			Name:         name,
			Email:        req.Email,
			PasswordHash: string(hashed),
		}
		if err := s.repo.Create(ctx, user); err != nil {
			if isUniqueViolation(err) {
				return UserResponse{}, autherrors.ErrEmailAlreadyRegistered
			}
			return UserResponse{}, err
		}
	default:
		return UserResponse{}, err
	}

	if err := s.sendVerification(ctx, user, SafeRedirect(req.RedirectTo)); err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID.String()))
	return toUserResponse(user), nil
}

func (s *service) sendVerification(ctx context.Context, user *User, redirectTo string) error {
	token := uuid.NewString()
	v := verification{UserID: user.ID.String(), RedirectTo: redirectTo}
	if err := putJSON(ctx, s.rdb, verifyKey(token), v, s.opts.VerifyTTL); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("token", token)
	q.Set("redirect_to", redirectTo)
	link := strings.TrimRight(s.opts.BaseURL, "/") + "/auth/verify?" + q.Encode()

	body := fmt.Sprintf(
		"Halo %s,\n\nSilakan konfirmasi email Anda melalui tautan berikut:\n%s\n\nTautan berlaku selama %s.\n",
		user.Name, link, s.opts.VerifyTTL,
	)
	if err := s.mailer.Send(ctx, user.Email, "Konfirmasi email Indo Caris", body); err != nil {
		s.logger.Error("send verification mail failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Verify(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", autherrors.ErrInvalidVerificationToken
	}

	var v verification
	if err := getJSON(ctx, s.rdb, verifyKey(token), &v, autherrors.ErrInvalidVerificationToken); err != nil {
		return "", err
	}
	userID, err := uuid.Parse(v.UserID)
	if err != nil {
		return "", autherrors.ErrInvalidVerificationToken
	}

	if err := s.repo.MarkVerified(ctx, userID, s.now()); err != nil {
		return "", err
	}
	if err := s.rdb.Del(ctx, verifyKey(token)).Err(); err != nil {
		s.logger.Warn("delete verification token failed", zap.Error(err))
	}

	return SafeRedirect(v.RedirectTo), nil
}

func (s *service) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SignInResult{}, autherrors.ErrInvalidCredentials
		}
		return SignInResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return SignInResult{}, autherrors.ErrInvalidCredentials
	}
	if !user.Verified() {
		return SignInResult{}, autherrors.ErrEmailNotConfirmed
	}

	now := s.now()
	sess := session{
		ID:        uuid.NewString(),
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.SessionTTL),
	}
	if err := putJSON(ctx, s.rdb, SessionKey(sess.ID), sess, s.opts.SessionTTL); err != nil {
		return SignInResult{}, err
	}

	token, err := s.generateToken(sess)
	if err != nil {
		_ = s.rdb.Del(ctx, SessionKey(sess.ID)).Err()
		return SignInResult{}, autherrors.ErrTokenGenerationFailed
	}

	s.publish(ctx, SessionEvent{Type: EventSignedIn, UserID: sess.UserID, SessionID: sess.ID, At: now})
	s.logger.Info("user signed in", zap.String("user_id", sess.UserID), zap.String("session_id", sess.ID))

	return SignInResult{AccessToken: token, Session: toSessionResponse(sess)}, nil
}

func (s *service) CurrentSession(ctx context.Context, token string) (SessionResponse, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return SessionResponse{}, err
	}
	sess, err := s.loadSession(ctx, claims.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if sess.UserID != claims.Subject {
		return SessionResponse{}, autherrors.ErrInvalidToken
	}
	return toSessionResponse(sess), nil
}

// SignOut ends the session behind token. Ending an already ended session succeeds.
func (s *service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		if errors.Is(err, autherrors.ErrTokenExpired) {
			return nil
		}
		return err
	}

	removed, err := s.rdb.Del(ctx, SessionKey(claims.SessionID)).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return nil
	}

	s.publish(ctx, SessionEvent{
		Type:      EventSignedOut,
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
		At:        s.now(),
	})
	s.logger.Info("user signed out", zap.String("user_id", claims.Subject), zap.String("session_id", claims.SessionID))
	return nil
}

func (s *service) Subscribe(ctx context.Context, userID string) (*Subscription, error) {
	ps := s.rdb.Subscribe(ctx, SessionChannel(userID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}
	return newSubscription(ps, s.logger), nil
}

func (s *service) generateToken(sess session) (string, error) {
	claims := Claims{
		SessionID: sess.ID,
		Email:     sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID,
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.opts.JWTSecret))
}

func (s *service) parseToken(raw string) (*Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, autherrors.ErrTokenNotFound
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(s.opts.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !token.Valid || claims.SessionID == "" || claims.Subject == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

// SafeRedirect keeps only same-site relative paths.
func SafeRedirect(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return DefaultRedirect
	}
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" {
		return DefaultRedirect
	}
	return target
}

func toUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Verified: u.Verified(),
	}
}

func toSessionResponse(sess session) SessionResponse {
	return SessionResponse{
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
		User: UserResponse{
			ID:       sess.UserID,
			Name:     sess.Name,
			Email:    sess.Email,
			Verified: true,
		},
	}
}
