package auth

import (
	"net/http"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/middleware"
	"github.com/indocarisinternational/admin-caris/internal/shared/request"
	"github.com/indocarisinternational/admin-caris/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service       Service
	secureCookies bool
	logger        *zap.Logger
}

func NewHandler(service Service, secureCookies bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, secureCookies: secureCookies, logger: l}
}

// SetSessionCookie stores the access token in an HttpOnly cookie living as long as the session.
func SetSessionCookie(c *gin.Context, token string, expiresAt time.Time, secure bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := request.Bind(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Verify(c *gin.Context) {
	redirectTo, err := h.service.Verify(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verified": true, "redirect_to": redirectTo}, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := request.Bind(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	SetSessionCookie(c, result.AccessToken, result.Session.ExpiresAt, h.secureCookies)
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Session(c *gin.Context) {
	resp, err := h.service.CurrentSession(c.Request.Context(), middleware.TokenFromRequest(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	if token := middleware.TokenFromRequest(c); token != "" {
		if err := h.service.SignOut(c.Request.Context(), token); err != nil {
			h.writeServiceError(c, err)
			return
		}
	}

	ClearSessionCookie(c, h.secureCookies)
	response.Success(c, http.StatusOK, gin.H{"signed_out": true}, nil)
}
