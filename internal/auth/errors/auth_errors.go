package autherrors

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid login credentials",
		http.StatusUnauthorized,
	)
	ErrEmailNotConfirmed = apperror.New(
		apperror.CodeUnauthorized,
		"Email not confirmed",
		http.StatusUnauthorized,
	)
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session has ended",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"User already registered",
		http.StatusConflict,
	)
	ErrInvalidVerificationToken = apperror.New(
		apperror.CodeInvalidInput,
		"Verification link is invalid or has expired",
		http.StatusBadRequest,
	)
	ErrWeakPassword = apperror.New(
		apperror.CodeValidation,
		"Password should be at least 6 characters",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
