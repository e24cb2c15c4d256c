package clienterrors

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)
	ErrClientInUse = apperror.New(
		apperror.CodeConflict,
		"Client still has projects",
		http.StatusConflict,
	)
	ErrLogoRequired = apperror.RequiredField("Logo")

	ErrInvalidClientSince = apperror.InvalidField("Client Since")
)
