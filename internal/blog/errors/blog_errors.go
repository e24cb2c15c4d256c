package blogerrors

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
)

var (
	ErrBlogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Blog not found",
		http.StatusNotFound,
	)
	ErrBannerRequired = apperror.RequiredField("Banner")

	ErrInvalidPublishedAt = apperror.InvalidField("Published At")
	ErrInvalidRevisedAt   = apperror.InvalidField("Revised At")
)
