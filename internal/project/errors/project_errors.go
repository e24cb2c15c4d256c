package projecterrors

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrProjectInUse = apperror.New(
		apperror.CodeConflict,
		"Project still has assigned employees",
		http.StatusConflict,
	)
	ErrUnknownClient = apperror.New(
		apperror.CodeInvalidInput,
		"Client does not exist",
		http.StatusBadRequest,
	)
	ErrImageRequired = apperror.RequiredField("Image")

	ErrInvalidStatus    = apperror.InvalidField("Status")
	ErrInvalidStartedAt = apperror.InvalidField("Started At")
	ErrInvalidDeadline  = apperror.InvalidField("Deadline")
)
