package assignmenterrors

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusBadRequest,
	)
	ErrUnknownProject = apperror.New(
		apperror.CodeInvalidInput,
		"Project does not exist",
		http.StatusBadRequest,
	)
)
