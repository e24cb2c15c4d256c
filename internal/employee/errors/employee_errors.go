package employeeerrors

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrEmployeeInUse = apperror.New(
		apperror.CodeConflict,
		"Employee is still assigned to a project",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidJoinDate = apperror.InvalidField("Join Date")

	ErrInvalidIDCardValidUntil = apperror.InvalidField("Id Card Valid Until")
)
