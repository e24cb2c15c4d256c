package employee

import (
	"errors"

	employeeerrors "github.com/indocarisinternational/admin-caris/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_employee_code" {
				return employeeerrors.ErrEmployeeCodeAlreadyExists
			}
		case "23503":
			return employeeerrors.ErrEmployeeInUse
		case "22P02":
			return employeeerrors.ErrInvalidEmployeeID
		}
	}

	return err
}
