package assignment

import (
	"errors"
	"strings"

	assignmenterrors "github.com/indocarisinternational/admin-caris/internal/assignment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrAssignmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			if strings.HasSuffix(pgErr.ConstraintName, "_employee") {
				return assignmenterrors.ErrUnknownEmployee
			}
			return assignmenterrors.ErrUnknownProject
		case "22P02":
			return assignmenterrors.ErrAssignmentNotFound
		}
	}

	return err
}
