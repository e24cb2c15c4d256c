package project

import (
	"errors"
	"strings"

	projecterrors "github.com/indocarisinternational/admin-caris/internal/project/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			// Writes violate the client reference; deletes violate assignments.
			if strings.Contains(pgErr.ConstraintName, "client") {
				return projecterrors.ErrUnknownClient
			}
			return projecterrors.ErrProjectInUse
		case "22P02":
			return projecterrors.ErrProjectNotFound
		}
	}

	return err
}
