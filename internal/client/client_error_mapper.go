package client

import (
	"errors"

	clienterrors "github.com/indocarisinternational/admin-caris/internal/client/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clienterrors.ErrClientNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return clienterrors.ErrClientInUse
		case "22P02":
			return clienterrors.ErrClientNotFound
		}
	}

	return err
}
