package blog

import (
	"errors"

	blogerrors "github.com/indocarisinternational/admin-caris/internal/blog/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return blogerrors.ErrBlogNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return blogerrors.ErrBlogNotFound
	}

	return err
}
